package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converts an error bubbled out of a service or a
// DB.Transaction closure (usually a *fiber.Error) into the shared JSON
// envelope. Anything else falls back to a 500 with the original message.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
