package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD value and normalizes it to UTC midnight.
// Date-only columns (booking dates, cycle boundaries, payment dates) all go
// through here so interval math never sees a time-of-day component.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}
	return t.UTC(), nil
}

// DateOnly drops the time-of-day component, keeping UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
