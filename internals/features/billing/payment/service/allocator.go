package service

import (
	"github.com/gofiber/fiber/v2"
)

// Allocation is the breakdown of one cycle payment. All amounts are paise.
// FromAdvance + DirectPayment + RemainingBalance always equals Total.
type Allocation struct {
	Total            int64
	FromAdvance      int64
	DirectPayment    int64
	RemainingBalance int64
}

// Allocate splits a cycle charge across advance credit and a direct payment.
//
//	total        = rent + electricity
//	fromAdvance  = min(advanceToUse, total)
//	owed         = total - fromAdvance
//	direct       = min(directPayment, owed)
//	remaining    = owed - direct
//
// advanceToUse may not exceed the tenant's available advance; nothing is
// written on a validation failure.
func Allocate(rentAmount, electricityAmount, advanceAvailable, advanceToUse, directPayment int64) (Allocation, error) {
	if rentAmount < 0 || electricityAmount < 0 || advanceToUse < 0 || directPayment < 0 {
		return Allocation{}, fiber.NewError(fiber.StatusBadRequest, "Amounts must not be negative")
	}
	if advanceToUse > advanceAvailable {
		return Allocation{}, fiber.NewError(fiber.StatusBadRequest, "Cannot use more advance than available")
	}

	total := rentAmount + electricityAmount
	fromAdvance := min64(advanceToUse, total)
	owed := total - fromAdvance
	direct := min64(directPayment, owed)

	return Allocation{
		Total:            total,
		FromAdvance:      fromAdvance,
		DirectPayment:    direct,
		RemainingBalance: owed - direct,
	}, nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
