package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cycleModel "github.com/Harshrawat27/rently/internals/features/billing/cycle/model"
	"github.com/Harshrawat27/rently/internals/features/billing/payment/model"
	tenantModel "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/model"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

// ApplyCyclePayment settles a billing cycle: the electricity charge may be
// revised at payment time, rent stays as snapshotted at generation. Ledger
// rows, the cycle update and the tenant aggregates are committed in one
// transaction, ledger first.
//
// Netting rule: the direct payment settles only this cycle's charge; any
// shortfall is added to the tenant's running balance. A pre-existing balance
// moves only through RecordPayment.
func ApplyCyclePayment(db *gorm.DB, tenant *tenantModel.Tenant, cycle *cycleModel.TenantBillingCycle, electricityAmount, advanceToUse, directPayment int64, paymentDate time.Time) (Allocation, error) {
	if cycle.TenantID != tenant.ID {
		return Allocation{}, fiber.NewError(fiber.StatusBadRequest, "Cycle does not belong to this tenant")
	}

	alloc, err := Allocate(cycle.RentAmount, electricityAmount, tenant.AdvanceAmount, advanceToUse, directPayment)
	if err != nil {
		return Allocation{}, err
	}

	window := fmt.Sprintf("%s to %s", helper.FormatDate(cycle.CycleStartDate), helper.FormatDate(cycle.CycleEndDate))
	paymentDate = helper.DateOnly(paymentDate)

	err = db.Transaction(func(tx *gorm.DB) error {
		var entries []model.TenantPayment
		if alloc.FromAdvance > 0 {
			entries = append(entries, model.TenantPayment{
				TenantID:    tenant.ID,
				Type:        model.PaymentTypeAdvance,
				Amount:      -alloc.FromAdvance,
				PaymentDate: paymentDate,
				Description: strPtr("Advance used for billing cycle " + window),
			})
		}
		if alloc.DirectPayment > 0 {
			entries = append(entries, model.TenantPayment{
				TenantID:    tenant.ID,
				Type:        model.PaymentTypeBalance,
				Amount:      alloc.DirectPayment,
				PaymentDate: paymentDate,
				Description: strPtr("Balance payment for billing cycle " + window),
			})
		}
		if alloc.RemainingBalance > 0 {
			entries = append(entries, model.TenantPayment{
				TenantID:    tenant.ID,
				Type:        model.PaymentTypeBalance,
				Amount:      -alloc.RemainingBalance,
				PaymentDate: paymentDate,
				Description: strPtr("Balance added for billing cycle " + window),
			})
		}
		for i := range entries {
			if err := tx.Create(&entries[i]).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to write payment ledger")
			}
		}

		cycleUpdates := map[string]interface{}{
			"electricity_amount": electricityAmount,
			"total_amount":       alloc.Total,
			"is_paid":            alloc.RemainingBalance == 0,
		}
		if alloc.RemainingBalance == 0 {
			cycleUpdates["paid_date"] = paymentDate
		}
		if err := tx.Model(cycle).Updates(cycleUpdates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update billing cycle")
		}

		tenantUpdates := map[string]interface{}{
			"advance_amount": tenant.AdvanceAmount - alloc.FromAdvance,
			"balance_amount": tenant.BalanceAmount + alloc.RemainingBalance,
		}
		if err := tx.Model(tenant).Updates(tenantUpdates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update tenant totals")
		}
		return nil
	})
	if err != nil {
		return Allocation{}, err
	}
	return alloc, nil
}

// RecordPayment appends a standalone ledger entry: an advance top-up grows
// the tenant's advance credit; a balance payment pays down the running
// balance, clamped at zero.
func RecordPayment(db *gorm.DB, tenant *tenantModel.Tenant, paymentType model.PaymentType, amount int64, paymentDate time.Time, description *string) (*model.TenantPayment, error) {
	if amount <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Amount must be positive")
	}
	if paymentType != model.PaymentTypeAdvance && paymentType != model.PaymentTypeBalance {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown payment type")
	}

	entry := model.TenantPayment{
		TenantID:    tenant.ID,
		Type:        paymentType,
		Amount:      amount,
		PaymentDate: helper.DateOnly(paymentDate),
		Description: description,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to write payment ledger")
		}

		updates := map[string]interface{}{}
		switch paymentType {
		case model.PaymentTypeAdvance:
			updates["advance_amount"] = tenant.AdvanceAmount + amount
		case model.PaymentTypeBalance:
			newBalance := tenant.BalanceAmount - amount
			if newBalance < 0 {
				newBalance = 0
			}
			updates["balance_amount"] = newBalance
		}
		if err := tx.Model(tenant).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update tenant totals")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func strPtr(s string) *string { return &s }
