package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cycleModel "github.com/Harshrawat27/rently/internals/features/billing/cycle/model"
	"github.com/Harshrawat27/rently/internals/features/billing/payment/dto"
	"github.com/Harshrawat27/rently/internals/features/billing/payment/model"
	"github.com/Harshrawat27/rently/internals/features/billing/payment/service"
	tenantService "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/service"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type TenantPaymentController struct {
	DB *gorm.DB
}

func NewTenantPaymentController(db *gorm.DB) *TenantPaymentController {
	return &TenantPaymentController{DB: db}
}

var validate = validator.New()

// POST /api/payments/apply-cycle
// Settles a billing cycle with a mix of advance credit and a direct payment.
func (h *TenantPaymentController) ApplyCycle(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ApplyCyclePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	paymentDate, err := helper.ParseDate(req.PaymentDate)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var cycle cycleModel.TenantBillingCycle
	if err := h.DB.First(&cycle, "id = ?", req.CycleID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Billing cycle not found")
	}

	tenant, err := tenantService.TenantOwnedBy(h.DB, cycle.TenantID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	alloc, err := service.ApplyCyclePayment(h.DB, tenant, &cycle, req.ElectricityAmount, req.AdvanceToUse, req.DirectPayment, paymentDate)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Payment applied", dto.AllocationResponse{
		TotalAmount:      alloc.Total,
		FromAdvance:      alloc.FromAdvance,
		DirectPayment:    alloc.DirectPayment,
		RemainingBalance: alloc.RemainingBalance,
		CyclePaid:        alloc.RemainingBalance == 0,
	})
}

// POST /api/payments
// Standalone ledger entry: advance top-up or balance pay-down.
func (h *TenantPaymentController) Record(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	paymentDate, err := helper.ParseDate(req.PaymentDate)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tenant, err := tenantService.TenantOwnedBy(h.DB, req.TenantID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	entry, err := service.RecordPayment(h.DB, tenant, model.PaymentType(req.PaymentType), req.Amount, paymentDate, req.Description)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment recorded", dto.ToPaymentResponse(*entry))
}

// GET /api/payments?tenant_id=&type=
// Ledger history, newest payment first.
func (h *TenantPaymentController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tenantID, err := uuid.Parse(c.Query("tenant_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "tenant_id is required")
	}

	if _, err := tenantService.TenantOwnedBy(h.DB, tenantID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	params := helper.ParseFiber(c, "payment_date", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.TenantPayment{}).Where("tenant_id = ?", tenantID)
	if v := c.Query("type"); v != "" {
		q = q.Where("payment_type = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var rows []model.TenantPayment
	if err := q.Order("payment_date DESC, created_at DESC").
		Offset(params.Offset()).Limit(params.Limit()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load payments")
	}

	return helper.Success(c, "OK", fiber.Map{
		"payments":   dto.ToPaymentResponses(rows),
		"pagination": helper.BuildPagination(params, total, len(rows)),
	})
}
