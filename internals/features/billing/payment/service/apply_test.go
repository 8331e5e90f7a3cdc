package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	cycleModel "github.com/Harshrawat27/rently/internals/features/billing/cycle/model"
	"github.com/Harshrawat27/rently/internals/features/billing/payment/model"
	tenantModel "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/model"
)

func setupPaymentDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&tenantModel.Tenant{},
		&cycleModel.TenantBillingCycle{},
		&model.TenantPayment{},
	))
	return db
}

func seedTenantAndCycle(t *testing.T, db *gorm.DB, advance, balance int64) (*tenantModel.Tenant, *cycleModel.TenantBillingCycle) {
	t.Helper()
	tenant := &tenantModel.Tenant{
		RoomID:        uuid.New(),
		Name:          "Ravi Kumar",
		PhoneNumber:   "9876543210",
		BookingDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		AdvanceAmount: advance,
		BalanceAmount: balance,
		IsActive:      true,
	}
	require.NoError(t, db.Create(tenant).Error)

	cycle := &cycleModel.TenantBillingCycle{
		TenantID:       tenant.ID,
		CycleStartDate: time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		CycleEndDate:   time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC),
		RentAmount:     500000,
		TotalAmount:    500000,
	}
	require.NoError(t, db.Create(cycle).Error)
	return tenant, cycle
}

func TestApplyCyclePayment_ShortfallGoesToBalance(t *testing.T) {
	db := setupPaymentDB(t)
	tenant, cycle := seedTenantAndCycle(t, db, 400000, 0)
	payDate := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)

	alloc, err := ApplyCyclePayment(db, tenant, cycle, 150000, 400000, 0, payDate)
	require.NoError(t, err)
	assert.Equal(t, int64(650000), alloc.Total)
	assert.Equal(t, int64(400000), alloc.FromAdvance)
	assert.Equal(t, int64(250000), alloc.RemainingBalance)

	var reloadedTenant tenantModel.Tenant
	require.NoError(t, db.First(&reloadedTenant, "id = ?", tenant.ID).Error)
	assert.Equal(t, int64(0), reloadedTenant.AdvanceAmount)
	assert.Equal(t, int64(250000), reloadedTenant.BalanceAmount)

	var reloadedCycle cycleModel.TenantBillingCycle
	require.NoError(t, db.First(&reloadedCycle, "id = ?", cycle.ID).Error)
	assert.Equal(t, int64(150000), reloadedCycle.ElectricityAmount)
	assert.Equal(t, int64(650000), reloadedCycle.TotalAmount)
	assert.False(t, reloadedCycle.IsPaid)
	assert.Nil(t, reloadedCycle.PaidDate)

	// ledger: advance consumption and the unpaid shortfall
	var entries []model.TenantPayment
	require.NoError(t, db.Where("tenant_id = ?", tenant.ID).
		Order("amount DESC").Find(&entries).Error)
	require.Len(t, entries, 2)
	assert.Equal(t, model.PaymentTypeBalance, entries[0].Type)
	assert.Equal(t, int64(-250000), entries[0].Amount)
	assert.Equal(t, model.PaymentTypeAdvance, entries[1].Type)
	assert.Equal(t, int64(-400000), entries[1].Amount)
}

func TestApplyCyclePayment_FullSettlementMarksPaid(t *testing.T) {
	db := setupPaymentDB(t)
	tenant, cycle := seedTenantAndCycle(t, db, 400000, 0)
	payDate := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)

	alloc, err := ApplyCyclePayment(db, tenant, cycle, 150000, 400000, 250000, payDate)
	require.NoError(t, err)
	assert.Equal(t, int64(0), alloc.RemainingBalance)

	var reloadedCycle cycleModel.TenantBillingCycle
	require.NoError(t, db.First(&reloadedCycle, "id = ?", cycle.ID).Error)
	assert.True(t, reloadedCycle.IsPaid)
	require.NotNil(t, reloadedCycle.PaidDate)
	assert.Equal(t, payDate, *reloadedCycle.PaidDate)

	var reloadedTenant tenantModel.Tenant
	require.NoError(t, db.First(&reloadedTenant, "id = ?", tenant.ID).Error)
	assert.Equal(t, int64(0), reloadedTenant.AdvanceAmount)
	assert.Equal(t, int64(0), reloadedTenant.BalanceAmount)
}

func TestApplyCyclePayment_PreexistingBalanceUntouched(t *testing.T) {
	db := setupPaymentDB(t)
	tenant, cycle := seedTenantAndCycle(t, db, 0, 120000)
	payDate := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)

	// direct payment covers this cycle exactly; the old debt stays
	_, err := ApplyCyclePayment(db, tenant, cycle, 0, 0, 500000, payDate)
	require.NoError(t, err)

	var reloadedTenant tenantModel.Tenant
	require.NoError(t, db.First(&reloadedTenant, "id = ?", tenant.ID).Error)
	assert.Equal(t, int64(120000), reloadedTenant.BalanceAmount)
}

func TestApplyCyclePayment_RejectsForeignCycle(t *testing.T) {
	db := setupPaymentDB(t)
	tenant, _ := seedTenantAndCycle(t, db, 0, 0)
	other, otherCycle := seedTenantAndCycle(t, db, 0, 0)
	_ = other

	_, err := ApplyCyclePayment(db, tenant, otherCycle, 0, 0, 100000, time.Now())
	assert.Error(t, err)
}

func TestApplyCyclePayment_ValidationWritesNothing(t *testing.T) {
	db := setupPaymentDB(t)
	tenant, cycle := seedTenantAndCycle(t, db, 100000, 0)

	_, err := ApplyCyclePayment(db, tenant, cycle, 0, 200000, 0, time.Now())
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.TenantPayment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var reloadedTenant tenantModel.Tenant
	require.NoError(t, db.First(&reloadedTenant, "id = ?", tenant.ID).Error)
	assert.Equal(t, int64(100000), reloadedTenant.AdvanceAmount)
}

func TestRecordPayment_AdvanceTopUp(t *testing.T) {
	db := setupPaymentDB(t)
	tenant, _ := seedTenantAndCycle(t, db, 100000, 0)

	entry, err := RecordPayment(db, tenant, model.PaymentTypeAdvance, 50000,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), entry.Amount)

	var reloaded tenantModel.Tenant
	require.NoError(t, db.First(&reloaded, "id = ?", tenant.ID).Error)
	assert.Equal(t, int64(150000), reloaded.AdvanceAmount)
}

func TestRecordPayment_BalanceClampsAtZero(t *testing.T) {
	db := setupPaymentDB(t)
	tenant, _ := seedTenantAndCycle(t, db, 0, 80000)

	_, err := RecordPayment(db, tenant, model.PaymentTypeBalance, 100000,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	var reloaded tenantModel.Tenant
	require.NoError(t, db.First(&reloaded, "id = ?", tenant.ID).Error)
	assert.Equal(t, int64(0), reloaded.BalanceAmount)
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	db := setupPaymentDB(t)
	tenant, _ := seedTenantAndCycle(t, db, 0, 0)

	_, err := RecordPayment(db, tenant, model.PaymentTypeAdvance, 0, time.Now(), nil)
	assert.Error(t, err)
	_, err = RecordPayment(db, tenant, model.PaymentTypeAdvance, -100, time.Now(), nil)
	assert.Error(t, err)
}
