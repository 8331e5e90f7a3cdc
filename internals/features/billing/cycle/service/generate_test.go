package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/billing/cycle/model"
)

func setupCycleDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TenantBillingCycle{}))
	return db
}

func TestGenerateCycles_CreatesSchedule(t *testing.T) {
	db := setupCycleDB(t)
	tenantID := uuid.New()
	booking := date(2024, time.January, 31)
	now := date(2024, time.March, 10)

	inserted, err := GenerateCycles(db, tenantID, booking, 650000, now, 2)
	require.NoError(t, err)
	require.Len(t, inserted, 3)

	for _, c := range inserted {
		assert.Equal(t, tenantID, c.TenantID)
		assert.Equal(t, int64(650000), c.RentAmount)
		assert.Equal(t, int64(0), c.ElectricityAmount)
		assert.Equal(t, int64(650000), c.TotalAmount)
		assert.False(t, c.IsPaid)
	}
	assert.Equal(t, date(2024, time.January, 31), inserted[0].CycleStartDate)
	assert.Equal(t, date(2024, time.February, 29), inserted[1].CycleStartDate)
	assert.Equal(t, date(2024, time.March, 31), inserted[2].CycleStartDate)
}

func TestGenerateCycles_Idempotent(t *testing.T) {
	db := setupCycleDB(t)
	tenantID := uuid.New()
	booking := date(2024, time.January, 31)
	now := date(2024, time.March, 10)

	first, err := GenerateCycles(db, tenantID, booking, 650000, now, 2)
	require.NoError(t, err)
	require.Len(t, first, 3)

	again, err := GenerateCycles(db, tenantID, booking, 650000, now, 2)
	require.NoError(t, err)
	assert.Empty(t, again)

	var count int64
	require.NoError(t, db.Model(&model.TenantBillingCycle{}).
		Where("tenant_id = ?", tenantID).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestGenerateCycles_ExtendsAsTimeMoves(t *testing.T) {
	db := setupCycleDB(t)
	tenantID := uuid.New()
	booking := date(2024, time.January, 31)

	_, err := GenerateCycles(db, tenantID, booking, 500000, date(2024, time.March, 10), 2)
	require.NoError(t, err)

	later, err := GenerateCycles(db, tenantID, booking, 500000, date(2024, time.April, 10), 2)
	require.NoError(t, err)
	require.Len(t, later, 1)
	assert.Equal(t, date(2024, time.April, 30), later[0].CycleStartDate)
}

func TestGenerateCycles_RentSnapshotStays(t *testing.T) {
	db := setupCycleDB(t)
	tenantID := uuid.New()
	booking := date(2024, time.January, 15)

	first, err := GenerateCycles(db, tenantID, booking, 500000, date(2024, time.January, 20), 1)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// rent goes up; only windows generated after the change carry it
	later, err := GenerateCycles(db, tenantID, booking, 550000, date(2024, time.March, 20), 1)
	require.NoError(t, err)
	require.NotEmpty(t, later)

	var reloaded model.TenantBillingCycle
	require.NoError(t, db.First(&reloaded, "id = ?", first[0].ID).Error)
	assert.Equal(t, int64(500000), reloaded.RentAmount)
	assert.Equal(t, int64(550000), later[0].RentAmount)
}

func TestGenerateCycles_PartialFailureReturnsCommitted(t *testing.T) {
	db := setupCycleDB(t)
	tenantID := uuid.New()
	booking := date(2024, time.January, 31)
	now := date(2024, time.March, 10)

	// reject every insert after the first, like a store failing mid-way
	require.NoError(t, db.Exec(`
		CREATE TRIGGER reject_after_first BEFORE INSERT ON tenant_billing_cycles
		WHEN (SELECT COUNT(*) FROM tenant_billing_cycles) >= 1
		BEGIN SELECT RAISE(ABORT, 'insert rejected'); END;
	`).Error)

	inserted, err := GenerateCycles(db, tenantID, booking, 650000, now, 2)
	require.Error(t, err)
	require.Len(t, inserted, 1)
	assert.Equal(t, date(2024, time.January, 31), inserted[0].CycleStartDate)

	// the committed cycle really is persisted
	var count int64
	require.NoError(t, db.Model(&model.TenantBillingCycle{}).
		Where("tenant_id = ?", tenantID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCurrentAndNextCycle(t *testing.T) {
	db := setupCycleDB(t)
	tenantID := uuid.New()
	booking := date(2024, time.January, 31)

	_, err := GenerateCycles(db, tenantID, booking, 650000, date(2024, time.March, 10), 2)
	require.NoError(t, err)

	current, err := CurrentCycle(db, tenantID, date(2024, time.March, 10))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 29), current.CycleStartDate)

	next, err := NextCycle(db, tenantID, date(2024, time.March, 10))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 31), next.CycleStartDate)

	_, err = CurrentCycle(db, tenantID, date(2023, time.June, 1))
	assert.Error(t, err)

	_, err = NextCycle(db, tenantID, date(2024, time.December, 1))
	assert.Error(t, err)
}
