package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/billing/collection/model"
	propertyModel "github.com/Harshrawat27/rently/internals/features/properties/property/model"
	roomModel "github.com/Harshrawat27/rently/internals/features/properties/room/model"
	tenantModel "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/model"
)

func setupCollectionDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&propertyModel.Property{},
		&roomModel.Room{},
		&tenantModel.Tenant{},
		&model.RentCollection{},
	))
	return db
}

func seedActiveTenant(t *testing.T, db *gorm.DB, userID uuid.UUID, rent int64) *tenantModel.Tenant {
	t.Helper()
	property := &propertyModel.Property{UserID: userID, Name: "Green View PG", Address: "12 MG Road"}
	require.NoError(t, db.Create(property).Error)
	room := &roomModel.Room{PropertyID: property.ID, RoomNumber: "101", RentAmount: rent, IsOccupied: true}
	require.NoError(t, db.Create(room).Error)
	tenant := &tenantModel.Tenant{
		RoomID:      room.ID,
		Name:        "Ravi Kumar",
		PhoneNumber: "9876543210",
		BookingDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func TestGenerateForUser_CurrentAndNextMonth(t *testing.T) {
	db := setupCollectionDB(t)
	owner := uuid.New()
	tenant := seedActiveTenant(t, db, owner, 500000)
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	created, err := GenerateForUser(db, owner, now)
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, "2024-03", created[0].Month)
	assert.Equal(t, "2024-04", created[1].Month)
	for _, row := range created {
		assert.Equal(t, tenant.ID, row.TenantID)
		assert.Equal(t, int64(500000), row.RentAmount)
		assert.Equal(t, int64(500000), row.TotalAmount)
		assert.False(t, row.IsCollected)
		assert.Equal(t, 5, row.DueDate.Day())
	}
}

func TestGenerateForUser_Idempotent(t *testing.T) {
	db := setupCollectionDB(t)
	owner := uuid.New()
	seedActiveTenant(t, db, owner, 500000)
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, err := GenerateForUser(db, owner, now)
	require.NoError(t, err)

	again, err := GenerateForUser(db, owner, now)
	require.NoError(t, err)
	assert.Empty(t, again)

	var count int64
	require.NoError(t, db.Model(&model.RentCollection{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGenerateForUser_RollsForwardAtMonthEnd(t *testing.T) {
	db := setupCollectionDB(t)
	owner := uuid.New()
	seedActiveTenant(t, db, owner, 500000)

	_, err := GenerateForUser(db, owner, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	created, err := GenerateForUser(db, owner, time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "2024-05", created[0].Month)
}

func TestGenerateForUser_SkipsArchivedAndForeignTenants(t *testing.T) {
	db := setupCollectionDB(t)
	owner := uuid.New()
	tenant := seedActiveTenant(t, db, owner, 500000)
	require.NoError(t, db.Model(tenant).Update("is_active", false).Error)

	// another landlord's tenant must not leak in
	seedActiveTenant(t, db, uuid.New(), 300000)

	created, err := GenerateForUser(db, owner, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestMarkCollected_Toggle(t *testing.T) {
	db := setupCollectionDB(t)
	owner := uuid.New()
	seedActiveTenant(t, db, owner, 500000)

	created, err := GenerateForUser(db, owner, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, created)
	row := created[0]

	collectedOn := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	require.NoError(t, MarkCollected(db, &row, true, collectedOn))

	var reloaded model.RentCollection
	require.NoError(t, db.First(&reloaded, "id = ?", row.ID).Error)
	assert.True(t, reloaded.IsCollected)
	require.NotNil(t, reloaded.CollectedDate)
	assert.Equal(t, collectedOn, *reloaded.CollectedDate)

	require.NoError(t, MarkCollected(db, &reloaded, false, time.Time{}))
	// reload into a fresh struct: GORM leaves the old pointer in place when
	// the scanned column is NULL
	var uncollected model.RentCollection
	require.NoError(t, db.First(&uncollected, "id = ?", row.ID).Error)
	assert.False(t, uncollected.IsCollected)
	assert.Nil(t, uncollected.CollectedDate)
}

func TestNextMonthKey_EndOfMonth(t *testing.T) {
	// Jan 31 must roll to February, not skip to March
	assert.Equal(t, "2024-02", NextMonthKey(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-01", NextMonthKey(time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)))
}

func TestDueDate(t *testing.T) {
	due, err := DueDate("2024-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), due)

	_, err = DueDate("03-2024")
	assert.Error(t, err)
}
