package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	propertyModel "github.com/Harshrawat27/rently/internals/features/properties/property/model"
	roomModel "github.com/Harshrawat27/rently/internals/features/properties/room/model"
	"github.com/Harshrawat27/rently/internals/features/tenancy/tenant/model"
)

func setupTenancyDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&propertyModel.Property{},
		&roomModel.Room{},
		&model.Tenant{},
	))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, userID uuid.UUID) *roomModel.Room {
	t.Helper()
	property := &propertyModel.Property{
		UserID:  userID,
		Name:    "Green View PG",
		Address: "12 MG Road",
	}
	require.NoError(t, db.Create(property).Error)

	room := &roomModel.Room{
		PropertyID: property.ID,
		RoomNumber: "101",
		RentAmount: 500000,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func newTenant(roomID uuid.UUID) *model.Tenant {
	return &model.Tenant{
		RoomID:      roomID,
		Name:        "Ravi Kumar",
		PhoneNumber: "9876543210",
		BookingDate: time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
}

func TestAddTenant_OccupiesRoom(t *testing.T) {
	db := setupTenancyDB(t)
	room := seedRoom(t, db, uuid.New())

	require.NoError(t, AddTenant(db, room, newTenant(room.ID)))

	var reloaded roomModel.Room
	require.NoError(t, db.First(&reloaded, "id = ?", room.ID).Error)
	assert.True(t, reloaded.IsOccupied)
}

func TestAddTenant_RejectsOccupiedRoom(t *testing.T) {
	db := setupTenancyDB(t)
	room := seedRoom(t, db, uuid.New())
	require.NoError(t, AddTenant(db, room, newTenant(room.ID)))

	var reloaded roomModel.Room
	require.NoError(t, db.First(&reloaded, "id = ?", room.ID).Error)
	err := AddTenant(db, &reloaded, newTenant(room.ID))
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Tenant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestArchiveTenant_FreesRoomKeepsHistory(t *testing.T) {
	db := setupTenancyDB(t)
	room := seedRoom(t, db, uuid.New())
	tenant := newTenant(room.ID)
	require.NoError(t, AddTenant(db, room, tenant))

	require.NoError(t, ArchiveTenant(db, tenant))

	var reloadedRoom roomModel.Room
	require.NoError(t, db.First(&reloadedRoom, "id = ?", room.ID).Error)
	assert.False(t, reloadedRoom.IsOccupied)

	var reloadedTenant model.Tenant
	require.NoError(t, db.First(&reloadedTenant, "id = ?", tenant.ID).Error)
	assert.False(t, reloadedTenant.IsActive)

	// archiving twice is refused
	assert.Error(t, ArchiveTenant(db, &reloadedTenant))
}

func TestArchiveThenReoccupy(t *testing.T) {
	db := setupTenancyDB(t)
	room := seedRoom(t, db, uuid.New())
	first := newTenant(room.ID)
	require.NoError(t, AddTenant(db, room, first))
	require.NoError(t, ArchiveTenant(db, first))

	var vacant roomModel.Room
	require.NoError(t, db.First(&vacant, "id = ?", room.ID).Error)
	second := newTenant(room.ID)
	second.Name = "Anil Sharma"
	require.NoError(t, AddTenant(db, &vacant, second))

	var active int64
	require.NoError(t, db.Model(&model.Tenant{}).
		Where("room_id = ? AND is_active = ?", room.ID, true).
		Count(&active).Error)
	assert.Equal(t, int64(1), active)

	var all int64
	require.NoError(t, db.Model(&model.Tenant{}).
		Where("room_id = ?", room.ID).Count(&all).Error)
	assert.Equal(t, int64(2), all)
}

func TestTenantOwnedBy(t *testing.T) {
	db := setupTenancyDB(t)
	owner := uuid.New()
	room := seedRoom(t, db, owner)
	tenant := newTenant(room.ID)
	require.NoError(t, AddTenant(db, room, tenant))

	found, err := TenantOwnedBy(db, tenant.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, found.ID)

	// another user's lookup reads as not found, not forbidden
	_, err = TenantOwnedBy(db, tenant.ID, uuid.New())
	assert.Error(t, err)
}
