package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	propertyModel "github.com/Harshrawat27/rently/internals/features/properties/property/model"
)

// The whole schema must migrate on sqlite, not just Postgres; the model tags
// may not carry dialect-specific DDL.
func TestAutoMigrate_Sqlite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))

	// ids come from the BeforeCreate hooks, with no column default
	p := propertyModel.Property{UserID: uuid.New(), Name: "Green View PG", Address: "12 MG Road"}
	require.NoError(t, db.Create(&p).Error)
	assert.NotEqual(t, uuid.Nil, p.ID)
}
