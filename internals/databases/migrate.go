package database

import (
	"log"

	"gorm.io/gorm"

	collectionModel "github.com/Harshrawat27/rently/internals/features/billing/collection/model"
	cycleModel "github.com/Harshrawat27/rently/internals/features/billing/cycle/model"
	paymentModel "github.com/Harshrawat27/rently/internals/features/billing/payment/model"
	expenseModel "github.com/Harshrawat27/rently/internals/features/properties/expense/model"
	propertyModel "github.com/Harshrawat27/rently/internals/features/properties/property/model"
	roomModel "github.com/Harshrawat27/rently/internals/features/properties/room/model"
	meterModel "github.com/Harshrawat27/rently/internals/features/tenancy/meter/model"
	tenantModel "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/model"
	authModel "github.com/Harshrawat27/rently/internals/features/users/auth/model"
)

// AutoMigrate keeps the schema in sync with the models. Primary keys are
// assigned by BeforeCreate hooks rather than a database default so the same
// models migrate on Postgres and on sqlite in tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authModel.User{},
		&authModel.TokenBlacklist{},
		&propertyModel.Property{},
		&roomModel.Room{},
		&expenseModel.PropertyExpense{},
		&tenantModel.Tenant{},
		&meterModel.ElectricMeterReading{},
		&cycleModel.TenantBillingCycle{},
		&paymentModel.TenantPayment{},
		&collectionModel.RentCollection{},
	)
}

func MustMigrate(db *gorm.DB) {
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}
	log.Println("[INFO] schema migrated")
}
