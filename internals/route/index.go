package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	collectionRoute "github.com/Harshrawat27/rently/internals/features/billing/collection/route"
	cycleRoute "github.com/Harshrawat27/rently/internals/features/billing/cycle/route"
	paymentRoute "github.com/Harshrawat27/rently/internals/features/billing/payment/route"
	dashboardRoute "github.com/Harshrawat27/rently/internals/features/home/dashboard/route"
	expenseRoute "github.com/Harshrawat27/rently/internals/features/properties/expense/route"
	propertyRoute "github.com/Harshrawat27/rently/internals/features/properties/property/route"
	roomRoute "github.com/Harshrawat27/rently/internals/features/properties/room/route"
	meterRoute "github.com/Harshrawat27/rently/internals/features/tenancy/meter/route"
	tenantRoute "github.com/Harshrawat27/rently/internals/features/tenancy/tenant/route"
	authRoute "github.com/Harshrawat27/rently/internals/features/users/auth/route"
	authMiddleware "github.com/Harshrawat27/rently/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// everything under /api requires a valid session
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up PropertyRoutes...")
	propertyRoute.PropertyRoutes(api, db)

	log.Println("[INFO] Setting up RoomRoutes...")
	roomRoute.RoomRoutes(api, db)

	log.Println("[INFO] Setting up ExpenseRoutes...")
	expenseRoute.ExpenseRoutes(api, db)

	log.Println("[INFO] Setting up TenantRoutes...")
	tenantRoute.TenantRoutes(api, db)

	log.Println("[INFO] Setting up MeterReadingRoutes...")
	meterRoute.MeterReadingRoutes(api, db)

	log.Println("[INFO] Setting up BillingCycleRoutes...")
	cycleRoute.BillingCycleRoutes(api, db)

	log.Println("[INFO] Setting up TenantPaymentRoutes...")
	paymentRoute.TenantPaymentRoutes(api, db)

	log.Println("[INFO] Setting up RentCollectionRoutes...")
	collectionRoute.RentCollectionRoutes(api, db)

	log.Println("[INFO] Setting up DashboardRoutes...")
	dashboardRoute.DashboardRoutes(api, db)
}
