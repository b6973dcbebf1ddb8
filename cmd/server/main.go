package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"rentledger-backend/internal/advance"
	"rentledger-backend/internal/api"
	"rentledger-backend/internal/auth"
	"rentledger-backend/internal/config"
	"rentledger-backend/internal/database"
	"rentledger-backend/internal/expense"
	"rentledger-backend/internal/ledger"
	"rentledger-backend/internal/tenant"
)

func main() {
	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	db := database.Init(cfg)
	ledgerStore := ledger.NewStore(db)

	app := fiber.New(fiber.Config{
		AppName:      "Rent Management API",
		ErrorHandler: api.NewErrorHandler(logrus.StandardLogger()),
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	v1 := app.Group("/api/v1")

	v1.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(api.OK(fiber.Map{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}, "API is running"))
	})

	v1.Post("/auth/login", auth.LoginHandler(cfg))

	protected := v1.Group("")
	if cfg.AuthRequired {
		protected.Use(auth.Middleware(cfg))
	}

	// Tenants
	protected.Get("/tenants", tenant.ListTenantsHandler(db))
	protected.Get("/tenants/:id", tenant.GetTenantHandler(db))
	protected.Post("/tenants", tenant.CreateTenantHandler(db))
	protected.Put("/tenants/:id", tenant.UpdateTenantHandler(db))
	protected.Patch("/tenants/:id", tenant.PatchTenantHandler(db))
	protected.Delete("/tenants/:id", tenant.DeleteTenantHandler(db))

	// Rent ledger; the year view goes first so "/year/:year" never parses
	// as an id.
	protected.Get("/rent-ledger/year/:year", ledger.YearViewHandler(ledgerStore))
	protected.Get("/rent-ledger", ledger.ListEntriesHandler(db))
	protected.Get("/rent-ledger/:id", ledger.GetEntryHandler(db))
	protected.Post("/rent-ledger", ledger.CreateEntryHandler(db))
	protected.Put("/rent-ledger/:id", ledger.UpdateEntryHandler(db))
	protected.Patch("/rent-ledger/:id", ledger.PatchEntryHandler(db))
	protected.Delete("/rent-ledger/:id", ledger.DeleteEntryHandler(db))

	// Advance tracker
	protected.Get("/advance-tracker", advance.ListAdvancesHandler(db))
	protected.Get("/advance-tracker/:id", advance.GetAdvanceHandler(db))
	protected.Post("/advance-tracker", advance.CreateAdvanceHandler(db))
	protected.Put("/advance-tracker/:id", advance.UpdateAdvanceHandler(db))
	protected.Patch("/advance-tracker/:id", advance.PatchAdvanceHandler(db))
	protected.Delete("/advance-tracker/:id", advance.DeleteAdvanceHandler(db))

	// Expenses
	protected.Get("/expenses", expense.ListExpensesHandler(db))
	protected.Get("/expenses/:id", expense.GetExpenseHandler(db))
	protected.Post("/expenses", expense.CreateExpenseHandler(db))
	protected.Put("/expenses/:id", expense.UpdateExpenseHandler(db))
	protected.Patch("/expenses/:id", expense.PatchExpenseHandler(db))
	protected.Delete("/expenses/:id", expense.DeleteExpenseHandler(db))

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(api.Error("Route not found"))
	})

	logrus.WithField("port", cfg.HTTPPort).Info("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
