// Package server exposes the HTTP API over fiber: route registration,
// request parsing, and the mapping from service errors to response codes.
package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/javiator/tenant-management-applications/internal/config"
	"github.com/javiator/tenant-management-applications/internal/service"
)

// Services bundles the business services the handlers depend on.
type Services struct {
	Properties   *service.Properties
	Tenants      *service.Tenants
	Transactions *service.Transactions
	Reports      *service.Reports
	Backups      *service.Backups
}

type api struct {
	svc Services
	log *zap.Logger
}

// New builds the fiber application with all routes registered.
func New(cfg *config.Config, svc Services, log *zap.Logger) *fiber.App {
	a := &api{svc: svc, log: log}

	app := fiber.New(fiber.Config{
		AppName:      "tenant-management",
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Accept, Content-Type, Content-Length, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	group := app.Group("/api")

	group.Get("/properties", a.listProperties)
	group.Post("/properties", a.createProperty)
	group.Get("/properties/:id", a.getProperty)
	group.Put("/properties/:id", a.updateProperty)
	group.Delete("/properties/:id", a.deleteProperty)
	group.Get("/properties/:id/transactions", a.propertyLedger)

	group.Get("/tenants", a.listTenants)
	group.Post("/tenants", a.createTenant)
	group.Get("/tenants/:id", a.getTenant)
	group.Put("/tenants/:id", a.updateTenant)
	group.Delete("/tenants/:id", a.deleteTenant)
	group.Get("/tenants/:id/transactions", a.tenantLedger)

	group.Get("/transactions", a.listTransactions)
	group.Post("/transactions", a.createTransaction)
	group.Get("/transactions/:id", a.getTransaction)
	group.Put("/transactions/:id", a.updateTransaction)
	group.Delete("/transactions/:id", a.deleteTransaction)

	group.Get("/reports/tenants_csv", a.tenantsCSV)
	group.Get("/reports/properties_csv", a.propertiesCSV)
	group.Get("/reports/transactions_csv", a.transactionsCSV)
	group.Get("/reports/tenants", a.tenantsSpreadsheet)
	group.Get("/reports/transactions", a.transactionsSpreadsheet)

	group.Get("/backup", a.backup)

	return app
}

// errorHandler maps service errors to the JSON error envelope:
// validation -> 400, not found -> 404, anything else -> 500 with a generic
// message so internals do not leak.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		switch {
		case service.IsValidation(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &fiberErr):
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		default:
			log.Error("unhandled error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}
}

// requestLogger emits one structured access-log line per request.
func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
