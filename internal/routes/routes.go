package routes

import (
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/kampusapp/admin-backend/internal/config"
	"github.com/kampusapp/admin-backend/internal/handlers"
	"github.com/kampusapp/admin-backend/internal/middleware"
	"github.com/kampusapp/admin-backend/internal/permissions"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	customerHandler *handlers.CustomerHandler,
	codeHandler *handlers.CollaborationCodeHandler,
	reportHandler *handlers.ReportHandler,
) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth, with a stricter rate limit on the credential endpoint
	auth := api.Group("/auth")
	auth.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)

	// Everything below requires a valid token resolving to a staff account.
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.LoadPrincipal(db))

	protected.Get("/auth/me", authHandler.Me)

	users := protected.Group("/users", middleware.RequireCapability(permissions.ManageAccess))
	users.Get("", userHandler.ListUsers)
	users.Post("", userHandler.CreateUser)
	users.Patch("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	customers := protected.Group("/customers", middleware.RequireCapability(permissions.ManageCustomers))
	customers.Get("", customerHandler.ListCustomers)
	customers.Post("", customerHandler.CreateCustomer)
	customers.Delete("/:id", customerHandler.DeleteCustomer)

	codes := protected.Group("/collaboration-codes", middleware.RequireCapability(permissions.ManageCollaborationCodes))
	codes.Get("", codeHandler.ListCodes)
	codes.Post("", codeHandler.CreateCode)
	codes.Patch("/:id", codeHandler.UpdateCode)
	codes.Delete("/:id", codeHandler.DeleteCode)

	protected.Get("/collaboration-stats",
		middleware.RequireCapability(permissions.ViewCollaborationStats),
		reportHandler.CollaborationStats)

	financial := protected.Group("/financial", middleware.RequireCapability(permissions.ManageFinancial))
	financial.Get("/stats", reportHandler.FinancialStats)
	financial.Get("/customer-revenue", reportHandler.CustomerRevenue)
}
