package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pghive/internal/adapters/http/handlers"
	"pghive/internal/adapters/http/middleware"
	"pghive/internal/config"
	"pghive/internal/core/services"
)

// Setup configures all routes for the application
func Setup(
	app *fiber.App,
	cfg *config.Config,
	owner *services.OwnerService,
	authService *services.AuthService,
	reminders *services.ReminderService,
) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	tenantHandler := handlers.NewTenantHandler(owner)
	roomHandler := handlers.NewRoomHandler(owner)
	reportHandler := handlers.NewReportHandler(owner, reminders)
	selfHandler := handlers.NewSelfHandler(owner)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Prometheus scrape endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	requireAuth := middleware.AuthMiddleware(authService)

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, requireAuth)

	// Owner routes
	tenantRoutes := apiV1.Group("/tenants", requireAuth, middleware.OwnerOnly(), middleware.NoCacheHeaders())
	setupTenantRoutes(tenantRoutes, tenantHandler)

	roomRoutes := apiV1.Group("/rooms", requireAuth, middleware.OwnerOnly(), middleware.NoCacheHeaders())
	setupRoomRoutes(roomRoutes, roomHandler)

	billingRoutes := apiV1.Group("/billing", requireAuth, middleware.OwnerOnly())
	setupBillingRoutes(billingRoutes, reportHandler)

	reportRoutes := apiV1.Group("/reports", requireAuth, middleware.OwnerOnly(), middleware.NoCacheHeaders())
	setupReportRoutes(reportRoutes, reportHandler)

	// Tenant self-service routes
	selfRoutes := apiV1.Group("/me", requireAuth, middleware.TenantOnly(), middleware.NoCacheHeaders())
	setupSelfRoutes(selfRoutes, selfHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, requireAuth fiber.Handler) {
	// Public routes (10 req/min/IP)
	router.Post("/owner/login", middleware.AuthRateLimiter(), handler.OwnerLogin)
	router.Post("/tenant/login", middleware.AuthRateLimiter(), handler.TenantLogin)

	// Protected routes
	router.Post("/logout", requireAuth, handler.Logout)
	router.Put("/password", requireAuth, handler.ChangePassword)
	router.Get("/me", requireAuth, handler.Me)
}

// setupTenantRoutes configures tenant management routes (Owner only)
func setupTenantRoutes(router fiber.Router, handler *handlers.TenantHandler) {
	router.Get("/", handler.ListTenants)
	router.Post("/", handler.CreateTenant)
	router.Get("/:id", handler.GetTenant)
	router.Put("/:id", handler.UpdateTenant)
	router.Delete("/:id", handler.DeleteTenant)

	// Ledger
	router.Get("/:id/payments", handler.ListPayments)
	router.Post("/:id/payments", handler.RecordPayment)
	router.Post("/:id/payments/:paymentId/paid", handler.MarkPaid)
}

// setupRoomRoutes configures room inventory routes (Owner only)
func setupRoomRoutes(router fiber.Router, handler *handlers.RoomHandler) {
	router.Get("/", handler.ListRooms)
	router.Post("/", handler.CreateRoom)
	router.Get("/:id", handler.GetRoom)
	router.Post("/:id/assign", handler.AssignRoom)
}

// setupBillingRoutes configures billing routes (Owner only)
func setupBillingRoutes(router fiber.Router, handler *handlers.ReportHandler) {
	router.Post("/bulk", handler.GenerateBulkPayments)
	router.Get("/mode", handler.GetBillingMode)
	router.Put("/mode", handler.SetBillingMode)
}

// setupReportRoutes configures report routes (Owner only)
func setupReportRoutes(router fiber.Router, handler *handlers.ReportHandler) {
	router.Get("/summary", handler.GetSummary)
	router.Get("/rent-suggestions", handler.GetRentSuggestions)
	router.Get("/reminders", handler.GetReminders)
}

// setupSelfRoutes configures the tenant's own routes (Tenant only)
func setupSelfRoutes(router fiber.Router, handler *handlers.SelfHandler) {
	router.Get("/", handler.GetProfile)
	router.Get("/payments", handler.GetPayments)
	router.Get("/documents", handler.GetDocuments)
	router.Post("/documents", handler.UploadDocument)
}
