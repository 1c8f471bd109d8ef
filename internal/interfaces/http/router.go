package http

import (
	"net/http"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ptc-travel/backoffice/internal/application/auth"
	"github.com/ptc-travel/backoffice/internal/application/usecase"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/pkg/logger"
)

// metricsExporter lo implementa *metrics.Prometheus.
type metricsExporter interface {
	httpObserver
	Handler() http.Handler
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	StaffUC        *usecase.StaffUseCase
	CustomerUC     *usecase.CustomerUseCase
	LiquidationUC  *usecase.LiquidationUseCase
	LiquidationPDF *usecase.LiquidationPDFUseCase // nil = sin exportación
	Metrics        metricsExporter                // nil = sin /metrics
	Log            *logger.Logger
}

// AppConfig parámetros del servidor Fiber.
type AppConfig struct {
	Name        string
	CORSOrigins string
	SwaggerPath string // vacío o inexistente = sin /docs
}

// statusAdvanceRoles roles que pueden avanzar el estado de una liquidación.
var statusAdvanceRoles = []entity.StaffRole{entity.RoleSuperAdmin, entity.RoleOperations, entity.RoleAccounting}

// NewApp arma la aplicación Fiber con middlewares, /health, /metrics, /docs y la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log, deps.Metrics))
	if cfg.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.SwaggerPath != "" {
		if _, err := os.Stat(cfg.SwaggerPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerPath,
				Path:     "docs",
				Title:    "PTC Back-office API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas: token con registro de sesión vigente
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)

	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Get("/", staffHandler.List)
	staff.Post("/", staffHandler.Create)
	staff.Post("/with-user", staffHandler.CreateWithUser)
	staff.Get("/by-role/:role", staffHandler.ListByRole)
	staff.Get("/:id", staffHandler.GetByID)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)

	liquidations := protected.Group("/liquidations")
	liqHandler := NewLiquidationHandler(deps.LiquidationUC, deps.LiquidationPDF)
	liquidations.Get("/", liqHandler.List)
	liquidations.Post("/", liqHandler.Create)
	liquidations.Get("/:id", liqHandler.Detail)
	liquidations.Post("/:id/tour-services", liqHandler.AddTourService)
	liquidations.Post("/:id/hotel-services", liqHandler.AddHotelService)
	liquidations.Post("/:id/flight-services", liqHandler.AddFlightService)
	liquidations.Post("/:id/additional-services", liqHandler.AddAdditionalService)
	liquidations.Post("/:id/payments", liqHandler.AddPayment)
	liquidations.Post("/:id/incidencies", liqHandler.AddIncidency)
	liquidations.Post("/:id/status/advance", RequireRole(statusAdvanceRoles...), liqHandler.AdvanceStatus)
	liquidations.Get("/:id/transitions", liqHandler.Transitions)
	liquidations.Get("/:id/pdf", liqHandler.PDF)
}
