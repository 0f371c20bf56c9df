package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/staffhub/hr-asset-system/docs"
	"github.com/staffhub/hr-asset-system/internal/api/handler"
	"github.com/staffhub/hr-asset-system/internal/api/middleware"
	"github.com/staffhub/hr-asset-system/internal/core/credentials"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
	"github.com/staffhub/hr-asset-system/internal/core/service"
	"github.com/staffhub/hr-asset-system/internal/infrastructure/config"
	"github.com/staffhub/hr-asset-system/internal/infrastructure/db/postgres"
	redisdb "github.com/staffhub/hr-asset-system/internal/infrastructure/db/redis"
	"github.com/staffhub/hr-asset-system/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with every route registered through
// the authorization policy table. rdb may be nil; the dashboard is then
// served uncached.
func NewRouter(db *postgres.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Dependencies ---
	users := postgres.NewUserRepository(db)
	assets := postgres.NewAssetRepository(db)
	departments := postgres.NewDepartmentRepository(db)

	var cache ports.SummaryCache
	if rdb != nil {
		cache = redisdb.NewSummaryCache(rdb)
	}

	issuer := credentials.NewIssuer(cfg.TokenSecret, cfg.TokenTTL)

	authService := service.NewAuthService(users, departments, issuer, log)
	assetService := service.NewAssetService(assets, users, log)
	employeeService := service.NewEmployeeService(users, assets, departments, log)
	departmentService := service.NewDepartmentService(departments, log)
	dashboardService := service.NewDashboardService(assets, users, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	assetHandler := handler.NewAssetHandler(assetService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// --- Public routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Protected routes: every entry goes through the policy table ---
	api := e.Group("/api", middleware.Auth(issuer))
	err := registerProtected(api, map[routeKey]echo.HandlerFunc{
		{http.MethodPost, "/assets"}:       assetHandler.Create,
		{http.MethodGet, "/assets"}:        assetHandler.List,
		{http.MethodGet, "/assets/:id"}:    assetHandler.Get,
		{http.MethodPut, "/assets/:id"}:    assetHandler.Update,
		{http.MethodDelete, "/assets/:id"}: assetHandler.Delete,

		{http.MethodGet, "/employee"}:             employeeHandler.List,
		{http.MethodGet, "/employee/departments"}: departmentHandler.List,
		{http.MethodGet, "/employee/:id"}:         employeeHandler.Get,
		{http.MethodPost, "/employee"}:            employeeHandler.Create,
		{http.MethodPut, "/employee/:id"}:         employeeHandler.Update,
		{http.MethodDelete, "/employee/:id"}:      employeeHandler.Delete,

		{http.MethodPost, "/departments"}: departmentHandler.Create,

		{http.MethodGet, "/dashboard"}: dashboardHandler.Summary,
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}
