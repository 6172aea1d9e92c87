package routes

import (
	"time"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Dependencies are the long lived resources built in main.
type Dependencies struct {
	DB     *pgxpool.Pool
	Cache  repositories.CacheRepositoryInterface
	Bus    *eventbus.Bus
	JWT    service.JWTService
	Config *config.Config
	Logger *zap.Logger
}

type handlers struct {
	auth      *controllers.AuthController
	equipment *controllers.EquipmentController
	team      *controllers.TeamController
	request   *controllers.RequestController
	dashboard *controllers.DashboardController
	report    *controllers.ReportController
}

func InitRouter(e *echo.Echo, deps Dependencies) {
	logger := deps.Logger
	logger.Info("InitRouter: building routes")

	txManager := repositories.NewTxManager(deps.DB)

	userRepo := repositories.NewUserRepository(deps.DB, logger.Named("users"))
	equipmentRepo := repositories.NewEquipmentRepository(deps.DB, logger.Named("equipment"))
	teamRepo := repositories.NewTeamRepository(deps.DB, logger.Named("teams"))
	requestRepo := repositories.NewRequestRepository(deps.DB, logger.Named("requests"))
	commentRepo := repositories.NewCommentRepository(deps.DB, logger.Named("comments"))
	statusLogRepo := repositories.NewStatusLogRepository(deps.DB, logger.Named("status_logs"))
	dashboardRepo := repositories.NewDashboardRepository(deps.DB, logger.Named("dashboard"))
	reportRepo := repositories.NewReportRepository(deps.DB, logger.Named("reports"))

	publisher := services.NewAggregateInvalidator(deps.Cache, deps.Bus, logger.Named("cache"))

	authService := services.NewAuthService(userRepo, deps.JWT, logger.Named("auth"))
	equipmentService := services.NewEquipmentService(equipmentRepo, teamRepo, requestRepo, txManager, publisher, logger.Named("equipment"))
	teamService := services.NewTeamService(teamRepo, userRepo, equipmentRepo, txManager, publisher, logger.Named("teams"))
	requestService := services.NewRequestService(requestRepo, equipmentRepo, teamRepo, commentRepo, statusLogRepo, txManager, publisher, logger.Named("requests"))
	dashboardService := services.NewDashboardService(dashboardRepo, deps.Cache, cacheTTL(deps.Config.Cache.DashboardTTL), logger.Named("dashboard"))
	calendarService := services.NewCalendarService(requestRepo, logger.Named("calendar"))
	reportService := services.NewReportService(reportRepo, deps.Cache, cacheTTL(deps.Config.Cache.ReportTTL), logger.Named("reports"))

	h := handlers{
		auth:      controllers.NewAuthController(authService, deps.JWT, deps.Config.Auth.SecureCookies, logger.Named("auth")),
		equipment: controllers.NewEquipmentController(equipmentService, logger.Named("equipment")),
		team:      controllers.NewTeamController(teamService, logger.Named("teams")),
		request:   controllers.NewRequestController(requestService, logger.Named("requests")),
		dashboard: controllers.NewDashboardController(dashboardService, calendarService, logger.Named("dashboard")),
		report:    controllers.NewReportController(reportService, logger.Named("reports")),
	}

	registerRoutes(e, h, middleware.NewAuthMiddleware(deps.JWT, logger.Named("auth_mw")))

	logger.Info("InitRouter: routes ready", zap.Int("count", len(e.Routes())))
}

func registerRoutes(e *echo.Echo, h handlers, authMW *middleware.AuthMiddleware) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	runAuthRouter(e.Group("/auth"), h.auth, authMW)

	api := e.Group("/api")
	runEquipmentRouter(api, h.equipment, authMW)
	runTeamRouter(api, h.team, authMW)
	runRequestRouter(api, h.request, authMW)
	runDashboardRouter(api, h.dashboard)
	runReportRouter(api, h.report)
}

func cacheTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return time.Minute
	}
	return ttl
}
