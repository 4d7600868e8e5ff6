package routes

import (
	"time"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/config"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/logger"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/middleware"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OperatorTokenTTL is how long a token handed out by /passwords-check lasts
const OperatorTokenTTL = 12 * time.Hour

// SetupRouter builds the engine with every service and route wired
func SetupRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	tokens := middleware.NewOperatorTokens(cfg.JWTSecret, OperatorTokenTTL)

	gateConfig := middleware.GateConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedHosts:   cfg.AllowedHosts,
		ServerKey:      cfg.ServerAPIKey,
	}
	if tokens != nil {
		gateConfig.Operator = tokens.Verify
	}
	gate := middleware.NewGate(gateConfig)

	router := gin.New()
	// The gate runs for unmatched routes too, so stray preflights get answered
	router.Use(logger.GinLogger(log), logger.Recovery(log), gate.CORS())

	// Services setup
	historyService := services.NewHistoryService(db, log, cfg.TimeZone)
	packageService := services.NewPackageService(db, log, historyService, cfg.TimeZone)
	exportService := services.NewExportService(db)
	statsService := services.NewStatsService(db)
	requestService := services.NewRequestService(db)
	reminderService := services.NewReminderService(db)
	priceService := services.NewPriceService(db)
	passwordService := services.NewPasswordService(db, log, tokens)

	// Routes setup
	SetupWakeRoutes(router)
	SetupPackageRoutes(router, gate, packageService, exportService)
	SetupHistoryRoutes(router, historyService)
	SetupStatsRoutes(router, statsService)
	SetupRequestRoutes(router, requestService)
	SetupReminderRoutes(router, gate, reminderService)
	SetupPriceRoutes(router, gate, priceService)
	SetupPasswordRoutes(router, passwordService)

	return router
}
