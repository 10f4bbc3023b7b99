package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/medroadmap/penalty-board-api/api/swagger"
	"github.com/medroadmap/penalty-board-api/internal/handler"
	"github.com/medroadmap/penalty-board-api/internal/middleware"
	"github.com/medroadmap/penalty-board-api/internal/repository"
	"github.com/medroadmap/penalty-board-api/internal/service"
	"github.com/medroadmap/penalty-board-api/pkg/cache"
	"github.com/medroadmap/penalty-board-api/pkg/config"
	"github.com/medroadmap/penalty-board-api/pkg/database"
	"github.com/medroadmap/penalty-board-api/pkg/logger"
	corsmiddleware "github.com/medroadmap/penalty-board-api/pkg/middleware/cors"
	reqidmiddleware "github.com/medroadmap/penalty-board-api/pkg/middleware/requestid"
	"github.com/medroadmap/penalty-board-api/pkg/sms"
)

// @title Penalty Board API
// @version 1.0.0
// @description Penalty point tracking and SMS notification service
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := repository.Migrate(db); err != nil {
		logr.Sugar().Fatalw("failed to run migrations", "error", err)
	}

	var sessions *cache.SessionStore
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, session revocation disabled", "error", err)
		} else {
			defer redisClient.Close()
			sessions = cache.NewSessionStore(redisClient)
		}
	}

	validate := validator.New()

	studentRepo := repository.NewStudentRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	penaltyRepo := repository.NewPenaltyRepository(db)
	thresholdRepo := repository.NewThresholdRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	var sender sms.Sender
	if cfg.SMS.Configured() {
		sender = sms.NewClient(cfg.SMS)
	}

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(cfg.Auth, nil, validate, logr)
	if sessions != nil {
		authSvc = service.NewAuthService(cfg.Auth, sessions, validate, logr)
	}
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	ruleSvc := service.NewRuleService(ruleRepo, validate, logr)
	penaltySvc := service.NewPenaltyService(penaltyRepo, ruleRepo, validate, logr)
	thresholdSvc := service.NewThresholdService(thresholdRepo, studentRepo, penaltyRepo, validate, logr)
	noteSvc := service.NewNoteService(noteRepo, validate, logr)
	notificationSvc := service.NewNotificationService(studentRepo, sender, cfg.SMS, validate, logr)
	exportSvc := service.NewExportService(penaltyRepo, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Students:   handler.NewStudentHandler(studentSvc),
		Rules:      handler.NewRuleHandler(ruleSvc),
		Thresholds: handler.NewThresholdHandler(thresholdSvc),
		Penalties:  handler.NewPenaltyHandler(penaltySvc),
		Notes:      handler.NewNoteHandler(noteSvc),
		Summary:    handler.NewSummaryHandler(penaltySvc, exportSvc),
		SMS:        handler.NewSMSHandler(notificationSvc, thresholdSvc, metricsSvc),
	}, authSvc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env,
		"auth_enabled", cfg.Auth.Enabled(), "sms_configured", cfg.SMS.Configured())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
