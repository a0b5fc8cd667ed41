package main

import (
	"context"
	"log"
	"net/http"

	_ "minops/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"minops/internal/audit"
	"minops/internal/auth"
	"minops/internal/authz"
	"minops/internal/cache"
	"minops/internal/config"
	"minops/internal/db"
	"minops/internal/handler"
	"minops/internal/mail"
	"minops/internal/model"
	"minops/internal/observ"
	"minops/internal/repository"
	"minops/internal/router"
	"minops/internal/service"
)

// @title Mine Operations API
// @version 1.0
// @description Mining operations backend with role-based access control, audit logging, site inventory, and direct messaging.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	logger, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Permission{},
		&model.Role{},
		&model.User{},
		&model.UserLog{},
		&model.Mine{},
		&model.Sector{},
		&model.Sensor{},
		&model.Message{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	permRepo := repository.NewPermissionRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	userLogRepo := repository.NewUserLogRepository(gormDB)
	mineRepo := repository.NewMineRepository(gormDB)
	sectorRepo := repository.NewSectorRepository(gormDB)
	sensorRepo := repository.NewSensorRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)

	// Sync the permission registry so every constant the gate checks
	// against exists as a row. Upsert keyed on name keeps IDs stable.
	ctx := context.Background()
	for _, entry := range authz.Registry() {
		perm := &model.Permission{Name: entry.Name, Description: entry.Description}
		if err := permRepo.Upsert(ctx, perm); err != nil {
			logger.Fatal("seed permission", zap.String("permission", entry.Name), zap.Error(err))
		}
	}
	if err := authz.ValidateRegistry(ctx, permRepo); err != nil {
		logger.Fatal("permission registry", zap.Error(err))
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	var mailer mail.Mailer
	if cfg.Env == "production" {
		mailer = mail.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom, cfg.AppBaseURL)
	} else {
		mailer = mail.NewLogMailer(logger)
	}

	recorder := audit.NewRecorder(userLogRepo, logger)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, mailer, recorder, logger)
	userService := service.NewUserService(userRepo, roleRepo, cacheClient, recorder)
	roleService := service.NewRoleService(roleRepo, permRepo, recorder)
	mineService := service.NewMineService(mineRepo, sectorRepo, sensorRepo, recorder)
	messageService := service.NewMessageService(messageRepo, userRepo, recorder)
	auditService := service.NewAuditService(userLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	mineHandler := handler.NewMineHandler(mineService)
	sensorHandler := handler.NewSensorHandler(mineService)
	messageHandler := handler.NewMessageHandler(messageService)
	auditHandler := handler.NewAuditHandler(auditService)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(
		e,
		cfg,
		userRepo,
		authHandler,
		userHandler,
		roleHandler,
		mineHandler,
		sensorHandler,
		messageHandler,
		auditHandler,
	)

	addr := ":" + cfg.ServerPort
	logger.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
