package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"minops/internal/auth"
	"minops/internal/authz"
	"minops/internal/config"
	"minops/internal/handler"
	"minops/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	roleHandler *handler.RoleHandler,
	mineHandler *handler.MineHandler,
	sensorHandler *handler.SensorHandler,
	messageHandler *handler.MessageHandler,
	auditHandler *handler.AuditHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.GET("/auth/verify", authHandler.VerifyEmail)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)
	api.POST("/auth/reset-password", authHandler.ResetPassword)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), LoadPrincipal(userRepo))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/me", userHandler.Me)

	// User administration
	secured.GET("/users", userHandler.List, RequirePermission(authz.PermViewUsers))
	secured.GET("/users/:id", userHandler.Get, RequirePermission(authz.PermViewUsers))
	secured.POST("/users", userHandler.Create, RequirePermission(authz.PermManageUsers))
	secured.PUT("/users/:id", userHandler.Update, RequirePermission(authz.PermManageUsers))
	secured.DELETE("/users/:id", userHandler.Delete, RequirePermission(authz.PermManageUsers))
	secured.PUT("/users/:id/role", userHandler.AssignRole, RequirePermission(authz.PermManageRoles))

	// Roles and the permission registry
	secured.GET("/permissions", roleHandler.ListPermissions, RequirePermission(authz.PermManageRoles))
	secured.GET("/roles", roleHandler.List, RequirePermission(authz.PermManageRoles))
	secured.GET("/roles/:id", roleHandler.Get, RequirePermission(authz.PermManageRoles))
	secured.POST("/roles", roleHandler.Create, RequirePermission(authz.PermManageRoles))
	secured.PUT("/roles/:id/permissions", roleHandler.SetPermissions, RequirePermission(authz.PermManageRoles))
	secured.DELETE("/roles/:id", roleHandler.Delete, RequirePermission(authz.PermManageRoles))

	// Mine inventory
	secured.GET("/mines", mineHandler.ListMines, RequirePermission(authz.PermViewAllMines))
	secured.GET("/mines/:id", mineHandler.GetMine, RequirePermission(authz.PermViewAllMines))
	secured.POST("/mines", mineHandler.CreateMine, RequirePermission(authz.PermManageMines))
	secured.PUT("/mines/:id", mineHandler.UpdateMine, RequirePermission(authz.PermManageMines))
	secured.DELETE("/mines/:id", mineHandler.DeleteMine, RequirePermission(authz.PermManageMines))

	secured.GET("/mines/:id/sectors", mineHandler.ListSectors, RequirePermission(authz.PermViewAllMines))
	secured.POST("/mines/:id/sectors", mineHandler.CreateSector, RequirePermission(authz.PermManageMines))
	secured.PUT("/sectors/:id", mineHandler.UpdateSector, RequirePermission(authz.PermManageMines))
	secured.DELETE("/sectors/:id", mineHandler.DeleteSector, RequirePermission(authz.PermManageMines))

	// Sensors
	secured.GET("/sectors/:id/sensors", sensorHandler.ListSensors, RequirePermission(authz.PermViewSensors))
	secured.POST("/sectors/:id/sensors", sensorHandler.CreateSensor, RequirePermission(authz.PermManageSensors))
	secured.PUT("/sensors/:id", sensorHandler.UpdateSensor, RequirePermission(authz.PermManageSensors))
	secured.DELETE("/sensors/:id", sensorHandler.DeleteSensor, RequirePermission(authz.PermManageSensors))

	// Messaging
	secured.POST("/messages", messageHandler.Send, RequirePermission(authz.PermSendMessages))
	secured.GET("/messages/inbox", messageHandler.Inbox)
	secured.GET("/messages/outbox", messageHandler.Outbox)
	secured.GET("/messages/:id", messageHandler.Get)
	secured.DELETE("/messages/:id", messageHandler.Delete)

	// Audit log
	secured.GET("/audit-logs", auditHandler.List, RequirePermission(authz.PermViewAuditLogs))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
