package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sellapi/internal/auth"
	"sellapi/internal/config"
	"sellapi/internal/errors"
	"sellapi/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	resolver auth.SellResolver,
	authHandler *handler.AuthHandler,
	sellHandler *handler.SellHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.HTTPErrorHandler = errors.EchoHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.POST("/password/forgot", authHandler.ForgotPassword)
	e.PUT("/password/reset/:token", authHandler.ResetPassword)

	// Session routes
	authenticated := auth.IsAuthenticated(cfg.JWTSecret, resolver)
	session := e.Group("", authenticated...)
	session.GET("/me", sellHandler.Me)
	session.PUT("/me/update", sellHandler.UpdateProfile)
	session.PUT("/password/update", authHandler.UpdatePassword)

	// Admin routes
	adminMW := append([]echo.MiddlewareFunc{}, authenticated...)
	adminMW = append(adminMW, auth.AuthorizeRoles("admin"))
	admin := e.Group("/admin", adminMW...)
	admin.GET("/sell", adminHandler.List)
	admin.GET("/sell/:id", adminHandler.Get)
	admin.PUT("/sell/:id", adminHandler.Update)
	admin.DELETE("/sell/:id", adminHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
