package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sellapi/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	cookieTTL   time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL}
}

// RegisterRequest represents a seller registration request. Avatar is an
// image payload (base64 data URI) forwarded to the asset host.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Gender      string `json:"gender"`
	Password    string `json:"password" validate:"required,min=8"`
	ProductName string `json:"product_name"`
	ProductCat  string `json:"product_cat"`
	Avatar      string `json:"avatar"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest represents a reset-request body.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest carries the new password for a reset completion.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// UpdatePasswordRequest represents an authenticated password change.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// Register godoc
// @Summary Register a new seller account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sell, token, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Gender:      req.Gender,
		Password:    req.Password,
		ProductName: req.ProductName,
		ProductCat:  req.ProductCat,
		Avatar:      req.Avatar,
	})
	if err != nil {
		return err
	}

	return sendToken(c, http.StatusCreated, sell, token, h.cookieTTL)
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 201 {object} TokenResponse
// @Failure 401 {object} errors.Response
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sell, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return sendToken(c, http.StatusCreated, sell, token, h.cookieTTL)
}

// Logout godoc
// @Summary Logout by clearing the token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearToken(c)
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Logged Out"})
}

// ForgotPassword godoc
// @Summary Request a password-reset email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /password/forgot [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Email sent to %s successfully", req.Email),
	})
}

// ResetPassword godoc
// @Summary Complete a password reset with the mailed token
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Raw reset token"
// @Param request body ResetPasswordRequest true "New password"
// @Success 200 {object} TokenResponse
// @Failure 404 {object} errors.Response
// @Router /password/reset/{token} [put]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sell, token, err := h.authService.ResetPassword(c.Request().Context(), c.Param("token"), req.Password)
	if err != nil {
		return err
	}

	return sendToken(c, http.StatusOK, sell, token, h.cookieTTL)
}

// UpdatePassword godoc
// @Summary Change password for the logged-in account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UpdatePasswordRequest true "Old and new password"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.Response
// @Router /password/update [put]
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sell, ok := currentSell(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
	}

	updated, token, err := h.authService.UpdatePassword(c.Request().Context(), sell.ID.Hex(), req.OldPassword, req.NewPassword)
	if err != nil {
		return err
	}

	return sendToken(c, http.StatusCreated, updated, token, h.cookieTTL)
}
