package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sellapi/internal/auth"
	"sellapi/internal/model"
)

// TokenResponse is returned whenever a fresh auth token is issued.
type TokenResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token"`
	Sell    *model.PublicSell `json:"sell"`
}

// MessageResponse is the generic success body.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// sendToken writes the auth token cookie and responds with the account's
// public projection.
func sendToken(c echo.Context, status int, sell *model.Sell, token string, ttl time.Duration) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		Path:     "/",
		HttpOnly: true,
	})
	return c.JSON(status, TokenResponse{
		Success: true,
		Token:   token,
		Sell:    sell.Public(),
	})
}

// clearToken expires the auth token cookie immediately.
func clearToken(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.TokenCookie,
		Value:    "",
		Expires:  time.Now(),
		Path:     "/",
		HttpOnly: true,
	})
}
