package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sellapi/internal/auth"
	"sellapi/internal/model"
	"sellapi/internal/service"
)

// SellHandler handles the self-service account endpoints.
type SellHandler struct {
	sellService service.SellService
}

// NewSellHandler creates a new account handler.
func NewSellHandler(sellService service.SellService) *SellHandler {
	return &SellHandler{sellService: sellService}
}

// UpdateProfileRequest represents a self-service profile update. Avatar is
// optional; empty keeps the current image.
type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Avatar string `json:"avatar"`
}

// SellResponse wraps a single account.
type SellResponse struct {
	Success bool              `json:"success"`
	Sell    *model.PublicSell `json:"sell"`
}

// Me godoc
// @Summary Get the logged-in account
// @Tags sell
// @Produce json
// @Success 200 {object} SellResponse
// @Failure 401 {object} errors.Response
// @Router /me [get]
func (h *SellHandler) Me(c echo.Context) error {
	sell, ok := currentSell(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
	}
	return c.JSON(http.StatusOK, SellResponse{Success: true, Sell: sell.Public()})
}

// UpdateProfile godoc
// @Summary Update name, email and optionally the avatar
// @Tags sell
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.Response
// @Router /me/update [put]
func (h *SellHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
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

	err := h.sellService.UpdateProfile(c.Request().Context(), sell.ID.Hex(), service.ProfileInput{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "profile updated"})
}

func currentSell(c echo.Context) (*model.Sell, bool) {
	return auth.SellFromContext(c)
}
