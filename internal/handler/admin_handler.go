package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sellapi/internal/model"
	"sellapi/internal/service"
)

// AdminHandler handles the admin CRUD layer over seller accounts.
type AdminHandler struct {
	sellService service.SellService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(sellService service.SellService) *AdminHandler {
	return &AdminHandler{sellService: sellService}
}

// AdminUpdateRequest enumerates the fields an admin may change.
type AdminUpdateRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Gender string `json:"gender"`
	Role   string `json:"role" validate:"required,oneof=user admin"`
}

// SellListResponse wraps the full account list.
type SellListResponse struct {
	Success bool                `json:"success"`
	Sells   []*model.PublicSell `json:"sells"`
}

// List godoc
// @Summary List all seller accounts
// @Tags admin
// @Produce json
// @Success 200 {object} SellListResponse
// @Failure 403 {object} errors.Response
// @Router /admin/sell [get]
func (h *AdminHandler) List(c echo.Context) error {
	sells, err := h.sellService.List(c.Request().Context())
	if err != nil {
		return err
	}

	public := make([]*model.PublicSell, len(sells))
	for i := range sells {
		public[i] = sells[i].Public()
	}
	return c.JSON(http.StatusOK, SellListResponse{Success: true, Sells: public})
}

// Get godoc
// @Summary Get a single seller account by id
// @Tags admin
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {object} SellResponse
// @Failure 404 {object} errors.Response
// @Router /admin/sell/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	sell, err := h.sellService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SellResponse{Success: true, Sell: sell.Public()})
}

// Update godoc
// @Summary Update a seller account's profile fields and role
// @Description An unknown id is a silent no-op; the response is 200 either way.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Account id"
// @Param request body AdminUpdateRequest true "Fields to set"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.Response
// @Router /admin/sell/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	var req AdminUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.sellService.AdminUpdate(c.Request().Context(), c.Param("id"), model.AdminUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Gender: req.Gender,
		Role:   req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "seller updated"})
}

// Delete godoc
// @Summary Delete a seller account by id
// @Tags admin
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.Response
// @Router /admin/sell/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.sellService.AdminDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "seller deleted"})
}
