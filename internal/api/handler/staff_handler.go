package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stnicholas-trust/staff-portal/internal/api/metrics"
	"github.com/stnicholas-trust/staff-portal/internal/core/ports"
)

// StaffHandler serves the management-only roster endpoints.
type StaffHandler struct {
	staff ports.StaffService
}

func NewStaffHandler(staff ports.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=clinical management"`
}

// List returns the roster ordered by display name.
func (h *StaffHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	members, err := h.staff.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// UpdateRole changes the role of the staff member named in the path.
func (h *StaffHandler) UpdateRole(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.staff.UpdateRole(c.Request().Context(), claims, c.Param("id"), req.Role); err != nil {
		return err
	}

	metrics.RoleUpdatesTotal.WithLabelValues(req.Role).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "role updated"})
}
