package handler

import (
	"medrep/internal/delivery/api/response"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/errors"
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
}

type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{dashboardUC: params.DashboardUC}
}

func (h *DashboardHandler) Admin(c echo.Context) error {
	dashboard, err := h.dashboardUC.Admin(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, dashboard, "Dashboard retrieved successfully")
}

func (h *DashboardHandler) MR(c echo.Context) error {
	dashboard, err := h.dashboardUC.MR(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, dashboard, "Dashboard retrieved successfully")
}
