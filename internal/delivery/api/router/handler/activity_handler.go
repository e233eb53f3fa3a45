package handler

import (
	"medrep/internal/delivery/api/response"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/errors"
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
}

// ActivityHandler serves the product activity log.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{activityUC: params.ActivityUC}
}

func (h *ActivityHandler) List(c echo.Context) error {
	return handleList(c, h.activityUC.List, "Activities retrieved successfully")
}

func (h *ActivityHandler) Create(c echo.Context) error {
	return handleCreate(c, h.activityUC.Create, "Activity logged successfully")
}

// Summary accepts the same filters as List; pagination is ignored.
func (h *ActivityHandler) Summary(c echo.Context) error {
	params, err := listParams(c)
	if err != nil {
		return err
	}

	summary, err := h.activityUC.Summary(c.Request().Context(), deliverycontext.GetPrincipal(c), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, summary, "Activity summary retrieved successfully")
}
