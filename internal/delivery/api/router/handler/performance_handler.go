package handler

import (
	"medrep/internal/delivery/api/response"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/errors"
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PerformanceHandlerParams holds dependencies for PerformanceHandler, injected by Fx.
type PerformanceHandlerParams struct {
	fx.In

	PerformanceUC usecase.PerformanceUsecase
}

type PerformanceHandler struct {
	performanceUC usecase.PerformanceUsecase
}

func NewPerformanceHandler(params PerformanceHandlerParams) *PerformanceHandler {
	return &PerformanceHandler{performanceUC: params.PerformanceUC}
}

func (h *PerformanceHandler) List(c echo.Context) error {
	return handleList(c, h.performanceUC.List, "Performance logs retrieved successfully")
}

func (h *PerformanceHandler) Get(c echo.Context) error {
	return handleByID(c, h.performanceUC.Get, "Performance log retrieved successfully")
}

func (h *PerformanceHandler) Create(c echo.Context) error {
	return handleCreate(c, h.performanceUC.Create, "Performance log created successfully")
}

func (h *PerformanceHandler) Update(c echo.Context) error {
	return handleAction(c, h.performanceUC.Update, "Performance log updated successfully")
}

func (h *PerformanceHandler) Delete(c echo.Context) error {
	return handleDelete(c, h.performanceUC.Delete, "Performance log deleted successfully")
}

// Rollup recomputes the logs of every active MR for the requested month.
func (h *PerformanceHandler) Rollup(c echo.Context) error {
	var input usecase.RollupInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.performanceUC.Rollup(c.Request().Context(), deliverycontext.GetPrincipal(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output, "Performance rollup completed")
}
