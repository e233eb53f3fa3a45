package handler

import (
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TargetHandlerParams holds dependencies for TargetHandler, injected by Fx.
type TargetHandlerParams struct {
	fx.In

	TargetUC usecase.TargetUsecase
}

type TargetHandler struct {
	targetUC usecase.TargetUsecase
}

func NewTargetHandler(params TargetHandlerParams) *TargetHandler {
	return &TargetHandler{targetUC: params.TargetUC}
}

func (h *TargetHandler) List(c echo.Context) error {
	return handleList(c, h.targetUC.List, "Targets retrieved successfully")
}

func (h *TargetHandler) Get(c echo.Context) error {
	return handleByID(c, h.targetUC.Get, "Target retrieved successfully")
}

func (h *TargetHandler) Create(c echo.Context) error {
	return handleCreate(c, h.targetUC.Create, "Target created successfully")
}

func (h *TargetHandler) Update(c echo.Context) error {
	return handleAction(c, h.targetUC.Update, "Target updated successfully")
}

func (h *TargetHandler) Delete(c echo.Context) error {
	return handleDelete(c, h.targetUC.Delete, "Target deleted successfully")
}
