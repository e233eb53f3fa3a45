package handler

import (
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VisitHandlerParams holds dependencies for VisitHandler, injected by Fx.
type VisitHandlerParams struct {
	fx.In

	VisitUC usecase.VisitUsecase
}

// VisitHandler serves visit reports and their review actions.
type VisitHandler struct {
	visitUC usecase.VisitUsecase
}

func NewVisitHandler(params VisitHandlerParams) *VisitHandler {
	return &VisitHandler{visitUC: params.VisitUC}
}

func (h *VisitHandler) List(c echo.Context) error {
	return handleList(c, h.visitUC.List, "Visit reports retrieved successfully")
}

func (h *VisitHandler) Get(c echo.Context) error {
	return handleByID(c, h.visitUC.Get, "Visit report retrieved successfully")
}

func (h *VisitHandler) Create(c echo.Context) error {
	return handleCreate(c, h.visitUC.Create, "Visit report created successfully")
}

func (h *VisitHandler) Update(c echo.Context) error {
	return handleAction(c, h.visitUC.Update, "Visit report updated successfully")
}

func (h *VisitHandler) Delete(c echo.Context) error {
	return handleDelete(c, h.visitUC.Delete, "Visit report deleted successfully")
}

func (h *VisitHandler) Approve(c echo.Context) error {
	return handleByID(c, h.visitUC.Approve, "Visit report approved")
}

func (h *VisitHandler) Reject(c echo.Context) error {
	return handleAction(c, h.visitUC.Reject, "Visit report rejected")
}
