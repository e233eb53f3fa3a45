package handler

import (
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MRRequestHandlerParams holds dependencies for MRRequestHandler, injected by Fx.
type MRRequestHandlerParams struct {
	fx.In

	MRRequestUC usecase.MRRequestUsecase
}

// MRRequestHandler serves onboarding applications. Create is the only public route.
type MRRequestHandler struct {
	mrRequestUC usecase.MRRequestUsecase
}

func NewMRRequestHandler(params MRRequestHandlerParams) *MRRequestHandler {
	return &MRRequestHandler{mrRequestUC: params.MRRequestUC}
}

func (h *MRRequestHandler) Create(c echo.Context) error {
	return handleCreate(c, h.mrRequestUC.Create, "Application submitted successfully")
}

func (h *MRRequestHandler) List(c echo.Context) error {
	return handleList(c, h.mrRequestUC.List, "MR requests retrieved successfully")
}

func (h *MRRequestHandler) Get(c echo.Context) error {
	return handleByID(c, h.mrRequestUC.Get, "MR request retrieved successfully")
}

func (h *MRRequestHandler) Approve(c echo.Context) error {
	return handleByID(c, h.mrRequestUC.Approve, "MR request approved")
}

func (h *MRRequestHandler) Reject(c echo.Context) error {
	return handleAction(c, h.mrRequestUC.Reject, "MR request rejected")
}
