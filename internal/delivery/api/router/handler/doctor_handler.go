package handler

import (
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DoctorHandlerParams holds dependencies for DoctorHandler, injected by Fx.
type DoctorHandlerParams struct {
	fx.In

	DoctorUC usecase.DoctorUsecase
}

type DoctorHandler struct {
	doctorUC usecase.DoctorUsecase
}

func NewDoctorHandler(params DoctorHandlerParams) *DoctorHandler {
	return &DoctorHandler{doctorUC: params.DoctorUC}
}

func (h *DoctorHandler) List(c echo.Context) error {
	return handleList(c, h.doctorUC.List, "Doctors retrieved successfully")
}

func (h *DoctorHandler) Get(c echo.Context) error {
	return handleByID(c, h.doctorUC.Get, "Doctor retrieved successfully")
}

func (h *DoctorHandler) Create(c echo.Context) error {
	return handleCreate(c, h.doctorUC.Create, "Doctor created successfully")
}

func (h *DoctorHandler) Update(c echo.Context) error {
	return handleAction(c, h.doctorUC.Update, "Doctor updated successfully")
}

func (h *DoctorHandler) Delete(c echo.Context) error {
	return handleDelete(c, h.doctorUC.Delete, "Doctor deleted successfully")
}

func (h *DoctorHandler) AssignMRs(c echo.Context) error {
	return handleAction(c, h.doctorUC.AssignMRs, "MRs assigned successfully")
}
