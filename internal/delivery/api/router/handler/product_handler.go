package handler

import (
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

type ProductHandler struct {
	productUC usecase.ProductUsecase
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

func (h *ProductHandler) List(c echo.Context) error {
	return handleList(c, h.productUC.List, "Products retrieved successfully")
}

func (h *ProductHandler) Get(c echo.Context) error {
	return handleByID(c, h.productUC.Get, "Product retrieved successfully")
}

func (h *ProductHandler) Create(c echo.Context) error {
	return handleCreate(c, h.productUC.Create, "Product created successfully")
}

func (h *ProductHandler) Update(c echo.Context) error {
	return handleAction(c, h.productUC.Update, "Product updated successfully")
}

func (h *ProductHandler) Delete(c echo.Context) error {
	return handleDelete(c, h.productUC.Delete, "Product deleted successfully")
}
