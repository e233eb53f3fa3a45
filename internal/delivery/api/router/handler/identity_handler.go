package handler

import (
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityHandlerParams holds dependencies for IdentityHandler, injected by Fx.
type IdentityHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
}

// IdentityHandler serves /users.
type IdentityHandler struct {
	identityUC usecase.IdentityUsecase
}

func NewIdentityHandler(params IdentityHandlerParams) *IdentityHandler {
	return &IdentityHandler{identityUC: params.IdentityUC}
}

func (h *IdentityHandler) List(c echo.Context) error {
	return handleList(c, h.identityUC.List, "Users retrieved successfully")
}

func (h *IdentityHandler) Get(c echo.Context) error {
	return handleByID(c, h.identityUC.Get, "User retrieved successfully")
}

func (h *IdentityHandler) Create(c echo.Context) error {
	return handleCreate(c, h.identityUC.Create, "User created successfully")
}

func (h *IdentityHandler) Update(c echo.Context) error {
	return handleAction(c, h.identityUC.Update, "User updated successfully")
}

// Deactivate answers DELETE /users/:id; accounts are never removed.
func (h *IdentityHandler) Deactivate(c echo.Context) error {
	return handleDelete(c, h.identityUC.Deactivate, "User deactivated successfully")
}
