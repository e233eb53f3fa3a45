package handler

import (
	"log/slog"

	"medrep/internal/delivery/api/response"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/errors"
	"medrep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login and the caller's own account.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output, "Login successful")
}

func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := h.authUC.Me(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, identity, "Profile retrieved successfully")
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var input usecase.ChangePasswordInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.authUC.ChangePassword(c.Request().Context(), deliverycontext.GetPrincipal(c), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil, "Password changed successfully")
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, map[string]string{"status": "ok"}, "Service is healthy")
}
