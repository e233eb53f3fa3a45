package middleware

import (
	"log/slog"
	"net/http"

	"medrep/internal/delivery/api/response"
	deliverycontext "medrep/internal/delivery/context"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/errors"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware renders every error returned by a handler as an envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if validationErr, ok := errors.AsType[*domainerrors.ValidationError](err); ok {
		_ = response.Error(c, validationErr.HTTPCode(), validationErr.ErrorCode(), validationErr.Message(), validationErr.Data())

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		status := appErr.HTTPCode()
		if status >= http.StatusInternalServerError {
			m.logError(c, err)
			_ = response.Error(c, status, appErr.ErrorCode(), appErr.Message(), nil)

			return
		}

		message := appErr.Message()
		if details := appErr.Details(); details != "" {
			message = details
		}
		_ = response.Error(c, status, appErr.ErrorCode(), message, nil)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logError(c, err)
			message = internalErrorMessage
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logError(c, err)
	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), internalErrorMessage, nil)
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
