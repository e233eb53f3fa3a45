package handler

import (
	"context"

	"medrep/internal/delivery/api/response"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"
	"medrep/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func handleList[T any](c echo.Context, fn func(context.Context, *entity.Principal, query.Params) (*query.Page[T], error), message string) error {
	params, err := listParams(c)
	if err != nil {
		return err
	}

	page, err := fn(c.Request().Context(), deliverycontext.GetPrincipal(c), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, page, message)
}

// handleByID serves reads and body-less actions on one resource.
func handleByID[T any](c echo.Context, fn func(context.Context, *entity.Principal, uuid.UUID) (T, error), message string) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	out, err := fn(c.Request().Context(), deliverycontext.GetPrincipal(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, out, message)
}

func handleCreate[In, Out any](c echo.Context, fn func(context.Context, *entity.Principal, *In) (Out, error), message string) error {
	input := new(In)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	out, err := fn(c.Request().Context(), deliverycontext.GetPrincipal(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, out, message)
}

// handleAction serves updates and workflow actions on one resource.
func handleAction[In, Out any](c echo.Context, fn func(context.Context, *entity.Principal, uuid.UUID, *In) (Out, error), message string) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input := new(In)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	out, err := fn(c.Request().Context(), deliverycontext.GetPrincipal(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, out, message)
}

func handleDelete(c echo.Context, fn func(context.Context, *entity.Principal, uuid.UUID) error, message string) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := fn(c.Request().Context(), deliverycontext.GetPrincipal(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil, message)
}
