// Package handler contains the HTTP handlers of the API.
package handler

import (
	"strconv"
	"strings"

	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Query parameters with a fixed meaning; every other parameter is a filter.
const (
	paramSearch = "search"
	paramOwner  = "mr"
	paramFrom   = "from"
	paramTo     = "to"
	paramPage   = "page"
	paramLimit  = "limit"
	paramSort   = "sort"
)

// bindAndValidate decodes the JSON body into input and runs the validator.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrBadRequest.WithDetails("Malformed request body")
	}

	return c.Validate(input)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "id", Message: "must be a valid id"})
	}

	return id, nil
}

// listParams collects the list query. Repeated filter keys are joined into one multi-value filter.
func listParams(c echo.Context) (query.Params, error) {
	values := c.QueryParams()
	verr := domainerrors.NewValidationError()

	params := query.Params{
		Search:  values.Get(paramSearch),
		Owner:   values.Get(paramOwner),
		From:    values.Get(paramFrom),
		To:      values.Get(paramTo),
		Sort:    values.Get(paramSort),
		Filters: make(map[string]string),
	}
	params.Page = positiveInt(values.Get(paramPage), paramPage, verr)
	params.Limit = positiveInt(values.Get(paramLimit), paramLimit, verr)

	for key, vals := range values {
		switch key {
		case paramSearch, paramOwner, paramFrom, paramTo, paramPage, paramLimit, paramSort:
			continue
		}
		params.Filters[key] = strings.Join(vals, ",")
	}

	if err := verr.OrNil(); err != nil {
		return query.Params{}, err
	}

	return params, nil
}

func positiveInt(raw, field string, verr *domainerrors.ValidationError) int {
	if raw == "" {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		verr.Add(field, "must be a positive number")

		return 0
	}

	return n
}
