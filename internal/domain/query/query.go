// Package query turns an authorization scope and caller-supplied list parameters
// into store-neutral criteria. Caller filters can only narrow the scope, never widen it.
package query

import (
	"math"
	"strconv"
	"strings"
	"time"

	domainerrors "medrep/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	dateLayout = "2006-01-02"
)

// Scope is the mandatory visibility predicate derived from the authorization policy.
type Scope struct {
	Restricted bool
	OwnerID    uuid.UUID
}

// Unrestricted is the scope of an admin caller.
func Unrestricted() Scope {
	return Scope{}
}

// OwnedBy restricts results to records owned by id.
func OwnedBy(id uuid.UUID) Scope {
	return Scope{Restricted: true, OwnerID: id}
}

// Op is a comparison operator.
type Op string

const (
	OpEq  Op = "eq"
	OpIn  Op = "in"
	OpGte Op = "gte"
	OpLt  Op = "lt"
)

// Condition is one ANDed predicate on a column.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Search is a free-text term matched case-insensitively against any of Fields.
type Search struct {
	Fields []string
	Term   string
}

// FilterKind controls how a raw filter value is parsed.
type FilterKind int

const (
	KindString FilterKind = iota
	KindUUID
	KindBool
	KindInt
)

// Filter maps a query parameter to a column.
type Filter struct {
	Column string
	Kind   FilterKind
	// Allowed, when set, whitelists string values.
	Allowed []string
}

// Spec describes what a resource lets callers filter, search and sort on.
type Spec struct {
	Filters      map[string]Filter
	SearchFields []string
	DateColumn   string
	SortColumns  map[string]string
	DefaultSort  string
}

// Params are the raw list parameters supplied by the caller.
type Params struct {
	Search  string
	Filters map[string]string
	// Owner is the raw "mr" parameter. Only honoured for unrestricted scopes.
	Owner string
	From  string
	To    string
	Page  int
	Limit int
	Sort  string
}

// Criteria is the final, scope-intersected query.
type Criteria struct {
	OwnerID    *uuid.UUID
	Conditions []Condition
	Search     *Search
	Page       int
	Limit      int
	OrderBy    string
}

// Offset returns the number of rows to skip.
func (c *Criteria) Offset() int {
	return (c.Page - 1) * c.Limit
}

// Pagination describes a page of a list result.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Page is a list result with its pagination.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPage wraps items with pagination computed from the criteria and total.
func NewPage[T any](items []T, c *Criteria, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}

	pages := 0
	if c.Limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(c.Limit)))
	}

	return &Page[T]{
		Items: items,
		Pagination: Pagination{
			Page:  c.Page,
			Limit: c.Limit,
			Total: total,
			Pages: pages,
		},
	}
}

// Builder applies pagination limits while building criteria.
type Builder struct {
	defaultLimit int
	maxLimit     int
}

// NewBuilder creates a builder. Non-positive limits fall back to package defaults.
func NewBuilder(defaultLimit, maxLimit int) *Builder {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}

	return &Builder{defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Build is a convenience for NewBuilder(0, 0).Build.
func Build(scope Scope, spec Spec, params Params) (*Criteria, error) {
	return NewBuilder(0, 0).Build(scope, spec, params)
}

// Build intersects the scope with the caller's filters.
// All malformed parameters are reported together in one validation error.
func (b *Builder) Build(scope Scope, spec Spec, params Params) (*Criteria, error) {
	verr := domainerrors.NewValidationError()
	criteria := &Criteria{}

	if scope.Restricted {
		owner := scope.OwnerID
		criteria.OwnerID = &owner
	} else if raw := strings.TrimSpace(params.Owner); raw != "" {
		owner, err := uuid.Parse(raw)
		if err != nil {
			verr.Add("mr", "must be a valid id")
		} else {
			criteria.OwnerID = &owner
		}
	}

	for name, raw := range params.Filters {
		filter, ok := spec.Filters[name]
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			continue
		}

		cond, msg := buildCondition(filter, raw)
		if msg != "" {
			verr.Add(name, msg)

			continue
		}
		criteria.Conditions = append(criteria.Conditions, cond)
	}

	if spec.DateColumn != "" {
		if from, ok := parseBound(params.From, "from", verr); ok {
			criteria.Conditions = append(criteria.Conditions, Condition{Field: spec.DateColumn, Op: OpGte, Value: from})
		}
		if to, ok := parseBound(params.To, "to", verr); ok {
			if isDateOnly(params.To) {
				to = to.AddDate(0, 0, 1)
			}
			criteria.Conditions = append(criteria.Conditions, Condition{Field: spec.DateColumn, Op: OpLt, Value: to})
		}
	}

	if term := strings.TrimSpace(params.Search); term != "" && len(spec.SearchFields) > 0 {
		criteria.Search = &Search{Fields: spec.SearchFields, Term: term}
	}

	criteria.Page = max(params.Page, 1)
	switch {
	case params.Limit <= 0:
		criteria.Limit = b.defaultLimit
	case params.Limit > b.maxLimit:
		criteria.Limit = b.maxLimit
	default:
		criteria.Limit = params.Limit
	}

	criteria.OrderBy = resolveSort(spec, params.Sort)

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	sortConditions(criteria.Conditions)

	return criteria, nil
}

func buildCondition(filter Filter, raw string) (Condition, string) {
	values := strings.Split(raw, ",")
	parsed := make([]any, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		switch filter.Kind {
		case KindUUID:
			id, err := uuid.Parse(v)
			if err != nil {
				return Condition{}, "must be a valid id"
			}
			parsed = append(parsed, id)
		case KindBool:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Condition{}, "must be true or false"
			}
			parsed = append(parsed, b)
		case KindInt:
			n, err := strconv.Atoi(v)
			if err != nil {
				return Condition{}, "must be a number"
			}
			parsed = append(parsed, n)
		default:
			if len(filter.Allowed) > 0 && !containsFold(filter.Allowed, v) {
				return Condition{}, "must be one of " + strings.Join(filter.Allowed, ", ")
			}
			parsed = append(parsed, canonical(filter.Allowed, v))
		}
	}

	if len(parsed) == 0 {
		return Condition{}, "must not be empty"
	}
	if len(parsed) == 1 {
		return Condition{Field: filter.Column, Op: OpEq, Value: parsed[0]}, ""
	}

	return Condition{Field: filter.Column, Op: OpIn, Value: parsed}, ""
}

func parseBound(raw, field string, verr *domainerrors.ValidationError) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), true
	}

	verr.Add(field, "must be a date (YYYY-MM-DD) or RFC3339 timestamp")

	return time.Time{}, false
}

func isDateOnly(raw string) bool {
	_, err := time.Parse(dateLayout, strings.TrimSpace(raw))

	return err == nil
}

func resolveSort(spec Spec, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return spec.DefaultSort
	}

	direction := "ASC"
	if strings.HasPrefix(raw, "-") {
		direction = "DESC"
		raw = raw[1:]
	}

	column, ok := spec.SortColumns[raw]
	if !ok {
		return spec.DefaultSort
	}

	return column + " " + direction
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}

	return false
}

// canonical returns the whitelisted spelling of v so "approved" filters on "Approved".
func canonical(allowed []string, v string) string {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, v) {
			return candidate
		}
	}

	return v
}
