package policy

import (
	"reflect"
	"strings"

	"medrep/internal/domain/entity"
)

const (
	tagName = "policy"

	// tagAdmin marks a payload field only admins may set.
	tagAdmin = "admin"
	// tagTerminal marks a status field non-admins may set only to non-terminal values.
	tagTerminal = "terminal"
)

type terminalStater interface {
	IsTerminal() bool
}

// StripRestricted zeroes every payload field the principal may not set and returns
// the names of the dropped fields. Admin payloads are returned untouched.
// payload must be a pointer to a struct; anything else is ignored.
func StripRestricted(principal *entity.Principal, payload any) []string {
	if principal.IsAdmin() || payload == nil {
		return nil
	}

	v := reflect.ValueOf(payload)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil
	}

	return stripStruct(v.Elem())
}

func stripStruct(v reflect.Value) []string {
	var dropped []string

	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fv := v.Field(i)
		switch field.Tag.Get(tagName) {
		case tagAdmin:
			if !fv.IsZero() {
				fv.SetZero()
				dropped = append(dropped, jsonName(field))
			}
		case tagTerminal:
			if isTerminal(fv) {
				fv.SetZero()
				dropped = append(dropped, jsonName(field))
			}
		default:
			if field.Anonymous && fv.Kind() == reflect.Struct {
				dropped = append(dropped, stripStruct(fv)...)
			}
		}
	}

	return dropped
}

func isTerminal(fv reflect.Value) bool {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return false
		}
		fv = fv.Elem()
	}

	stater, ok := fv.Interface().(terminalStater)

	return ok && stater.IsTerminal()
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}
