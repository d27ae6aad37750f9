// Package validation checks candidate rows against the required-field rules
// declared on the row types and turns failures into per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldMessages holds the user-facing message for a field/tag pair.
var fieldMessages = map[string]string{
	"name/required": "Name is required.",
	"date/required": "Date is required.",
	"tech/min":      "At least one tech is required.",
}

// ValidationError is returned when a candidate row is missing required
// fields. Fields maps the top-level field name to its message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate returns every violated rule of row as field -> message. The map is
// empty, never nil, when row is valid.
func (v *Validator) Validate(row any) map[string]string {
	out := map[string]string{}
	err := v.validate.Struct(row)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = err.Error()
		return out
	}
	for _, e := range verrs {
		field := topLevelField(e.Namespace())
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, e.Tag())
	}
	return out
}

// Check is Validate folded into an error: nil when valid, otherwise a
// *ValidationError.
func (v *Validator) Check(row any) error {
	fields := v.Validate(row)
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// topLevelField maps "CheckRow.name.label" to "name".
func topLevelField(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) < 2 {
		return ns
	}
	return parts[1]
}

func message(field, tag string) string {
	if msg, ok := fieldMessages[field+"/"+tag]; ok {
		return msg
	}
	label := strings.ToUpper(field[:1]) + field[1:]
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "min":
		return fmt.Sprintf("%s needs at least one value.", label)
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
