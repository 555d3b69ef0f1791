package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Minimal internal validator to avoid external dependency. Supports:
// - required (non-empty string)
// - min=N (integer fields, value must be >= N)
//
// Error messages can be overridden per field with an `errmsg` struct tag.
// All failing fields are collected so the caller can surface every problem
// in one response instead of the first one hit.

// ValidationError reports request fields that failed shape checks, keyed by
// the field's json name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ValidateStruct inspects struct tags `validate:"..."` and returns a
// *ValidationError covering every offending field, or nil when the value
// passes. Non-struct input is a programmer error.
func ValidateStruct(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		panic("ValidateStruct expects a struct or pointer to struct")
	}
	t := v.Type()
	fields := map[string]string{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}
		name := jsonName(field)
		fv := v.Field(i)
		for _, rule := range strings.Split(tag, ",") {
			rule = strings.TrimSpace(rule)
			switch {
			case rule == "required":
				if fv.Kind() == reflect.String && fv.String() == "" {
					fields[name] = message(field, name+" is required")
				}
			case strings.HasPrefix(rule, "min="):
				n, err := strconv.ParseInt(strings.TrimPrefix(rule, "min="), 10, 64)
				if err != nil {
					panic("invalid min rule on field " + field.Name)
				}
				switch fv.Kind() {
				case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
					if fv.Int() < n {
						fields[name] = message(field, fmt.Sprintf("%s must be at least %d", name, n))
					}
				case reflect.String:
					if int64(len(fv.String())) < n {
						fields[name] = message(field, fmt.Sprintf("%s must be at least %d characters", name, n))
					}
				}
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func message(f reflect.StructField, fallback string) string {
	if m := f.Tag.Get("errmsg"); m != "" {
		return m
	}
	return fallback
}
