package schema

import (
	"fmt"
	"sort"
	"strconv"
)

// FieldError describes one validation failure. Path is dot-separated for
// nested fields and array elements, e.g. "logo.url" or "navItems.0.name".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// FieldErrors is the ordered list of failures from one Validate call.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msg := e[0].Error()
	if len(e) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(e)-1)
	}
	return msg
}

// Validate checks payload strictly against s and returns the normalized
// value or the list of field errors. It is pure: neither input is mutated.
//
// Normalization copies every present field after type checking. Optional
// fields that are absent stay absent; the admin UI supplies zero values on
// create, so the validator never invents them. Re-validating a normalized
// value therefore yields the identical value.
func Validate(s *Schema, payload map[string]any) (map[string]any, FieldErrors) {
	var errs FieldErrors
	normalized := validateObject(s.Fields, payload, "", &errs)
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Path < errs[j].Path })
		return nil, errs
	}
	return normalized, nil
}

// ValidatePartial checks only the fields present in payload against s.
// Absent required fields are not errors; updates merge into an existing
// document, so a partial payload is the normal case. Unknown fields and
// type violations are rejected exactly as in Validate.
func ValidatePartial(s *Schema, payload map[string]any) (map[string]any, FieldErrors) {
	var errs FieldErrors
	normalized := validatePresentFields(s.Fields, payload, "", &errs)
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Path < errs[j].Path })
		return nil, errs
	}
	return normalized, nil
}

func validatePresentFields(fields map[string]Field, payload map[string]any, prefix string, errs *FieldErrors) map[string]any {
	normalized := make(map[string]any, len(payload))
	for key, value := range payload {
		path := joinPath(prefix, key)
		field, ok := fields[key]
		if !ok {
			*errs = append(*errs, FieldError{Path: path, Message: "unknown field"})
			continue
		}
		if norm, ok := validateValue(field, value, path, errs); ok {
			normalized[key] = norm
		}
	}
	return normalized
}

func validateObject(fields map[string]Field, payload map[string]any, prefix string, errs *FieldErrors) map[string]any {
	normalized := make(map[string]any, len(payload))

	// Unknown keys are rejected outright; the admin panel only ever submits
	// schema-declared fields.
	for key := range payload {
		if _, ok := fields[key]; !ok {
			*errs = append(*errs, FieldError{Path: joinPath(prefix, key), Message: "unknown field"})
		}
	}

	for name, field := range fields {
		path := joinPath(prefix, name)
		value, present := payload[name]
		if !present {
			if !field.IsOptional() {
				*errs = append(*errs, FieldError{Path: path, Message: "is required"})
			}
			continue
		}
		if norm, ok := validateValue(field, value, path, errs); ok {
			normalized[name] = norm
		}
	}
	return normalized
}

func validateValue(field Field, value any, path string, errs *FieldErrors) (any, bool) {
	switch f := field.(type) {
	case StringField:
		s, ok := value.(string)
		if !ok {
			*errs = append(*errs, FieldError{Path: path, Message: "must be a string"})
			return nil, false
		}
		if f.MaxLen > 0 && len([]rune(s)) > f.MaxLen {
			*errs = append(*errs, FieldError{
				Path:    path,
				Message: fmt.Sprintf("must be at most %d characters", f.MaxLen),
			})
			return nil, false
		}
		return s, true

	case NumberField:
		n, ok := toNumber(value)
		if !ok {
			*errs = append(*errs, FieldError{Path: path, Message: "must be a number"})
			return nil, false
		}
		return n, true

	case BoolField:
		b, ok := value.(bool)
		if !ok {
			*errs = append(*errs, FieldError{Path: path, Message: "must be a boolean"})
			return nil, false
		}
		return b, true

	case MediaField:
		return validateValue(f.AsObject(), value, path, errs)

	case ObjectField:
		obj, ok := value.(map[string]any)
		if !ok {
			*errs = append(*errs, FieldError{Path: path, Message: "must be an object"})
			return nil, false
		}
		before := len(*errs)
		norm := validateObject(f.Fields, obj, path, errs)
		return norm, len(*errs) == before

	case ArrayField:
		arr, ok := value.([]any)
		if !ok {
			*errs = append(*errs, FieldError{Path: path, Message: "must be an array"})
			return nil, false
		}
		norm := make([]any, 0, len(arr))
		valid := true
		for i, elem := range arr {
			elemPath := path + "." + strconv.Itoa(i)
			if n, ok := validateValue(f.Element, elem, elemPath, errs); ok {
				norm = append(norm, n)
			} else {
				valid = false
			}
		}
		return norm, valid

	case UnionField:
		// First alternative that validates wins; its errors are discarded.
		for _, alt := range f.Alternatives {
			var altErrs FieldErrors
			if norm, ok := validateValue(alt, value, path, &altErrs); ok && len(altErrs) == 0 {
				return norm, true
			}
		}
		*errs = append(*errs, FieldError{Path: path, Message: "matches no allowed alternative"})
		return nil, false

	default:
		*errs = append(*errs, FieldError{Path: path, Message: "unsupported field type"})
		return nil, false
	}
}

// toNumber accepts the numeric types a decoded JSON payload (or a Go test
// fixture) can carry and normalizes them to float64.
func toNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
