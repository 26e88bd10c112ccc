package ui

import (
	"encoding/json"
	"sort"

	"github.com/skinpoint/cms/pkg/schema"
)

// ControlKind selects the input widget for one schema field.
type ControlKind int

const (
	ControlTextInput ControlKind = iota
	ControlNumberInput
	ControlCheckbox
	ControlMediaPicker
	ControlFieldset
	ControlJSONTextArea
)

func (k ControlKind) String() string {
	return []string{"text", "number", "checkbox", "media", "fieldset", "json"}[k]
}

// Control is one editable widget in the admin form. Fieldsets carry their
// children; every other kind carries an initial Value.
type Control struct {
	Name     string
	Kind     ControlKind
	MaxLen   int
	Optional bool
	Value    any
	Children []Control
}

// BuildForm maps a content schema to its form controls. When editing,
// existing supplies initial values; when creating, each control gets its
// type-appropriate zero value. The store-assigned id field never renders.
//
// Nesting is two levels deep at most: a nested object becomes a fieldset,
// and objects nested any deeper resolve to no control at all.
func BuildForm(s *schema.Schema, existing map[string]any) []Control {
	return buildControls(s.Fields, existing, true)
}

func buildControls(fields map[string]schema.Field, existing map[string]any, allowFieldset bool) []Control {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == "id" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	controls := make([]Control, 0, len(names))
	for _, name := range names {
		var value any
		if existing != nil {
			value = existing[name]
		}
		if c, ok := buildControl(name, fields[name], value, allowFieldset); ok {
			controls = append(controls, c)
		}
	}
	return controls
}

func buildControl(name string, field schema.Field, value any, allowFieldset bool) (Control, bool) {
	c := Control{Name: name, Optional: field.IsOptional()}

	switch f := field.(type) {
	case schema.StringField:
		c.Kind = ControlTextInput
		c.MaxLen = f.MaxLen
		c.Value = stringOr(value, "")

	case schema.NumberField:
		c.Kind = ControlNumberInput
		c.Value = numberOr(value, 0)

	case schema.BoolField:
		c.Kind = ControlCheckbox
		c.Value = boolOr(value, false)

	case schema.MediaField:
		// A media-shaped object opens the media library picker instead of
		// free-text url/alt inputs.
		c.Kind = ControlMediaPicker
		c.Value = objectOr(value, map[string]any{"url": "", "alt": ""})

	case schema.ObjectField:
		if !allowFieldset {
			// Three levels deep; nothing renders.
			return Control{}, false
		}
		c.Kind = ControlFieldset
		c.Children = buildControls(f.Fields, objectOr(value, nil), false)

	case schema.ArrayField:
		c.Kind = ControlJSONTextArea
		c.Value = jsonText(value, "[]")

	case schema.UnionField:
		c.Kind = ControlJSONTextArea
		c.Value = jsonText(value, "")

	default:
		return Control{}, false
	}

	return c, true
}

func stringOr(value any, fallback string) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fallback
}

func numberOr(value any, fallback float64) float64 {
	switch n := value.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return fallback
}

func boolOr(value any, fallback bool) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	return fallback
}

func objectOr(value any, fallback map[string]any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return fallback
}

// jsonText renders array and union values as raw JSON for the textarea
// widget; there is no structured item editor.
func jsonText(value any, fallback string) string {
	if value == nil {
		return fallback
	}
	if s, ok := value.(string); ok {
		return s
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fallback
	}
	return string(data)
}
