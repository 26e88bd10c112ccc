// Package schema defines the content-type registry and payload validation
// for the admin panel.
//
// # Overview
//
// Each content type (brand, treatment, homepage, ...) is described by a
// Schema: a named map of Field descriptors. Field is a closed tagged union
// (StringField, NumberField, BoolField, ObjectField, ArrayField, UnionField,
// MediaField); both the validator and the admin form renderer dispatch on
// the descriptor kind instead of inspecting runtime type names.
//
// # Usage
//
//	registry := schema.NewRegistry()
//	s := registry.Lookup("merk")
//	normalized, errs := schema.Validate(s, payload)
//	if errs != nil {
//		// errs carries dot-separated field paths, e.g. "logo.url"
//	}
//
// Validate is pure: it never mutates its inputs and has no side effects.
// Callers decide how to surface either outcome.
package schema
