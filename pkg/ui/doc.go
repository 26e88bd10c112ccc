// Package ui renders schema-driven admin forms.
//
// # Overview
//
// The admin panel edits every content type through one generated form.
// BuildForm maps a content schema to a flat list of controls: strings
// become text inputs, numbers become number inputs, booleans become
// checkboxes, media references open the media library picker, nested
// objects become a one-level fieldset, and arrays and unions fall back
// to a raw JSON textarea. Renderer turns those controls into a
// standalone HTML page via html/template.
//
// Controls are ordered alphabetically by field name so a form renders
// identically on every request.
package ui
