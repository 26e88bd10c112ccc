package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/skinpoint/cms/pkg/schema"
)

// FormPage is the template input for one rendered admin form.
type FormPage struct {
	Collection string
	DocumentID string
	Controls   []Control
}

// Editing reports whether the form edits an existing document.
func (p FormPage) Editing() bool {
	return p.DocumentID != ""
}

// Renderer turns form controls into a standalone HTML page.
type Renderer struct {
	template *template.Template
}

// NewRenderer creates a new form renderer
func NewRenderer() *Renderer {
	tmpl := template.Must(template.New("form").Funcs(template.FuncMap{
		"label": toLabel,
	}).Parse(formTemplate))

	return &Renderer{
		template: tmpl,
	}
}

// Render produces the admin form for one collection. existing carries the
// document under edit, or nil for a create form.
func (r *Renderer) Render(s *schema.Schema, documentID string, existing map[string]any) (string, error) {
	page := FormPage{
		Collection: s.Name,
		DocumentID: documentID,
		Controls:   BuildForm(s, existing),
	}

	var buf bytes.Buffer
	if err := r.template.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// toLabel converts a camelCase field name to a display label,
// e.g. "metaDescription" becomes "Meta description".
func toLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i == 0 {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const formTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Editing}}Edit{{else}}New{{end}} {{.Collection}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
label { display: block; font-weight: 600; margin: 1rem 0 0.25rem; }
label .optional { font-weight: 400; color: #666; }
input[type=text], input[type=number], textarea { width: 100%; padding: 0.4rem; box-sizing: border-box; }
textarea { font-family: monospace; min-height: 6rem; }
fieldset { margin-top: 1rem; border: 1px solid #ccc; }
.media-picker { border: 1px dashed #999; padding: 0.75rem; }
button { margin-top: 1.5rem; padding: 0.5rem 1.5rem; }
</style>
</head>
<body>
<h1>{{if .Editing}}Edit{{else}}New{{end}} {{.Collection}}</h1>
<form method="post" action="/collection?collection={{.Collection}}"{{if .Editing}} data-document-id="{{.DocumentID}}"{{end}}>
{{- range .Controls}}
{{template "control" .}}
{{- end}}
<button type="submit">Save</button>
</form>
</body>
</html>
{{define "control"}}
{{- if eq .Kind.String "fieldset"}}
<fieldset>
<legend>{{label .Name}}{{if .Optional}} <span class="optional">(optional)</span>{{end}}</legend>
{{- range .Children}}
{{template "child" .}}
{{- end}}
</fieldset>
{{- else}}
{{template "child" .}}
{{- end}}
{{end}}
{{define "child"}}
<label for="{{.Name}}">{{label .Name}}{{if .Optional}} <span class="optional">(optional)</span>{{end}}</label>
{{- if eq .Kind.String "text"}}
<input type="text" id="{{.Name}}" name="{{.Name}}" value="{{.Value}}"{{if gt .MaxLen 0}} maxlength="{{.MaxLen}}"{{end}}>
{{- else if eq .Kind.String "number"}}
<input type="number" id="{{.Name}}" name="{{.Name}}" value="{{.Value}}" step="any">
{{- else if eq .Kind.String "checkbox"}}
<input type="checkbox" id="{{.Name}}" name="{{.Name}}"{{if .Value}} checked{{end}}>
{{- else if eq .Kind.String "media"}}
<div class="media-picker" data-field="{{.Name}}">
<input type="hidden" name="{{.Name}}.url" value="{{index .Value "url"}}">
<input type="text" name="{{.Name}}.alt" value="{{index .Value "alt"}}" placeholder="Alt text">
<button type="button" data-open-media-library>Choose from media library</button>
</div>
{{- else if eq .Kind.String "json"}}
<textarea id="{{.Name}}" name="{{.Name}}">{{.Value}}</textarea>
{{- end}}
{{end}}`
