package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/samvera-labs/workgen/internal/work"
)

// funcs are available to every template.
var funcs = template.FuncMap{
	"camel": work.Camelize,
}

// Renderer handles template rendering with data substitution.
type Renderer struct {
	set  *template.Template
	data TemplateData
}

// NewRenderer parses the embedded templates for the given data.
func NewRenderer(data TemplateData) (*Renderer, error) {
	set, err := template.New(templateDir).
		Option("missingkey=error").
		Funcs(funcs).
		ParseFS(TemplateFS, templateDir+"/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{set: set, data: data}, nil
}

// Render renders the template with the given ID.
func (r *Renderer) Render(id string) ([]byte, error) {
	tmpl := r.set.Lookup(id + ".tmpl")
	if tmpl == nil {
		return nil, fmt.Errorf("unknown template %q", id)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", id, err)
	}
	return buf.Bytes(), nil
}
