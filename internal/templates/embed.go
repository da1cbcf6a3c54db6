// Package templates holds the embedded Hyrax work resource templates and
// renders them for a ResourceSpec.
package templates

import "embed"

//go:embed hyrax/*.tmpl
var TemplateFS embed.FS

// templateDir is the directory inside TemplateFS holding the templates.
const templateDir = "hyrax"
