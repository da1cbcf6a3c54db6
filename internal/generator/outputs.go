package generator

import (
	"path"

	"github.com/samvera-labs/workgen/internal/templates"
	"github.com/samvera-labs/workgen/internal/work"
)

// TemplateOutput pairs a template with its destination, relative to the
// project root.
type TemplateOutput struct {
	TemplateID string
	Path       string
}

// ControllerPath is where the works controller is written.
func ControllerPath(spec *work.ResourceSpec) string {
	return path.Join("app/controllers/hyrax", spec.ClassPathDir(), spec.PluralFileName+"_controller.rb")
}

// MetadataPath is where the attribute schema is written.
func MetadataPath(spec *work.ResourceSpec) string {
	return path.Join("config/metadata", spec.FileName+".yaml")
}

// ModelPath is where the model is written.
func ModelPath(spec *work.ResourceSpec) string {
	return path.Join("app/models", spec.ClassPathDir(), spec.FileName+".rb")
}

// ModelSpecPath is where the model spec is written.
func ModelSpecPath(spec *work.ResourceSpec) string {
	return path.Join("spec/models", spec.ClassPathDir(), spec.FileName+"_spec.rb")
}

// FormPath is where the form is written.
func FormPath(spec *work.ResourceSpec) string {
	return path.Join("app/forms", spec.ClassPathDir(), spec.FileName+"_form.rb")
}

// IndexerPath is where the indexer is written.
func IndexerPath(spec *work.ResourceSpec) string {
	return path.Join("app/indexers", spec.ClassPathDir(), spec.FileName+"_indexer.rb")
}

// IndexerSpecPath is where the indexer spec is written.
func IndexerSpecPath(spec *work.ResourceSpec) string {
	return path.Join("spec/indexers", spec.ClassPathDir(), spec.FileName+"_indexer_spec.rb")
}

// ViewPath is where the search result partial is written.
func ViewPath(spec *work.ResourceSpec) string {
	return path.Join("app/views/hyrax", spec.ClassPathDir(), spec.PluralFileName, "_"+spec.FileName+".html.erb")
}

// ViewSpecPath is where the search result partial spec is written.
func ViewSpecPath(spec *work.ResourceSpec) string {
	return path.Join("spec/views", spec.ClassPathDir(), spec.PluralFileName, "_"+spec.FileName+".html.erb_spec.rb")
}

// Outputs lists every templated file for spec in pipeline order.
func Outputs(spec *work.ResourceSpec) []TemplateOutput {
	return []TemplateOutput{
		{templates.Controller, ControllerPath(spec)},
		{templates.Metadata, MetadataPath(spec)},
		{templates.Model, ModelPath(spec)},
		{templates.ModelSpec, ModelSpecPath(spec)},
		{templates.Form, FormPath(spec)},
		{templates.Indexer, IndexerPath(spec)},
		{templates.IndexerSpec, IndexerSpecPath(spec)},
		{templates.ViewSpec, ViewSpecPath(spec)},
	}
}
