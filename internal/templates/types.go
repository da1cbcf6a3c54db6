package templates

import (
	"path"

	"github.com/samvera-labs/workgen/internal/work"
)

// Template describes one embedded template.
type Template struct {
	// ID names the template, e.g. "controller.rb".
	ID string

	// Description is shown in file trees and summaries.
	Description string

	// RSpec marks templates that are only rendered when RSpec is installed.
	RSpec bool
}

// TemplateData is passed to every template.
type TemplateData struct {
	// ClassName is the Ruby constant, e.g. "Abc::ScholarlyPaper".
	ClassName string

	// FileName is the underscored name, e.g. "scholarly_paper".
	FileName string

	// PluralFileName is the pluralized FileName.
	PluralFileName string

	// ClassPath holds the namespace segments.
	ClassPath []string

	// ViewDir is the view directory below hyrax/, e.g. "abc/scholarly_papers".
	ViewDir string

	// Attributes are the requested attributes in order.
	Attributes []work.Attribute
}

// NewTemplateData builds template data from a ResourceSpec.
func NewTemplateData(spec *work.ResourceSpec) TemplateData {
	return TemplateData{
		ClassName:      spec.ClassName,
		FileName:       spec.FileName,
		PluralFileName: spec.PluralFileName,
		ClassPath:      spec.ClassPath,
		ViewDir:        path.Join(spec.ClassPathDir(), spec.PluralFileName),
		Attributes:     spec.Attributes,
	}
}
