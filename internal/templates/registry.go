package templates

import "fmt"

// Template IDs.
const (
	Controller  = "controller.rb"
	Metadata    = "metadata.yaml"
	Model       = "work.rb"
	ModelSpec   = "work_spec.rb"
	Form        = "form.rb"
	Indexer     = "indexer.rb"
	IndexerSpec = "indexer_spec.rb"
	ViewSpec    = "work.html.erb_spec.rb"
)

// templates is the ordered registry of embedded templates.
var templates = []Template{
	{ID: Controller, Description: "Hyrax works controller"},
	{ID: Metadata, Description: "attribute schema"},
	{ID: Model, Description: "Valkyrie work model"},
	{ID: ModelSpec, Description: "model spec", RSpec: true},
	{ID: Form, Description: "resource form"},
	{ID: Indexer, Description: "Solr indexer"},
	{ID: IndexerSpec, Description: "indexer spec", RSpec: true},
	{ID: ViewSpec, Description: "search result view spec", RSpec: true},
}

// Get returns a template by ID.
func Get(id string) (Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("unknown template %q", id)
}
