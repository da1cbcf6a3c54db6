package generator

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/samvera-labs/workgen/internal/patch"
	"github.com/samvera-labs/workgen/internal/work"
)

func TestAttributesYAML(t *testing.T) {
	tests := []struct {
		name  string
		attrs []work.Attribute
		want  string
	}{
		{
			name:  "insertion order",
			attrs: []work.Attribute{{Name: "title", Type: "string"}, {Name: "count", Type: "integer"}},
			want:  "attributes:\n  title:\n    type: string\n  count:\n    type: integer",
		},
		{
			name:  "repeated name keeps first position and last type",
			attrs: []work.Attribute{{Name: "b", Type: "string"}, {Name: "a", Type: "date"}, {Name: "b", Type: "integer"}},
			want:  "attributes:\n  b:\n    type: integer\n  a:\n    type: date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := attributesYAML(tt.attrs)
			require.NoError(t, err)
			got := strings.Join(lines, "\n")
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "---")
		})
	}
}

func TestAttributesYAMLKeepsStringTypes(t *testing.T) {
	lines, err := attributesYAML([]work.Attribute{{Name: "true", Type: "123"}})
	require.NoError(t, err)

	var doc map[string]map[string]map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(strings.Join(lines, "\n")), &doc))
	assert.Equal(t, "123", doc["attributes"]["true"]["type"])
}

func TestDetectCapabilities(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		mode  TestsMode
		want  bool
	}{
		{"rails helper", map[string]string{"spec/rails_helper.rb": ""}, TestsAuto, true},
		{"dot rspec", map[string]string{".rspec": "--require spec_helper"}, TestsAuto, true},
		{"gemfile", map[string]string{"Gemfile": "gem 'rspec-rails', '~> 6.0'"}, TestsAuto, true},
		{"nothing", map[string]string{"Gemfile": "gem 'minitest'"}, TestsAuto, false},
		{"forced on", nil, TestsRSpec, true},
		{"forced off", map[string]string{".rspec": ""}, TestsNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll(root, 0o755))
			for name, content := range tt.files {
				require.NoError(t, afero.WriteFile(fs, root+"/"+name, []byte(content), 0o644))
			}
			assert.Equal(t, tt.want, DetectCapabilities(fs, root, tt.mode).RSpec)
		})
	}
}

func TestParseTestsMode(t *testing.T) {
	m, err := ParseTestsMode("")
	require.NoError(t, err)
	assert.Equal(t, TestsAuto, m)

	m, err = ParseTestsMode("none")
	require.NoError(t, err)
	assert.Equal(t, TestsNone, m)

	_, err = ParseTestsMode("minitest")
	assert.Error(t, err)
}

func TestOutputsNamespaced(t *testing.T) {
	spec := work.Derive("abc/scholarly_paper")

	want := map[string]string{
		"controller.rb":         "app/controllers/hyrax/abc/scholarly_papers_controller.rb",
		"metadata.yaml":         "config/metadata/scholarly_paper.yaml",
		"work.rb":               "app/models/abc/scholarly_paper.rb",
		"work_spec.rb":          "spec/models/abc/scholarly_paper_spec.rb",
		"form.rb":               "app/forms/abc/scholarly_paper_form.rb",
		"indexer.rb":            "app/indexers/abc/scholarly_paper_indexer.rb",
		"indexer_spec.rb":       "spec/indexers/abc/scholarly_paper_indexer_spec.rb",
		"work.html.erb_spec.rb": "spec/views/abc/scholarly_papers/_scholarly_paper.html.erb_spec.rb",
	}
	got := map[string]string{}
	for _, o := range Outputs(spec) {
		got[o.TemplateID] = o.Path
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "app/views/hyrax/abc/scholarly_papers/_scholarly_paper.html.erb", ViewPath(spec))
}

func TestRegisteredSymbol(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"  config.register_curation_concern :book", ":book", true},
		{`  config.register_curation_concern :"abc/book"`, `:"abc/book"`, true},
		{"  # config.register_curation_concern :image", ":image", true},
		{"  config.register_curation_concern [:a, :b]", "", false},
		{"Hyrax.config do |config|", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := registeredSymbol(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistrationSkipsOwnSymbolAsAnchor(t *testing.T) {
	spec := work.Derive("book")
	p := registrationPatch(spec)

	doc := patch.Parse([]byte("Hyrax.config do |config|\n  config.register_curation_concern :image\n  # config.register_curation_concern :book\nend\n"))
	changed, err := p.Apply(doc)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Hyrax.config do |config|\n"+
		"  config.register_curation_concern :image\n"+
		"  # Injected via `workgen generate Book`\n"+
		"  config.register_curation_concern :book\n"+
		"  # config.register_curation_concern :book\n"+
		"end\n", string(doc.Bytes()))
}

func TestRegistrationMatchers(t *testing.T) {
	p := registrationPatch(work.Derive("book"))

	tests := []struct {
		line   string
		anchor bool
		guard  bool
	}{
		{"  config.register_curation_concern :image", true, false},
		{`  config.register_curation_concern :"abc/book"`, true, false},
		{"  config.register_curation_concern :book", false, true},
		{"  # config.register_curation_concern :book", false, false},
		{"  # config.register_curation_concern :image", true, false},
		{"  config.analytics = false", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.anchor, p.Anchor.Match(tt.line))
			assert.Equal(t, tt.guard, p.Guard(tt.line))
		})
	}
}
