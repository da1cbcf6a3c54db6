package generator

import (
	"github.com/samvera-labs/workgen/internal/templates"
)

// action is one file operation of a step.
type action func() error

// step is a named group of actions. enabled, when set, gates the step.
type step struct {
	name    string
	enabled func() bool
	actions []action
}

// steps returns the pipeline in generate order.
func (g *Generator) steps() []step {
	spec := g.spec
	rspec := func() bool { return g.opts.Capabilities.RSpec }

	return []step{
		{name: "controller", actions: []action{g.template(templates.Controller, ControllerPath(spec))}},
		{name: "metadata", actions: []action{
			g.template(templates.Metadata, MetadataPath(spec)),
			g.metadataAttributes,
		}},
		{name: "model", actions: []action{g.template(templates.Model, ModelPath(spec))}},
		{name: "model_spec", enabled: rspec, actions: []action{
			g.template(templates.ModelSpec, ModelSpecPath(spec)),
			g.schemaContext,
		}},
		{name: "form", actions: []action{g.template(templates.Form, FormPath(spec))}},
		{name: "register", actions: []action{g.register}},
		{name: "indexer", actions: []action{g.template(templates.Indexer, IndexerPath(spec))}},
		{name: "indexer_spec", enabled: rspec, actions: []action{g.template(templates.IndexerSpec, IndexerSpecPath(spec))}},
		{name: "view", actions: []action{g.view}},
		{name: "view_spec", enabled: rspec, actions: []action{g.template(templates.ViewSpec, ViewSpecPath(spec))}},
		{name: "controller_behavior", actions: []action{g.controllerBehavior}},
		{name: "model_extensions", actions: []action{g.modelExtensions}},
	}
}

func (g *Generator) template(id, dest string) action {
	return func() error {
		var content []byte
		if !g.runner.Revoking() {
			var err error
			if content, err = g.renderer.Render(id); err != nil {
				return err
			}
		}
		return g.runner.CreateFile(dest, content)
	}
}

func (g *Generator) metadataAttributes() error {
	if len(g.spec.Attributes) == 0 {
		return nil
	}
	lines, err := attributesYAML(g.spec.Attributes)
	if err != nil {
		return err
	}
	return g.runner.GsubFile(MetadataPath(g.spec), attributesPlaceholder, lines)
}

func (g *Generator) schemaContext() error {
	if len(g.spec.Attributes) == 0 {
		return nil
	}
	return g.runner.InjectIntoFile(ModelSpecPath(g.spec), schemaContextPatch(g.spec.Attributes))
}

func (g *Generator) register() error {
	return g.runner.InjectIntoFile(g.opts.Initializer, registrationPatch(g.spec))
}

func (g *Generator) view() error {
	var content []byte
	if !g.runner.Revoking() {
		content = viewContent(g.spec)
	}
	return g.runner.CreateFile(ViewPath(g.spec), content)
}

func (g *Generator) controllerBehavior() error {
	return g.runner.InjectIntoFile(ControllerPath(g.spec), controllerBehaviorPatch())
}

func (g *Generator) modelExtensions() error {
	return g.runner.InjectIntoFile(ModelPath(g.spec), modelExtensionsPatch())
}
