// Package generator scaffolds a Hyrax work resource into a Hyku application
// and, in revoke mode, removes it again.
package generator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/samvera-labs/workgen/internal/actions"
	oerrors "github.com/samvera-labs/workgen/internal/errors"
	"github.com/samvera-labs/workgen/internal/output"
	"github.com/samvera-labs/workgen/internal/patch"
	"github.com/samvera-labs/workgen/internal/templates"
	"github.com/samvera-labs/workgen/internal/work"
)

// Options configure a Generator.
type Options struct {
	// Fs is the filesystem the project lives on. Defaults to the OS filesystem.
	Fs afero.Fs

	// Root is the Hyku application directory.
	Root string

	// Initializer is the Hyrax initializer path relative to Root.
	Initializer string

	// Capabilities gate the conditional steps.
	Capabilities Capabilities

	// Pretend reports what would change without writing.
	Pretend bool

	// Policy resolves create conflicts.
	Policy actions.ConflictPolicy

	// Prompter asks about conflicts under the ask policy. nil means non-interactive.
	Prompter actions.Prompter
}

// Result describes a finished run.
type Result struct {
	// Summary lists every action taken.
	Summary output.RunSummary

	// Files maps the files written by templates to their descriptions.
	Files map[string]string

	// Warnings holds the non-fatal problems logged during the run.
	Warnings []string
}

// Generator runs the scaffold pipeline for one resource.
type Generator struct {
	spec     *work.ResourceSpec
	opts     Options
	runner   *actions.Runner
	renderer *templates.Renderer
	log      *log.Logger
	warnings []string
}

// New prepares a Generator. It fails when Root is not a directory.
func New(spec *work.ResourceSpec, opts Options) (*Generator, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Initializer == "" {
		opts.Initializer = DefaultInitializer
	}
	opts.Initializer = filepath.ToSlash(opts.Initializer)

	info, err := opts.Fs.Stat(opts.Root)
	if err != nil || !info.IsDir() {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("project root %s is not a directory", opts.Root),
			opts.Root,
			"Run inside a Hyku application or pass --root.",
		)
	}

	renderer, err := templates.NewRenderer(templates.NewTemplateData(spec))
	if err != nil {
		return nil, err
	}

	logger := output.WorkLogger(spec.ClassName)
	runner := actions.New(opts.Fs, actions.Options{
		Root:     opts.Root,
		Mode:     spec.Mode,
		Pretend:  opts.Pretend,
		Policy:   opts.Policy,
		Prompter: opts.Prompter,
		Logger:   logger,
	})

	return &Generator{
		spec:     spec,
		opts:     opts,
		runner:   runner,
		renderer: renderer,
		log:      logger,
	}, nil
}

// Run executes the pipeline. In revoke mode the steps, and the actions
// within each step, run in reverse order after the banner.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	g.banner()

	steps := g.steps()
	if g.runner.Revoking() {
		steps = reversed(steps)
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.enabled != nil && !s.enabled() {
			g.log.Debug("skipping step", "step", s.name)
			continue
		}

		g.runner.SetStep(s.name)
		acts := s.actions
		if g.runner.Revoking() {
			acts = reversed(acts)
		}
		for _, act := range acts {
			if err := g.tolerate(s.name, act()); err != nil {
				return nil, fmt.Errorf("step %s: %w", s.name, err)
			}
		}
	}

	return g.result(), nil
}

func (g *Generator) banner() {
	verb := "GENERATING"
	if g.runner.Revoking() {
		verb = "DESTROYING"
	}
	g.runner.Say(output.StatusInfo, fmt.Sprintf("%s VALKYRIE WORK MODEL: %s", verb, g.spec.ClassName))
}

// tolerate turns a missing anchor into a warning so the remaining steps run.
func (g *Generator) tolerate(step string, err error) error {
	if err == nil || !errors.Is(err, patch.ErrAnchorNotFound) {
		return err
	}
	msg := fmt.Sprintf("%s: %v", step, err)
	g.warnings = append(g.warnings, msg)
	g.log.Warn("patch not applied", "step", step, "error", err)
	return nil
}

func (g *Generator) result() *Result {
	files := make(map[string]string)
	for _, out := range Outputs(g.spec) {
		if g.opts.Capabilities.RSpec || !isRSpecTemplate(out.TemplateID) {
			tmpl, _ := templates.Get(out.TemplateID)
			files[out.Path] = tmpl.Description
		}
	}
	files[ViewPath(g.spec)] = "search result partial"

	return &Result{
		Summary: output.RunSummary{
			ClassName: g.spec.ClassName,
			Mode:      g.spec.Mode.String(),
			Pretend:   g.opts.Pretend,
			Actions:   g.runner.Results(),
		},
		Files:    files,
		Warnings: g.warnings,
	}
}

func isRSpecTemplate(id string) bool {
	tmpl, err := templates.Get(id)
	return err == nil && tmpl.RSpec
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
