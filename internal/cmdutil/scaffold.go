package cmdutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/samvera-labs/workgen/internal/actions"
	"github.com/samvera-labs/workgen/internal/cmdtypes"
	"github.com/samvera-labs/workgen/internal/config"
	oerrors "github.com/samvera-labs/workgen/internal/errors"
	"github.com/samvera-labs/workgen/internal/generator"
	"github.com/samvera-labs/workgen/internal/output"
	"github.com/samvera-labs/workgen/internal/work"
)

// ScaffoldOpts holds the inputs for RunScaffold.
type ScaffoldOpts struct {
	// Args from the cobra command: NAME followed by attribute tokens.
	Args []string
	// Flags are the parsed generate/destroy flags.
	Flags *ScaffoldFlags
	// Config is the fully loaded global configuration.
	Config *cmdtypes.GlobalConfig
	// Mode selects generate or destroy.
	Mode work.Mode
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// Prompter overrides the terminal prompt used under the ask policy.
	Prompter actions.Prompter
	// Out receives the summary. Defaults to os.Stdout.
	Out io.Writer
	// Err receives status lines when the summary is machine-readable.
	// Defaults to os.Stderr.
	Err io.Writer
}

// RunScaffold executes the steps shared by generate and destroy: it resolves
// settings, derives the resource, detects project capabilities, runs the
// generator and writes the summary.
//
// On failure it returns an *ExitError with the appropriate exit code and
// Printed flag.
func RunScaffold(ctx context.Context, opts ScaffoldOpts) (*generator.Result, error) {
	if opts.Config == nil || opts.Config.Loader == nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("configuration not loaded")}
	}
	if err := opts.Flags.Validate(); err != nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err}
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	settings, err := opts.Config.Loader.Resolve(opts.Config.Config, opts.Flags.ConfigFlags(opts.Config.Timestamps))
	if err != nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err}
	}
	if err := config.ValidateSettings(settings); err != nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err}
	}
	config.LogResolvedValues(settings.Values)

	format, _ := output.ParseOutputFormat(opts.Flags.Output)
	testsMode, _ := generator.ParseTestsMode(settings.Tests)

	spec, err := work.NewResourceSpec(opts.Args[0], opts.Args[1:], work.Options{
		ForcePlural: opts.Flags.ForcePlural,
		Mode:        opts.Mode,
		Warn:        func(msg string) { output.Warn(msg) },
	})
	if err != nil {
		return nil, runFailed("invalid work resource", err)
	}

	root, err := config.ExpandPath(settings.Root)
	if err != nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("expanding root: %w", err)}
	}

	caps := generator.DetectCapabilities(opts.Fs, root, testsMode)
	policy := actions.ConflictPolicy(settings.OnConflict)
	prompter := opts.Prompter
	if prompter == nil && policy == actions.PolicyAsk && output.IsTTY() {
		prompter = &actions.HuhPrompter{Out: opts.Out}
	}

	output.Debug("running scaffold",
		"class", spec.ClassName,
		"attributes", spec.AttributeNames(),
		"mode", spec.Mode,
		"root", root,
		"initializer", settings.Initializer,
		"rspec", caps.RSpec,
		"policy", policy,
		"pretend", opts.Flags.Pretend,
	)

	gen, err := generator.New(spec, generator.Options{
		Fs:           opts.Fs,
		Root:         root,
		Initializer:  settings.Initializer,
		Capabilities: caps,
		Pretend:      opts.Flags.Pretend,
		Policy:       policy,
		Prompter:     prompter,
	})
	if err != nil {
		return nil, runFailed(spec.Mode.String()+" failed", err)
	}

	if format != output.FormatText {
		restore := output.SetWriter(opts.Err)
		defer restore()
	}

	result, err := gen.Run(ctx)
	if err != nil {
		return nil, runFailed(spec.Mode.String()+" failed", err)
	}

	if err := WriteResult(opts.Out, result, format, root); err != nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}
	return result, nil
}

// runFailed prints err and wraps it in an ExitError marked as printed.
func runFailed(msg string, err error) *oerrors.ExitError {
	PrintRunError(msg, err)
	code := oerrors.ExitCodeFromError(err)
	output.Debug("scaffold failed", "code", code, "reason", oerrors.ExitCodeName(code))
	return &oerrors.ExitError{Code: code, Err: err, Printed: true}
}

// WriteResult writes the run summary. Text output is a plan table for
// pretend runs, the generated file tree after generate and a checkmark
// after destroy.
func WriteResult(w io.Writer, result *generator.Result, format output.OutputFormat, root string) error {
	defer PrintWarnings(result.Warnings)

	if format != output.FormatText || result.Summary.Pretend {
		return output.WriteSummary(w, result.Summary, format)
	}

	if result.Summary.Mode == work.Revoke.String() {
		_, err := fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Removed work resource %s", result.Summary.ClassName)))
		return err
	}

	if _, err := fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Generated work resource %s", result.Summary.ClassName))); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, output.RenderFileTree(filepath.Base(root), result.Files))
	return err
}
