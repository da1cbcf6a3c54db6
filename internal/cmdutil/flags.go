// Package cmdutil provides shared command utilities for the generate and
// destroy subcommands. It centralizes flag handling, the scaffold run and
// error reporting.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samvera-labs/workgen/internal/actions"
	"github.com/samvera-labs/workgen/internal/config"
	"github.com/samvera-labs/workgen/internal/generator"
	"github.com/samvera-labs/workgen/internal/output"
)

// ScaffoldFlags holds the flags shared by generate and destroy.
type ScaffoldFlags struct {
	Root        string
	Initializer string
	Force       bool
	Skip        bool
	Pretend     bool
	SkipTests   bool
	ForcePlural bool
	Output      string
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Root, "root", "",
		"Hyku application directory (env: WORKGEN_ROOT, default: .)")
	cmd.Flags().StringVar(&f.Initializer, "initializer", "",
		"Hyrax initializer relative to --root (env: WORKGEN_INITIALIZER)")
	cmd.Flags().BoolVar(&f.Force, "force", false,
		"Overwrite files that already exist")
	cmd.Flags().BoolVar(&f.Skip, "skip", false,
		"Keep files that already exist")
	cmd.Flags().BoolVarP(&f.Pretend, "pretend", "p", false,
		"Report what would change without writing")
	cmd.Flags().BoolVar(&f.SkipTests, "skip-tests", false,
		"Do not generate or remove spec files")
	cmd.Flags().BoolVar(&f.ForcePlural, "force-plural", false,
		"Keep a plural model name as given")
	cmd.Flags().StringVarP(&f.Output, "output", "o", "text",
		"Summary format: text, json, yaml")

	cmd.MarkFlagsMutuallyExclusive("force", "skip")
}

// Validate checks flag combinations cobra cannot express.
func (f *ScaffoldFlags) Validate() error {
	if f.Force && f.Skip {
		return fmt.Errorf("--force and --skip are mutually exclusive")
	}
	if _, err := output.ParseOutputFormat(f.Output); err != nil {
		return err
	}
	return nil
}

// ConfigFlags maps the flags onto the config resolver. --force and --skip
// set onConflict and --skip-tests sets tests.
func (f *ScaffoldFlags) ConfigFlags(timestamps *bool) config.Flags {
	flags := config.Flags{
		Root:        f.Root,
		Initializer: f.Initializer,
		Timestamps:  timestamps,
	}
	switch {
	case f.Force:
		flags.OnConflict = string(actions.PolicyForce)
	case f.Skip:
		flags.OnConflict = string(actions.PolicySkip)
	}
	if f.SkipTests {
		flags.Tests = string(generator.TestsNone)
	}
	return flags
}
