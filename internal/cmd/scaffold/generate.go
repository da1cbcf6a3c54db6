// Package scaffold provides the generate and destroy commands.
package scaffold

import (
	"github.com/spf13/cobra"

	"github.com/samvera-labs/workgen/internal/cmdtypes"
	"github.com/samvera-labs/workgen/internal/cmdutil"
	"github.com/samvera-labs/workgen/internal/work"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sf cmdutil.ScaffoldFlags

	c := &cobra.Command{
		Use:     "generate NAME [field:type ...]",
		Aliases: []string{"g"},
		Short:   "Generate a Valkyrie work resource",
		Long: `Generate a Hyrax work resource for a Hyku application.

Creates the controller, metadata schema, model, form, indexer and search
result partial, registers the resource as a curation concern in the Hyrax
initializer and wires the Hyku model and controller extensions. Spec files
are generated when the application uses rspec-rails.

Arguments:
  NAME           Work type name, e.g. ScholarlyPaper or abc/scholarly_paper
  field:type     Metadata attributes, e.g. subtitle:string

Examples:
  # Generate a work type in the current Hyku application
  workgen generate ScholarlyPaper subtitle:string

  # Preview the changes without writing
  workgen generate ScholarlyPaper --pretend

  # Overwrite existing files and print a JSON summary
  workgen generate ScholarlyPaper --force -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			_, err := cmdutil.RunScaffold(c.Context(), cmdutil.ScaffoldOpts{
				Args:   args,
				Flags:  &sf,
				Config: cfg,
				Mode:   work.Generate,
				Out:    c.OutOrStdout(),
				Err:    c.ErrOrStderr(),
			})
			return err
		},
	}

	sf.AddTo(c)
	return c
}
