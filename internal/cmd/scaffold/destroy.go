package scaffold

import (
	"github.com/spf13/cobra"

	"github.com/samvera-labs/workgen/internal/cmdtypes"
	"github.com/samvera-labs/workgen/internal/cmdutil"
	"github.com/samvera-labs/workgen/internal/work"
)

// NewDestroyCmd creates the destroy command.
func NewDestroyCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sf cmdutil.ScaffoldFlags

	c := &cobra.Command{
		Use:     "destroy NAME [field:type ...]",
		Aliases: []string{"d"},
		Short:   "Remove a generated work resource",
		Long: `Remove a Hyrax work resource generated by workgen.

Runs the generate steps in reverse: injected lines are subtracted, created
files are removed and the curation concern registration is dropped from the
Hyrax initializer. Files and lines that are already gone are skipped.

Examples:
  # Remove a work type
  workgen destroy ScholarlyPaper

  # Preview the removal
  workgen destroy ScholarlyPaper --pretend`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			_, err := cmdutil.RunScaffold(c.Context(), cmdutil.ScaffoldOpts{
				Args:   args,
				Flags:  &sf,
				Config: cfg,
				Mode:   work.Revoke,
				Out:    c.OutOrStdout(),
				Err:    c.ErrOrStderr(),
			})
			return err
		},
	}

	sf.AddTo(c)
	return c
}
