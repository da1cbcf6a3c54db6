package cmd

import (
	"github.com/spf13/cobra"

	"github.com/samvera-labs/workgen/internal/cmdtypes"
	"github.com/samvera-labs/workgen/internal/output"
	"github.com/samvera-labs/workgen/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show workgen version information.

Displays the workgen version, commit, build date and Go version.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			output.Println(version.Get().String())
			return nil
		},
	}
}
