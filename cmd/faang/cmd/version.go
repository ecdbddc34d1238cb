package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/faang/internal/version"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for faang.

Displays the current version, commit hash, build date,
and Go/platform information.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printer(cmd).Version(version.Current())
		},
	}
}
