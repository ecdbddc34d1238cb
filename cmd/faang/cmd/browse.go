package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/faang/internal/tui"
)

func (a *app) newBrowseCmd() *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "🧭 Browse resources interactively",
		Long: `Open an interactive browser over the catalog.

Move with j/k or the arrow keys, press / to search, c and t to cycle the
category and type filters, f to toggle free only, tab to read details and
? for every shortcut. The filter flags set the starting filter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), a.catalog, a.filter(cmd, &flags))
		},
	}
	flags.register(cmd)

	return cmd
}
