package cmd

import (
	"github.com/spf13/cobra"
)

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "📊 Show resource statistics",
		Long:  "Show catalog totals, the free and paid split, and counts per category and type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printer(cmd).Stats(a.catalog.Stats())
		},
	}
}
