package cmd

import (
	"github.com/spf13/cobra"
)

func (a *app) newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "📂 Show all resource categories",
		Long:  "Show every category with its resource count, broken down by type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printer(cmd).Categories(a.catalog.Tree())
		},
	}
}
