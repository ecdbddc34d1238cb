package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|title>",
		Short: "🔎 Show one resource in detail",
		Long: `Show every field of one resource.

The resource is found by its full ID, an ID prefix of at least four
characters, or its exact title ignoring case.

Examples:
  faang show "Cracking the Coding Interview"
  faang show 3f2a`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.catalog.Find(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return a.printer(cmd).Resource(r)
		},
	}
}
