package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "🔍 Search resources by keyword",
		Long: `Search titles, descriptions and tags, ignoring case.

Several words are searched as one phrase.

Examples:
  faang search leetcode
  faang search "system design"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			rs := a.catalog.Search(query)
			logger(cmd).Debug("search", "query", query, "matches", len(rs))
			return a.printer(cmd).SearchResults(query, rs)
		},
	}
}
