package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/faang/internal/catalog"
	"github.com/dbmrq/faang/internal/resource"
)

// filterFlags binds the category, type and price flags shared by list and
// browse.
type filterFlags struct {
	category resource.Category
	typ      resource.Type
	freeOnly bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().VarP(newEnumFlag("category", &f.category, resource.ParseCategory, resource.Categories),
		"category", "c", "filter by category")
	cmd.Flags().VarP(newEnumFlag("type", &f.typ, resource.ParseType, resource.Types),
		"type", "t", "filter by resource type")
	cmd.Flags().BoolVarP(&f.freeOnly, "free", "f", false, "show only free resources")
	registerCompletion(cmd, "category", resource.Categories)
	registerCompletion(cmd, "type", resource.Types)
}

// filter returns the selected filter. list.free_only in the config applies
// unless --free was given explicitly.
func (a *app) filter(cmd *cobra.Command, f *filterFlags) catalog.Filter {
	free := f.freeOnly
	if !cmd.Flags().Changed("free") {
		free = a.cfg.List.FreeOnly
	}
	return catalog.Filter{Category: f.category, Type: f.typ, FreeOnly: free}
}

func (a *app) newListCmd() *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "📚 List all available resources",
		Long: `List the resources in the catalog, optionally filtered.

Filters combine: every resource shown matches all of them.

Examples:
  faang list                      # Every resource
  faang list -c system_design     # One category
  faang list -t book --free       # Free books
  faang list -o json              # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := a.filter(cmd, &flags)
			rs := a.catalog.Filter(f)
			logger(cmd).Debug("list",
				"category", f.Category.String(),
				"type", f.Type.String(),
				"free_only", f.FreeOnly,
				"matches", len(rs),
			)
			return a.printer(cmd).Resources(rs)
		},
	}
	flags.register(cmd)

	return cmd
}
