package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/faang/internal/resource"
	"github.com/dbmrq/faang/internal/roadmap"
)

func (a *app) newRoadmapCmd() *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "🗺️ Show the learning roadmap",
		Long: `Show the 16-week FAANG preparation roadmap.

With --week, show only the phase covering that week together with the
catalog resources it recommends.

Examples:
  faang roadmap
  faang roadmap --week 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := roadmap.Default(a.catalog)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("week") {
				return a.printer(cmd).Roadmap(rm)
			}

			phase, err := rm.PhaseForWeek(week)
			if err != nil {
				return err
			}
			var rs []resource.Resource
			for _, title := range phase.Resources {
				r, err := a.catalog.Find(title)
				if err != nil {
					logger(cmd).Debug("roadmap resource missing", "title", title)
					continue
				}
				rs = append(rs, r)
			}
			return a.printer(cmd).Phase(week, rm, phase, rs)
		},
	}
	cmd.Flags().IntVarP(&week, "week", "w", 0, "show only the phase covering this week")

	return cmd
}
