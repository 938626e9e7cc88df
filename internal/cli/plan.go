package cli

import (
	"mecontent-cli/internal/query"

	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Planner commands",
	}
	cmd.AddCommand(newPlanBoardCmd(app))
	cmd.AddCommand(newPlanCalendarCmd(app))
	return cmd
}

func newPlanBoardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Kanban view: thoughts bucketed by lifecycle stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			b := query.BucketByStatus(db)
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"idea":  b.Idea,
					"draft": b.Draft,
					"done":  b.Done,
					"counts": map[string]int{
						"idea":  len(b.Idea),
						"draft": len(b.Draft),
						"done":  len(b.Done),
					},
				},
			})
		},
	}
	return cmd
}

func newPlanCalendarCmd(app *App) *cobra.Command {
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Thoughts with a publish date, optionally clamped to a range",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			items := query.CalendarRange(db, from, to)
			return writeOut(cmd, app, map[string]any{"data": items})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Earliest publish date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "Latest publish date (YYYY-MM-DD, inclusive)")
	return cmd
}
