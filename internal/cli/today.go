package cli

import (
	"strings"
	"time"

	"mecontent-cli/internal/query"

	"github.com/spf13/cobra"
)

func todayISO() string {
	return time.Now().Format("2006-01-02")
}

func newTodayCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Dashboard: reminders and publish plan for one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			d := strings.TrimSpace(date)
			if d == "" {
				d = todayISO()
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"date":        d,
					"reminders":   query.RemindersOn(db, d),
					"publishPlan": query.PublishPlanOn(db, d),
				},
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD; default today)")
	return cmd
}
