package cli

import (
	"mecontent-cli/internal/query"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show local vault status",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			evs, err := s.ReadEvents(cmd.Context(), 0)
			if err != nil {
				return writeErr(cmd, err)
			}

			b := query.BucketByStatus(db)
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"dir":        s.Dir,
					"items":      len(db.Items),
					"categories": len(db.Categories),
					"idea":       len(b.Idea),
					"draft":      len(b.Draft),
					"done":       len(b.Done),
					"events":     len(evs),
				},
			})
		},
	}
	return cmd
}
