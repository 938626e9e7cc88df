package cli

import (
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the data dir (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			// First load seeds the defaults in memory; persist them so the
			// snapshot exists on disk.
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"dir":        s.Dir,
					"items":      len(db.Items),
					"categories": db.Categories,
				},
			})
		},
	}
	return cmd
}
