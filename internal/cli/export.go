package cli

import (
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the snapshot to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Export(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"file":       args[0],
					"items":      len(db.Items),
					"categories": len(db.Categories),
				},
			})
		},
	}
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the snapshot with one from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			db, err := s.Import(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendEvent(cmd.Context(), "snapshot.import", "", map[string]any{"file": args[0], "items": len(db.Items)}); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"file":       args[0],
					"items":      len(db.Items),
					"categories": len(db.Categories),
				},
			})
		},
	}
	return cmd
}
