package cli

import (
	"mecontent-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category commands",
	}
	cmd.AddCommand(newCategoriesListCmd(app))
	cmd.AddCommand(newCategoriesAddCmd(app))
	cmd.AddCommand(newCategoriesDeleteCmd(app))
	return cmd
}

func newCategoriesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories with item counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			counts := map[string]int{}
			for _, it := range db.Items {
				counts[it.Category]++
			}
			type row struct {
				Name  string `json:"name"`
				Items int    `json:"items"`
			}
			rows := []row{}
			for _, c := range db.Categories {
				rows = append(rows, row{Name: c, Items: counts[c]})
			}
			return writeOut(cmd, app, map[string]any{"data": rows})
		},
	}
	return cmd
}

func newCategoriesAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category (no-op if it already exists)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res := mutate.AddCategory(db, args[0])
			if res.Changed {
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
				if err := s.AppendEvent(cmd.Context(), "category.add", "", res.EventPayload); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, map[string]any{"data": db.Categories})
		},
	}
	return cmd
}

func newCategoriesDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a category (thoughts keep the orphaned name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !yes {
				ok, err := confirm("Delete this category? Thoughts filed under it keep the name, but it leaves the list.")
				if err != nil {
					return writeErr(cmd, err)
				}
				if !ok {
					return writeOut(cmd, app, map[string]any{"data": db.Categories})
				}
			}
			res := mutate.DeleteCategory(db, args[0])
			if res.Changed {
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
				if err := s.AppendEvent(cmd.Context(), "category.delete", "", res.EventPayload); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, map[string]any{"data": db.Categories})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
