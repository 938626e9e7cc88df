package cli

import (
	"strings"

	"mecontent-cli/internal/media"
	"mecontent-cli/internal/model"
	"mecontent-cli/internal/mutate"
	"mecontent-cli/internal/query"

	"github.com/spf13/cobra"
)

func newThoughtsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thoughts",
		Short: "Thought commands",
	}

	cmd.AddCommand(newThoughtsCreateCmd(app))
	cmd.AddCommand(newThoughtsListCmd(app))
	cmd.AddCommand(newThoughtsShowCmd(app))
	cmd.AddCommand(newThoughtsSetStatusCmd(app))
	cmd.AddCommand(newThoughtsDeleteCmd(app))

	return cmd
}

func newThoughtsCreateCmd(app *App) *cobra.Command {
	var title string
	var typ string
	var category string
	var tags string
	var text string
	var mediaPath string
	var reminderDate string
	var publishDate string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Capture a new thought",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			// Media conversion happens before anything is constructed: if it
			// fails, the creation aborts and nothing is persisted.
			dataURL, err := media.EncodeFile(cmd.Context(), strings.TrimSpace(mediaPath))
			if err != nil {
				return writeErr(cmd, err)
			}

			res := mutate.CreateItem(db, mutate.CreateInput{
				Title:        title,
				Type:         model.ItemType(strings.TrimSpace(typ)),
				Category:     category,
				Tags:         splitTags(tags),
				Text:         text,
				Media:        dataURL,
				ReminderDate: reminderDate,
				PublishDate:  publishDate,
			})
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendEvent(cmd.Context(), "thought.create", res.Item.ID, res.EventPayload); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res.Item})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title (auto-derived from text or type when empty)")
	cmd.Flags().StringVar(&typ, "type", "content", "Type (content|script|reminder|...)")
	cmd.Flags().StringVar(&category, "category", "", "Category (defaults to Unsorted)")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&text, "text", "", "Body text")
	cmd.Flags().StringVar(&mediaPath, "media", "", "Path to a media file to embed inline")
	cmd.Flags().StringVar(&reminderDate, "reminder", "", "Reminder date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&publishDate, "publish", "", "Publish date (YYYY-MM-DD)")
	return cmd
}

func newThoughtsListCmd(app *App) *cobra.Command {
	var q string
	var category string
	var typ string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			items := query.Search(db, q, category, typ)
			return writeOut(cmd, app, map[string]any{"data": items})
		},
	}

	cmd.Flags().StringVar(&q, "query", "", "Free-text query (title, text, tags)")
	cmd.Flags().StringVar(&category, "category", "", "Exact category filter")
	cmd.Flags().StringVar(&typ, "type", "", "Exact type filter")
	return cmd
}

func newThoughtsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one thought",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			it, ok := db.FindItem(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "thought", ID: args[0]})
			}
			return writeOut(cmd, app, map[string]any{"data": it})
		},
	}
	return cmd
}

func newThoughtsSetStatusCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "set-status <id>",
		Short: "Move a thought to another lifecycle stage (idea|draft|done)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := mutate.SetStatus(db, args[0], status)
			if err != nil {
				return writeErr(cmd, err)
			}
			if res.Changed {
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
				if err := s.AppendEvent(cmd.Context(), "thought.set_status", res.Item.ID, res.EventPayload); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, map[string]any{"data": res.Item})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status (idea|draft|done)")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newThoughtsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a thought (idempotent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !yes {
				ok, err := confirm("Delete this thought? This cannot be undone.")
				if err != nil {
					return writeErr(cmd, err)
				}
				if !ok {
					return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": false}})
				}
			}
			res := mutate.DeleteItem(db, args[0])
			if res.Changed {
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
				if err := s.AppendEvent(cmd.Context(), "thought.delete", strings.TrimSpace(args[0]), res.EventPayload); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": res.Changed}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func splitTags(s string) []string {
	out := []string{}
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
