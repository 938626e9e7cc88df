package mutate

import (
	"strings"
	"time"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/store"
)

// titleMaxRunes is how much of the body text an auto-derived title keeps.
const titleMaxRunes = 40

// CreateInput carries the "new thought" form fields. Everything except Type
// is optional; Media must already be an encoded data: URL (see internal/media).
type CreateInput struct {
	Title        string
	Type         model.ItemType
	Category     string
	Tags         []string
	Text         string
	Media        string
	ReminderDate string
	PublishDate  string
}

type CreateResult struct {
	Item         *model.Item
	EventPayload map[string]any
}

// CreateItem builds a new thought and inserts it at the front of the
// collection (most recent first). It always succeeds: missing fields get
// defaults instead of validation errors. Callers are responsible for saving
// db and appending the thought.create event.
func CreateItem(db *store.DB, in CreateInput) CreateResult {
	now := time.Now()

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = autoTitle(in.Type, strings.TrimSpace(in.Text), now)
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "Unsorted"
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	it := model.Item{
		ID:           store.NewItemID(db),
		Title:        title,
		Type:         in.Type,
		Category:     category,
		Tags:         tags,
		Text:         strings.TrimSpace(in.Text),
		Media:        in.Media,
		ReminderDate: strings.TrimSpace(in.ReminderDate),
		PublishDate:  strings.TrimSpace(in.PublishDate),
		Status:       model.DefaultStatus(in.Type),
		CreatedAt:    now.UTC(),
	}

	db.Items = append([]model.Item{it}, db.Items...)

	return CreateResult{
		Item: &db.Items[0],
		EventPayload: map[string]any{
			"title":  it.Title,
			"type":   it.Type,
			"status": it.Status,
		},
	}
}

// autoTitle derives a display title when the user supplied none: the first
// 40 runes of the body text (with an ellipsis when truncated), else the type
// plus a local timestamp.
func autoTitle(typ model.ItemType, text string, now time.Time) string {
	if text != "" {
		r := []rune(text)
		if len(r) > titleMaxRunes {
			return string(r[:titleMaxRunes]) + "…"
		}
		return text
	}
	return strings.ToUpper(string(typ)) + " " + now.Local().Format("2006-01-02 15:04")
}
