package mutate

import (
	"strings"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/store"
)

type StatusResult struct {
	Item         *model.Item
	Changed      bool
	EventPayload map[string]any
}

// SetStatus moves a thought to another lifecycle stage. An invalid status
// value is a silent no-op; an unknown id is NotFoundError. Callers are
// responsible for saving db and appending the thought.set_status event.
func SetStatus(db *store.DB, itemID, status string) (StatusResult, error) {
	itemID = strings.TrimSpace(itemID)
	if db == nil || itemID == "" {
		return StatusResult{}, nil
	}

	it, ok := db.FindItem(itemID)
	if !ok {
		return StatusResult{}, NotFoundError{Kind: "thought", ID: itemID}
	}
	if !model.ValidStatus(status) {
		return StatusResult{Item: it, Changed: false}, nil
	}
	next := model.Status(status)
	if it.Status == next {
		return StatusResult{Item: it, Changed: false}, nil
	}
	it.Status = next
	return StatusResult{
		Item:         it,
		Changed:      true,
		EventPayload: map[string]any{"status": it.Status},
	}, nil
}
