package mutate

import (
	"strings"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/store"
)

type DeleteResult struct {
	Changed      bool
	EventPayload map[string]any
}

// DeleteItem removes the thought with the given id. Deleting an id that does
// not exist (or again) is a no-op, so the operation is idempotent. Callers
// are responsible for saving db and appending the thought.delete event.
func DeleteItem(db *store.DB, itemID string) DeleteResult {
	itemID = strings.TrimSpace(itemID)
	if db == nil || itemID == "" {
		return DeleteResult{}
	}

	kept := make([]model.Item, 0, len(db.Items))
	removed := false
	for _, it := range db.Items {
		if it.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return DeleteResult{Changed: false}
	}
	db.Items = kept
	return DeleteResult{
		Changed:      true,
		EventPayload: map[string]any{"id": itemID},
	}
}
