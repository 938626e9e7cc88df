package mutate

import (
	"strings"

	"mecontent-cli/internal/store"
)

type CategoryResult struct {
	Changed      bool
	EventPayload map[string]any
}

// AddCategory appends a category name to the end of the list. A blank name
// or an exact duplicate is a no-op. Callers are responsible for saving db
// and appending the category.add event.
func AddCategory(db *store.DB, name string) CategoryResult {
	name = strings.TrimSpace(name)
	if db == nil || name == "" {
		return CategoryResult{}
	}
	if db.HasCategory(name) {
		return CategoryResult{Changed: false}
	}
	db.Categories = append(db.Categories, name)
	return CategoryResult{
		Changed:      true,
		EventPayload: map[string]any{"name": name},
	}
}

// DeleteCategory removes a category name from the list. Thoughts filed under
// it keep the now-orphaned name: categories are labels, not foreign keys, and
// there is no cascade. Removing an unknown name is a no-op.
func DeleteCategory(db *store.DB, name string) CategoryResult {
	if db == nil {
		return CategoryResult{}
	}
	kept := make([]string, 0, len(db.Categories))
	removed := false
	for _, c := range db.Categories {
		if c == name {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return CategoryResult{Changed: false}
	}
	db.Categories = kept
	return CategoryResult{
		Changed:      true,
		EventPayload: map[string]any{"name": name},
	}
}
