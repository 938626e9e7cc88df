// Package query provides pure, read-only views over a store snapshot.
//
// Every function here is stable and re-entrant: given the same snapshot it
// returns the same items in the same order (most-recent-first, as the store
// keeps them), and never mutates the snapshot.
package query

import (
	"strings"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/store"
)

// RemindersOn returns thoughts whose reminder date equals date exactly.
// Dates are zero-padded ISO YYYY-MM-DD, so string equality is date equality.
func RemindersOn(db *store.DB, date string) []model.Item {
	out := []model.Item{}
	for _, it := range db.Items {
		if it.ReminderDate != "" && it.ReminderDate == date {
			out = append(out, it)
		}
	}
	return out
}

// PublishPlanOn returns thoughts whose publish date equals date exactly.
func PublishPlanOn(db *store.DB, date string) []model.Item {
	out := []model.Item{}
	for _, it := range db.Items {
		if it.PublishDate != "" && it.PublishDate == date {
			out = append(out, it)
		}
	}
	return out
}

// Buckets partitions the vault by lifecycle stage.
type Buckets struct {
	Idea  []model.Item
	Draft []model.Item
	Done  []model.Item
}

// BucketByStatus partitions every thought into the three lifecycle buckets.
// A missing or unknown status counts as idea. Relative order within each
// bucket matches the snapshot order.
func BucketByStatus(db *store.DB) Buckets {
	b := Buckets{Idea: []model.Item{}, Draft: []model.Item{}, Done: []model.Item{}}
	for _, it := range db.Items {
		switch model.NormalizeStatus(string(it.Status)) {
		case model.StatusDraft:
			b.Draft = append(b.Draft, it)
		case model.StatusDone:
			b.Done = append(b.Done, it)
		default:
			b.Idea = append(b.Idea, it)
		}
	}
	return b
}

// CalendarRange returns thoughts with a publish date, optionally clamped to
// from <= publishDate <= to. Either bound may be "" (unbounded). Zero-padded
// ISO dates make lexicographic comparison correct.
func CalendarRange(db *store.DB, from, to string) []model.Item {
	out := []model.Item{}
	for _, it := range db.Items {
		if it.PublishDate == "" {
			continue
		}
		if from != "" && it.PublishDate < from {
			continue
		}
		if to != "" && it.PublishDate > to {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Search filters the vault. q matches case-insensitively as a substring of
// the title, the body text, or any tag; an empty q matches everything.
// category and itemType, when non-empty, are exact-match filters AND'ed with
// the text match.
func Search(db *store.DB, q, category, itemType string) []model.Item {
	q = strings.ToLower(q)
	out := []model.Item{}
	for _, it := range db.Items {
		if q != "" && !matchesText(it, q) {
			continue
		}
		if category != "" && it.Category != category {
			continue
		}
		if itemType != "" && string(it.Type) != itemType {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesText(it model.Item, q string) bool {
	if strings.Contains(strings.ToLower(it.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Text), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
