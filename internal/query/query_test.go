package query

import (
	"testing"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/store"

	"github.com/google/go-cmp/cmp"
)

func snapshot() *store.DB {
	// Snapshot order is most-recent-first, as the store keeps it.
	return &store.DB{
		Items: []model.Item{
			{
				ID: "mc-4", Title: "Morning hook take 2", Type: model.TypeScript,
				Category: "In Progress", Tags: []string{}, Status: model.StatusDraft,
				PublishDate: "2024-05-10",
			},
			{
				ID: "mc-3", Title: "Call the editor", Type: model.TypeReminder,
				Category: "Unsorted", Tags: []string{}, Status: model.StatusIdea,
				ReminderDate: "2024-05-01",
			},
			{
				ID: "mc-2", Title: "Aquarium tour", Type: model.TypeContent,
				Category: "Ideas", Tags: []string{"fish", "tour"}, Status: model.StatusDone,
				PublishDate: "2024-05-01",
			},
			{
				ID: "mc-1", Title: "Old note", Type: model.TypeContent,
				Category: "Ideas", Tags: []string{},
				// Legacy item with no status set.
			},
		},
		Categories: store.DefaultCategories(),
	}
}

func ids(items []model.Item) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestRemindersOn(t *testing.T) {
	db := snapshot()
	if got := ids(RemindersOn(db, "2024-05-01")); !cmp.Equal([]string{"mc-3"}, got) {
		t.Fatalf("reminders = %v", got)
	}
	if got := RemindersOn(db, "2024-05-02"); len(got) != 0 {
		t.Fatalf("expected no reminders, got %v", ids(got))
	}
}

func TestPublishPlanOn(t *testing.T) {
	db := snapshot()
	if got := ids(PublishPlanOn(db, "2024-05-01")); !cmp.Equal([]string{"mc-2"}, got) {
		t.Fatalf("plan = %v", got)
	}
}

func TestBucketByStatus_PartitionsExactlyOnce(t *testing.T) {
	db := snapshot()
	b := BucketByStatus(db)

	// mc-1 has no status and must land in idea.
	if got := ids(b.Idea); !cmp.Equal([]string{"mc-3", "mc-1"}, got) {
		t.Fatalf("idea bucket = %v", got)
	}
	if got := ids(b.Draft); !cmp.Equal([]string{"mc-4"}, got) {
		t.Fatalf("draft bucket = %v", got)
	}
	if got := ids(b.Done); !cmp.Equal([]string{"mc-2"}, got) {
		t.Fatalf("done bucket = %v", got)
	}

	// Union of the buckets equals the full item set, no duplicates.
	seen := map[string]int{}
	for _, bucket := range [][]model.Item{b.Idea, b.Draft, b.Done} {
		for _, it := range bucket {
			seen[it.ID]++
		}
	}
	if len(seen) != len(db.Items) {
		t.Fatalf("buckets cover %d items, want %d", len(seen), len(db.Items))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("item %s appears %d times across buckets", id, n)
		}
	}
}

func TestCalendarRange(t *testing.T) {
	db := snapshot()

	// Both items with a publish date, unbounded.
	if got := ids(CalendarRange(db, "", "")); !cmp.Equal([]string{"mc-4", "mc-2"}, got) {
		t.Fatalf("unbounded = %v", got)
	}
	// Lower bound excludes 2024-05-01.
	if got := ids(CalendarRange(db, "2024-05-02", "2024-05-10")); !cmp.Equal([]string{"mc-4"}, got) {
		t.Fatalf("bounded = %v", got)
	}
	// Upper bound only.
	if got := ids(CalendarRange(db, "", "2024-05-01")); !cmp.Equal([]string{"mc-2"}, got) {
		t.Fatalf("upper bound = %v", got)
	}
}

func TestSearch(t *testing.T) {
	db := snapshot()

	// Tag-only match: "fish" appears in tags, not title or text.
	if got := ids(Search(db, "fish", "", "")); !cmp.Equal([]string{"mc-2"}, got) {
		t.Fatalf("tag search = %v", got)
	}
	// Case-insensitive title substring.
	if got := ids(Search(db, "MORNING", "", "")); !cmp.Equal([]string{"mc-4"}, got) {
		t.Fatalf("title search = %v", got)
	}
	// Empty query matches everything.
	if got := Search(db, "", "", ""); len(got) != len(db.Items) {
		t.Fatalf("empty query matched %d of %d", len(got), len(db.Items))
	}
	// Category and type filters are exact and AND'ed.
	if got := ids(Search(db, "", "Ideas", "")); !cmp.Equal([]string{"mc-2", "mc-1"}, got) {
		t.Fatalf("category filter = %v", got)
	}
	if got := ids(Search(db, "tour", "Ideas", "content")); !cmp.Equal([]string{"mc-2"}, got) {
		t.Fatalf("combined filter = %v", got)
	}
	if got := Search(db, "tour", "Posted", ""); len(got) != 0 {
		t.Fatalf("mismatched category must exclude, got %v", ids(got))
	}
}

func TestQueries_AreStableAndReadOnly(t *testing.T) {
	db := snapshot()
	before := ids(db.Items)

	a := ids(Search(db, "o", "", ""))
	b := ids(Search(db, "o", "", ""))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("search not deterministic (-first +second):\n%s", diff)
	}

	_ = BucketByStatus(db)
	_ = CalendarRange(db, "", "")
	_ = RemindersOn(db, "2024-05-01")

	if diff := cmp.Diff(before, ids(db.Items)); diff != "" {
		t.Fatalf("queries mutated the snapshot (-before +after):\n%s", diff)
	}
}
