package mutate

import (
	"strings"
	"testing"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/store"
)

func TestCreateItem_ReminderDefaults(t *testing.T) {
	db := &store.DB{Categories: store.DefaultCategories()}

	res := CreateItem(db, CreateInput{
		Type:         model.TypeReminder,
		ReminderDate: "2024-05-01",
	})

	it := res.Item
	if it.ID == "" {
		t.Fatalf("expected generated id")
	}
	if it.Status != model.StatusIdea {
		t.Fatalf("status = %q, want idea", it.Status)
	}
	if !strings.HasPrefix(it.Title, "REMINDER ") {
		t.Fatalf("title = %q, want REMINDER prefix", it.Title)
	}
	if it.Category != "Unsorted" {
		t.Fatalf("category = %q, want Unsorted", it.Category)
	}
	if it.ReminderDate != "2024-05-01" {
		t.Fatalf("reminderDate = %q", it.ReminderDate)
	}
	if it.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestCreateItem_StatusByType(t *testing.T) {
	db := &store.DB{}
	cases := []struct {
		typ  model.ItemType
		want model.Status
	}{
		{model.TypeContent, model.StatusDraft},
		{model.TypeScript, model.StatusDraft},
		{model.TypeReminder, model.StatusIdea},
		{model.ItemType("note"), model.StatusIdea},
	}
	for _, c := range cases {
		res := CreateItem(db, CreateInput{Type: c.typ})
		if res.Item.Status != c.want {
			t.Errorf("type %q: status = %q, want %q", c.typ, res.Item.Status, c.want)
		}
	}
}

func TestCreateItem_TitleFromText(t *testing.T) {
	db := &store.DB{}

	short := CreateItem(db, CreateInput{Type: model.TypeContent, Text: "short body"})
	if short.Item.Title != "short body" {
		t.Fatalf("title = %q, want %q", short.Item.Title, "short body")
	}

	long := strings.Repeat("a", 41)
	truncated := CreateItem(db, CreateInput{Type: model.TypeContent, Text: long})
	if want := strings.Repeat("a", 40) + "…"; truncated.Item.Title != want {
		t.Fatalf("title = %q, want %q", truncated.Item.Title, want)
	}

	exact := strings.Repeat("b", 40)
	kept := CreateItem(db, CreateInput{Type: model.TypeContent, Text: exact})
	if kept.Item.Title != exact {
		t.Fatalf("no ellipsis expected at exactly 40 runes, got %q", kept.Item.Title)
	}

	explicit := CreateItem(db, CreateInput{Type: model.TypeContent, Title: "Chosen", Text: long})
	if explicit.Item.Title != "Chosen" {
		t.Fatalf("user title must win, got %q", explicit.Item.Title)
	}
}

func TestCreateItem_InsertsAtFrontWithUniqueIDs(t *testing.T) {
	db := &store.DB{}
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		res := CreateItem(db, CreateInput{Type: model.TypeContent, Title: "t"})
		if seen[res.Item.ID] {
			t.Fatalf("duplicate id: %q", res.Item.ID)
		}
		seen[res.Item.ID] = true
		if db.Items[0].ID != res.Item.ID {
			t.Fatalf("new item not at front")
		}
	}
	if len(db.Items) != 50 {
		t.Fatalf("expected 50 items, got %d", len(db.Items))
	}
}
