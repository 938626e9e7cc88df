package mutate

import (
	"testing"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/store"

	"github.com/google/go-cmp/cmp"
)

func TestAddCategory(t *testing.T) {
	db := &store.DB{Categories: store.DefaultCategories()}

	if res := AddCategory(db, "  Cooking  "); !res.Changed {
		t.Fatalf("expected add to change the list")
	}
	want := []string{"Ideas", "In Progress", "Posted", "Cooking"}
	if diff := cmp.Diff(want, db.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}

	// Exact duplicate: length and order unchanged.
	if res := AddCategory(db, "Ideas"); res.Changed {
		t.Fatalf("expected duplicate add to be a no-op")
	}
	if diff := cmp.Diff(want, db.Categories); diff != "" {
		t.Fatalf("categories changed on duplicate add (-want +got):\n%s", diff)
	}

	// Blank name: no-op.
	if res := AddCategory(db, "   "); res.Changed {
		t.Fatalf("expected blank add to be a no-op")
	}
}

func TestDeleteCategory_NoCascade(t *testing.T) {
	db := &store.DB{
		Items:      []model.Item{{ID: "mc-1", Category: "Ideas"}},
		Categories: store.DefaultCategories(),
	}

	if res := DeleteCategory(db, "Ideas"); !res.Changed {
		t.Fatalf("expected delete to change the list")
	}
	if db.HasCategory("Ideas") {
		t.Fatalf("category still present after delete")
	}
	// The thought keeps its orphaned category name.
	if db.Items[0].Category != "Ideas" {
		t.Fatalf("delete must not touch items, got %q", db.Items[0].Category)
	}

	if res := DeleteCategory(db, "Ideas"); res.Changed {
		t.Fatalf("expected second delete to be a no-op")
	}
}
