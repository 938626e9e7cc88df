package mutate

import (
	"testing"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/store"
)

func TestDeleteItem_Idempotent(t *testing.T) {
	db := &store.DB{
		Items: []model.Item{{ID: "mc-1"}, {ID: "mc-2"}},
	}

	if res := DeleteItem(db, "mc-1"); !res.Changed {
		t.Fatalf("expected first delete to change the collection")
	}
	if len(db.Items) != 1 || db.Items[0].ID != "mc-2" {
		t.Fatalf("unexpected items after delete: %+v", db.Items)
	}

	// Second delete of the same id, and a delete of a nonexistent id:
	// both leave the collection untouched.
	if res := DeleteItem(db, "mc-1"); res.Changed {
		t.Fatalf("expected second delete to be a no-op")
	}
	if res := DeleteItem(db, "mc-never-existed"); res.Changed {
		t.Fatalf("expected delete of unknown id to be a no-op")
	}
	if len(db.Items) != 1 {
		t.Fatalf("collection size changed on no-op delete")
	}
}
