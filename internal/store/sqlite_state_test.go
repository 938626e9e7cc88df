package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mecontent-cli/internal/model"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_FirstUseDefaults(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	db, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(db.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(db.Items))
	}
	if diff := cmp.Diff(DefaultCategories(), db.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	db := &DB{
		Version: 1,
		Items: []model.Item{
			{
				ID:          "mc-aaaa1111",
				Title:       "Fish hook ideas",
				Type:        model.TypeContent,
				Category:    "Ideas",
				Tags:        []string{"fish", "hooks"},
				Text:        "three hook variants",
				PublishDate: "2024-05-10",
				Status:      model.StatusDraft,
				CreatedAt:   now,
			},
			{
				ID:           "mc-bbbb2222",
				Title:        "Water the plants",
				Type:         model.TypeReminder,
				Category:     "Unsorted",
				Tags:         []string{},
				ReminderDate: "2024-05-01",
				Status:       model.StatusIdea,
				CreatedAt:    now,
			},
		},
		Categories: []string{"Ideas", "In Progress", "Posted", "Cooking"},
	}

	if err := s.Save(db); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(db, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoad_EmptyCategoriesStayEmpty(t *testing.T) {
	// Deleting every category is legal; a saved empty list must not be
	// re-seeded with the defaults on the next load.
	s := Store{Dir: t.TempDir()}
	db := &DB{Version: 1, Items: []model.Item{}, Categories: []string{}}
	if err := s.Save(db); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Categories) != 0 {
		t.Fatalf("expected no categories, got %v", got.Categories)
	}
}

func TestLoad_ImportsLegacyDBJSONOnce(t *testing.T) {
	dir := t.TempDir()

	legacy := map[string]any{
		"items": []map[string]any{
			{
				"id":           "mc_legacy_1",
				"title":        "Old clip",
				"type":         "content",
				"category":     "Posted",
				"tags":         []string{"legacy"},
				"text":         "",
				"videoDataUrl": "data:video/mp4;base64,AAAA",
				"status":       "done",
				"createdAt":    "2023-11-02T10:00:00Z",
			},
			{
				"id":        "mc_legacy_2",
				"title":     "No status yet",
				"type":      "reminder",
				"category":  "Unsorted",
				"createdAt": "2023-11-03T10:00:00Z",
			},
		},
	}
	b, err := json.MarshalIndent(legacy, "", "  ")
	if err != nil {
		t.Fatalf("marshal legacy: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "db.json"), b, 0o644); err != nil {
		t.Fatalf("write db.json: %v", err)
	}

	s := Store{Dir: dir}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load (import): %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 imported items, got %d", len(got.Items))
	}
	if got.Items[0].Media != "data:video/mp4;base64,AAAA" {
		t.Fatalf("expected videoDataUrl migrated to media, got %q", got.Items[0].Media)
	}
	if got.Items[0].LegacyVideoDataURL != "" {
		t.Fatalf("legacy field should be cleared after migration")
	}
	// Missing/legacy status reads as idea.
	if got.Items[1].Status != model.StatusIdea {
		t.Fatalf("expected idea fallback, got %q", got.Items[1].Status)
	}
	// Legacy snapshots carried no category list.
	if diff := cmp.Diff(DefaultCategories(), got.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_CorruptLegacySnapshotFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "db.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write db.json: %v", err)
	}

	s := Store{Dir: dir}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load should not fail on corrupt snapshot: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(got.Items))
	}
	if diff := cmp.Diff(DefaultCategories(), got.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_CorruptStateFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.sqlite"), []byte("definitely not a sqlite file"), 0o644); err != nil {
		t.Fatalf("write index.sqlite: %v", err)
	}

	s := Store{Dir: dir}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load should not fail on a corrupt state file: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(got.Items))
	}
	if diff := cmp.Diff(DefaultCategories(), got.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}

	// The bad file was moved aside, so a fresh save and reload work.
	got.Items = append(got.Items, model.Item{ID: "mc-new", Title: "after recovery", Type: model.TypeContent, Category: "Unsorted", Tags: []string{}, Status: model.StatusIdea, CreatedAt: time.Now().UTC()})
	if err := s.Save(got); err != nil {
		t.Fatalf("save after recovery: %v", err)
	}
	reloaded, err := s.Load()
	if err != nil {
		t.Fatalf("reload after recovery: %v", err)
	}
	if len(reloaded.Items) != 1 || reloaded.Items[0].ID != "mc-new" {
		t.Fatalf("expected the recovered store to persist new items; got %+v", reloaded.Items)
	}
	sidelined, err := filepath.Glob(filepath.Join(dir, "index.sqlite.corrupt-*"))
	if err != nil || len(sidelined) != 1 {
		t.Fatalf("expected exactly one sidelined file, got %v (err %v)", sidelined, err)
	}
}

func TestLoad_PreservesMostRecentFirstOrder(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	db := &DB{Version: 1, Categories: DefaultCategories()}
	for _, id := range []string{"mc-c", "mc-b", "mc-a"} {
		db.Items = append(db.Items, model.Item{ID: id, Title: id, Type: model.TypeContent, Category: "Unsorted", Tags: []string{}, Status: model.StatusDraft, CreatedAt: time.Now().UTC()})
	}
	if err := s.Save(db); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i, id := range []string{"mc-c", "mc-b", "mc-a"} {
		if got.Items[i].ID != id {
			t.Fatalf("order not preserved: pos %d = %q, want %q", i, got.Items[i].ID, id)
		}
	}
}
