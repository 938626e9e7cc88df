package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"mecontent-cli/internal/model"
)

const dbFileName = "db.json"

// DB is the full in-memory snapshot: every thought plus the category list.
// The Store owns it for the duration of a session; all mutation goes through
// internal/mutate and ends with a Save.
type DB struct {
	Version    int          `json:"version"`
	Items      []model.Item `json:"items"`
	Categories []string     `json:"categories"`
}

// Store locates the on-disk state for one data directory.
type Store struct {
	Dir string
}

// DefaultCategories is the category list seeded on first use.
func DefaultCategories() []string {
	return []string{"Ideas", "In Progress", "Posted"}
}

// DiscoverDir walks up from start looking for a .mecontent directory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".mecontent")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir resolves the data directory: an explicitly configured dir wins,
// then a discovered .mecontent in the cwd's ancestors, then the per-user
// default under the config dir.
func DefaultDir() (string, error) {
	if cfg, err := LoadConfig(); err == nil && strings.TrimSpace(cfg.DataDir) != "" {
		return cfg.DataDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	base, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "data"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) dbPath() string {
	return filepath.Join(s.Dir, dbFileName)
}

// Load reads the last saved snapshot. A missing or unparseable snapshot
// yields an empty item list and the default categories; corruption never
// surfaces as an error past this boundary.
func (s Store) Load() (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	return s.LoadSQLite(context.Background())
}

// Save durably persists the full snapshot, replacing any prior one.
func (s Store) Save(db *DB) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	return s.SaveSQLite(context.Background(), db)
}

func (db *DB) FindItem(id string) (*model.Item, bool) {
	for i := range db.Items {
		if db.Items[i].ID == id {
			return &db.Items[i], true
		}
	}
	return nil, false
}

func (db *DB) HasCategory(name string) bool {
	for _, c := range db.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// migrateLegacyMedia moves the localStorage-era videoDataUrl field into
// Media. Reports whether anything changed.
func migrateLegacyMedia(db *DB) bool {
	changed := false
	for i := range db.Items {
		it := &db.Items[i]
		if it.Media == "" && it.LegacyVideoDataURL != "" {
			it.Media = it.LegacyVideoDataURL
			it.LegacyVideoDataURL = ""
			changed = true
		}
	}
	return changed
}

// normalizeSnapshot repairs a loaded snapshot in place: legacy statuses fold
// to their defaults and nil slices become empty for stable callers.
func normalizeSnapshot(db *DB) {
	for i := range db.Items {
		it := &db.Items[i]
		it.Status = model.NormalizeStatus(string(it.Status))
		if it.Tags == nil {
			it.Tags = []string{}
		}
	}
	if db.Items == nil {
		db.Items = []model.Item{}
	}
	if db.Categories == nil {
		db.Categories = []string{}
	}
	if db.Version == 0 {
		db.Version = 1
	}
}
