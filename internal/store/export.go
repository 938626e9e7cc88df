package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// Export writes the snapshot to path as indented JSON (the db.json wire
// format). The write is atomic so a half-written export never exists on disk.
func (s Store) Export(db *DB, path string) error {
	if db == nil {
		return fmt.Errorf("export: nil snapshot")
	}
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return atomic.WriteFile(path, bytes.NewReader(b))
}

// Import reads a snapshot file written by Export (or a legacy db.json) and
// replaces the current persisted state with it.
func (s Store) Import(path string) (*DB, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	db, err := loadWireSnapshot(b)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	if err := s.Save(db); err != nil {
		return nil, err
	}
	return db, nil
}
