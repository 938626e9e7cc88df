package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mecontent-cli/internal/model"

	_ "modernc.org/sqlite"
)

// StatePath is the on-disk SQLite file. The TUI polls its mtime so edits
// made by CLI commands in another terminal show up without a manual reload.
func (s Store) StatePath() string { return s.sqlitePath() }

func (s Store) sqlitePath() string {
	return filepath.Join(filepath.Clean(s.Dir), "index.sqlite")
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers (an open TUI plus CLI invocations
	// from another terminal); busy_timeout avoids "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			type TEXT NOT NULL,
			category TEXT NOT NULL,
			status TEXT NOT NULL,
			reminder_date TEXT NOT NULL,
			publish_date TEXT NOT NULL,
			title TEXT NOT NULL,
			json TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_items_status ON items(status);`,
		`CREATE INDEX IF NOT EXISTS idx_items_reminder ON items(reminder_date);`,
		`CREATE INDEX IF NOT EXISTS idx_items_publish ON items(publish_date);`,
		`CREATE TABLE IF NOT EXISTS categories (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			event_id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			payload_json TEXT NOT NULL,
			created_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_entity ON events(entity_id, created_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// LoadSQLite loads the snapshot from the data dir's index.sqlite.
//
// First use (no prior snapshot) yields empty items plus the default
// categories. If a legacy db.json exists and SQLite has never been written,
// it is imported once. Corrupt state degrades to the same first-use defaults
// rather than failing.
func (s Store) LoadSQLite(ctx context.Context) (*DB, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		// An index.sqlite sqlite itself cannot read is corruption, not an
		// I/O failure: move it aside and start over so the next Save writes
		// a fresh file. Genuine I/O errors (unreadable dir etc.) still raise.
		if !sqliteCorruptErr(err) || !s.sidelineCorruptState() {
			return nil, err
		}
		db, err = s.openSQLite(ctx)
		if err != nil {
			return nil, err
		}
	}
	defer db.Close()

	if !sqliteHasSnapshot(ctx, db) {
		// One-time import from db.json if present.
		if b, err := os.ReadFile(s.dbPath()); err == nil && len(b) > 0 {
			if legacy, err := loadWireSnapshot(b); err == nil {
				if err := s.saveSQLiteTx(ctx, db, legacy); err != nil {
					return nil, err
				}
				return loadStateFromSQLite(ctx, db)
			}
			// Unparseable legacy snapshot: fall through to defaults.
		}
		out := &DB{Version: 1, Items: []model.Item{}, Categories: DefaultCategories()}
		return out, nil
	}

	return loadStateFromSQLite(ctx, db)
}

func (s Store) SaveSQLite(ctx context.Context, st *DB) error {
	if st == nil {
		return errors.New("nil snapshot")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return s.saveSQLiteTx(ctx, db, st)
}

// saveSQLiteTx rewrites the whole snapshot in one transaction.
// Replace-all keeps save semantics identical to the snapshot model: the
// durable state is always exactly the in-memory (items, categories) pair.
func (s Store) saveSQLiteTx(ctx context.Context, db *sql.DB, st *DB) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	version := st.Version
	if version == 0 {
		version = 1
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO meta(k, v) VALUES(?, ?)`, "version", strconv.Itoa(version)); err != nil {
		return err
	}

	for _, t := range []string{"items", "categories"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+t); err != nil {
			return err
		}
	}

	nowMs := time.Now().UTC().UnixMilli()

	for i, it := range st.Items {
		raw, err := json.Marshal(it)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO items(
			id, position, type, category, status,
			reminder_date, publish_date,
			title, json, updated_at_unixms
		) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, i, string(it.Type), it.Category, string(it.Status),
			it.ReminderDate, it.PublishDate,
			it.Title, string(raw), nowMs,
		); err != nil {
			return err
		}
	}
	for i, c := range st.Categories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories(name, position) VALUES(?, ?)`, c, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// sqliteCorruptErr reports whether err is a corrupt-database error
// (SQLITE_NOTADB or SQLITE_CORRUPT) rather than a transient or I/O one.
// modernc.org/sqlite surfaces these as text in the error message.
func sqliteCorruptErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "file is not a database") ||
		strings.Contains(msg, "database disk image is malformed")
}

// sidelineCorruptState renames an unreadable index.sqlite (and any WAL
// sidecars) so Load can degrade to first-use defaults. Reports whether a
// file was actually moved.
func (s Store) sidelineCorruptState() bool {
	path := s.sqlitePath()
	if _, err := os.Stat(path); err != nil {
		return false
	}
	dst := path + ".corrupt-" + strconv.FormatInt(time.Now().UTC().UnixMilli(), 10)
	if err := os.Rename(path, dst); err != nil {
		return false
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		_ = os.Rename(path+suffix, dst+suffix)
	}
	return true
}

func sqliteHasSnapshot(ctx context.Context, db *sql.DB) bool {
	var v string
	if err := db.QueryRowContext(ctx, `SELECT v FROM meta WHERE k = ?`, "version").Scan(&v); err != nil {
		return false
	}
	return strings.TrimSpace(v) != ""
}

func loadStateFromSQLite(ctx context.Context, db *sql.DB) (*DB, error) {
	out := &DB{Version: 1}

	var v string
	_ = db.QueryRowContext(ctx, `SELECT v FROM meta WHERE k = ?`, "version").Scan(&v)
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
		out.Version = n
	}

	rows, err := db.QueryContext(ctx, `SELECT json FROM items ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var js string
		if err := rows.Scan(&js); err != nil {
			return nil, err
		}
		var it model.Item
		if err := json.Unmarshal([]byte(js), &it); err != nil {
			// Tolerate a bad row rather than losing the whole vault.
			continue
		}
		out.Items = append(out.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	crows, err := db.QueryContext(ctx, `SELECT name FROM categories ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer crows.Close()
	for crows.Next() {
		var name string
		if err := crows.Scan(&name); err != nil {
			return nil, err
		}
		out.Categories = append(out.Categories, name)
	}
	if err := crows.Err(); err != nil {
		return nil, err
	}

	migrateLegacyMedia(out)
	normalizeSnapshot(out)
	return out, nil
}

// loadWireSnapshot parses a db.json snapshot (the localStorage-era wire
// format: items + categories, categories defaulted when absent).
func loadWireSnapshot(b []byte) (*DB, error) {
	var out DB
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out.Categories == nil {
		out.Categories = DefaultCategories()
	}
	migrateLegacyMedia(&out)
	normalizeSnapshot(&out)
	return &out, nil
}
