package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is one entry in the append-only audit log. Events record what
// happened to the vault; they are never replayed (this is not undo).
type Event struct {
	EventID  string    `json:"eventId"`
	TS       time.Time `json:"ts"`
	Type     string    `json:"type"`
	EntityID string    `json:"entityId"`
	Payload  any       `json:"payload"`
}

// AppendEvent appends one event to the audit log.
func (s Store) AppendEvent(ctx context.Context, typ, entityID string, payload any) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.ExecContext(ctx,
		`INSERT INTO events(event_id, type, entity_id, payload_json, created_at_unixms) VALUES(?, ?, ?, ?, ?)`,
		uuid.NewString(), typ, entityID, string(raw), now.UnixMilli())
	return err
}

// ReadEvents returns events in chronological order. limit == 0 means all;
// limit > 0 returns the most recent limit events (still oldest-first).
func (s Store) ReadEvents(ctx context.Context, limit int) ([]Event, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// rowid is insertion order; created_at alone can tie within a millisecond.
	q := `SELECT event_id, type, entity_id, payload_json, created_at_unixms FROM events ORDER BY rowid ASC`
	var rows *sql.Rows
	if limit > 0 {
		// Take the tail, then flip back to chronological order.
		q = `SELECT event_id, type, entity_id, payload_json, created_at_unixms FROM (
			SELECT rowid AS rid, event_id, type, entity_id, payload_json, created_at_unixms
			FROM events ORDER BY rowid DESC LIMIT ?
		) ORDER BY rid ASC`
		rows, err = db.QueryContext(ctx, q, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var (
			id, typ, entityID, payloadJSON string
			createdMs                      int64
		)
		if err := rows.Scan(&id, &typ, &entityID, &payloadJSON, &createdMs); err != nil {
			return nil, err
		}
		var payload any
		if js := strings.TrimSpace(payloadJSON); js != "" {
			_ = json.Unmarshal([]byte(js), &payload)
		}
		out = append(out, Event{
			EventID:  id,
			TS:       time.UnixMilli(createdMs).UTC(),
			Type:     typ,
			EntityID: entityID,
			Payload:  payload,
		})
	}
	return out, rows.Err()
}
