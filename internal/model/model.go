package model

import (
	"strings"
	"time"
)

// Status is a thought's lifecycle stage.
type Status string

const (
	StatusIdea  Status = "idea"
	StatusDraft Status = "draft"
	StatusDone  Status = "done"
)

// NormalizeStatus folds a raw status string to a valid Status.
// Snapshots written by older versions may carry an empty or unknown status;
// those read as StatusIdea.
func NormalizeStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusDraft:
		return StatusDraft
	case StatusDone:
		return StatusDone
	default:
		return StatusIdea
	}
}

// ValidStatus reports whether s is exactly one of the three lifecycle stages.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusIdea, StatusDraft, StatusDone:
		return true
	default:
		return false
	}
}

// ItemType classifies a thought. The set is open (users may file anything),
// but these are the well-known values.
type ItemType string

const (
	TypeContent  ItemType = "content"
	TypeScript   ItemType = "script"
	TypeReminder ItemType = "reminder"
)

// DefaultStatus returns the lifecycle stage a freshly captured thought starts
// in. Content and scripts begin as drafts; everything else begins as an idea.
func DefaultStatus(t ItemType) Status {
	switch t {
	case TypeContent, TypeScript:
		return StatusDraft
	default:
		return StatusIdea
	}
}

// Item is a single recorded thought: an idea, a script, a reminder, or a
// content piece, with an optional inline media attachment.
type Item struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Type     ItemType `json:"type"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Text     string   `json:"text"`

	// Media is an inline data: URL (base64-encoded attachment), or "".
	Media string `json:"media,omitempty"`

	// Dates are zero-padded ISO YYYY-MM-DD strings, or "" when unset.
	// String form keeps equality and range comparisons trivial.
	ReminderDate string `json:"reminderDate,omitempty"`
	PublishDate  string `json:"publishDate,omitempty"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	// Legacy field (migrated to Media on load).
	LegacyVideoDataURL string `json:"videoDataUrl,omitempty"`
}
