package store

import (
	"crypto/rand"
	"encoding/base32"
	"strconv"
	"strings"
)

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func newRandomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

// NewItemID generates a fresh id that does not collide with any item in db.
func NewItemID(db *DB) string {
	for i := 0; i < 10; i++ {
		id, err := newRandomID("mc")
		if err != nil {
			break
		}
		if _, ok := db.FindItem(id); !ok {
			return id
		}
	}
	// crypto/rand failure or repeated collisions; fall back to a counter
	// suffix, which stays outside the base32 id shape.
	n := len(db.Items)
	for {
		id := "mc-seq-" + strconv.Itoa(n)
		if _, ok := db.FindItem(id); !ok {
			return id
		}
		n++
	}
}
