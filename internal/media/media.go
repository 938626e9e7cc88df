// Package media converts a file on disk into an inline data: URL so the
// attachment can live inside the snapshot itself.
package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// maxBytes caps inline attachments. The whole snapshot is rewritten on every
// mutation, so unbounded attachments would make saves arbitrarily slow.
const maxBytes = 64 << 20

// EncodeFile reads path and returns a data: URL with a sniffed content type.
// It is the only cancelable operation in the system: creation flows await it
// once, and any failure aborts the creation (no partial item is persisted).
// An empty path means "no attachment" and yields "".
func EncodeFile(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(b) > maxBytes {
		return "", fmt.Errorf("media %s: %d bytes exceeds the %d byte inline limit", path, len(b), maxBytes)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	mime := http.DetectContentType(b)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
