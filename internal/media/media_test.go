package media

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("hello attachment"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := EncodeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(got, "data:text/plain") {
		t.Fatalf("expected sniffed text/plain data URL, got %q", got)
	}
	i := strings.Index(got, ";base64,")
	if i < 0 {
		t.Fatalf("missing base64 marker: %q", got)
	}
	decoded, err := base64.StdEncoding.DecodeString(got[i+len(";base64,"):])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded) != "hello attachment" {
		t.Fatalf("payload = %q", decoded)
	}
}

func TestEncodeFile_EmptyPath(t *testing.T) {
	got, err := EncodeFile(context.Background(), "")
	if err != nil || got != "" {
		t.Fatalf("empty path: got %q, %v", got, err)
	}
}

func TestEncodeFile_MissingFile(t *testing.T) {
	if _, err := EncodeFile(context.Background(), filepath.Join(t.TempDir(), "nope.mp4")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestEncodeFile_CanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := EncodeFile(ctx, path); err == nil {
		t.Fatalf("expected context error")
	}
}
