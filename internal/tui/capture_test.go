package tui

import (
	"testing"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/mutate"

	"github.com/google/go-cmp/cmp"
)

func TestCaptureSubmitBuildsCreateInput(t *testing.T) {
	c := newCaptureModel([]string{"Ideas"})
	c.inputs[capTitle].SetValue("  My clip  ")
	c.inputs[capType].SetValue("Script")
	c.inputs[capCategory].SetValue("Cooking")
	c.inputs[capTags].SetValue("fish, tour , ")
	c.inputs[capText].SetValue("intro line")
	c.inputs[capReminder].SetValue("2024-05-01")

	c2, cmd := c.submit()
	if c2.errMsg != "" {
		t.Fatalf("unexpected submit error: %s", c2.errMsg)
	}
	if cmd == nil {
		t.Fatalf("expected a done command")
	}
	done, ok := cmd().(captureDoneMsg)
	if !ok {
		t.Fatalf("expected captureDoneMsg; got %T", cmd())
	}

	want := mutate.CreateInput{
		Title:        "  My clip  ",
		Type:         model.TypeScript,
		Category:     "Cooking",
		Tags:         []string{"fish", "tour"},
		Text:         "intro line",
		ReminderDate: "2024-05-01",
	}
	if diff := cmp.Diff(want, done.input); diff != "" {
		t.Fatalf("create input mismatch (-want +got):\n%s", diff)
	}
}

func TestCaptureSubmitDefaultsTypeToContent(t *testing.T) {
	c := newCaptureModel(nil)
	c.inputs[capType].SetValue("   ")
	_, cmd := c.submit()
	done := cmd().(captureDoneMsg)
	if done.input.Type != model.TypeContent {
		t.Fatalf("expected content default; got %q", done.input.Type)
	}
}

func TestCaptureSubmitRejectsMissingMediaFile(t *testing.T) {
	c := newCaptureModel(nil)
	c.inputs[capMedia].SetValue("/no/such/file.mp4")
	c2, cmd := c.submit()
	if cmd != nil {
		t.Fatalf("expected submit to stay on the form")
	}
	if c2.errMsg == "" {
		t.Fatalf("expected an error message for the missing media file")
	}
}

func TestSplitCaptureTags(t *testing.T) {
	got := splitCaptureTags(" a , ,b,")
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if splitCaptureTags("   ") != nil {
		t.Fatalf("expected nil for blank input")
	}
}
