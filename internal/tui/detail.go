package tui

import (
	"fmt"
	"strings"

	"mecontent-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func renderDetail(it model.Item, width int) string {
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(styleHeader().Render(it.Title))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(it.ID))
	b.WriteString("\n\n")

	meta := []string{
		fmt.Sprintf("type: %s", it.Type),
		fmt.Sprintf("status: %s", model.NormalizeStatus(string(it.Status))),
		fmt.Sprintf("category: %s", it.Category),
	}
	if len(it.Tags) > 0 {
		meta = append(meta, "tags: "+strings.Join(it.Tags, ", "))
	}
	if it.ReminderDate != "" {
		meta = append(meta, "reminder: "+it.ReminderDate)
	}
	if it.PublishDate != "" {
		meta = append(meta, "publish: "+it.PublishDate)
	}
	if !it.CreatedAt.IsZero() {
		meta = append(meta, "created: "+it.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	b.WriteString(styleMuted().Render(strings.Join(meta, "\n")))
	b.WriteString("\n")

	if md := renderMarkdown(it.Text, width-2); md != "" {
		b.WriteString("\n")
		b.WriteString(md)
		b.WriteString("\n")
	}

	if it.Media != "" {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render(fmt.Sprintf("media attached (%s)", mediaKind(it.Media))))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

// mediaKind pulls the MIME type out of a data: URL for display.
func mediaKind(dataURL string) string {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "unknown"
	}
	if i := strings.IndexByte(rest, ';'); i > 0 {
		return rest[:i]
	}
	return "unknown"
}
