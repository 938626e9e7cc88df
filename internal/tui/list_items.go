package tui

import (
	"fmt"
	"strings"

	"mecontent-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type thoughtItem struct {
	item model.Item
}

func (i thoughtItem) FilterValue() string {
	return i.item.Title + " " + strings.Join(i.item.Tags, " ")
}

func (i thoughtItem) Title() string {
	t := i.item.Title
	if strings.TrimSpace(t) == "" {
		t = "(untitled)"
	}
	return statusGlyph(i.item.Status) + " " + t
}

func (i thoughtItem) Description() string {
	parts := []string{string(i.item.Type), i.item.Category}
	if i.item.ReminderDate != "" {
		parts = append(parts, glyphReminder()+" "+i.item.ReminderDate)
	}
	if i.item.PublishDate != "" {
		parts = append(parts, glyphPublish()+" "+i.item.PublishDate)
	}
	if len(i.item.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(i.item.Tags, " #"))
	}
	return strings.Join(parts, " "+glyphBullet()+" ")
}

type categoryItem struct {
	name  string
	count int
}

func (i categoryItem) FilterValue() string { return i.name }
func (i categoryItem) Title() string       { return i.name }
func (i categoryItem) Description() string {
	if i.count == 1 {
		return "1 thought"
	}
	return fmt.Sprintf("%d thoughts", i.count)
}

func statusGlyph(s model.Status) string {
	idea, draft, done := "○", "◐", "●"
	if asciiGlyphs() {
		idea, draft, done = ".", "~", "x"
	}
	switch model.NormalizeStatus(string(s)) {
	case model.StatusDraft:
		return lipgloss.NewStyle().Foreground(colorStatusDraft).Render(draft)
	case model.StatusDone:
		return lipgloss.NewStyle().Foreground(colorStatusDone).Render(done)
	default:
		return lipgloss.NewStyle().Foreground(colorStatusIdea).Render(idea)
	}
}

func newList(title string) list.Model {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(colorAccent).
		BorderLeftForeground(colorAccent)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(colorMuted).
		BorderLeftForeground(colorAccent)

	l := list.New([]list.Item{}, d, 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	return l
}

func selectThoughtByID(l *list.Model, id string) {
	for idx, it := range l.Items() {
		if ti, ok := it.(thoughtItem); ok && ti.item.ID == id {
			l.Select(idx)
			return
		}
	}
}
