package tui

import (
	"context"
	"strings"

	"mecontent-cli/internal/media"
	"mecontent-cli/internal/model"
	"mecontent-cli/internal/mutate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Capture is a modal form for recording a new thought without leaving the
// current view. Tab/shift+tab move between fields; ctrl+s (or enter on the
// last field) submits; esc cancels.

const (
	capTitle = iota
	capType
	capCategory
	capTags
	capText
	capReminder
	capPublish
	capMedia
	capFieldCount
)

var captureLabels = [capFieldCount]string{
	"Title",
	"Type (content/script/reminder)",
	"Category",
	"Tags (comma separated)",
	"Text",
	"Reminder date (YYYY-MM-DD)",
	"Publish date (YYYY-MM-DD)",
	"Media file path",
}

type captureModel struct {
	inputs [capFieldCount]textinput.Model
	focus  int
	errMsg string
}

type captureDoneMsg struct {
	input mutate.CreateInput
}

type captureCancelMsg struct{}

func newCaptureModel(categories []string) captureModel {
	var c captureModel
	for i := range c.inputs {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 0
		c.inputs[i] = in
	}
	c.inputs[capType].SetValue(string(model.TypeContent))
	c.inputs[capType].Placeholder = "content"
	if len(categories) > 0 {
		c.inputs[capCategory].Placeholder = categories[0]
	}
	c.inputs[capText].Placeholder = "what's on your mind?"
	c.inputs[capTitle].Focus()
	return c
}

func (c captureModel) Update(msg tea.Msg) (captureModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "esc":
		return c, func() tea.Msg { return captureCancelMsg{} }
	case "tab", "down":
		c.setFocus((c.focus + 1) % capFieldCount)
		return c, nil
	case "shift+tab", "up":
		c.setFocus((c.focus + capFieldCount - 1) % capFieldCount)
		return c, nil
	case "ctrl+s":
		return c.submit()
	case "enter":
		if c.focus == capFieldCount-1 {
			return c.submit()
		}
		c.setFocus(c.focus + 1)
		return c, nil
	}

	var cmd tea.Cmd
	c.inputs[c.focus], cmd = c.inputs[c.focus].Update(msg)
	return c, cmd
}

func (c *captureModel) setFocus(idx int) {
	c.inputs[c.focus].Blur()
	c.focus = idx
	c.inputs[c.focus].Focus()
}

func (c captureModel) submit() (captureModel, tea.Cmd) {
	in := mutate.CreateInput{
		Title:        c.inputs[capTitle].Value(),
		Type:         model.ItemType(strings.TrimSpace(strings.ToLower(c.inputs[capType].Value()))),
		Category:     strings.TrimSpace(c.inputs[capCategory].Value()),
		Tags:         splitCaptureTags(c.inputs[capTags].Value()),
		Text:         c.inputs[capText].Value(),
		ReminderDate: strings.TrimSpace(c.inputs[capReminder].Value()),
		PublishDate:  strings.TrimSpace(c.inputs[capPublish].Value()),
	}
	if in.Type == "" {
		in.Type = model.TypeContent
	}
	if path := strings.TrimSpace(c.inputs[capMedia].Value()); path != "" {
		dataURL, err := media.EncodeFile(context.Background(), path)
		if err != nil {
			c.errMsg = err.Error()
			return c, nil
		}
		in.Media = dataURL
	}
	return c, func() tea.Msg { return captureDoneMsg{input: in} }
}

func splitCaptureTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (c captureModel) View(width int) string {
	var b strings.Builder
	b.WriteString(styleHeader().Render("New thought"))
	b.WriteString("\n\n")
	for i := range c.inputs {
		label := captureLabels[i]
		if i == c.focus {
			b.WriteString(lipgloss.NewStyle().Foreground(colorAccent).Render(label))
		} else {
			b.WriteString(styleMuted().Render(label))
		}
		b.WriteString("\n")
		b.WriteString(c.inputs[i].View())
		b.WriteString("\n")
	}
	if c.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(ac("160", "203")).Render(c.errMsg))
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("tab: next field  ctrl+s: save  esc: cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Width(min(width-4, 72))
	return box.Render(b.String())
}
