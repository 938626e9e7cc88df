package tui

import (
	"os"
	"strings"

	"mecontent-cli/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor and "faint" styling is only applied on
// dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorAccent   lipgloss.TerminalColor = ac("27", "62") // blue
	colorSelected lipgloss.TerminalColor = ac("232", "255")
	colorBorder   lipgloss.TerminalColor = ac("250", "243")

	colorStatusIdea  lipgloss.TerminalColor = ac("130", "179") // amber
	colorStatusDraft lipgloss.TerminalColor = ac("27", "75")   // blue
	colorStatusDone  lipgloss.TerminalColor = ac("28", "77")   // green
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func styleTab(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	}
	return styleMuted()
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. Only NO_COLOR is honored; otherwise the terminal's
// detected capabilities win.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// asciiGlyphs reports whether the user prefers plain-ASCII chrome.
func asciiGlyphs() bool {
	cfg, err := store.LoadConfig()
	if err != nil || cfg.TUI == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(cfg.TUI.Glyphs), "ascii")
}

func glyphBullet() string {
	if asciiGlyphs() {
		return "*"
	}
	return "•"
}

func glyphReminder() string {
	if asciiGlyphs() {
		return "R:"
	}
	return "⏰"
}

func glyphPublish() string {
	if asciiGlyphs() {
		return "P:"
	}
	return "📆"
}
