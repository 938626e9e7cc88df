package tui

import (
	"fmt"
	"strings"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/query"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// The planner board shows the idea/draft/done buckets side by side. Unlike
// the other views it is not a bubbles list; column navigation is a cursor
// over (column, row).

type boardModel struct {
	buckets query.Buckets
	col     int // 0=idea 1=draft 2=done
	row     int
}

func (b *boardModel) refresh(buckets query.Buckets) {
	b.buckets = buckets
	b.clamp()
}

func (b *boardModel) column(i int) []model.Item {
	switch i {
	case 1:
		return b.buckets.Draft
	case 2:
		return b.buckets.Done
	default:
		return b.buckets.Idea
	}
}

func (b *boardModel) clamp() {
	if b.col < 0 {
		b.col = 0
	}
	if b.col > 2 {
		b.col = 2
	}
	n := len(b.column(b.col))
	if b.row >= n {
		b.row = n - 1
	}
	if b.row < 0 {
		b.row = 0
	}
}

func (b *boardModel) selected() (model.Item, bool) {
	col := b.column(b.col)
	if b.row < 0 || b.row >= len(col) {
		return model.Item{}, false
	}
	return col[b.row], true
}

func (b *boardModel) moveCol(delta int) {
	b.col += delta
	b.clamp()
}

func (b *boardModel) moveRow(delta int) {
	b.row += delta
	b.clamp()
}

var boardHeadings = [3]string{"Idea", "Draft", "Done"}

func (b *boardModel) view(width, height int) string {
	colWidth := width/3 - 2
	if colWidth < 18 {
		colWidth = 18
	}
	rows := height - 4
	if rows < 4 {
		rows = 4
	}

	cols := make([]string, 0, 3)
	for ci := 0; ci < 3; ci++ {
		items := b.column(ci)
		var lines []string

		heading := fmt.Sprintf("%s (%d)", boardHeadings[ci], len(items))
		if ci == b.col {
			lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(heading))
		} else {
			lines = append(lines, styleHeader().Render(heading))
		}
		lines = append(lines, "")

		// Keep the cursor row visible when a column overflows.
		start := 0
		if ci == b.col && b.row >= rows {
			start = b.row - rows + 1
		}
		end := start + rows
		if end > len(items) {
			end = len(items)
		}
		for ri := start; ri < end; ri++ {
			line := statusGlyph(items[ri].Status) + " " + items[ri].Title
			line = xansi.Truncate(line, colWidth, "…")
			if ci == b.col && ri == b.row {
				line = lipgloss.NewStyle().Bold(true).Foreground(colorSelected).Render("▸ " + line)
			} else {
				line = "  " + line
			}
			lines = append(lines, line)
		}
		if end < len(items) {
			lines = append(lines, styleMuted().Render(fmt.Sprintf("  … %d more", len(items)-end)))
		}

		col := lipgloss.NewStyle().
			Width(colWidth).
			Height(rows+2).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorBorder).
			PaddingRight(1).
			Render(strings.Join(lines, "\n"))
		cols = append(cols, col)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
