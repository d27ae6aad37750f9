package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// ProgressBar renders a percentage as a bar followed by the number.
func ProgressBar(pct, width int) string {
	if width < 5 {
		width = 5
	}
	pct = max(0, min(100, pct))
	filled := pct * width / 100
	bar := strings.Repeat(current.BarFull, filled) + strings.Repeat(current.BarEmpty, width-filled)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := current
	// compute visible width
	maxw := 0
	for _, ln := range lines {
		if n := lipgloss.Width(stripANSI(ln)); n > maxw {
			maxw = n
		}
	}
	pad := func(s string) string {
		vis := lipgloss.Width(stripANSI(s))
		if vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// Grid lays out headers and rows as a bordered table. The result may span
// several lines and is meant to be split into a Panel.
func Grid(headers []string, rows [][]string) string {
	border := lipgloss.NormalBorder()
	if disableColor {
		border = lipgloss.ASCIIBorder()
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	head := cell.Bold(!disableColor)
	return table.New().
		Border(border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return head
			}
			return cell
		}).
		Render()
}
