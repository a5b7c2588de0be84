package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark).
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)

	// BoldStyle renders emphasized inline text, e.g. the username.
	BoldStyle = lipgloss.NewStyle().Bold(true)
	// WarnStyle renders corrective messages after invalid input.
	WarnStyle = lipgloss.NewStyle().Foreground(ColorOrange)
	// ErrorStyle renders failure notices.
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)
	// GoodStyle renders success notices.
	GoodStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	// MutedStyle renders secondary hints.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
)

// SeparatorRow marks a horizontal rule inside a table body.
var SeparatorRow = []string{"---"}

// Table is a bordered text table.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// AlignLeft marks columns rendered left-aligned; by default only
	// the first column is.
	AlignLeft map[int]bool
}

// Render draws the table with rounded borders. Rows equal to
// SeparatorRow become horizontal rules.
func (t Table) Render() string {
	numCols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > numCols && !isSeparator(row) {
			numCols = len(row)
		}
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	t.writeRule(&b, widths, "╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		t.writeRule(&b, widths, "├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if isSeparator(row) {
			t.writeRule(&b, widths, "├", "┼", "┤")
			continue
		}
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			var padded string
			if i == 0 || t.AlignLeft[i] {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	t.writeRule(&b, widths, "╰", "┴", "╯")

	return b.String()
}

func (t Table) writeRule(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(dimStyle.Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(right))
	b.WriteString("\n")
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == "---"
}

// ClearScreen homes the cursor and wipes the terminal.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[2J\033[H")
}
