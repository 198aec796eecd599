package table

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Separator is placed between padded cells.
const Separator = "  |  "

// Styles colours the parts of a rendered table.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Divider lipgloss.Style
	Empty   lipgloss.Style
}

// Printer writes rendered tables to a writer.
type Printer struct {
	w      io.Writer
	styles *Styles
}

// Option configures a Printer.
type Option func(*Printer)

// WithStyles colours the output with s.
func WithStyles(s Styles) Option {
	return func(p *Printer) { p.styles = &s }
}

// NewPrinter returns a Printer writing to w, or to stdout when w is nil.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	if w == nil {
		w = os.Stdout
	}
	p := &Printer{w: w}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print writes t followed by a newline. Write errors are ignored.
func (p *Printer) Print(t Table) {
	fmt.Fprintln(p.w, RenderStyled(t, p.styles))
}

// Render renders t as plain text without a trailing newline.
func Render(t Table) string {
	return RenderStyled(t, nil)
}

// RenderStyled renders t, colouring lines with s. Widths are measured before
// styling; a nil s renders plain text.
func RenderStyled(t Table, s *Styles) string {
	styled := s != nil
	if !styled {
		s = &Styles{}
	}
	paint := func(style lipgloss.Style, str string) string {
		if !styled {
			return str
		}
		return style.Render(str)
	}

	if len(t.Rows) == 0 {
		return paint(s.Empty, fmt.Sprintf("--- %s: No Data Available ---", t.Title))
	}

	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = strings.ToUpper(c)
	}
	widths := columnWidths(headers, t.Rows)

	headerRow := joinRow(headers, widths)
	divider := paint(s.Divider, strings.Repeat("-", lipgloss.Width(headerRow)))

	lines := make([]string, 0, len(t.Rows)+6)
	lines = append(lines,
		paint(s.Title, "[ "+strings.ToUpper(t.Title)+" ]"),
		divider,
		paint(s.Header, headerRow),
		divider,
	)
	for _, r := range t.Rows {
		lines = append(lines, joinRow(r, widths))
	}
	lines = append(lines, divider, fmt.Sprintf("Rows: %d", len(t.Rows)))

	return strings.Join(lines, "\n")
}

// columnWidths is the widest of the header and every cell, per column.
// Widths are terminal cell widths, so a wide rune such as 東 counts as 2.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i := range widths {
			if i < len(r) {
				widths[i] = max(widths[i], lipgloss.Width(r[i]))
			}
		}
	}
	return widths
}

func joinRow(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = padRight(cell, w)
	}
	return strings.Join(padded, Separator)
}

func padRight(s string, width int) string {
	// Get visible length (ignoring ANSI codes)
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}
