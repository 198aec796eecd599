package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	got := Render(Table{Title: "Q6 City Meeting Counts", Columns: []string{"city"}})
	assert.Equal(t, "--- Q6 City Meeting Counts: No Data Available ---", got)
}

func TestPrintEmptyIsOneLine(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Print(Table{Title: "Nothing"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "No Data Available")
	assert.Contains(t, lines[0], "Nothing")
}

func TestRenderLayout(t *testing.T) {
	tbl := Table{
		Title:   "City Counts",
		Columns: []string{"city", "totalMeetings"},
		Rows: [][]string{
			{"Springfield", "2"},
			{"B", "1"},
		},
	}

	// "Springfield" widens the city column from 4 to 11.
	header := "CITY" + strings.Repeat(" ", 7) + "  |  " + "TOTALMEETINGS"
	divider := strings.Repeat("-", len(header))
	want := strings.Join([]string{
		"[ CITY COUNTS ]",
		divider,
		header,
		divider,
		"Springfield  |  2" + strings.Repeat(" ", 12),
		"B" + strings.Repeat(" ", 10) + "  |  1" + strings.Repeat(" ", 12),
		divider,
		"Rows: 2",
	}, "\n")

	assert.Equal(t, want, Render(tbl))
}

func TestColumnWidths(t *testing.T) {
	widths := columnWidths(
		[]string{"CITY", "MEETING_ID"},
		[][]string{{"Springfield", "1"}, {"A", "08092022"}},
	)
	assert.Equal(t, []int{11, 10}, widths)
}

func TestRenderShortRow(t *testing.T) {
	tbl := Table{
		Title:   "Short",
		Columns: []string{"a", "b"},
		Rows:    [][]string{{"x"}},
	}
	lines := strings.Split(Render(tbl), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "x  |   ", lines[4])
}

func TestRenderWideRunes(t *testing.T) {
	tbl := Table{
		Title:   "Wide",
		Columns: []string{"name"},
		Rows:    [][]string{{"東京都"}, {"ab"}},
	}
	lines := strings.Split(Render(tbl), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, 6, lipgloss.Width(lines[1]))
	assert.Equal(t, "ab    ", lines[5])
}

func TestPrinterWritesTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Print(Table{Title: "T", Columns: []string{"c"}, Rows: [][]string{{"v"}}})

	assert.True(t, strings.HasSuffix(buf.String(), "Rows: 1\n"))
}

func TestRenderStyledKeepsWidths(t *testing.T) {
	tbl := Table{
		Title:   "Styled",
		Columns: []string{"city"},
		Rows:    [][]string{{"Springfield"}},
	}
	s := &Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Header:  lipgloss.NewStyle().Bold(true),
		Divider: lipgloss.NewStyle(),
		Empty:   lipgloss.NewStyle(),
	}

	lines := strings.Split(RenderStyled(tbl, s), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, 11, lipgloss.Width(lines[1]))
	assert.Equal(t, 11, lipgloss.Width(lines[2]))
}
