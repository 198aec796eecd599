// Package app is the interactive report browser.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwulff/meetingbank/internal/catalog"
	"github.com/jwulff/meetingbank/internal/report"
	"github.com/jwulff/meetingbank/internal/table"
	"github.com/jwulff/meetingbank/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root bubbletea model for the report browser.
type Model struct {
	ctx    context.Context
	src    catalog.Source
	opts   catalog.Options
	source string

	// Reports
	reports  []report.Report
	tables   map[int]table.Table
	loading  map[int]bool
	selected int

	// UI state
	width  int
	height int
	scroll int

	// Errors
	errorMessage string
}

// New creates a Model browsing the catalog reports of src. source names the
// store in the header.
func New(ctx context.Context, src catalog.Source, opts catalog.Options, source string) Model {
	opts = opts.Normalize()
	return Model{
		ctx:     ctx,
		src:     src,
		opts:    opts,
		source:  source,
		reports: report.Reports(opts),
		tables:  make(map[int]table.Table),
		loading: make(map[int]bool),
	}
}

// Init loads the first report.
func (m Model) Init() tea.Cmd {
	return m.ensureLoaded(m.selected)
}

// loadReportCmd builds report i off the UI goroutine.
func loadReportCmd(ctx context.Context, src catalog.Source, opts catalog.Options, i int, r report.Report) tea.Cmd {
	return func() tea.Msg {
		t, err := r.Build(ctx, src, opts)
		if err != nil {
			return ReportErrorMsg{Index: i, Err: err}
		}
		return ReportLoadedMsg{Index: i, Table: t}
	}
}

// ensureLoaded starts loading report i unless it is cached or in flight.
func (m Model) ensureLoaded(i int) tea.Cmd {
	if i < 0 || i >= len(m.reports) {
		return nil
	}
	if _, ok := m.tables[i]; ok || m.loading[i] {
		return nil
	}
	m.loading[i] = true
	return loadReportCmd(m.ctx, m.src, m.opts, i, m.reports[i])
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll = min(m.scroll, m.maxScroll())
		return m, nil

	case ReportLoadedMsg:
		delete(m.loading, msg.Index)
		m.tables[msg.Index] = msg.Table
		if msg.Index == m.selected {
			m.errorMessage = ""
		}
		return m, nil

	case ReportErrorMsg:
		delete(m.loading, msg.Index)
		if msg.Index == m.selected {
			m.errorMessage = msg.Err.Error()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		return m, tea.Quit

	case KeyTab, KeyRight, KeyL:
		return m.selectReport((m.selected + 1) % len(m.reports))

	case KeyShiftTab, KeyLeft, KeyH:
		return m.selectReport((m.selected - 1 + len(m.reports)) % len(m.reports))

	case KeyDown, KeyJ:
		if m.scroll < m.maxScroll() {
			m.scroll++
		}
		return m, nil

	case KeyUp, KeyK:
		if m.scroll > 0 {
			m.scroll--
		}
		return m, nil

	case KeyReload:
		if m.loading[m.selected] {
			return m, nil
		}
		delete(m.tables, m.selected)
		m.errorMessage = ""
		return m, m.ensureLoaded(m.selected)
	}

	return m, nil
}

func (m Model) selectReport(i int) (tea.Model, tea.Cmd) {
	m.selected = i
	m.scroll = 0
	m.errorMessage = ""
	return m, m.ensureLoaded(i)
}

// bodyLines is the selected report rendered line by line, or nil while it
// loads.
func (m Model) bodyLines() []string {
	t, ok := m.tables[m.selected]
	if !ok {
		return nil
	}
	styles := ui.TableStyles()
	return strings.Split(table.RenderStyled(t, &styles), "\n")
}

func (m Model) maxScroll() int {
	total := len(m.bodyLines())
	visible := m.visibleLines()
	if total <= visible {
		return 0
	}
	return total - visible
}

func (m Model) visibleLines() int {
	if m.height == 0 {
		return 20
	}
	// Reserve: header(1) + tabs(1) + divider(2) + error(1) + footer(1)
	reserved := 6
	return max(3, m.height-reserved)
}

// View renders the full browser.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTabs())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderBody())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("MEETINGBANK")

	var sourceInfo string
	if m.source != "" {
		sourceInfo = ui.DimStyle.Render(" — " + m.source)
	}

	return title + sourceInfo
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.reports))
	for i, r := range m.reports {
		label := strings.ToUpper(r.ID)
		if i == m.selected {
			tabs[i] = ui.TabActiveStyle.Render("[" + label + "]")
		} else {
			tabs[i] = ui.TabStyle.Render(" " + label + " ")
		}
	}
	return truncateToWidth(strings.Join(tabs, " "), m.width)
}

func (m Model) renderBody() string {
	height := m.visibleLines()
	var lines []string

	switch {
	case m.loading[m.selected]:
		lines = append(lines, ui.SpinnerStyle.Render("⟳ Loading "+m.reports[m.selected].Title+"..."))
	case m.errorMessage != "":
		lines = append(lines, ui.DimStyle.Render("  Press r to retry"))
	default:
		body := m.bodyLines()
		start := min(m.scroll, len(body))
		end := min(start+height, len(body))
		lines = append(lines, body[start:end]...)
	}

	// Pad to height
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderErrorBar() string {
	return ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
}

func (m Model) renderFooter() string {
	parts := []string{
		ui.FooterKeyStyle.Render("Tab") + ui.FooterDescStyle.Render(" Next"),
		ui.FooterKeyStyle.Render("S-Tab") + ui.FooterDescStyle.Render(" Prev"),
		ui.FooterKeyStyle.Render("j/k") + ui.FooterDescStyle.Render(" Scroll"),
		ui.FooterKeyStyle.Render("r") + ui.FooterDescStyle.Render(" Reload"),
		ui.FooterKeyStyle.Render("q") + ui.FooterDescStyle.Render(" Quit"),
	}
	status := ui.StatusStyle.Render(fmt.Sprintf("%d/%d", m.selected+1, len(m.reports)))
	return strings.Join(parts, "  ") + "  " + status
}

// Helpers

func truncateToWidth(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible <= width {
		return s
	}
	// Simple truncation for non-styled strings
	runes := []rune(s)
	if len(runes) > width-1 {
		return string(runes[:width-1]) + "…"
	}
	return s
}
