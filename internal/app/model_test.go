package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwulff/meetingbank/internal/catalog"
	"github.com/jwulff/meetingbank/internal/db"
	"github.com/jwulff/meetingbank/internal/table"
)

func newTestStore(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Create(filepath.Join(t.TempDir(), "meetingbank.sqlite"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	_, err = store.InsertTranscripts(context.Background(), []catalog.Transcript{
		{MeetingID: "1", City: "A", SpeakerCount: 3, WordCount: 100, Text: "budget"},
		{MeetingID: "2", City: "A", SpeakerCount: 5, WordCount: 200, Text: "housing"},
		{MeetingID: "3", City: "B", SpeakerCount: 4, WordCount: 150, Text: "parks"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	return store
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(context.Background(), newTestStore(t), catalog.DefaultOptions(), "test.sqlite")
	m.width = 100
	m.height = 30
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case KeyTab:
		return tea.KeyMsg{Type: tea.KeyTab}
	case KeyShiftTab:
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case KeyCtrlC:
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	updated, _ := m.Update(cmd())
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if len(m.reports) != 9 {
		t.Errorf("got %d reports, want 9", len(m.reports))
	}
	if m.selected != 0 {
		t.Errorf("selected = %d, want 0", m.selected)
	}
	if len(m.tables) != 0 {
		t.Error("new model should have no cached tables")
	}
}

func TestInitLoadsFirstReport(t *testing.T) {
	m := newTestModel(t)

	cmd := m.Init()
	if !m.loading[0] {
		t.Error("first report should be loading")
	}

	m = run(t, m, cmd)

	if m.loading[0] {
		t.Error("first report should have finished loading")
	}
	tbl, ok := m.tables[0]
	if !ok {
		t.Fatal("first report not cached")
	}
	if len(tbl.Rows) != 3 {
		t.Errorf("got %d rows, want 3", len(tbl.Rows))
	}
	if !strings.Contains(m.View(), "Q1 TOP 5 MEETINGS BY SPEAKER COUNT") {
		t.Error("view should show the loaded table")
	}
}

func TestTabCyclesReports(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(key(KeyTab))
	model := updated.(Model)
	if model.selected != 1 {
		t.Errorf("selected = %d, want 1", model.selected)
	}
	if cmd == nil {
		t.Error("selecting an unloaded report should load it")
	}

	updated, _ = model.Update(key(KeyShiftTab))
	model = updated.(Model)
	updated, _ = model.Update(key(KeyShiftTab))
	model = updated.(Model)
	if model.selected != 8 {
		t.Errorf("selected = %d, want 8 after wrapping", model.selected)
	}
}

func TestCachedReportIsNotReloaded(t *testing.T) {
	m := newTestModel(t)
	m.tables[1] = table.Table{Title: "cached"}

	_, cmd := m.Update(key(KeyL))
	if cmd != nil {
		t.Error("cached report should not reload")
	}
}

func TestReloadDropsCache(t *testing.T) {
	m := newTestModel(t)
	m.tables[0] = table.Table{Title: "stale"}

	updated, cmd := m.Update(key(KeyReload))
	model := updated.(Model)
	if _, ok := model.tables[0]; ok {
		t.Error("reload should drop the cached table")
	}

	model = run(t, model, cmd)
	if model.tables[0].Title == "stale" {
		t.Error("reload should rebuild the table")
	}
}

func TestReportError(t *testing.T) {
	m := newTestModel(t)
	m.loading[0] = true

	updated, _ := m.Update(ReportErrorMsg{Index: 0, Err: errors.New("database is locked")})
	model := updated.(Model)

	if model.errorMessage != "database is locked" {
		t.Errorf("errorMessage = %q", model.errorMessage)
	}
	if model.loading[0] {
		t.Error("failed report should not stay loading")
	}
	if !strings.Contains(model.View(), "database is locked") {
		t.Error("view should show the error")
	}
}

func TestErrorForOtherReportIgnored(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(ReportErrorMsg{Index: 4, Err: errors.New("boom")})
	if updated.(Model).errorMessage != "" {
		t.Error("error for an unselected report should not be shown")
	}
}

func TestScrollBounds(t *testing.T) {
	m := newTestModel(t)
	m.height = 8 // three visible lines
	m = run(t, m, m.Init())

	for i := 0; i < 50; i++ {
		updated, _ := m.Update(key(KeyJ))
		m = updated.(Model)
	}
	if m.scroll != m.maxScroll() {
		t.Errorf("scroll = %d, want max %d", m.scroll, m.maxScroll())
	}
	if m.scroll == 0 {
		t.Error("expected to scroll past the first line")
	}

	for i := 0; i < 50; i++ {
		updated, _ := m.Update(key(KeyK))
		m = updated.(Model)
	}
	if m.scroll != 0 {
		t.Errorf("scroll = %d, want 0", m.scroll)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	for _, k := range []string{KeyQuit, KeyQuitUpper, KeyCtrlC} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := New(context.Background(), newTestStore(t), catalog.DefaultOptions(), "")
	if m.View() != "Initializing..." {
		t.Errorf("View() = %q", m.View())
	}
}
