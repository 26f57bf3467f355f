package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/storage"
)

func TestBoardWithoutStore(t *testing.T) {
	m := NewBoardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "disabled") {
		t.Error("board without a store should say history is disabled")
	}
}

func TestBoardListsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{Player: "ann", Score: 120})
	store.SaveRun(storage.Run{Player: "bob", Score: 300})

	m := NewBoardModel(store, 100, 30)
	view := m.View()
	for _, want := range []string{"SKYHOP RUNS", "ann", "bob", "2 runs"} {
		if !strings.Contains(view, want) {
			t.Errorf("board view missing %q", want)
		}
	}
	if m.runs[0].Player != "bob" {
		t.Errorf("top view should rank bob first, got %s", m.runs[0].Player)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(BoardModel)
	if m.ActiveView() != BoardRecent {
		t.Fatalf("view = %v, expected Recent", m.ActiveView())
	}
	// Newest first
	if m.runs[0].Player != "bob" || m.runs[1].Player != "ann" {
		t.Errorf("recent order = %s, %s", m.runs[0].Player, m.runs[1].Player)
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(BoardModel)
	if cmd == nil || m.View() != "" {
		t.Error("q should quit the board")
	}
}

func TestBoardEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if !strings.Contains(NewBoardModel(store, 80, 24).View(), "No runs recorded yet") {
		t.Error("empty board should say so")
	}
}
