package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/strange/internal/attractor"
	"github.com/san-kum/strange/internal/dynamo"
)

func newTestExplorer(t *testing.T) *Explorer {
	t.Helper()
	return NewExplorer(attractor.NewClifford(), 10_000, "fire", "eq_hist", "ember")
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExplorerView(t *testing.T) {
	e := newTestExplorer(t)
	view := e.View()

	if !strings.Contains(view, "clifford") {
		t.Error("view missing map name")
	}
	if !strings.Contains(view, "a=") {
		t.Error("view missing coefficient readout")
	}
	if !strings.Contains(view, "10k") {
		t.Error("view missing sample count")
	}
}

func TestExplorerNudge(t *testing.T) {
	e := newTestExplorer(t)
	before := e.m.(dynamo.Configurable).Coeffs()["a"]

	next, _ := e.Update(keyMsg("A"))
	e = next.(*Explorer)

	after := e.m.(dynamo.Configurable).Coeffs()["a"]
	if after <= before {
		t.Errorf("uppercase A should raise a: %f -> %f", before, after)
	}
}

func TestExplorerSampleScaling(t *testing.T) {
	e := newTestExplorer(t)

	next, _ := e.Update(keyMsg("+"))
	e = next.(*Explorer)
	if e.samples != 20_000 {
		t.Errorf("samples = %d, want 20000", e.samples)
	}

	next, _ = e.Update(keyMsg("-"))
	e = next.(*Explorer)
	next, _ = e.Update(keyMsg("-"))
	e = next.(*Explorer)
	if e.samples != 5_000 {
		t.Errorf("samples = %d, want 5000", e.samples)
	}
}

func TestExplorerMapCycle(t *testing.T) {
	e := newTestExplorer(t)

	seen := map[string]bool{e.mapName: true}
	for range attractor.Names() {
		next, _ := e.Update(keyMsg("m"))
		e = next.(*Explorer)
		seen[e.mapName] = true
	}

	if len(seen) != len(attractor.Names()) {
		t.Errorf("map cycling visited %d maps, want %d", len(seen), len(attractor.Names()))
	}
	if e.mapName != "clifford" {
		t.Errorf("full cycle should return to clifford, got %s", e.mapName)
	}
}

func TestExplorerQuit(t *testing.T) {
	e := newTestExplorer(t)
	_, cmd := e.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{500, "500"},
		{1_000, "1k"},
		{250_000, "250k"},
		{2_000_000, "2M"},
		{1_500_000, "1500k"},
	}
	for _, tt := range tests {
		if got := formatCount(tt.n); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
