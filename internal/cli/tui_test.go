package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmendler/stripeplan/pkg/plan"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

func pickerFixture() ConfigPickerModel {
	opts := plan.Options{
		Wall:         stripe.Wall{LengthCm: 480, HeightCm: 260},
		ColoredColor: "#4a7ba6",
		WhiteColor:   "#f5f0e8",
	}
	configs := stripe.Enumerate(opts.Wall, stripe.Constraint{MinCm: 20, MaxCm: 45}, 1)
	return NewConfigPickerModel(opts, configs)
}

func TestConfigPickerNavigation(t *testing.T) {
	m := pickerFixture()
	if len(m.Configs) != 7 {
		t.Fatalf("fixture has %d configs, want 7", len(m.Configs))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(ConfigPickerModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(ConfigPickerModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.Cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(ConfigPickerModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want clamped at 0", m.Cursor)
	}
}

func TestConfigPickerSelect(t *testing.T) {
	m := pickerFixture()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ConfigPickerModel)
	if m.Selected == nil {
		t.Fatal("enter did not select a configuration")
	}
	if m.Selected.Value() != m.Configs[0].Value() {
		t.Errorf("selected %q, want cursor config %q", m.Selected.Value(), m.Configs[0].Value())
	}
	if cmd == nil {
		t.Error("enter should return tea.Quit")
	}
}

func TestConfigPickerQuitWithoutSelection(t *testing.T) {
	m := pickerFixture()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(ConfigPickerModel)
	if m.Selected != nil {
		t.Error("q should not select")
	}
	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
}

func TestStripeCells(t *testing.T) {
	cfg := stripe.Config{Colored: 9, White: 8, ColoredCm: 28.2, WhiteCm: 28.2}
	cells := stripeCells(cfg, 44)

	if len(cells) != 44 {
		t.Fatalf("got %d cells, want 44", len(cells))
	}
	if !cells[0] {
		t.Error("first cell should be colored")
	}
	if !cells[len(cells)-1] {
		t.Error("last cell should be colored")
	}

	transitions := 0
	for i := 1; i < len(cells); i++ {
		if cells[i] != cells[i-1] {
			transitions++
		}
	}
	if transitions != cfg.Total()-1 {
		t.Errorf("got %d transitions, want %d (one per stripe boundary)", transitions, cfg.Total()-1)
	}
}

func TestStripeCellsDegenerate(t *testing.T) {
	cells := stripeCells(stripe.Config{}, 10)
	if len(cells) != 10 {
		t.Fatalf("got %d cells, want 10", len(cells))
	}
}

func TestConfigPickerViewRenders(t *testing.T) {
	m := pickerFixture()
	view := m.View()
	if view == "" {
		t.Fatal("view is empty")
	}
}
