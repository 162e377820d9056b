package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/games/bee"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

func testSet(t *testing.T) *puzzle.Set {
	t.Helper()
	s, err := puzzle.NewSet("easy", map[string][]string{
		"aceorst": {"create", "coaster", "toast", "star", "cast", "taco"},
	})
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}
	return s
}

func loadedModel(t *testing.T) PlayModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	cfg.Letters = "aceorst"

	m := NewPlayModel(PlayOptions{
		Runtime: cfg,
		Config:  config.DefaultBeeConfig(),
		Load:    func() (*puzzle.Set, error) { return testSet(t), nil },
	})
	next, _ := m.Update(packLoadedMsg{set: testSet(t)})
	return next.(PlayModel)
}

func typeWord(t *testing.T, m PlayModel, word string) PlayModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(word)})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(PlayModel)
}

func TestDrawHive(t *testing.T) {
	s := core.NewScreen(hiveW, hiveH)
	drawHive(s, puzzle.Letters("aceorst"))

	center := hiveSlots[0]
	cell := s.GetCell(center.x+2, center.y+1)
	if cell.Rune != 'A' || cell.Color != core.ColorBrightYellow {
		t.Errorf("center cell = %+v, expected bright yellow A", cell)
	}

	for i := 1; i < puzzle.Size; i++ {
		slot := hiveSlots[i]
		want := rune(strings.ToUpper("aceorst")[i])
		if got := s.GetCell(slot.x+2, slot.y+1).Rune; got != want {
			t.Errorf("slot %d = %q, expected %q", i, got, want)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionProgress},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestPlayModelSubmitsGuesses(t *testing.T) {
	m := loadedModel(t)
	if m.game.State() != bee.StateReady {
		t.Fatalf("State() = %v, expected ready", m.game.State())
	}

	m = typeWord(t, m, "taco")
	if m.game.Found() != 1 {
		t.Errorf("Found() = %d, expected 1", m.game.Found())
	}
	if m.toast != "Correct!" {
		t.Errorf("toast = %q, expected %q", m.toast, "Correct!")
	}
	if m.input.Value() != "" {
		t.Errorf("input = %q, expected it cleared", m.input.Value())
	}

	m = typeWord(t, m, "taco")
	if m.toast != "Already guessed" {
		t.Errorf("toast = %q, expected %q", m.toast, "Already guessed")
	}
}

func TestPlayModelRevealNeedsConfirmation(t *testing.T) {
	m := loadedModel(t)
	reveal := tea.KeyMsg{Type: tea.KeyCtrlX}

	next, _ := m.Update(reveal)
	m = next.(PlayModel)
	if m.game.State() == bee.StateWon {
		t.Fatal("first ctrl+x should only ask for confirmation")
	}

	next, _ = m.Update(reveal)
	m = next.(PlayModel)
	if m.game.State() != bee.StateWon || !m.game.Cheated() {
		t.Errorf("after confirming, state = %v cheated = %v, expected won and cheated", m.game.State(), m.game.Cheated())
	}
	if !m.resultSaved {
		t.Error("result should be marked saved after reveal")
	}
}

func TestPlayModelHintFillsInput(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(PlayModel)
	if m.game.Hints() != 1 {
		t.Errorf("Hints() = %d, expected 1", m.game.Hints())
	}
	if m.input.Value() == "" {
		t.Error("hint should prefill the input")
	}
}

func TestPlayModelEscReturnsToMenu(t *testing.T) {
	m := loadedModel(t)
	m.opts.Embedded = true

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ta")})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(PlayModel)
	if m.BackToMenu() || m.input.Value() != "" {
		t.Fatalf("first esc should only clear the input, got back=%v input=%q", m.BackToMenu(), m.input.Value())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(PlayModel).BackToMenu() {
		t.Error("esc on an empty input should return to the menu")
	}
}

func TestStatsTickReschedules(t *testing.T) {
	m := loadedModel(t)

	_, cmd := m.Update(StatsTickMsg{ID: m.tickID, Time: time.Now()})
	if cmd == nil {
		t.Fatal("a tick for the running puzzle should schedule the next one")
	}
}

func TestStatsTickIgnoresOtherPuzzles(t *testing.T) {
	old := loadedModel(t)
	m := loadedModel(t)
	if old.tickID == m.tickID {
		t.Fatalf("tickID = %d for both puzzles, expected distinct ids", m.tickID)
	}

	_, cmd := m.Update(StatsTickMsg{ID: old.tickID, Time: time.Now()})
	if cmd != nil {
		t.Error("a tick from an earlier puzzle should not be rescheduled")
	}
}

func TestStatsTickStopsAfterWin(t *testing.T) {
	m := loadedModel(t)
	reveal := tea.KeyMsg{Type: tea.KeyCtrlX}
	next, _ := m.Update(reveal)
	next, _ = next.Update(reveal)
	m = next.(PlayModel)
	if m.game.State() != bee.StateWon {
		t.Fatalf("State() = %v, expected won", m.game.State())
	}

	_, cmd := m.Update(StatsTickMsg{ID: m.tickID, Time: time.Now()})
	if cmd != nil {
		t.Error("the refresh should stop once the puzzle is won")
	}
}

func TestRenderStats(t *testing.T) {
	out := renderStats(bee.StatsSnapshot{Found: 2, Total: 6, Percent: 33})
	if !strings.Contains(out, "2 of 6 (33%)") {
		t.Errorf("renderStats missing progress line:\n%s", out)
	}
	if strings.Contains(out, "Average") {
		t.Error("average should be hidden without found words")
	}
}
