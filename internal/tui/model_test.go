package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sethgrid/tamagotchi/internal/pet"
	"github.com/sethgrid/tamagotchi/internal/session"
)

func newModel(t *testing.T, rules pet.Rules) (Model, *session.Session) {
	t.Helper()
	s, err := session.New(rules, pet.FixedRoller(100), nil)
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	return New(s), s
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyFromMsg(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected session.Key
	}{
		{name: "letter", msg: runeKey('f'), expected: session.Key{Name: "f"}},
		{name: "shifted letter", msg: runeKey('N'), expected: session.Key{Name: "n"}},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, expected: session.Key{Name: "c", Ctrl: true}},
		{name: "ctrl+s", msg: tea.KeyMsg{Type: tea.KeyCtrlS}, expected: session.Key{Name: "s", Ctrl: true}},
		{name: "alt+f", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true}, expected: session.Key{Name: "f", Alt: true}},
		{name: "alt+ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC, Alt: true}, expected: session.Key{Name: "c", Ctrl: true, Alt: true}},
		{name: "escape", msg: tea.KeyMsg{Type: tea.KeyEsc}, expected: session.Key{Name: "esc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyFromMsg(tt.msg); got != tt.expected {
				t.Errorf("keyFromMsg(%v) = %+v, want %+v", tt.msg, got, tt.expected)
			}
		})
	}
}

func TestNewSchedulesTick(t *testing.T) {
	m, s := newModel(t, pet.DefaultRules())

	_, cmd := m.Update(runeKey('n'))
	if cmd == nil {
		t.Fatal("Expected (n)ew to schedule a tick")
	}
	if s.Mode() != session.ModeRunning {
		t.Errorf("Expected mode %v, got %v", session.ModeRunning, s.Mode())
	}
}

func TestTickMsgAdvancesPet(t *testing.T) {
	rules := pet.DefaultRules()
	rules.RiskOfDisease = 0
	m, s := newModel(t, rules)
	m.Update(runeKey('n'))

	_, cmd := m.Update(TickMsg{Generation: s.Timer().Generation()})
	if cmd == nil {
		t.Error("Expected a living pet to schedule the next tick")
	}
	if age := s.Snapshot().Pet.Age; age != 1 {
		t.Errorf("Expected age 1, got %d", age)
	}

	_, cmd = m.Update(TickMsg{Generation: s.Timer().Generation() + 1})
	if cmd != nil {
		t.Error("Expected a stale tick not to reschedule")
	}
	if age := s.Snapshot().Pet.Age; age != 1 {
		t.Errorf("Stale tick aged the pet to %d", age)
	}
}

func TestDeathEndsTicking(t *testing.T) {
	rules := pet.DefaultRules()
	rules.MaxAge = 1
	m, s := newModel(t, rules)
	m.Update(runeKey('n'))

	_, cmd := m.Update(TickMsg{Generation: s.Timer().Generation()})
	if cmd != nil {
		t.Error("Expected no further ticks after death")
	}
	if !strings.Contains(m.View(), "Your pet died due to old age") {
		t.Errorf("Expected the death message on screen, got:\n%s", m.View())
	}
}

func TestModifiedKeysDoNotCare(t *testing.T) {
	msgs := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true},
		{Type: tea.KeyCtrlS},
	}

	for _, msg := range msgs {
		m, s := newModel(t, pet.DefaultRules())
		m.Update(runeKey('n'))
		before := s.Snapshot().Pet

		if _, cmd := m.Update(msg); cmd != nil {
			t.Errorf("Update(%v) returned a command", msg)
		}
		if got := s.Snapshot().Pet; got != before {
			t.Errorf("Update(%v) changed the pet: %+v -> %+v", msg, before, got)
		}
		if !strings.Contains(m.View(), "Command not recognised") {
			t.Errorf("Expected %v to be rejected, got:\n%s", msg, m.View())
		}
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('x'), {Type: tea.KeyCtrlC}} {
		m, _ := newModel(t, pet.DefaultRules())
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("Expected %v to quit", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Expected %v to return tea.Quit", msg)
		}
	}
}

func TestViewShowsCommands(t *testing.T) {
	m, _ := newModel(t, pet.DefaultRules())
	if !strings.Contains(m.View(), "(n)ew") {
		t.Error("Expected the pre-game screen to offer (n)ew")
	}

	m.Update(runeKey('n'))
	if !strings.Contains(m.View(), "(f)eed") {
		t.Error("Expected the running screen to list care commands")
	}
}
