// Package tui runs a session inside a Bubble Tea program. Bubble Tea
// delivers keys and ticks to Update one at a time, so the session never sees
// two events at once.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sethgrid/tamagotchi/internal/render"
	"github.com/sethgrid/tamagotchi/internal/session"
)

// TickMsg fires once per tick for the timer generation it was scheduled for.
type TickMsg struct {
	Generation uint64
	At         time.Time
}

type Model struct {
	session *session.Session
}

func New(s *session.Session) Model {
	return Model{session: s}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.apply(m.session.HandleKey(keyFromMsg(msg)))
	case TickMsg:
		return m, m.apply(m.session.Tick(msg.Generation))
	}
	return m, nil
}

func (m Model) View() string {
	return render.Screen(m.session.Snapshot())
}

func (m Model) apply(effect session.Effect) tea.Cmd {
	switch effect {
	case session.EffectQuit:
		return tea.Quit
	case session.EffectSchedule:
		return tickCmd(m.session.Timer())
	}
	return nil
}

// tickCmd schedules the next tick of the timer's current generation.
func tickCmd(timer session.Timer) tea.Cmd {
	generation := timer.Generation()
	return tea.Tick(timer.Interval(), func(t time.Time) tea.Msg {
		return TickMsg{Generation: generation, At: t}
	})
}

// keyFromMsg splits a key into its name and modifiers, so ctrl+s becomes
// {Name: "s", Ctrl: true} and alt+f becomes {Name: "f", Alt: true}.
func keyFromMsg(msg tea.KeyMsg) session.Key {
	key := session.Key{Alt: msg.Alt}
	if msg.Type == tea.KeyRunes {
		key.Name = strings.ToLower(string(msg.Runes))
		return key
	}

	name := tea.Key{Type: msg.Type}.String()
	key.Name, key.Ctrl = strings.CutPrefix(name, "ctrl+")
	return key
}
