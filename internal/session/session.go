package session

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/sethgrid/tamagotchi/internal/pet"
)

const (
	msgWelcome       = "Welcome to the Tamagotchi CLI! When you're ready, press (n)ew to get started"
	msgBorn          = "A new Tamagotchi was born, keep it alive!"
	msgNotRecognised = "Command not recognised, try again."
	msgDiedFormat    = "Your pet died due to %s. Press (n)ew to start over."
)

var petNames = []string{
	"Pip",
	"Shadow",
	"Whisper",
	"Ember",
	"Spark",
	"Echo",
}

// namePicker is implemented by rollers that can also choose pet names, so a
// seeded roller reproduces names as well as rolls.
type namePicker interface {
	IntN(n int) int
}

func (s *Session) randomPetName() string {
	return petNames[s.pickName(len(petNames))]
}

type Mode int

const (
	ModePreGame Mode = iota
	ModeRunning
	ModePostDeath
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModePostDeath:
		return "post-death"
	default:
		return "pre-game"
	}
}

// Key is a single keypress: the key name plus its modifiers.
type Key struct {
	Name string
	Ctrl bool
	Alt  bool
}

func (k Key) plain() bool {
	return !k.Ctrl && !k.Alt
}

// Effect tells the caller what to do after a key or tick was handled.
type Effect int

const (
	EffectNone Effect = iota
	// EffectSchedule asks for the next tick of the current timer generation.
	EffectSchedule
	EffectQuit
)

// Session owns the current pet, its tick timer, and the last message shown
// to the player. It is not safe for concurrent use: keys and ticks must be
// delivered from one goroutine.
type Session struct {
	rules  pet.Rules
	roller   pet.Roller
	pickName func(n int) int
	logger   *log.Logger

	pet         *pet.Pet
	mode        Mode
	lastMessage string
	timer       Timer
}

// New validates rules and prepares a pre-game session with an idle pet.
func New(rules pet.Rules, roller pet.Roller, logger *log.Logger) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pickName := rand.IntN
	if p, ok := roller.(namePicker); ok {
		pickName = p.IntN
	}

	s := &Session{
		rules:       rules,
		roller:      roller,
		pickName:    pickName,
		logger:      logger,
		mode:        ModePreGame,
		lastMessage: msgWelcome,
		timer:       Timer{interval: rules.TickInterval()},
	}
	s.pet = pet.New(s.randomPetName(), rules, roller)
	return s, nil
}

func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Timer() Timer { return s.timer }

// Snapshot is everything needed to draw the screen.
type Snapshot struct {
	Mode    Mode
	Pet     pet.Status
	Rules   pet.Rules
	Message string
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Mode:    s.mode,
		Pet:     s.pet.Status(),
		Rules:   s.rules,
		Message: s.lastMessage,
	}
}

// HandleKey applies one keypress. Exit works in every mode; (n)ew only
// before the first game or after a death; care commands only while running.
func (s *Session) HandleKey(k Key) Effect {
	if (k.Name == "x" && k.plain()) || (k.Ctrl && !k.Alt && k.Name == "c") {
		s.timer.stop()
		s.logger.Info("session exiting", "mode", s.mode)
		return EffectQuit
	}

	if s.mode != ModeRunning {
		if k.Name == "n" && k.plain() {
			s.hatch()
			return EffectSchedule
		}
		return EffectNone
	}

	command, ok := s.command(k)
	if !ok {
		s.lastMessage = msgNotRecognised
		s.logger.Debug("command not recognised", "key", k.Name, "ctrl", k.Ctrl, "alt", k.Alt)
		return EffectNone
	}

	wasDiseased := s.pet.Diseased()
	outcome := command()
	s.lastMessage = outcome.Message
	s.logger.Debug("command handled", "key", k.Name, "ok", outcome.OK, "reason", outcome.Reason)

	if wasDiseased && !s.pet.Diseased() {
		s.logger.Info("pet cured", "id", s.pet.ID())
	}
	if !s.pet.Alive() {
		s.bury()
	}
	return EffectNone
}

func (s *Session) command(k Key) (func() pet.Outcome, bool) {
	if !k.plain() {
		return nil, false
	}
	switch k.Name {
	case "c":
		return s.pet.Clean, true
	case "f":
		return s.pet.Feed, true
	case "h":
		return s.pet.Heal, true
	case "s":
		return s.pet.PutToSleep, true
	case "w":
		return s.pet.WakeUp, true
	}
	return nil, false
}

// Tick advances the pet if generation still owns the timer. Stale ticks are
// dropped without touching the pet.
func (s *Session) Tick(generation uint64) Effect {
	if s.mode != ModeRunning || !s.timer.Owns(generation) {
		s.logger.Debug("stale tick dropped", "generation", generation, "current", s.timer.Generation())
		return EffectNone
	}

	wasDiseased := s.pet.Diseased()
	if died := s.pet.Tick(); died {
		s.bury()
		return EffectNone
	}
	if !wasDiseased && s.pet.Diseased() {
		s.logger.Info("pet fell ill", "id", s.pet.ID(), "age", s.pet.Age())
	}
	return EffectSchedule
}

func (s *Session) hatch() {
	s.pet = pet.New(s.randomPetName(), s.rules, s.roller)
	s.mode = ModeRunning
	s.lastMessage = msgBorn
	generation := s.timer.start()
	s.logger.Info("pet born", "id", s.pet.ID(), "name", s.pet.Name(), "generation", generation)
}

func (s *Session) bury() {
	s.timer.stop()
	s.mode = ModePostDeath
	s.lastMessage = fmt.Sprintf(msgDiedFormat, s.pet.CauseOfDeath())
	s.logger.Info("pet died", "id", s.pet.ID(), "name", s.pet.Name(), "cause", s.pet.CauseOfDeath(), "age", s.pet.Age())
}
