package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/sethgrid/tamagotchi/internal/conditions"
	"github.com/sethgrid/tamagotchi/internal/session"
)

const (
	helpLine      = "To interact with your Tamagotchi, simply press the key corresponding to your desired command."
	careCommands  = "Available commands: (c)lean / (f)eed / (h)eal / (s)leep / (w)ake / e(x)it."
	startCommands = "Available commands: (n)ew / e(x)it."
	divider       = "---"
)

// Screen draws one full frame for the session. The caller replaces the
// previous frame with it.
func Screen(snap session.Snapshot) string {
	st, rules := snap.Pet, snap.Rules

	sleepLabel := "awake"
	if st.Sleeping {
		sleepLabel = "sleeping"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s's status - Age: %s. Food: %s. Energy: %s (%s). Poop: %s. Food since last poop: %d\n",
		st.Name,
		Highlight(st.Age, rules.MaxAge, true),
		Highlight(st.Food, rules.MaxFood, false),
		Highlight(st.Energy, rules.MaxEnergy, false),
		sleepLabel,
		Highlight(st.Poop, rules.MaxPoop, true),
		st.FoodSincePoop,
	)

	status := conditions.DeriveStatus(st, rules)
	fmt.Fprintf(&b, "Mood: %s\n\n", conditions.FormatConditions(status.AllOrdered))
	b.WriteString(GetStaticArt(status))
	b.WriteString("\n" + divider + "\n")

	b.WriteString(helpLine + "\n")
	if snap.Mode == session.ModeRunning {
		b.WriteString(careCommands + "\n")
	} else {
		b.WriteString(startCommands + "\n")
	}
	b.WriteString(divider + "\n")

	b.WriteString(colorize(colorYellow, snap.Message) + "\n")

	if st.Alive && st.Diseased {
		b.WriteString(colorize(colorRed, DiseaseWarning(snap)) + "\n")
	}
	return b.String()
}

// DiseaseWarning counts down the time left before disease kills the pet.
func DiseaseWarning(snap session.Snapshot) string {
	remaining := time.Duration(snap.Rules.MaxTimeSpentDiseased-snap.Pet.TimeSpentDiseased) * snap.Rules.TickInterval()
	return fmt.Sprintf("WARNING: Your pet has a disease! It will die in %d seconds if you do not (h)eal it", int(remaining.Seconds()))
}
