package pet

import (
	"testing"
)

func TestTickExample(t *testing.T) {
	p := New("Pip", calmRules(), FixedRoller(100))

	if died := p.Tick(); died {
		t.Fatal("Expected pet to survive one tick")
	}
	if p.Age() != 1 || p.Food() != 49 || p.Energy() != 49 || !p.Alive() {
		t.Errorf("After one tick got age=%d food=%d energy=%d alive=%v, want 1/49/49/true",
			p.Age(), p.Food(), p.Energy(), p.Alive())
	}
}

func TestTickDiesOfOldAge(t *testing.T) {
	rules := calmRules()
	rules.MaxFood = rules.MaxAge * 2
	p := New("Pip", rules, FixedRoller(100))

	for i := 0; i < rules.MaxAge; i++ {
		p.Tick()
		checkInvariants(t, p)
	}

	if p.Alive() {
		t.Fatal("Expected pet to die of old age")
	}
	if p.CauseOfDeath() != CauseOldAge {
		t.Errorf("Expected cause %q, got %q", CauseOldAge, p.CauseOfDeath())
	}
	if p.Age() != rules.MaxAge {
		t.Errorf("Expected age %d, got %d", rules.MaxAge, p.Age())
	}
}

func TestTickStarves(t *testing.T) {
	p := New("Pip", calmRules(), FixedRoller(100))
	p.food = 1
	energy := p.Energy()

	if died := p.Tick(); !died {
		t.Fatal("Expected Tick to report death")
	}
	if p.Food() != 0 {
		t.Errorf("Expected food 0, got %d", p.Food())
	}
	if p.CauseOfDeath() != CauseStarvation {
		t.Errorf("Expected cause %q, got %q", CauseStarvation, p.CauseOfDeath())
	}
	if p.Energy() != energy {
		t.Errorf("Starving tick should not spend energy: got %d, want %d", p.Energy(), energy)
	}
}

func TestTickOldAgeBeforeHunger(t *testing.T) {
	p := New("Pip", calmRules(), FixedRoller(100))
	p.age = p.rules.MaxAge - 1
	p.food = 1

	p.Tick()
	if p.CauseOfDeath() != CauseOldAge {
		t.Errorf("Expected cause %q, got %q", CauseOldAge, p.CauseOfDeath())
	}
	if p.Food() != 1 {
		t.Errorf("Old age should stop the tick before food drops, got food %d", p.Food())
	}
}

func TestTickHungerBeforeDisease(t *testing.T) {
	p := New("Pip", calmRules(), FixedRoller(100))
	p.food = 1
	p.diseased = true
	p.timeSpentDiseased = p.rules.MaxTimeSpentDiseased - 1

	p.Tick()
	if p.CauseOfDeath() != CauseStarvation {
		t.Errorf("Expected cause %q, got %q", CauseStarvation, p.CauseOfDeath())
	}
}

func TestTickDiesOfDisease(t *testing.T) {
	rules := calmRules()
	p := New("Pip", rules, FixedRoller(100))
	p.diseased = true

	ticks := 0
	for p.Alive() {
		p.Tick()
		checkInvariants(t, p)
		ticks++
	}

	if p.CauseOfDeath() != CauseDisease {
		t.Errorf("Expected cause %q, got %q", CauseDisease, p.CauseOfDeath())
	}
	if ticks != rules.MaxTimeSpentDiseased {
		t.Errorf("Expected death after %d ticks, got %d", rules.MaxTimeSpentDiseased, ticks)
	}
}

func TestTickEnergy(t *testing.T) {
	t.Run("awake pet tires", func(t *testing.T) {
		p := New("Pip", calmRules(), FixedRoller(100))
		p.Tick()
		if p.Energy() != DefaultMaxEnergy-1 {
			t.Errorf("Expected energy %d, got %d", DefaultMaxEnergy-1, p.Energy())
		}
	})

	t.Run("sleeping pet recovers up to max", func(t *testing.T) {
		p := New("Pip", calmRules(), FixedRoller(100))
		p.Tick()
		p.PutToSleep()
		p.Tick()
		p.Tick()
		p.Tick()
		if p.Energy() != DefaultMaxEnergy {
			t.Errorf("Expected energy %d, got %d", DefaultMaxEnergy, p.Energy())
		}
	})

	t.Run("exhausted pet falls asleep", func(t *testing.T) {
		p := New("Pip", calmRules(), FixedRoller(100))
		p.energy = 1
		p.Tick()
		if !p.Sleeping() {
			t.Error("Expected pet to fall asleep")
		}
		if p.Energy() != 0 {
			t.Errorf("Expected energy 0, got %d", p.Energy())
		}
		if o := p.WakeUp(); o.OK || o.Reason != ReasonTooTired {
			t.Errorf("WakeUp() = %+v, want %q", o, ReasonTooTired)
		}
	})
}

func TestTickDisease(t *testing.T) {
	tests := []struct {
		name     string
		risk     int
		roll     int
		diseased bool
	}{
		{name: "roll under risk", risk: 5, roll: 3, diseased: true},
		{name: "roll at risk", risk: 5, roll: 5, diseased: true},
		{name: "roll over risk", risk: 5, roll: 6, diseased: false},
		{name: "zero risk", risk: 0, roll: 1, diseased: false},
		{name: "certain risk", risk: 100, roll: 100, diseased: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			rules.RiskOfDisease = tt.risk
			p := New("Pip", rules, FixedRoller(tt.roll))
			p.Tick()
			if p.Diseased() != tt.diseased {
				t.Errorf("Diseased() = %v, want %v", p.Diseased(), tt.diseased)
			}
			if p.TimeSpentDiseased() != 0 {
				t.Errorf("Disease caught this tick should not progress yet, got %d", p.TimeSpentDiseased())
			}
		})
	}
}

func TestTickDiseaseProgresses(t *testing.T) {
	p := New("Pip", calmRules(), FixedRoller(100))
	p.diseased = true
	p.Tick()
	p.Tick()
	if p.TimeSpentDiseased() != 2 {
		t.Errorf("Expected timeSpentDiseased 2, got %d", p.TimeSpentDiseased())
	}
}
