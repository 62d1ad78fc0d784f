package pet

import (
	"github.com/google/uuid"
)

type Cause string

const (
	CauseOldAge     Cause = "old age"
	CauseStarvation Cause = "lack of food"
	CauseDisease    Cause = "disease"
	CauseHygiene    Cause = "poor hygiene"
)

// Pet is a single tamagotchi. Its fields change only through Tick and the
// care methods; once dead it never changes again.
type Pet struct {
	id     uuid.UUID
	name   string
	rules  Rules
	roller Roller

	food              int
	age               int
	energy            int
	sleeping          bool
	poop              int
	foodSincePoop     int
	diseased          bool
	timeSpentDiseased int
	alive             bool
	causeOfDeath      Cause
}

// New hatches a pet with full food and energy.
func New(name string, rules Rules, roller Roller) *Pet {
	return &Pet{
		id:     uuid.New(),
		name:   name,
		rules:  rules,
		roller: roller,
		food:   rules.MaxFood,
		energy: rules.MaxEnergy,
		alive:  true,
	}
}

// Status is a read-only copy of a pet for display.
type Status struct {
	ID                uuid.UUID
	Name              string
	Food              int
	Age               int
	Energy            int
	Sleeping          bool
	Poop              int
	FoodSincePoop     int
	Diseased          bool
	TimeSpentDiseased int
	Alive             bool
	CauseOfDeath      Cause
}

func (p *Pet) Status() Status {
	return Status{
		ID:                p.id,
		Name:              p.name,
		Food:              p.food,
		Age:               p.age,
		Energy:            p.energy,
		Sleeping:          p.sleeping,
		Poop:              p.poop,
		FoodSincePoop:     p.foodSincePoop,
		Diseased:          p.diseased,
		TimeSpentDiseased: p.timeSpentDiseased,
		Alive:             p.alive,
		CauseOfDeath:      p.causeOfDeath,
	}
}

func (p *Pet) ID() uuid.UUID { return p.id }
func (p *Pet) Name() string { return p.name }
func (p *Pet) Rules() Rules { return p.rules }
func (p *Pet) Food() int { return p.food }
func (p *Pet) Age() int { return p.age }
func (p *Pet) Energy() int { return p.energy }
func (p *Pet) Sleeping() bool { return p.sleeping }
func (p *Pet) Poop() int { return p.poop }
func (p *Pet) FoodSincePoop() int { return p.foodSincePoop }
func (p *Pet) Diseased() bool { return p.diseased }
func (p *Pet) TimeSpentDiseased() int { return p.timeSpentDiseased }
func (p *Pet) Alive() bool { return p.alive }
func (p *Pet) CauseOfDeath() Cause { return p.causeOfDeath }

// die marks the pet dead. Callers check alive first; a second call would
// only overwrite the cause.
func (p *Pet) die(cause Cause) {
	p.alive = false
	p.causeOfDeath = cause
}
