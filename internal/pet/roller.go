package pet

import (
	"math/rand/v2"
	"time"
)

// Roller is the source of chance for disease and healing.
type Roller interface {
	// Roll returns a uniformly distributed percentage in [1, 100].
	Roll() int
}

// RandRoller rolls from a seeded PCG generator so a game can be replayed.
type RandRoller struct {
	rnd *rand.Rand
}

// NewRandRoller seeds from the clock when seed is 0.
func NewRandRoller(seed uint64) *RandRoller {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandRoller{rnd: rand.New(rand.NewPCG(seed, seed>>32|seed<<32))}
}

func (r *RandRoller) Roll() int {
	return r.rnd.IntN(100) + 1
}

// IntN draws from the same generator as Roll. Sessions use it to pick pet
// names, so a seed reproduces those too.
func (r *RandRoller) IntN(n int) int {
	return r.rnd.IntN(n)
}

// FixedRoller always rolls the same percentage.
type FixedRoller int

func (f FixedRoller) Roll() int {
	return int(f)
}

// succeeds reports whether a roll lands at or below percent.
func succeeds(r Roller, percent int) bool {
	return percent > 0 && r.Roll() <= percent
}
