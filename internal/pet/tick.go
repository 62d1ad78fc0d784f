package pet

// Tick advances the pet by one time unit. The checks run in a fixed order:
// old age, then hunger, then disease. The first death ends the tick, so a pet
// that dies does not also spend energy or roll for disease.
//
// It reports whether the pet died during this tick.
func (p *Pet) Tick() bool {
	if !p.alive {
		return false
	}

	p.age++
	if p.age >= p.rules.MaxAge {
		p.die(CauseOldAge)
		return true
	}

	p.food--
	if p.food <= 0 {
		p.food = 0
		p.die(CauseStarvation)
		return true
	}

	if p.diseased && p.timeSpentDiseased+1 >= p.rules.MaxTimeSpentDiseased {
		p.die(CauseDisease)
		return true
	}

	if p.sleeping {
		p.energy = clamp(p.energy+1, 0, p.rules.MaxEnergy)
	} else {
		p.energy = clamp(p.energy-1, 0, p.rules.MaxEnergy)
		// Exhaustion forces sleep.
		if p.energy <= 0 {
			p.sleeping = true
		}
	}

	if p.diseased {
		p.timeSpentDiseased++
	} else if succeeds(p.roller, p.rules.RiskOfDisease) {
		p.diseased = true
	}

	return false
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
