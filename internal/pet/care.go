package pet

// Feed gives the pet one unit of food. Sleeping or full pets refuse.
func (p *Pet) Feed() Outcome {
	if !p.alive {
		return deadOutcome
	}
	if p.sleeping {
		return failure(ReasonSleeping, "You can't feed a sleeping pet, wake it up first")
	}
	if p.food >= p.rules.MaxFood {
		return failure(ReasonFull, "Your tamagotchi is full")
	}

	p.food++
	p.digest()
	return success("Your tamagotchi was fed")
}

// digest counts food towards the next poop. Reaching maxPoop is fatal.
func (p *Pet) digest() {
	p.foodSincePoop++
	if p.foodSincePoop < p.rules.PoopingThreshold {
		return
	}

	p.poop++
	p.foodSincePoop = 0
	if p.poop >= p.rules.MaxPoop {
		p.die(CauseHygiene)
	}
}

func (p *Pet) Clean() Outcome {
	if !p.alive {
		return deadOutcome
	}
	if p.poop <= 0 {
		return failure(ReasonNothingToClean, "There isn't any poop to clean up")
	}

	p.poop--
	return success("You cleaned 1 poop up")
}

func (p *Pet) PutToSleep() Outcome {
	if !p.alive {
		return deadOutcome
	}
	if p.sleeping {
		return failure(ReasonAlreadyAsleep, "Your tamagotchi is already sleeping")
	}

	p.sleeping = true
	return success("Your tamagotchi was put to sleep")
}

// WakeUp fails until the pet has recovered minimumWakeupEnergy, even if it
// was put to sleep by hand.
func (p *Pet) WakeUp() Outcome {
	if !p.alive {
		return deadOutcome
	}
	if !p.sleeping {
		return failure(ReasonNotSleeping, "Your tamagotchi is not sleeping")
	}
	if p.energy < p.rules.MinimumWakeupEnergy {
		return failure(ReasonTooTired, "Your pet doesn't have the energy to wake up yet")
	}

	p.sleeping = false
	return success("Your tamagotchi was woken up")
}

// Heal is one independent attempt to cure disease. A failed attempt changes
// nothing and may simply be repeated.
func (p *Pet) Heal() Outcome {
	if !p.alive {
		return deadOutcome
	}
	if !p.diseased {
		return failure(ReasonNotDiseased, "Your pet doesn't have a disease that needs healing")
	}
	if !succeeds(p.roller, p.rules.ChanceOfHealing) {
		return failure(ReasonHealFailed, "Your tamagotchi was not healed, try again")
	}

	p.diseased = false
	p.timeSpentDiseased = 0
	return success("Your tamagotchi was healed of disease")
}
