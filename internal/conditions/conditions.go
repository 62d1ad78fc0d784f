package conditions

import (
	"github.com/sethgrid/tamagotchi/internal/pet"
)

type Condition string

const (
	CondDead     Condition = "dead"
	CondSick     Condition = "sick"
	CondAsleep   Condition = "asleep"
	CondStarving Condition = "starving"
	CondHungry   Condition = "hungry"
	CondTired    Condition = "tired"
	CondDirty    Condition = "dirty"
	CondOld      Condition = "old"
	CondHappy    Condition = "happy"
)

type DerivedStatus struct {
	Conditions map[Condition]bool
	Primary    Condition
	AllOrdered []Condition
}

// DeriveStatus lists the conditions a pet is in, most urgent first.
func DeriveStatus(st pet.Status, rules pet.Rules) DerivedStatus {
	conds := make(map[Condition]bool)
	var allOrdered []Condition
	add := func(c Condition) {
		if !conds[c] {
			conds[c] = true
			allOrdered = append(allOrdered, c)
		}
	}

	// Priority 1: dead hides everything else
	if !st.Alive {
		add(CondDead)
		return DerivedStatus{Conditions: conds, Primary: CondDead, AllOrdered: allOrdered}
	}

	// Priority 2: sick
	if st.Diseased {
		add(CondSick)
	}

	// Priority 3: starving / hungry
	if float64(st.Food) <= float64(rules.MaxFood)/10 {
		add(CondStarving)
	} else if float64(st.Food) <= float64(rules.MaxFood)/2 {
		add(CondHungry)
	}

	// Priority 4: dirty
	if st.Poop > 0 {
		add(CondDirty)
	}

	// Priority 5: asleep / tired
	if st.Sleeping {
		add(CondAsleep)
	} else if float64(st.Energy) <= float64(rules.MaxEnergy)/2 {
		add(CondTired)
	}

	// Priority 6: old
	if float64(st.Age) >= float64(rules.MaxAge)-float64(rules.MaxAge)/10 {
		add(CondOld)
	}

	// Priority 7: happy when nothing else applies
	if len(allOrdered) == 0 {
		add(CondHappy)
	}

	return DerivedStatus{
		Conditions: conds,
		Primary:    allOrdered[0],
		AllOrdered: allOrdered,
	}
}

// FormatConditions formats a slice of conditions into a comma-separated string.
// Returns "happy" if the slice is empty.
// If "dead" is present every other condition is ignored.
func FormatConditions(conds []Condition) string {
	if len(conds) == 0 {
		return "happy"
	}

	for _, c := range conds {
		if c == CondDead {
			return "dead"
		}
	}

	result := string(conds[0])
	for i := 1; i < len(conds); i++ {
		result += ", " + string(conds[i])
	}
	return result
}
