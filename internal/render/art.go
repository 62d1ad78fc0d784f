package render

import (
	"github.com/sethgrid/tamagotchi/internal/conditions"
)

// GetStaticArt picks the picture for the most urgent condition.
func GetStaticArt(status conditions.DerivedStatus) string {
	switch status.Primary {
	case conditions.CondDead:
		return getDeadCat()
	case conditions.CondSick:
		return getSickCat()
	}

	if status.Conditions[conditions.CondAsleep] {
		return getSleepingCat()
	}
	if status.Conditions[conditions.CondStarving] || status.Conditions[conditions.CondTired] {
		return getWeakCat()
	}
	return getDefaultCat()
}

func getDefaultCat() string {
	return ` /\_/\ 
( o.o )
 > ^ <`
}

func getSleepingCat() string {
	return ` /\_/\  z
( -.- ) z
 > ^ <`
}

func getWeakCat() string {
	return ` /\_/\ 
( ;.; )
 > ^ <`
}

func getSickCat() string {
	return ` /\_/\ 
( x.x )
 > ^ <`
}

func getDeadCat() string {
	return ` /\_/\ 
( +.+ )
 > ^ <`
}
