package pet

// Reason says why a care command did or did not take effect.
type Reason string

const (
	ReasonDone           Reason = "done"
	ReasonDead           Reason = "dead"
	ReasonSleeping       Reason = "sleeping"
	ReasonFull           Reason = "full"
	ReasonNothingToClean Reason = "nothing to clean"
	ReasonAlreadyAsleep  Reason = "already asleep"
	ReasonNotSleeping    Reason = "not sleeping"
	ReasonTooTired       Reason = "insufficient energy"
	ReasonNotDiseased    Reason = "not diseased"
	ReasonHealFailed     Reason = "healing attempt unsuccessful"
)

// Outcome is the result of a care command. Failures are ordinary outcomes,
// never errors: Message is always suitable to show the player.
type Outcome struct {
	OK      bool
	Reason  Reason
	Message string
}

func success(message string) Outcome {
	return Outcome{OK: true, Reason: ReasonDone, Message: message}
}

func failure(reason Reason, message string) Outcome {
	return Outcome{Reason: reason, Message: message}
}

var deadOutcome = failure(ReasonDead, "Your tamagotchi has died, press (n)ew to start over")
