package triage

import "strings"

// Intent is the topical category assigned to one message.
type Intent string

const (
	IntentCrisis  Intent = "crisis"
	IntentStress  Intent = "stress"
	IntentSleep   Intent = "sleep"
	IntentGeneral Intent = "general"
)

// IsCrisis reports whether the message contains any crisis phrase. Checked
// before classification so the caller can short-circuit generation.
func (l Lexicons) IsCrisis(message string) bool {
	return ContainsAny(message, l.Crisis)
}

// Classify scores the message against the stress and sleep lexicons and picks
// one of stress, sleep, general. Stress wins only when strictly ahead; a tie
// with at least one sleep match goes to sleep. Never returns IntentCrisis.
func (l Lexicons) Classify(message string) Intent {
	lower := strings.ToLower(message)
	stressScore := countMatches(lower, l.Stress)
	sleepScore := countMatches(lower, l.Sleep)

	if stressScore > sleepScore && stressScore > 0 {
		return IntentStress
	}
	if sleepScore > 0 {
		return IntentSleep
	}
	return IntentGeneral
}
