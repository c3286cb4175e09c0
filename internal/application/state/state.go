package state

// Outcome is the result of one simulation tick
type Outcome int

const (
	Playing Outcome = iota
	DiedHazard
	DiedFall
	DiedCreature
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "Playing"
	case DiedHazard:
		return "DiedHazard"
	case DiedFall:
		return "DiedFall"
	case DiedCreature:
		return "DiedCreature"
	default:
		return "Unknown"
	}
}

// IsDead reports whether the outcome ends the session
func (o Outcome) IsDead() bool {
	return o != Playing
}

// Message returns a player-facing description of the outcome
func (o Outcome) Message() string {
	switch o {
	case DiedHazard:
		return "You touched something deadly"
	case DiedFall:
		return "You fell too fast"
	case DiedCreature:
		return "You were eaten"
	default:
		return ""
	}
}
