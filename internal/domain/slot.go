package domain

import "time"

// AvailableSlot a bookable start time, in the user's timezone
type AvailableSlot struct {
	LocalTime     CanonicalTime
	SourceInstant time.Time // момент начала, как его вернул календарь
}

// MatchKind outcome of matching a requested time against available slots
type MatchKind int

const (
	// MatchNone no time was requested, caller lists the slots
	MatchNone MatchKind = iota
	MatchExact
	MatchClosest
	MatchNoSlots
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchClosest:
		return "closest"
	case MatchNoSlots:
		return "no_slots"
	default:
		return "none"
	}
}

// MatchResult result of SlotMatcher
type MatchResult struct {
	Kind            MatchKind
	Slot            *AvailableSlot  // exact or closest slot
	DistanceMinutes int             // |slot - requested| for closest
	Alternatives    []AvailableSlot // up to MaxAlternatives, each within MaxAlternativeDistance
}

// IsAvailable true only for an exact match
func (r MatchResult) IsAvailable() bool {
	return r.Kind == MatchExact
}
