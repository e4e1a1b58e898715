package slotmatch

import (
	"sort"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// Match compares a requested time against the available slots of one day.
//
// Without slots the result is MatchNoSlots, without a requested time MatchNone.
// An exact hour and minute hit wins. Otherwise slots are ordered by distance from
// the requested time (stable, so earlier slots win ties), the first is the
// closest match and up to MaxAlternatives of the rest within
// MaxAlternativeDistance minutes become alternatives.
func Match(requested *domain.CanonicalTime, slots []domain.AvailableSlot) domain.MatchResult {
	if len(slots) == 0 {
		return domain.MatchResult{Kind: domain.MatchNoSlots}
	}
	if requested == nil {
		return domain.MatchResult{Kind: domain.MatchNone}
	}

	for i := range slots {
		if slots[i].LocalTime.Equal(*requested) {
			slot := slots[i]
			return domain.MatchResult{Kind: domain.MatchExact, Slot: &slot}
		}
	}

	target := requested.MinuteOfDay()
	sorted := make([]domain.AvailableSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return distance(sorted[i], target) < distance(sorted[j], target)
	})

	closest := sorted[0]
	alternatives := make([]domain.AvailableSlot, 0, domain.MaxAlternatives)
	for _, s := range sorted[1:] {
		if len(alternatives) == domain.MaxAlternatives {
			break
		}
		if distance(s, target) <= domain.MaxAlternativeDistance {
			alternatives = append(alternatives, s)
		}
	}

	return domain.MatchResult{
		Kind:            domain.MatchClosest,
		Slot:            &closest,
		DistanceMinutes: distance(closest, target),
		Alternatives:    alternatives,
	}
}

func distance(s domain.AvailableSlot, target int) int {
	d := s.LocalTime.MinuteOfDay() - target
	if d < 0 {
		return -d
	}
	return d
}
