package game

import "time"

// Decay constants. A tree withers after three missed days; the streak stops
// counting at thirty so ancient abandonments don't overflow the visuals.
const (
	witherStreak = 3
	maxStreak    = 30
)

// State is the persisted per-account game record. The zero value means "no
// tree planted yet".
type State struct {
	PlantedAt     *time.Time `json:"plantedAt,omitempty"`
	Growth        int        `json:"growth"`
	LastWateredAt *time.Time `json:"lastWateredAt,omitempty"`
	MissedStreak  int        `json:"missedStreak"`
	RevivedAt     *time.Time `json:"revivedAt,omitempty"`
	LastGraftedAt *time.Time `json:"lastGraftedAt,omitempty"`
	AccentHue     *float64   `json:"accentHue,omitempty"`
}

// Planted reports whether a tree exists for this account.
func (s State) Planted() bool {
	return s.PlantedAt != nil
}

// Withered reports whether the tree has gone three or more days unwatered.
func (s State) Withered() bool {
	return s.MissedStreak >= witherStreak
}

// Health maps the current missed-day streak to the [0,1] vitality signal the
// renderer consumes.
func (s State) Health() float64 {
	return HealthFor(s.MissedStreak)
}

// HealthFor returns the vitality value for a missed-day streak.
func HealthFor(missed int) float64 {
	switch {
	case missed <= 0:
		return 1.00
	case missed == 1:
		return 0.86
	case missed == 2:
		return 0.68
	default:
		return 0.42
	}
}

// DeriveStreak recomputes the missed-day streak from the last watering time,
// clamped to [0, maxStreak]. A never-watered (unplanted) record has no
// streak.
func DeriveStreak(lastWatered *time.Time, now time.Time) int {
	if lastWatered == nil {
		return 0
	}
	days := int(now.Sub(*lastWatered).Hours() / 24)
	if days < 0 {
		return 0
	}
	if days > maxStreak {
		return maxStreak
	}
	return days
}

// Refresh re-derives the time-dependent fields against now and repairs any
// shape damage from storage. Loads always run through here so a stale or
// hand-edited record self-heals instead of being trusted.
func (s *State) Refresh(now time.Time) {
	if !s.Planted() {
		s.Growth = 0
		s.MissedStreak = 0
		s.LastWateredAt = nil
		return
	}
	if s.Growth < 1 {
		s.Growth = 1
	}
	s.MissedStreak = DeriveStreak(s.LastWateredAt, now)
	if s.AccentHue != nil {
		h := *s.AccentHue
		if h < 0 || h >= 360 {
			s.AccentHue = nil
		}
	}
}
