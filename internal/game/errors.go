package game

import (
	"errors"
	"fmt"
	"time"
)

// Precondition errors: the action was attempted from a game state that does
// not allow it. None of them mutate anything.
var (
	ErrAlreadyPlanted = errors.New("game: a tree is already planted")
	ErrNotPlanted     = errors.New("game: no tree planted yet")
	ErrWithered       = errors.New("game: the tree is withered, revive it first")
	ErrNotWithered    = errors.New("game: the tree is not withered")
	ErrBadFriend      = errors.New("game: friend address is not a valid address")
	ErrBusy           = errors.New("game: another action is still pending")
)

// CooldownError reports a watering attempt inside the cooldown window.
// Remaining is the display countdown, computed against a full day.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("game: already watered, come back in %s", e.Remaining.Round(time.Minute))
}
