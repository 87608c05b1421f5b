package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/0xnurrabby/Bonsai/internal/chain"
	"github.com/0xnurrabby/Bonsai/pkg/rng"
)

// Watering cadence. The enforced minimum interval between waterings is one
// hour; the countdown surfaced to the player runs against a full day.
// TODO: confirm with product whether the countdown should track
// waterMinInterval instead of a full day before changing either constant.
const (
	waterMinInterval  = time.Hour
	waterDisplayCycle = 24 * time.Hour
)

// Action tags logged on chain.
const (
	tagPlant  = "plant"
	tagWater  = "water"
	tagRevive = "revive"
	tagGraft  = "graft"
)

// Store is the persistence collaborator. Load never fails: absent or corrupt
// records come back as the zero State.
type Store interface {
	Load(account string) State
	Save(account string, st State) error
}

// Submitter sends an encoded call out through the wallet. A returned error
// (declined prompt included) means nothing was committed on chain.
type Submitter interface {
	Submit(ctx context.Context, call chain.Call) error
}

// Session owns one account's tree. Every action is two-phase: validate
// against current state, submit the encoded call, and only commit + persist
// once the wallet reports success. A declined or failed call leaves the
// persisted record untouched.
type Session struct {
	account  string
	contract string
	store    Store
	wallet   Submitter
	now      func() time.Time
	log      *slog.Logger

	mu      sync.Mutex
	state   State
	pending bool
}

// NewSession loads (and self-heals) the account's record and returns a ready
// session. contract is the pet contract address actions are logged to.
func NewSession(account, contract string, store Store, wallet Submitter, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		account:  account,
		contract: contract,
		store:    store,
		wallet:   wallet,
		now:      time.Now,
		log:      log,
	}
	s.state = store.Load(account)
	s.refreshAndPersist()
	return s
}

// Account returns the session's account address.
func (s *Session) Account() string { return s.account }

// State re-derives the time-dependent fields and returns a snapshot. The
// derived streak is persisted back immediately so a reload sees the same
// values ("self-healing" reads).
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
	return s.state
}

// Pending reports whether an action is currently in flight. The UI disables
// action keys while true.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Plant starts a new tree. Legal only when nothing is planted.
func (s *Session) Plant(ctx context.Context) error {
	if err := s.begin(func(st State) error {
		if st.Planted() {
			return ErrAlreadyPlanted
		}
		return nil
	}); err != nil {
		return err
	}
	return s.finish(ctx, tagPlant, "", func(st *State, now time.Time) {
		st.PlantedAt = &now
		st.Growth = 1
		st.LastWateredAt = &now
		st.MissedStreak = 0
	})
}

// Water grows the tree by one. Legal only for a living tree at least one
// hour after the previous watering.
func (s *Session) Water(ctx context.Context) error {
	if err := s.begin(func(st State) error {
		if !st.Planted() {
			return ErrNotPlanted
		}
		if st.Withered() {
			return ErrWithered
		}
		if st.LastWateredAt != nil {
			since := s.now().Sub(*st.LastWateredAt)
			if since < waterMinInterval {
				remaining := waterDisplayCycle - since
				if remaining < 0 {
					remaining = 0
				}
				return &CooldownError{Remaining: remaining}
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return s.finish(ctx, tagWater, "", func(st *State, now time.Time) {
		st.Growth++
		st.LastWateredAt = &now
		st.MissedStreak = 0
	})
}

// Revive brings a withered tree back. Growth is kept.
func (s *Session) Revive(ctx context.Context) error {
	if err := s.begin(func(st State) error {
		if !st.Planted() {
			return ErrNotPlanted
		}
		if !st.Withered() {
			return ErrNotWithered
		}
		return nil
	}); err != nil {
		return err
	}
	return s.finish(ctx, tagRevive, "", func(st *State, now time.Time) {
		st.MissedStreak = 0
		st.RevivedAt = &now
		st.LastWateredAt = &now
	})
}

// Graft binds a friend's accent hue onto the tree's blooms. Cosmetic: growth
// and health are untouched. Legal for any planted tree, withered included.
func (s *Session) Graft(ctx context.Context, friend string) error {
	if !chain.ValidAddress(friend) {
		return fmt.Errorf("%w: %q", ErrBadFriend, friend)
	}
	if err := s.begin(func(st State) error {
		if !st.Planted() {
			return ErrNotPlanted
		}
		return nil
	}); err != nil {
		return err
	}
	hue := rng.HueFromID(friend)
	return s.finish(ctx, tagGraft, friend, func(st *State, now time.Time) {
		st.AccentHue = &hue
		st.LastGraftedAt = &now
	})
}

// begin refreshes state, runs the gate and marks the session pending. The
// gate sees a snapshot, so a failed gate mutates nothing.
func (s *Session) begin(gate func(State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return ErrBusy
	}
	s.refreshLocked()
	if err := gate(s.state); err != nil {
		return err
	}
	s.pending = true
	return nil
}

// finish encodes and submits the tagged log call, then commits on success.
func (s *Session) finish(ctx context.Context, tag, aux string, commit func(*State, time.Time)) error {
	defer func() {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}()

	data, err := chain.EncodeLogAction(tag, aux)
	if err != nil {
		return err
	}
	if err := s.wallet.Submit(ctx, chain.NewCall(s.contract, data)); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	commit(&s.state, now)
	s.state.Refresh(now)
	if err := s.store.Save(s.account, s.state); err != nil {
		s.log.Error("persist after confirmed action failed", "action", tag, "err", err)
		return fmt.Errorf("%s confirmed but not persisted: %w", tag, err)
	}
	s.log.Info("action committed", "action", tag, "growth", s.state.Growth)
	return nil
}

func (s *Session) refreshLocked() {
	before := s.state.MissedStreak
	s.state.Refresh(s.now())
	if s.state.MissedStreak != before {
		if err := s.store.Save(s.account, s.state); err != nil {
			s.log.Warn("persisting derived streak failed", "err", err)
		}
	}
}

func (s *Session) refreshAndPersist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Refresh(s.now())
	if err := s.store.Save(s.account, s.state); err != nil {
		s.log.Warn("persisting refreshed state failed", "err", err)
	}
}
