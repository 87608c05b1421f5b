package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xnurrabby/Bonsai/internal/chain"
	"github.com/0xnurrabby/Bonsai/pkg/rng"
)

const (
	testAccount  = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	testContract = "0x1111111111111111111111111111111111111111"
	testFriend   = "0x2222222222222222222222222222222222222222"
)

type memStore struct {
	records map[string]State
}

func newMemStore() *memStore {
	return &memStore{records: map[string]State{}}
}

func (m *memStore) Load(account string) State {
	return m.records[account]
}

func (m *memStore) Save(account string, st State) error {
	m.records[account] = st
	return nil
}

type fakeWallet struct {
	err   error
	calls []chain.Call
}

func (w *fakeWallet) Submit(_ context.Context, c chain.Call) error {
	if w.err != nil {
		return w.err
	}
	w.calls = append(w.calls, c)
	return nil
}

// newTestSession wires a session against in-memory collaborators with a
// controllable clock.
func newTestSession(t *testing.T) (*Session, *memStore, *fakeWallet, *time.Time) {
	t.Helper()
	store := newMemStore()
	wallet := &fakeWallet{}
	s := NewSession(testAccount, testContract, store, wallet, nil)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, store, wallet, &now
}

func TestPlantFromScratch(t *testing.T) {
	s, store, wallet, _ := newTestSession(t)

	require.NoError(t, s.Plant(context.Background()))

	st := s.State()
	assert.True(t, st.Planted())
	assert.Equal(t, 1, st.Growth)
	assert.NotNil(t, st.LastWateredAt)
	assert.Equal(t, 0, st.MissedStreak)
	assert.Equal(t, st, store.records[testAccount])

	require.Len(t, wallet.calls, 1)
	assert.Equal(t, testContract, wallet.calls[0].To)
	assert.Equal(t, "plant", string(wallet.calls[0].Data[4:9]))
}

func TestPlantTwiceRejected(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	require.NoError(t, s.Plant(context.Background()))
	assert.ErrorIs(t, s.Plant(context.Background()), ErrAlreadyPlanted)
}

func TestWaterRequiresPlanting(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	assert.ErrorIs(t, s.Water(context.Background()), ErrNotPlanted)
}

func TestWaterCooldown(t *testing.T) {
	s, _, _, now := newTestSession(t)
	require.NoError(t, s.Plant(context.Background()))

	// Thirty minutes later: inside the one-hour gate. The countdown shown
	// runs against a full day, so 23h30m remain.
	*now = now.Add(30 * time.Minute)
	err := s.Water(context.Background())
	var cd *CooldownError
	require.ErrorAs(t, err, &cd)
	assert.Equal(t, 23*time.Hour+30*time.Minute, cd.Remaining)

	// Sixty-one minutes after planting the gate opens.
	*now = now.Add(31 * time.Minute)
	require.NoError(t, s.Water(context.Background()))
	st := s.State()
	assert.Equal(t, 2, st.Growth)
	assert.Equal(t, 0, st.MissedStreak)
}

func TestWaterRejectedWhenWithered(t *testing.T) {
	s, _, _, now := newTestSession(t)
	require.NoError(t, s.Plant(context.Background()))

	*now = now.Add(4 * 24 * time.Hour)
	assert.ErrorIs(t, s.Water(context.Background()), ErrWithered)
}

func TestDecayDrivesStateDerivation(t *testing.T) {
	s, store, _, now := newTestSession(t)
	require.NoError(t, s.Plant(context.Background()))

	*now = now.Add(2*24*time.Hour + time.Hour)
	st := s.State()
	assert.Equal(t, 2, st.MissedStreak)
	assert.False(t, st.Withered())
	assert.Equal(t, 0.68, st.Health())
	// Derived streak is persisted back on read.
	assert.Equal(t, 2, store.records[testAccount].MissedStreak)

	*now = now.Add(24 * time.Hour)
	st = s.State()
	assert.Equal(t, 3, st.MissedStreak)
	assert.True(t, st.Withered())
	assert.Equal(t, 0.42, st.Health())
}

func TestReviveGate(t *testing.T) {
	s, _, _, now := newTestSession(t)
	assert.ErrorIs(t, s.Revive(context.Background()), ErrNotPlanted)

	require.NoError(t, s.Plant(context.Background()))
	assert.ErrorIs(t, s.Revive(context.Background()), ErrNotWithered)

	*now = now.Add(5 * 24 * time.Hour)
	growthBefore := s.State().Growth
	require.NoError(t, s.Revive(context.Background()))

	st := s.State()
	assert.Equal(t, 0, st.MissedStreak)
	assert.False(t, st.Withered())
	assert.NotNil(t, st.RevivedAt)
	assert.Equal(t, growthBefore, st.Growth, "revive must not touch growth")
}

func TestGraft(t *testing.T) {
	s, _, wallet, _ := newTestSession(t)

	assert.ErrorIs(t, s.Graft(context.Background(), "0xnope"), ErrBadFriend)
	assert.ErrorIs(t, s.Graft(context.Background(), testFriend), ErrNotPlanted)

	require.NoError(t, s.Plant(context.Background()))
	require.NoError(t, s.Graft(context.Background(), testFriend))

	st := s.State()
	require.NotNil(t, st.AccentHue)
	assert.Equal(t, rng.HueFromID(testFriend), *st.AccentHue)
	assert.NotNil(t, st.LastGraftedAt)
	assert.Equal(t, 1, st.Growth, "graft must not touch growth")

	// The friend address travels as the auxiliary payload of the log call.
	last := wallet.calls[len(wallet.calls)-1]
	assert.Equal(t, "graft", string(last.Data[4:9]))
	assert.Equal(t, byte(20), last.Data[4+2*32+31], "payload length word")
}

func TestGraftWorksOnWitheredTree(t *testing.T) {
	s, _, _, now := newTestSession(t)
	require.NoError(t, s.Plant(context.Background()))
	*now = now.Add(10 * 24 * time.Hour)
	require.True(t, s.State().Withered())
	assert.NoError(t, s.Graft(context.Background(), testFriend))
}

func TestDeclinedWalletLeavesStateUntouched(t *testing.T) {
	s, store, wallet, _ := newTestSession(t)
	wallet.err = chain.ErrDeclined

	err := s.Plant(context.Background())
	assert.ErrorIs(t, err, chain.ErrDeclined)
	assert.False(t, s.State().Planted())
	assert.False(t, store.records[testAccount].Planted())
	assert.False(t, s.Pending(), "a failed attempt is terminal, retry must be possible")

	// Retry succeeds once the wallet cooperates.
	wallet.err = nil
	assert.NoError(t, s.Plant(context.Background()))
}

func TestFailedWaterKeepsGrowth(t *testing.T) {
	s, _, wallet, now := newTestSession(t)
	require.NoError(t, s.Plant(context.Background()))
	*now = now.Add(2 * time.Hour)

	wallet.err = chain.ErrDeclined
	assert.ErrorIs(t, s.Water(context.Background()), chain.ErrDeclined)
	assert.Equal(t, 1, s.State().Growth)
}
