package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsLoad(t *testing.T) {
	require.NoError(t, Init(""))
	c := Cfg()
	assert.Equal(t, uint64(8453), c.Chain.ChainID)
	assert.NotEmpty(t, c.Chain.PetContract)
	assert.NotEmpty(t, c.Chain.USDCContract)
	assert.Equal(t, uint64(5_000_000), c.Chain.TipAmount)
	assert.Positive(t, c.Screen.Width)
	assert.Positive(t, c.Screen.TPS)
}

func TestFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chain:\n  chain_id: 84532\nscreen:\n  width: 320\n"), 0o644))

	require.NoError(t, Init(path))
	c := Cfg()
	assert.Equal(t, uint64(84532), c.Chain.ChainID)
	assert.Equal(t, 320, c.Screen.Width)
	// Untouched keys keep their defaults.
	assert.Equal(t, "https://mainnet.base.org", c.Chain.RPCURL)
}

func TestBadContractRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chain:\n  pet_contract: \"nonsense\"\n"), 0o644))
	assert.Error(t, Init(path))
}

func TestMissingFileRejected(t *testing.T) {
	assert.Error(t, Init(filepath.Join(t.TempDir(), "nope.yaml")))
}
