package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsBindParsesAll(t *testing.T) {
	fl := NewFlags()
	fs := flag.NewFlagSet("bonsai", flag.ContinueOnError)
	fl.Bind(fs)

	require.NoError(t, fs.Parse([]string{
		"-config", "custom.yaml",
		"-account", "0x1111111111111111111111111111111111111111",
		"-friend", "0x2222222222222222222222222222222222222222",
		"-rpc", "http://localhost:8545",
		"-data-dir", "/tmp/bonsai",
		"-offline",
		"-scale", "2",
		"-tps", "30",
	}))

	assert.Equal(t, "custom.yaml", fl.ConfigPath)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", fl.Account)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", fl.Friend)
	assert.Equal(t, "http://localhost:8545", fl.RPC)
	assert.Equal(t, "/tmp/bonsai", fl.DataDir)
	assert.True(t, fl.Offline)
	assert.Equal(t, 2.0, fl.Scale)
	assert.Equal(t, 30, fl.TPS)
}

func TestFlagsDefaults(t *testing.T) {
	fl := NewFlags()
	fs := flag.NewFlagSet("bonsai", flag.ContinueOnError)
	fl.Bind(fs)

	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, 1.0, fl.Scale)
	assert.Zero(t, fl.TPS)
	assert.False(t, fl.Offline)
}
