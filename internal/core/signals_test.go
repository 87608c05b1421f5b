package core

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRichnessCurve(t *testing.T) {
	eth := func(n int64) *big.Int {
		return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
	}

	assert.Equal(t, 0.0, Richness(nil))
	assert.Equal(t, 0.0, Richness(big.NewInt(0)))
	assert.Equal(t, 0.0, Richness(big.NewInt(-1)))

	// 9 ETH -> log10(10)/4 = 0.25.
	assert.InDelta(t, 0.25, Richness(eth(9)), 1e-9)
	// 9999 ETH -> log10(10000)/4 = 1.0, the saturation point.
	assert.InDelta(t, 1.0, Richness(eth(9999)), 1e-6)
	// Beyond saturation stays clamped.
	assert.Equal(t, 1.0, Richness(eth(1_000_000)))
}

func TestActivityCurve(t *testing.T) {
	assert.Equal(t, 0.0, Activity(0))
	assert.InDelta(t, 0.25, Activity(9), 1e-9)
	assert.InDelta(t, 0.5, Activity(99), 1e-9)
	assert.Equal(t, 1.0, Activity(10_000_000))
}

func TestLogCompressNeverNaN(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -5} {
		got := logCompress(v)
		assert.False(t, math.IsNaN(got), "logCompress(%v) produced NaN", v)
		assert.Equal(t, 0.0, got)
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(math.NaN()))
	assert.Equal(t, 0.0, Clamp01(-0.3))
	assert.Equal(t, 1.0, Clamp01(7))
	assert.Equal(t, 0.4, Clamp01(0.4))
}
