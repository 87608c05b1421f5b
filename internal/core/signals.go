package core

import (
	"math"
	"math/big"
)

// weiPerEth converts native balance from wei for the richness curve.
var weiPerEth = new(big.Float).SetFloat64(1e18)

// Richness compresses a native-token balance (wei) into a [0,1] visual
// intensity. Balances are heavy-tailed, so a log10 curve keeps the response
// meaningful across orders of magnitude and saturates instead of overflowing:
// richness = clamp(log10(1+eth)/4, 0, 1).
func Richness(wei *big.Int) float64 {
	if wei == nil || wei.Sign() <= 0 {
		return 0
	}
	eth, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerEth).Float64()
	return logCompress(eth)
}

// Activity compresses an account's transaction count into a [0,1] visual
// intensity with the same curve as Richness.
func Activity(txCount uint64) float64 {
	return logCompress(float64(txCount))
}

// logCompress maps v >= 0 to clamp(log10(1+v)/4, 0, 1). Non-finite
// intermediates clamp to 0 so NaN never reaches the renderer.
func logCompress(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	out := math.Log10(1+v) / 4
	if math.IsNaN(out) || math.IsInf(out, 0) || out < 0 {
		return 0
	}
	if out > 1 {
		return 1
	}
	return out
}

// Clamp01 bounds v to [0, 1], mapping NaN to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
