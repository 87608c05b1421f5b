package rng

import (
	"strconv"
	"strings"
)

// How many trailing hex digits of an identifier feed the seed. Eight digits
// fit a uint32 and still spread distinct addresses across the output range.
const seedDigits = 8

// SeedFromID maps an identifier string (typically a 0x-prefixed account
// address) to a stable value in [0, 1). Distinct addresses land on distinct
// seeds often enough that two players get visually distinct trees; no
// cryptographic properties are needed. Degenerate input maps to 0.
func SeedFromID(id string) float64 {
	return float64(idValue(id)%1_000_000) / 1_000_000
}

// HueFromID maps an identifier string to a stable hue in [0, 360).
// Degenerate input maps to 0.
func HueFromID(id string) float64 {
	return float64(idValue(id) % 360)
}

// Seed32 converts an identifier to the 32-bit seed the Stream takes.
func Seed32(id string) uint32 {
	return uint32(SeedFromID(id) * 1_000_000)
}

func idValue(id string) uint64 {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(id)), "0x")
	if len(s) > seedDigits {
		s = s[len(s)-seedDigits:]
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0
	}
	return v
}
