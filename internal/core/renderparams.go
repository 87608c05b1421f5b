package core

// RenderParams is the per-frame parameter set the renderer consumes. It is
// rebuilt every frame from the latest committed signals and never persisted.
type RenderParams struct {
	// Seed is the identifier string (account address) the tree topology is
	// derived from. Empty is valid and draws the default tree.
	Seed string

	// Richness and Activity are normalized [0,1] chain signals.
	Richness float64
	Activity float64

	// Growth counts successful waterings since planting.
	Growth int

	// Health in [0,1], driven by the missed-day streak.
	Health float64

	// Breeze oscillates continuously in [0,1] and drives sway only; it must
	// not affect branch topology.
	Breeze float64

	// AccentHue, when set, colors blooms. Derived from a grafted friend
	// address.
	AccentHue *float64
}
