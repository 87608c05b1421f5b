//go:build !ebiten

package ui

import "time"

// HUD is a no-op placeholder used when the ebiten build tag is absent.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// Flash is a no-op in headless builds.
func (h *HUD) Flash(string, time.Duration) {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, []string) {}
