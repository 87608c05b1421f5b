package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSLToRGBAnchors(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, hslToRGB(0, 1, 0.5))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, hslToRGB(120, 1, 0.5))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, hslToRGB(240, 1, 0.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, hslToRGB(0, 0, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, hslToRGB(180, 1, 0))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, hslToRGB(90, 0, 0.5))
}

func TestHSLToRGBHueWraps(t *testing.T) {
	assert.Equal(t, hslToRGB(30, 0.8, 0.6), hslToRGB(390, 0.8, 0.6))
	assert.Equal(t, hslToRGB(330, 0.8, 0.6), hslToRGB(-30, 0.8, 0.6))
}

func TestLerpRGBA(t *testing.T) {
	a := color.RGBA{0, 100, 200, 255}
	b := color.RGBA{100, 200, 100, 55}

	assert.Equal(t, a, lerpRGBA(a, b, 0))
	assert.Equal(t, b, lerpRGBA(a, b, 1))
	assert.Equal(t, color.RGBA{50, 150, 150, 155}, lerpRGBA(a, b, 0.5))

	// t clamps outside [0,1]
	assert.Equal(t, a, lerpRGBA(a, b, -2))
	assert.Equal(t, b, lerpRGBA(a, b, 3))
}
