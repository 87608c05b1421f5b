package render

import "image/color"

// Canvas is the raster surface the renderer paints every frame. The GUI
// build backs it with an ebiten image; tests use a recording fake.
// Resolution and DPI scaling are the implementation's concern.
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)
	// Clear fills the whole surface with one color.
	Clear(c color.RGBA)
	// FillRect paints an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.RGBA)
	// StrokeQuad strokes a quadratic curve from (x0,y0) to (x1,y1) through
	// control point (cx,cy) with the given line width.
	StrokeQuad(x0, y0, cx, cy, x1, y1, width float64, c color.RGBA)
	// FillEllipse paints a filled axis-aligned ellipse.
	FillEllipse(cx, cy, rx, ry float64, c color.RGBA)
	// RadialGradient paints a circular gradient from inner at the center to
	// outer at radius r.
	RadialGradient(cx, cy, r float64, inner, outer color.RGBA)
	// ReadPixels copies the surface into buf as RGBA, row-major.
	ReadPixels(buf []byte)
	// WritePixels replaces the surface with buf.
	WritePixels(buf []byte)
}
