//go:build ebiten

package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas adapts the frame's ebiten image to the render.Canvas
// contract. The vertex and index slices are reused across calls to keep the
// per-stroke cost allocation-free.
type screenCanvas struct {
	img      *ebiten.Image
	whiteSub *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

func newScreenCanvas() *screenCanvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &screenCanvas{
		whiteSub: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (c *screenCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *screenCanvas) Clear(col color.RGBA) {
	c.img.Fill(col)
}

func (c *screenCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *screenCanvas) StrokeQuad(x0, y0, cx, cy, x1, y1, width float64, col color.RGBA) {
	var p vector.Path
	p.MoveTo(float32(x0), float32(y0))
	p.QuadTo(float32(cx), float32(cy), float32(x1), float32(y1))

	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	c.vs, c.is = p.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], op)
	c.drawPath(col)
}

func (c *screenCanvas) FillEllipse(ecx, ecy, rx, ry float64, col color.RGBA) {
	// Four quadratic segments with control points at the bounding-box
	// corners approximate the ellipse closely enough for leaf marks.
	fx, fy := float32(ecx), float32(ecy)
	frx, fry := float32(rx), float32(ry)

	var p vector.Path
	p.MoveTo(fx+frx, fy)
	p.QuadTo(fx+frx, fy+fry, fx, fy+fry)
	p.QuadTo(fx-frx, fy+fry, fx-frx, fy)
	p.QuadTo(fx-frx, fy-fry, fx, fy-fry)
	p.QuadTo(fx+frx, fy-fry, fx+frx, fy)
	p.Close()

	c.vs, c.is = p.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawPath(col)
}

func (c *screenCanvas) RadialGradient(gcx, gcy, r float64, inner, outer color.RGBA) {
	// Stacked translucent discs; their alphas sum toward inner.A at the
	// center and fall off toward the rim.
	const steps = 8
	if r <= 0 {
		return
	}
	stepAlpha := int(inner.A) / steps
	if stepAlpha <= 0 {
		stepAlpha = 1
	}
	for i := 0; i < steps; i++ {
		t := float64(i) / steps
		col := color.RGBA{
			R: lerp8(outer.R, inner.R, t),
			G: lerp8(outer.G, inner.G, t),
			B: lerp8(outer.B, inner.B, t),
			A: uint8(stepAlpha),
		}
		vector.DrawFilledCircle(c.img, float32(gcx), float32(gcy), float32(r*(1-t)), col, true)
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func (c *screenCanvas) ReadPixels(buf []byte) {
	c.img.ReadPixels(buf)
}

func (c *screenCanvas) WritePixels(buf []byte) {
	c.img.WritePixels(buf)
}

func (c *screenCanvas) drawPath(col color.RGBA) {
	r := float32(col.R) / 255
	g := float32(col.G) / 255
	b := float32(col.B) / 255
	a := float32(col.A) / 255
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = a
	}
	c.img.DrawTriangles(c.vs, c.is, c.whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
