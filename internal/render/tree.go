package render

import (
	"image/color"
	"math"
	"time"

	"github.com/0xnurrabby/Bonsai/internal/core"
	"github.com/0xnurrabby/Bonsai/pkg/rng"
)

// Palette. The scene is ink on warm paper; vitality shifts the ink and the
// leaves toward washed-out grays as the tree withers.
var (
	paper       = color.RGBA{R: 247, G: 242, B: 231, A: 255}
	potRim      = color.RGBA{R: 104, G: 72, B: 54, A: 255}
	potBody     = color.RGBA{R: 126, G: 88, B: 66, A: 255}
	soil        = color.RGBA{R: 74, G: 56, B: 44, A: 255}
	inkHealthy  = color.RGBA{R: 52, G: 44, B: 36, A: 255}
	inkWithered = color.RGBA{R: 134, G: 128, B: 120, A: 255}
	inkTip      = color.RGBA{R: 112, G: 99, B: 84, A: 255}
	leafHealthy = color.RGBA{R: 96, G: 142, B: 74, A: 255}
	leafFaded   = color.RGBA{R: 168, G: 156, B: 120, A: 255}
	glowWarm    = color.RGBA{R: 255, G: 232, B: 180, A: 90}
	glowNone    = color.RGBA{R: 255, G: 232, B: 180, A: 0}
)

const (
	paperNoiseAmp = 3
	trunkSegments = 10
	baseLean      = 0.26
	swayMax       = 0.16
	minBranchLen  = 2.5
	minThickness  = 0.7
)

// MaxDepth converts the growth counter into the branching recursion cap:
// 3 + floor(growth/1.5), clamped to [3, 10].
func MaxDepth(growth int) int {
	d := 3 + int(math.Floor(float64(growth)/1.5))
	if d < 3 {
		d = 3
	}
	if d > 10 {
		d = 10
	}
	return d
}

// Renderer paints the whole scene from scratch each frame. Two streams feed
// it: the structural one is reseeded from the account-derived seed right
// before the branch pass, so branch topology, leaf and bloom placement are
// bit-stable across frames and reloads; the texture one is free-running and
// only bends ink strokes and grains the paper.
type Renderer struct {
	structural *rng.Stream
	texture    *rng.Stream
	pix        []byte
}

// New constructs a Renderer.
func New() *Renderer {
	return &Renderer{
		structural: rng.New(0),
		texture:    rng.New(uint32(time.Now().UnixNano())),
	}
}

type branchCtx struct {
	maxDepth  int
	activity  float64
	breeze    float64
	accentHue *float64
	ink       color.RGBA
	leaf      color.RGBA
}

// Draw repaints the scene for the given frame parameters.
func (r *Renderer) Draw(cv Canvas, p core.RenderParams) {
	w, h := cv.Size()
	if w <= 0 || h <= 0 {
		return
	}
	fw, fh := float64(w), float64(h)

	cv.Clear(paper)

	need := w * h * 4
	if len(r.pix) != need {
		r.pix = make([]byte, need)
	}
	cv.ReadPixels(r.pix)
	addNoiseRGBA(r.pix, paperNoiseAmp, r.texture)
	cv.WritePixels(r.pix)

	if p.Richness > 0 {
		inner := glowWarm
		inner.A = uint8(30 + 80*core.Clamp01(p.Richness))
		cv.RadialGradient(fw/2, fh*0.42, fw*0.45, inner, glowNone)
	}

	potW := fw * 0.28
	potH := fh * 0.10
	potX := (fw - potW) / 2
	potY := fh*0.84 - potH
	cv.FillRect(potX-potW*0.06, potY-potH*0.22, potW*1.12, potH*0.22, potRim)
	cv.FillRect(potX, potY, potW, potH, potBody)
	soilY := potY - potH*0.18
	cv.FillEllipse(fw/2, soilY, potW*0.42, potH*0.16, soil)

	// An unplanted account shows just the waiting pot.
	if p.Growth <= 0 {
		return
	}

	health := core.Clamp01(p.Health)
	ink := lerpRGBA(inkWithered, inkHealthy, health)
	leaf := lerpRGBA(leafFaded, leafHealthy, health)

	age := math.Min(float64(p.Growth), 20)
	trunkH := fh * (0.16 + 0.021*age)
	baseThick := 5 + 0.4*age
	bend := (p.Breeze - 0.5) * (4 + 14*core.Clamp01(p.Activity))

	// Trunk: fixed overlapping strokes curving with the breeze. The control
	// point wobble comes from the free-running texture stream; it shapes the
	// ink, never the geometry the branches hang from.
	baseX := fw / 2
	baseY := soilY
	prevX, prevY := baseX, baseY
	for i := 1; i <= trunkSegments; i++ {
		t := float64(i) / trunkSegments
		nx := baseX + bend*t*t
		ny := baseY - trunkH*t
		cx := (prevX+nx)/2 + r.texture.Range(-1.2, 1.2)
		cy := (prevY + ny) / 2
		cv.StrokeQuad(prevX, prevY, cx, cy, nx, ny, baseThick*(1-0.55*t), ink)
		prevX, prevY = nx, ny
	}

	// Reseed immediately before the two mirrored base calls so the same
	// structural draw order replays every frame.
	r.structural.Reseed(rng.Seed32(p.Seed))
	ctx := &branchCtx{
		maxDepth:  MaxDepth(p.Growth),
		activity:  core.Clamp01(p.Activity),
		breeze:    p.Breeze,
		accentHue: p.AccentHue,
		ink:       ink,
		leaf:      leaf,
	}
	length := trunkH * 0.62
	thick := baseThick * 0.45
	r.branch(cv, ctx, prevX, prevY, -math.Pi/2-baseLean, length, thick, 0)
	r.branch(cv, ctx, prevX, prevY, -math.Pi/2+baseLean, length, thick, 0)
}

// branch draws one limb and recurses. Every random decision that shapes the
// tree comes from the structural stream; the breeze term shifts stroke
// endpoints without touching any draw order, so the topology stays fixed
// while the tree sways.
func (r *Renderer) branch(cv Canvas, c *branchCtx, x, y, angle, length, thick float64, depth int) {
	if depth >= c.maxDepth || length < minBranchLen {
		return
	}

	angle += r.structural.Range(-0.11, 0.11)

	sway := (c.breeze - 0.5) * swayMax * float64(depth+1) / float64(c.maxDepth)
	drawAngle := angle + sway
	x2 := x + math.Cos(drawAngle)*length
	y2 := y + math.Sin(drawAngle)*length

	wobble := r.texture.Range(-1, 1) * length * 0.14
	cx := (x+x2)/2 + math.Cos(drawAngle+math.Pi/2)*wobble
	cy := (y+y2)/2 + math.Sin(drawAngle+math.Pi/2)*wobble

	shade := lerpRGBA(c.ink, inkTip, float64(depth)/float64(c.maxDepth))
	cv.StrokeQuad(x, y, cx, cy, x2, y2, thick, shade)

	// Canopy: the last three levels may carry leaves, and a leaf may open
	// as a bloom when an accent hue is grafted on. The bloom draw happens
	// regardless of the accent so the stream advances identically either
	// way and grafting does not reshuffle the canopy.
	if depth >= c.maxDepth-3 {
		if r.structural.Chance(0.1 + 0.9*c.activity) {
			n := 1 + r.structural.IntN(3)
			for i := 0; i < n; i++ {
				lx := x2 + r.structural.Range(-4, 4)
				ly := y2 + r.structural.Range(-4, 4)
				size := r.structural.Range(1.6, 3.2)
				bloom := r.structural.Chance(0.04 + 0.21*c.activity)
				if bloom && c.accentHue != nil {
					cv.FillEllipse(lx, ly, size*1.15, size*1.15, hslToRGB(*c.accentHue, 0.62, 0.62))
				} else {
					cv.FillEllipse(lx, ly, size*1.4, size, c.leaf)
				}
			}
		}
	}

	splits := 1
	if depth >= 2 && r.structural.Chance(0.65) {
		splits = 2
	}
	spread := r.structural.Range(0.2, 0.46)
	childLen := length * r.structural.Range(0.74, 0.82)
	childThick := thick * r.structural.Range(0.74, 0.82)
	if childThick < minThickness {
		childThick = minThickness
	}

	if splits == 2 {
		r.branch(cv, c, x2, y2, angle-spread, childLen, childThick, depth+1)
		r.branch(cv, c, x2, y2, angle+spread, childLen, childThick, depth+1)
	} else {
		r.branch(cv, c, x2, y2, angle+r.structural.Range(-spread, spread), childLen, childThick, depth+1)
	}

	// Occasional thin side shoot, independent of the primary split.
	if r.structural.Chance(0.28) {
		sideThick := childThick * 0.6
		if sideThick < minThickness {
			sideThick = minThickness
		}
		r.branch(cv, c, x2, y2, angle+r.structural.Range(-0.9, 0.9), childLen*0.6, sideThick, depth+1)
	}
}
