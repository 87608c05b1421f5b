package core

import (
	"math"
	"time"
)

// Breeze produces the continuously varying sway phase for the renderer.
// It is a slow sine over wall time, mapped into [0, 1].
type Breeze struct {
	start  time.Time
	period time.Duration
	now    func() time.Time
}

// NewBreeze constructs a Breeze with the given oscillation period.
func NewBreeze(period time.Duration) *Breeze {
	if period <= 0 {
		period = 6 * time.Second
	}
	return &Breeze{start: time.Now(), period: period, now: time.Now}
}

// Phase returns the current sway phase in [0, 1].
func (b *Breeze) Phase() float64 {
	elapsed := b.now().Sub(b.start).Seconds()
	omega := 2 * math.Pi / b.period.Seconds()
	return 0.5 + 0.5*math.Sin(elapsed*omega)
}
