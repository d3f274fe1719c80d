package grip

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// defaultMomentumDuration is how long a fling coasts when no duration is
// given.
const defaultMomentumDuration float32 = 0.6 // seconds

// Momentum turns the release velocity reported by OnEnd into a decaying
// post-gesture offset animation. Under quadratic ease-out the animated
// speed starts at the release speed and falls linearly to zero, covering
// v*duration/2 on each axis.
//
// Call Update once per frame and add the returned deltas to the flung
// content's position:
//
//	rec.OnEnd = func(ctx grip.EndContext) {
//		mom = grip.NewMomentum(ctx.Velocity, 0)
//	}
//	// each frame:
//	dx, dy, done := mom.Update(dt)
//	node.X += dx
//	node.Y += dy
type Momentum struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	lastX  float32
	lastY  float32
	done   bool
}

// NewMomentum creates a momentum animation for a fling velocity in px/s.
// A duration <= 0 selects the default. Zero velocity yields an already
// finished animation.
func NewMomentum(v Velocity, duration float32) *Momentum {
	if v.Zero() {
		return &Momentum{done: true}
	}
	if duration <= 0 {
		duration = defaultMomentumDuration
	}
	return &Momentum{
		tweenX: gween.New(0, float32(v.X)*duration/2, duration, ease.OutQuad),
		tweenY: gween.New(0, float32(v.Y)*duration/2, duration, ease.OutQuad),
	}
}

// Update advances the animation by dt seconds and returns the position
// delta accumulated since the previous call. done becomes true on the call
// that finishes the animation; later calls return zero deltas.
func (m *Momentum) Update(dt float32) (dx, dy float64, done bool) {
	if m.done {
		return 0, 0, true
	}
	x, doneX := m.tweenX.Update(dt)
	y, doneY := m.tweenY.Update(dt)
	dx = float64(x - m.lastX)
	dy = float64(y - m.lastY)
	m.lastX = x
	m.lastY = y
	m.done = doneX && doneY
	return dx, dy, m.done
}

// Done reports whether the animation has finished.
func (m *Momentum) Done() bool {
	return m.done
}
