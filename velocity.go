package grip

import "time"

const (
	estimatorCapacity = 20                     // samples retained per pointer
	estimatorWindow   = 100 * time.Millisecond // samples older than this are ignored
)

type velocitySample struct {
	t time.Time
	x float64
	y float64
}

// LeastSquaresEstimator is the built-in VelocityEstimator: a fixed-capacity
// ring of recent samples with a degree-1 least-squares fit per axis over a
// short time window. Fewer than two usable samples estimate zero.
type LeastSquaresEstimator struct {
	samples [estimatorCapacity]velocitySample
	pos     int
	full    bool
}

// NewLeastSquaresEstimator creates an empty estimator.
func NewLeastSquaresEstimator() *LeastSquaresEstimator {
	return &LeastSquaresEstimator{}
}

// AddSample records a time-stamped position.
func (e *LeastSquaresEstimator) AddSample(t time.Time, x, y float64) {
	e.samples[e.pos] = velocitySample{t: t, x: x, y: y}
	e.pos++
	if e.pos >= estimatorCapacity {
		e.pos = 0
		e.full = true
	}
}

// Estimate fits position against time over the samples inside the window
// ending at the newest sample and returns the slope in pixels per second.
func (e *LeastSquaresEstimator) Estimate() Velocity {
	n := e.pos
	if e.full {
		n = estimatorCapacity
	}
	if n < 2 {
		return Velocity{}
	}

	// Unroll the ring into insertion order.
	var ordered [estimatorCapacity]velocitySample
	if e.full {
		copy(ordered[:], e.samples[e.pos:])
		copy(ordered[estimatorCapacity-e.pos:], e.samples[:e.pos])
	} else {
		copy(ordered[:], e.samples[:e.pos])
	}

	newest := ordered[n-1].t
	var sumT, sumX, sumY, sumTT, sumTX, sumTY float64
	var m float64
	for i := 0; i < n; i++ {
		s := ordered[i]
		age := newest.Sub(s.t)
		if age > estimatorWindow {
			continue
		}
		dt := -age.Seconds() // time relative to the newest sample
		sumT += dt
		sumX += s.x
		sumY += s.y
		sumTT += dt * dt
		sumTX += dt * s.x
		sumTY += dt * s.y
		m++
	}
	if m < 2 {
		return Velocity{}
	}

	denom := m*sumTT - sumT*sumT
	if denom == 0 {
		// All usable samples share a timestamp.
		return Velocity{}
	}
	return Velocity{
		X: (m*sumTX - sumT*sumX) / denom,
		Y: (m*sumTY - sumT*sumY) / denom,
	}
}
