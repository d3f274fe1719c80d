package grip

import (
	"math"
	"time"
)

// VelocityEstimator produces a velocity estimate from time-stamped position
// samples for a single pointer. One estimator exists per live pointer; it
// is fed every non-synthetic move and read at most once, at pointer removal.
// The built-in implementation is LeastSquaresEstimator; hosts may supply
// their own via ScaleRecognizer.NewEstimator.
type VelocityEstimator interface {
	AddSample(t time.Time, x, y float64)
	Estimate() Velocity
}

// flingExtractor owns the per-pointer velocity estimators for one gesture
// attempt and converts a raw release velocity into a clamped fling velocity
// or zero.
type flingExtractor struct {
	estimators   map[PointerID]VelocityEstimator
	newEstimator func(kind DeviceKind) VelocityEstimator
	minVelocity  float64
	maxVelocity  float64
}

func newFlingExtractor(newEstimator func(kind DeviceKind) VelocityEstimator, minV, maxV float64) *flingExtractor {
	return &flingExtractor{
		estimators:   make(map[PointerID]VelocityEstimator),
		newEstimator: newEstimator,
		minVelocity:  minV,
		maxVelocity:  maxV,
	}
}

// track creates an estimator for a new contact.
func (f *flingExtractor) track(id PointerID, kind DeviceKind) {
	f.estimators[id] = f.newEstimator(kind)
}

// addSample feeds a move sample to the pointer's estimator, if any.
// Synthetic moves must not reach here.
func (f *flingExtractor) addSample(id PointerID, t time.Time, x, y float64) {
	if est, ok := f.estimators[id]; ok {
		est.AddSample(t, x, y)
	}
}

// extract reads the estimator for a lifted pointer, discards it, and
// classifies the result: below the minimum fling speed reports zero; above
// the maximum the magnitude is clamped down preserving direction.
func (f *flingExtractor) extract(id PointerID) Velocity {
	est, ok := f.estimators[id]
	if !ok {
		return Velocity{}
	}
	delete(f.estimators, id)

	v := est.Estimate()
	speed := math.Hypot(v.X, v.Y)
	if speed < f.minVelocity {
		return Velocity{}
	}
	if speed > f.maxVelocity {
		ratio := f.maxVelocity / speed
		return Velocity{X: v.X * ratio, Y: v.Y * ratio}
	}
	return v
}

// drop discards the estimator for a pointer without reading it.
func (f *flingExtractor) drop(id PointerID) {
	delete(f.estimators, id)
}

// clear discards all estimators. Called on attempt reset and when the
// recognizer itself is retired.
func (f *flingExtractor) clear() {
	for id := range f.estimators {
		delete(f.estimators, id)
	}
}
