package grip

import (
	"math"
	"testing"
	"time"
)

// stubEstimator reports a fixed velocity regardless of samples.
type stubEstimator struct {
	v       Velocity
	samples int
}

func (s *stubEstimator) AddSample(t time.Time, x, y float64) { s.samples++ }
func (s *stubEstimator) Estimate() Velocity                  { return s.v }

func stubFactory(v Velocity) (func(kind DeviceKind) VelocityEstimator, *stubEstimator) {
	est := &stubEstimator{v: v}
	return func(kind DeviceKind) VelocityEstimator { return est }, est
}

func TestFlingExtractor_BelowMinimumIsZero(t *testing.T) {
	factory, _ := stubFactory(Velocity{X: 30, Y: 0})
	f := newFlingExtractor(factory, 50, 4000)
	f.track(1, DeviceTouch)

	if v := f.extract(1); !v.Zero() {
		t.Errorf("extract = %v, want zero below minimum fling speed", v)
	}
}

func TestFlingExtractor_PassesThroughInRange(t *testing.T) {
	factory, _ := stubFactory(Velocity{X: 300, Y: 400})
	f := newFlingExtractor(factory, 50, 4000)
	f.track(1, DeviceTouch)

	v := f.extract(1)
	if v.X != 300 || v.Y != 400 {
		t.Errorf("extract = %v, want (300, 400)", v)
	}
}

func TestFlingExtractor_ClampPreservesDirection(t *testing.T) {
	// 5000 px/s straight along X against a 4000 px/s cap.
	factory, _ := stubFactory(Velocity{X: 5000, Y: 0})
	f := newFlingExtractor(factory, 50, 4000)
	f.track(1, DeviceTouch)

	v := f.extract(1)
	if !almostEqual(v.X, 4000) || !almostEqual(v.Y, 0) {
		t.Errorf("extract = %v, want (4000, 0)", v)
	}
}

func TestFlingExtractor_ClampDiagonal(t *testing.T) {
	factory, _ := stubFactory(Velocity{X: 3000, Y: 4000}) // magnitude 5000
	f := newFlingExtractor(factory, 50, 4000)
	f.track(1, DeviceTouch)

	v := f.extract(1)
	if got := math.Hypot(v.X, v.Y); !almostEqual(got, 4000) {
		t.Errorf("clamped magnitude = %v, want 4000", got)
	}
	// Direction preserved: 3:4 ratio.
	if !almostEqual(v.X/v.Y, 0.75) {
		t.Errorf("direction changed: %v", v)
	}
}

func TestFlingExtractor_ConsumedOnce(t *testing.T) {
	factory, _ := stubFactory(Velocity{X: 500, Y: 0})
	f := newFlingExtractor(factory, 50, 4000)
	f.track(1, DeviceTouch)

	if v := f.extract(1); v.Zero() {
		t.Fatal("first extract should report the velocity")
	}
	if v := f.extract(1); !v.Zero() {
		t.Error("second extract should find no estimator")
	}
}

func TestFlingExtractor_SamplesReachEstimator(t *testing.T) {
	factory, est := stubFactory(Velocity{})
	f := newFlingExtractor(factory, 50, 4000)
	f.track(1, DeviceTouch)

	now := time.Now()
	f.addSample(1, now, 0, 0)
	f.addSample(1, now.Add(10*time.Millisecond), 5, 5)
	if est.samples != 2 {
		t.Errorf("samples = %d, want 2", est.samples)
	}

	// Samples for untracked pointers are dropped silently.
	f.addSample(2, now, 0, 0)
	if est.samples != 2 {
		t.Errorf("samples = %d after untracked add, want 2", est.samples)
	}
}

func TestFlingExtractor_DropAndClear(t *testing.T) {
	factory, _ := stubFactory(Velocity{X: 500, Y: 0})
	f := newFlingExtractor(factory, 50, 4000)
	f.track(1, DeviceTouch)
	f.track(2, DeviceTouch)

	f.drop(1)
	if v := f.extract(1); !v.Zero() {
		t.Error("dropped estimator should not report velocity")
	}

	f.clear()
	if v := f.extract(2); !v.Zero() {
		t.Error("cleared estimator should not report velocity")
	}
}
