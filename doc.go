// Package grip recognizes two-finger pinch/scale/rotate gestures from a
// raw pointer event stream.
//
// Grip turns touch, stylus, and mouse contacts into a continuous scale
// factor, rotation angle, optional focal point, and a clamped release
// velocity for fling handling. It is built to be embedded in a larger
// input-dispatch system that owns the raw events and arbitrates which of
// several competing recognizers wins a touch sequence.
//
// # Quick start
//
// Create a recognizer, set the callbacks you care about, and feed it
// pointer events:
//
//	rec := grip.NewScaleRecognizer(nil, grip.Config{TrackFocal: true})
//	rec.OnStart = func() { /* gesture became active */ }
//	rec.OnUpdate = func(ctx grip.UpdateContext) {
//		// ctx.Scale, ctx.Rotation, ctx.FocalX/FocalY
//	}
//	rec.OnEnd = func(ctx grip.EndContext) {
//		// ctx.Velocity is the clamped fling velocity, or zero
//	}
//
//	rec.HandleEvent(grip.Down(1, 0, 0, grip.DeviceTouch, time.Now()))
//	rec.HandleEvent(grip.Down(2, 100, 0, grip.DeviceTouch, time.Now()))
//	rec.HandleEvent(grip.Move(2, 200, 0, time.Now()))
//	rec.HandleEvent(grip.Up(1))
//	rec.HandleEvent(grip.Up(2))
//
// In an Ebitengine game, [EbitenSource] produces the event stream from the
// current mouse and touch state:
//
//	src := grip.NewEbitenSource(rec)
//	// in Update():
//	src.Poll()
//
// # Gesture lifecycle
//
// A gesture attempt moves through four states: ready (no contacts),
// possible (contacts down, gesture not yet claimed), accepted (arbitration
// won), and started (callbacks flowing). The recognizer claims a sequence
// once the first two pointers' displacements diverge beyond a slop
// threshold, so two fingers panning together are left for other
// recognizers to win.
//
// Hosts running several recognizers share a [GestureArena] (or implement
// [Arena] over their own dispatch system); hosts running just one can pass
// a nil arena to [NewScaleRecognizer].
//
// # Applying gesture output
//
// [ScaleRotateAbout] builds the similarity transform for an update's
// scale, rotation, and focal point; [Momentum] converts the release
// velocity into a decaying coast animation; [ScriptRunner] replays JSON
// pointer scripts for tests.
//
// All recognizer methods must be called from the single goroutine that
// owns the input loop.
package grip
