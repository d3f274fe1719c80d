package grip

import "time"

// PointerID identifies one physical contact (touch, stylus, or mouse button
// hold) for its lifetime: down, zero or more moves, then up or cancel.
// IDs are opaque and assigned by the host; they must be unique among
// contacts that are simultaneously live.
type PointerID int64

// Phase identifies the kind of a pointer event.
type Phase uint8

const (
	PhaseDown   Phase = iota // a new contact touched the surface
	PhaseMove                // an existing contact changed position
	PhaseUp                  // a contact left the surface normally
	PhaseCancel              // a contact was aborted by the system
)

// DeviceKind identifies the class of input device a pointer belongs to.
// It selects the default slop threshold for gesture disambiguation.
type DeviceKind uint8

const (
	DeviceTouch  DeviceKind = iota // finger on a touch surface
	DeviceMouse                    // mouse or trackpad-emulated pointer
	DeviceStylus                   // pen / stylus contact
)

// Slop returns the default disambiguation slop in pixels for this device
// kind: the displacement divergence two pointers must exceed before
// ambiguous motion is claimed as a scale gesture.
func (k DeviceKind) Slop() float64 {
	switch k {
	case DeviceMouse:
		return defaultMouseSlop
	case DeviceStylus:
		return defaultStylusSlop
	default:
		return defaultTouchSlop
	}
}

// PointerEvent is one element of the raw event stream a recognizer consumes.
// Position is in the caller's coordinate space; no unit conversion is done.
// Synthetic marks injected move samples that must not feed velocity
// estimation. Up and Cancel events carry no position.
type PointerEvent struct {
	Phase     Phase
	ID        PointerID
	X, Y      float64
	Kind      DeviceKind
	Time      time.Time
	Synthetic bool
}

// Down builds a pointer-down event.
func Down(id PointerID, x, y float64, kind DeviceKind, t time.Time) PointerEvent {
	return PointerEvent{Phase: PhaseDown, ID: id, X: x, Y: y, Kind: kind, Time: t}
}

// Move builds a pointer-move event.
func Move(id PointerID, x, y float64, t time.Time) PointerEvent {
	return PointerEvent{Phase: PhaseMove, ID: id, X: x, Y: y, Time: t}
}

// SyntheticMove builds an injected move event. Synthetic moves update
// positions but are excluded from velocity estimation.
func SyntheticMove(id PointerID, x, y float64, t time.Time) PointerEvent {
	return PointerEvent{Phase: PhaseMove, ID: id, X: x, Y: y, Time: t, Synthetic: true}
}

// Up builds a pointer-up event.
func Up(id PointerID) PointerEvent {
	return PointerEvent{Phase: PhaseUp, ID: id}
}

// Cancel builds a pointer-cancel event.
func Cancel(id PointerID) PointerEvent {
	return PointerEvent{Phase: PhaseCancel, ID: id}
}

// Velocity is a pointer velocity in pixels per second along each axis.
type Velocity struct {
	X, Y float64
}

// Zero reports whether the velocity is exactly zero on both axes.
func (v Velocity) Zero() bool {
	return v.X == 0 && v.Y == 0
}

// UpdateContext carries the continuously recomputed gesture values passed to
// OnUpdate. Scale is always >= 0 and equals 1.0 the instant the tracked pair
// is (re)established. Rotation is signed radians relative to the pair's
// baseline orientation, unnormalized across a long gesture. FocalX/FocalY
// are the midpoint of the tracked pair and are only populated when the
// recognizer's TrackFocal option is set; HasFocal tells the two apart.
type UpdateContext struct {
	Scale    float64
	Rotation float64
	FocalX   float64
	FocalY   float64
	HasFocal bool
}

// EndContext carries the release velocity passed to OnEnd. Velocity is the
// clamped fling velocity, or zero when the release was below the minimum
// fling speed.
type EndContext struct {
	Velocity Velocity
}

// EventSink consumes a stream of pointer events. ScaleRecognizer implements
// it; sources and the script runner produce into it.
type EventSink interface {
	HandleEvent(ev PointerEvent)
}

// SinkFunc adapts a plain function to the EventSink interface.
type SinkFunc func(ev PointerEvent)

// HandleEvent calls f(ev).
func (f SinkFunc) HandleEvent(ev PointerEvent) { f(ev) }

// --- Defaults ---

const (
	defaultTouchSlop  = 18.0 // pixels
	defaultMouseSlop  = 4.0
	defaultStylusSlop = 10.0

	defaultMinFlingVelocity = 50.0   // px/s; slower releases report zero
	defaultMaxFlingVelocity = 8000.0 // px/s; faster releases are clamped
)
