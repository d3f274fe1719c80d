package grip

import "fmt"

// gesturePhase is the lifecycle state of one gesture attempt.
type gesturePhase uint8

const (
	phaseReady    gesturePhase = iota // no pointers tracked
	phasePossible                     // pointers down, gesture not yet claimed
	phaseAccepted                     // arbitration won, start callback not fired
	phaseStarted                      // start callback fired, updates flowing
)

func (p gesturePhase) String() string {
	switch p {
	case phaseReady:
		return "ready"
	case phasePossible:
		return "possible"
	case phaseAccepted:
		return "accepted"
	default:
		return "started"
	}
}

// Config holds the tunable options of a ScaleRecognizer. The zero value
// selects per-device defaults for every threshold.
type Config struct {
	// Slop is the displacement-divergence threshold in pixels beyond which
	// ambiguous two-finger motion is claimed as a scale gesture. Zero picks
	// the default for the device kind of the attempt's first pointer.
	Slop float64
	// MinFlingVelocity is the release speed in px/s below which OnEnd
	// reports zero velocity. Zero picks the package default.
	MinFlingVelocity float64
	// MaxFlingVelocity is the release speed in px/s above which the fling
	// vector is clamped, preserving direction. Zero picks the package
	// default.
	MaxFlingVelocity float64
	// TrackFocal populates the focal point (tracked-pair midpoint) in every
	// update.
	TrackFocal bool
	// BaselineAtGestureStart measures scale and rotation from the pointer
	// positions at the moment arbitration accepts the gesture instead of
	// from first contact. Slop disambiguation always measures from first
	// contact.
	BaselineAtGestureStart bool
}

// ScaleRecognizer recognizes a two-finger pinch/scale/rotate gesture from a
// raw pointer event stream, reporting a continuous scale factor, rotation
// angle, optional focal point, and a release fling velocity.
//
// Feed it one event at a time via HandleEvent on the thread that owns the
// input loop; it never blocks and is not safe for concurrent use. The first
// two pointers by arrival order form the tracked pair; later contacts are
// bookkept but never participate in the math.
//
// The recognizer competes for pointer ownership through an Arena and only
// delivers callbacks once arbitration accepts it. Contract violations in
// the host's event delivery (duplicate downs, removes without a prior down)
// panic.
type ScaleRecognizer struct {
	// OnStart fires once when the gesture becomes active, before the first
	// update. Optional.
	OnStart func()
	// OnUpdate fires with freshly recomputed values on every qualifying
	// event while the gesture is active. Optional.
	OnUpdate func(UpdateContext)
	// OnEnd fires when a pointer lifts out of an active gesture, carrying
	// the clamped fling velocity or zero. Optional.
	OnEnd func(EndContext)
	// NewEstimator constructs the per-pointer velocity estimator. Defaults
	// to NewLeastSquaresEstimator for every device kind.
	NewEstimator func(kind DeviceKind) VelocityEstimator

	cfg   Config
	arena Arena

	phase    gesturePhase
	ledger   *pointerLedger
	lines    lineTracker
	fling    *flingExtractor
	slop     float64 // effective slop for this attempt
	claiming bool    // accepted verdict sent, arena answer pending
}

// NewScaleRecognizer creates a recognizer competing in arena. A nil arena
// gets a private SoloArena, which suits hosts with a single recognizer.
func NewScaleRecognizer(arena Arena, cfg Config) *ScaleRecognizer {
	if arena == nil {
		arena = NewSoloArena()
	}
	if cfg.MinFlingVelocity == 0 {
		cfg.MinFlingVelocity = defaultMinFlingVelocity
	}
	if cfg.MaxFlingVelocity == 0 {
		cfg.MaxFlingVelocity = defaultMaxFlingVelocity
	}
	r := &ScaleRecognizer{cfg: cfg, arena: arena}
	r.fling = newFlingExtractor(r.makeEstimator, cfg.MinFlingVelocity, cfg.MaxFlingVelocity)
	r.ledger = newPointerLedger()
	return r
}

func (r *ScaleRecognizer) makeEstimator(kind DeviceKind) VelocityEstimator {
	if r.NewEstimator != nil {
		return r.NewEstimator(kind)
	}
	return NewLeastSquaresEstimator()
}

// HandleEvent consumes one pointer event. Events must arrive in real order:
// down before any move, up or cancel exactly once per down.
func (r *ScaleRecognizer) HandleEvent(ev PointerEvent) {
	switch ev.Phase {
	case PhaseDown:
		r.handleDown(ev)
	case PhaseMove:
		r.handleMove(ev)
	case PhaseUp, PhaseCancel:
		r.handleRemove(ev.ID)
	}
}

func (r *ScaleRecognizer) handleDown(ev PointerEvent) {
	r.ledger.onDown(ev.ID, Vec2{ev.X, ev.Y})
	r.fling.track(ev.ID, ev.Kind)
	r.arena.Claim(ev.ID, r)

	if r.phase == phaseReady {
		r.slop = r.cfg.Slop
		if r.slop == 0 {
			r.slop = ev.Kind.Slop()
		}
		r.phase = phasePossible
	}
	r.advance()
}

func (r *ScaleRecognizer) handleMove(ev PointerEvent) {
	r.ledger.onMove(ev.ID, Vec2{ev.X, ev.Y})
	if !ev.Synthetic {
		r.fling.addSample(ev.ID, ev.Time, ev.X, ev.Y)
	}
	r.advance()
}

func (r *ScaleRecognizer) handleRemove(id PointerID) {
	if r.phase == phaseStarted {
		// Fling extraction runs exactly once per terminated gesture, for
		// whichever pointer lifts while the gesture is active.
		v := r.fling.extract(id)
		if r.OnEnd != nil {
			r.OnEnd(EndContext{Velocity: v})
		}
		r.phase = phaseAccepted
	} else {
		r.fling.drop(id)
	}
	r.ledger.onRemove(id)
	if r.ledger.isEmpty() {
		r.didStopTrackingLastPointer(id)
	}
}

// didStopTrackingLastPointer runs once the ledger empties. A started
// gesture must already have stepped down to accepted through the removal
// handling above; observing ready or started here means the host broke the
// pointer-lifecycle contract.
func (r *ScaleRecognizer) didStopTrackingLastPointer(id PointerID) {
	switch r.phase {
	case phasePossible:
		r.arena.Resolve(id, r, DispositionRejected)
		r.reset()
	case phaseAccepted:
		r.reset()
	default:
		panic(fmt.Sprintf("grip: last pointer gone in %v state", r.phase))
	}
}

// advance re-evaluates the state machine after a qualifying event. With
// fewer than two tracked pointers nothing happens: a single finger alone
// never becomes a scale gesture.
func (r *ScaleRecognizer) advance() {
	first, second, ok := r.ledger.trackedPair()
	if !ok {
		return
	}
	r.lines.update(first, second, r.ledger)

	if r.phase == phasePossible && !r.claiming && r.diverged(first, second) {
		r.claiming = true
		for _, id := range r.ledger.order {
			r.arena.Resolve(id, r, DispositionAccepted)
		}
		// A synchronous arena answers through AcceptGesture before Resolve
		// returns, letting this same event start the gesture below.
	}
	if r.phase == phaseAccepted {
		r.phase = phaseStarted
		if r.OnStart != nil {
			r.OnStart()
		}
		r.fireUpdate()
		return
	}
	if r.phase == phaseStarted {
		r.fireUpdate()
	}
}

// diverged reports whether the tracked pair's displacements from their own
// initial positions point in incompatible directions on some axis with a
// combined magnitude beyond the slop. Two fingers panning together never
// trigger it.
func (r *ScaleRecognizer) diverged(first, second PointerID) bool {
	d0 := r.ledger.current[first].Sub(r.ledger.initial[first])
	d1 := r.ledger.current[second].Sub(r.ledger.initial[second])
	return axisDiverged(d0.X, d1.X, r.slop) || axisDiverged(d0.Y, d1.Y, r.slop)
}

func axisDiverged(a, b, slop float64) bool {
	if a*b > 0 {
		return false // same direction
	}
	return abs(a)+abs(b) > slop
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// fireUpdate recomputes scale and rotation from absolute positions, never
// from accumulated deltas, and delivers them.
func (r *ScaleRecognizer) fireUpdate() {
	if r.OnUpdate == nil {
		return
	}
	ctx := UpdateContext{
		Scale:    r.lines.scale(),
		Rotation: r.lines.rotation(),
	}
	if r.cfg.TrackFocal {
		f := r.lines.focal()
		ctx.FocalX = f.X
		ctx.FocalY = f.Y
		ctx.HasFocal = true
	}
	r.OnUpdate(ctx)
}

// AcceptGesture is the arena's notification that arbitration went our way.
// Late notifications for a pointer of an already decided or reset attempt
// are ignored.
func (r *ScaleRecognizer) AcceptGesture(id PointerID) {
	r.claiming = false
	if r.phase != phasePossible {
		return
	}
	r.phase = phaseAccepted
	if r.cfg.BaselineAtGestureStart {
		r.ledger.rebaseline()
		r.lines.rebaseline()
	}
}

// RejectGesture is the arena's notification that another recognizer won
// pointer id. The pointer is silently dropped; no callbacks fire. Pointers
// the recognizer no longer tracks are ignored.
func (r *ScaleRecognizer) RejectGesture(id PointerID) {
	if _, ok := r.ledger.current[id]; !ok {
		return
	}
	r.fling.drop(id)
	r.ledger.onRemove(id)
	if r.ledger.isEmpty() {
		r.reset()
	}
}

// Dispose releases all per-pointer velocity estimators and resets the
// attempt. Call when retiring the recognizer, regardless of gesture state.
func (r *ScaleRecognizer) Dispose() {
	r.reset()
}

func (r *ScaleRecognizer) reset() {
	r.phase = phaseReady
	r.ledger = newPointerLedger()
	r.lines.reset()
	r.fling.clear()
	r.slop = 0
	r.claiming = false
}
