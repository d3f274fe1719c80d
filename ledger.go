package grip

import "fmt"

// pointerLedger is the per-attempt bookkeeping of pointer positions and
// arrival order. A pointer id appears in initial, current, and order while
// its contact persists and is removed from all three atomically on up or
// cancel. The two pointers used for scale/rotation math are always the
// first two by arrival order; later arrivals update the ledger but never
// displace them.
type pointerLedger struct {
	initial map[PointerID]Vec2
	current map[PointerID]Vec2
	order   []PointerID
}

func newPointerLedger() *pointerLedger {
	return &pointerLedger{
		initial: make(map[PointerID]Vec2),
		current: make(map[PointerID]Vec2),
	}
}

// onDown records a new contact. A duplicate id for a live contact is a
// host contract violation.
func (l *pointerLedger) onDown(id PointerID, p Vec2) {
	if _, ok := l.current[id]; ok {
		panic(fmt.Sprintf("grip: pointer %d already tracked", id))
	}
	l.initial[id] = p
	l.current[id] = p
	l.order = append(l.order, id)
}

// onMove updates the current position of a live contact. Moving an
// untracked id is a host contract violation.
func (l *pointerLedger) onMove(id PointerID, p Vec2) {
	if _, ok := l.current[id]; !ok {
		panic(fmt.Sprintf("grip: move for untracked pointer %d", id))
	}
	l.current[id] = p
}

// onRemove erases a contact from all three structures. Removing an
// untracked id is a host contract violation: a remove must always follow a
// prior add.
func (l *pointerLedger) onRemove(id PointerID) {
	if _, ok := l.current[id]; !ok {
		panic(fmt.Sprintf("grip: remove for untracked pointer %d", id))
	}
	delete(l.initial, id)
	delete(l.current, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// trackedPair returns the first two pointers by arrival order. ok is false
// while fewer than two contacts are live. Ordering is strictly arrival
// order, never spatial.
func (l *pointerLedger) trackedPair() (first, second PointerID, ok bool) {
	if len(l.order) < 2 {
		return 0, 0, false
	}
	return l.order[0], l.order[1], true
}

// isEmpty reports whether no contacts remain. This is the sole signal used
// to reset the whole gesture attempt.
func (l *pointerLedger) isEmpty() bool {
	return len(l.order) == 0
}

// rebaseline resets every pointer's initial position to its current one.
// Used when the reference point of computation is the gesture start rather
// than first contact.
func (l *pointerLedger) rebaseline() {
	for id, p := range l.current {
		l.initial[id] = p
	}
}
