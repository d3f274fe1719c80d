package grip

// referenceLine is an ordered segment between the two tracked pointers.
type referenceLine struct {
	startID PointerID
	endID   PointerID
	start   Vec2
	end     Vec2
}

// sameIDs reports whether the line connects the same ordered id pair.
// The comparison is positional: a role swap of the same two ids counts as a
// different pair and forces a re-baseline.
func (ln referenceLine) sameIDs(first, second PointerID) bool {
	return ln.startID == first && ln.endID == second
}

// lineTracker maintains the initial and current line between the tracked
// pair. The initial line is only reset when the pair's identity changes,
// which lets rotation be measured against the pair's original orientation
// while positions drift, yet self-corrects when a pointer is replaced.
type lineTracker struct {
	initial referenceLine
	current referenceLine
	valid   bool
}

// update refreshes the current line from the pair's positions in the
// ledger. If no line exists yet, or the ordered pair identity changed,
// both lines are re-baselined to the pair's current positions.
func (t *lineTracker) update(first, second PointerID, l *pointerLedger) {
	line := referenceLine{
		startID: first,
		endID:   second,
		start:   l.current[first],
		end:     l.current[second],
	}
	if !t.valid || !t.initial.sameIDs(first, second) {
		t.initial = line
		t.valid = true
	}
	t.current = line
}

// reset discards both lines. Called when the gesture attempt resets.
func (t *lineTracker) reset() {
	*t = lineTracker{}
}

// rebaseline resets the initial line to the current one, making subsequent
// rotation and scale measure from this instant.
func (t *lineTracker) rebaseline() {
	if t.valid {
		t.initial = t.current
	}
}

// rotation returns the signed angle in radians between the current and
// initial line orientations, or 0 if no line exists yet. The result is
// unnormalized: a long continuous gesture may exceed ±π.
func (t *lineTracker) rotation() float64 {
	if !t.valid {
		return 0
	}
	return angleBetween(t.current.end, t.current.start) -
		angleBetween(t.initial.end, t.initial.start)
}

// scale returns the ratio of the current line length to the initial line
// length, or 1.0 when the initial length is exactly zero (degenerate
// same-point start). The result is never infinite or NaN.
func (t *lineTracker) scale() float64 {
	if !t.valid {
		return 1.0
	}
	initialDist := distance(t.initial.start, t.initial.end)
	if initialDist == 0 {
		return 1.0
	}
	return distance(t.current.start, t.current.end) / initialDist
}

// focal returns the midpoint of the current line. Only meaningful while
// a line exists.
func (t *lineTracker) focal() Vec2 {
	return midpoint(t.current.start, t.current.end)
}
