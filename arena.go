package grip

// Disposition is a recognizer's verdict on a contested pointer sequence.
type Disposition uint8

const (
	DispositionAccepted Disposition = iota // the recognizer claims the sequence
	DispositionRejected                    // the recognizer gives the sequence up
)

// ArenaMember receives arbitration outcomes for a pointer it claimed.
// ScaleRecognizer implements it. Both notifications must tolerate pointers
// the member no longer tracks.
type ArenaMember interface {
	AcceptGesture(id PointerID)
	RejectGesture(id PointerID)
}

// Arena arbitrates ownership of pointer sequences among competing
// recognizers. Recognizers claim each pointer on its down event and resolve
// once they can tell whether the sequence is theirs; the arena answers
// through the ArenaMember callbacks. Outcomes travel only through those
// callbacks, never through errors.
type Arena interface {
	// Claim enters m into the contest for pointer id.
	Claim(id PointerID, m ArenaMember)
	// Resolve records m's verdict for pointer id.
	Resolve(id PointerID, m ArenaMember, d Disposition)
}

// --- Reference arena ---

// arenaContest tracks the members competing for one pointer.
type arenaContest struct {
	members []ArenaMember
	open    bool        // still accepting members (before Close)
	eager   ArenaMember // resolved accepted while the contest was open
}

// GestureArena is a reference Arena implementation: the first member to
// resolve accepted wins and everyone else is rejected; if the pointer is
// released with no verdict, Sweep awards the contest to the first surviving
// member. Hosts with their own dispatch systems can ignore it and implement
// Arena directly.
type GestureArena struct {
	contests map[PointerID]*arenaContest
}

// NewGestureArena creates an empty arena.
func NewGestureArena() *GestureArena {
	return &GestureArena{contests: make(map[PointerID]*arenaContest)}
}

// Claim enters m into the contest for pointer id, creating the contest on
// first claim.
func (a *GestureArena) Claim(id PointerID, m ArenaMember) {
	c, ok := a.contests[id]
	if !ok {
		c = &arenaContest{open: true}
		a.contests[id] = c
	}
	c.members = append(c.members, m)
}

// Close stops accepting members for pointer id. Call after the down event
// has been dispatched to every interested recognizer. A contest whose
// outcome is already determined resolves immediately.
func (a *GestureArena) Close(id PointerID) {
	c, ok := a.contests[id]
	if !ok {
		return
	}
	c.open = false
	a.tryResolve(id, c)
}

// Sweep forces a verdict for pointer id, typically on its up event: the
// first surviving member wins. No-op if the contest is already decided.
func (a *GestureArena) Sweep(id PointerID) {
	c, ok := a.contests[id]
	if !ok {
		return
	}
	delete(a.contests, id)
	if len(c.members) == 0 {
		return
	}
	c.members[0].AcceptGesture(id)
	for _, m := range c.members[1:] {
		m.RejectGesture(id)
	}
}

// Resolve records m's verdict for pointer id. An accepted verdict wins the
// contest once it is closed; a rejected verdict withdraws m, and a closed
// contest left with a single member awards it the win.
func (a *GestureArena) Resolve(id PointerID, m ArenaMember, d Disposition) {
	c, ok := a.contests[id]
	if !ok {
		return
	}
	if d == DispositionRejected {
		for i, member := range c.members {
			if member == m {
				c.members = append(c.members[:i], c.members[i+1:]...)
				break
			}
		}
		if c.eager == m {
			c.eager = nil
		}
		m.RejectGesture(id)
		if !c.open {
			a.tryResolve(id, c)
		}
		return
	}
	if c.open {
		if c.eager == nil {
			c.eager = m
		}
		return
	}
	a.award(id, c, m)
}

// tryResolve settles a closed contest whose outcome is determined.
func (a *GestureArena) tryResolve(id PointerID, c *arenaContest) {
	if len(c.members) == 0 {
		delete(a.contests, id)
		return
	}
	if c.eager != nil {
		a.award(id, c, c.eager)
		return
	}
	if len(c.members) == 1 {
		a.award(id, c, c.members[0])
	}
}

// award declares winner and rejects everyone else.
func (a *GestureArena) award(id PointerID, c *arenaContest, winner ArenaMember) {
	delete(a.contests, id)
	winner.AcceptGesture(id)
	for _, m := range c.members {
		if m != winner {
			m.RejectGesture(id)
		}
	}
}

// --- Solo arena ---

// SoloArena is the trivial arena for hosts running a single recognizer:
// verdicts take effect immediately and a released pointer is awarded to its
// claimant.
type SoloArena struct {
	claims map[PointerID]ArenaMember
}

// NewSoloArena creates an empty solo arena.
func NewSoloArena() *SoloArena {
	return &SoloArena{claims: make(map[PointerID]ArenaMember)}
}

// Claim records m as the sole claimant of pointer id.
func (a *SoloArena) Claim(id PointerID, m ArenaMember) {
	a.claims[id] = m
}

// Resolve applies m's verdict immediately.
func (a *SoloArena) Resolve(id PointerID, m ArenaMember, d Disposition) {
	delete(a.claims, id)
	if d == DispositionAccepted {
		m.AcceptGesture(id)
	} else {
		m.RejectGesture(id)
	}
}

// Sweep awards an unresolved pointer to its claimant, typically on up.
func (a *SoloArena) Sweep(id PointerID) {
	if m, ok := a.claims[id]; ok {
		delete(a.claims, id)
		m.AcceptGesture(id)
	}
}
