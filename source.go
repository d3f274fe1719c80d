package grip

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxSourcePointers bounds the pointer slots an EbitenSource hands out:
// pointer 0 = mouse, 1-9 = touch.
const maxSourcePointers = 10

// EbitenSource converts Ebitengine mouse and touch state into the pointer
// event stream a recognizer consumes. Call Poll once per Update tick; it
// diffs against the previous tick and emits Down, Move, and Up events with
// wall-clock timestamps.
//
// The mouse is pointer 0 (DeviceMouse, left button only); touches occupy
// slots 1-9 (DeviceTouch) for the lifetime of their contact. Moves are only
// emitted for contacts that are down, so every Move the sink sees follows a
// prior Down.
type EbitenSource struct {
	sink EventSink

	mouseDown bool
	mouseX    float64
	mouseY    float64

	touchMap     [maxSourcePointers]ebiten.TouchID
	touchUsed    [maxSourcePointers]bool
	touchDown    [maxSourcePointers]bool
	touchX       [maxSourcePointers]float64
	touchY       [maxSourcePointers]float64
	prevTouchIDs []ebiten.TouchID
}

// NewEbitenSource creates a source delivering into sink.
func NewEbitenSource(sink EventSink) *EbitenSource {
	return &EbitenSource{sink: sink}
}

// Poll reads the current Ebitengine input state and emits the delta as
// pointer events.
func (s *EbitenSource) Poll() {
	now := time.Now()

	mx, my := ebiten.CursorPosition()
	s.updateMouse(now, float64(mx), float64(my),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	s.prevTouchIDs = ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	var positions [maxSourcePointers]Vec2
	var active [maxSourcePointers]bool
	for _, tid := range s.prevTouchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		positions[slot] = Vec2{float64(tx), float64(ty)}
		active[slot] = true
	}
	s.updateTouches(now, active, positions)
}

// updateMouse diffs one tick of mouse state into events.
func (s *EbitenSource) updateMouse(now time.Time, x, y float64, pressed bool) {
	switch {
	case pressed && !s.mouseDown:
		s.mouseDown = true
		s.sink.HandleEvent(Down(0, x, y, DeviceMouse, now))
	case !pressed && s.mouseDown:
		s.mouseDown = false
		s.sink.HandleEvent(Up(0))
	case pressed && (x != s.mouseX || y != s.mouseY):
		s.sink.HandleEvent(Move(0, x, y, now))
	}
	s.mouseX = x
	s.mouseY = y
}

// updateTouches diffs one tick of touch slot state into events. Slots that
// vanished this tick are released; slots that appeared are pressed.
func (s *EbitenSource) updateTouches(now time.Time, active [maxSourcePointers]bool, positions [maxSourcePointers]Vec2) {
	for slot := 1; slot < maxSourcePointers; slot++ {
		p := positions[slot]
		switch {
		case active[slot] && !s.touchDown[slot]:
			s.touchDown[slot] = true
			s.touchX[slot] = p.X
			s.touchY[slot] = p.Y
			s.sink.HandleEvent(Down(PointerID(slot), p.X, p.Y, DeviceTouch, now))
		case active[slot]:
			if p.X != s.touchX[slot] || p.Y != s.touchY[slot] {
				s.touchX[slot] = p.X
				s.touchY[slot] = p.Y
				s.sink.HandleEvent(Move(PointerID(slot), p.X, p.Y, now))
			}
		case s.touchUsed[slot]:
			s.touchUsed[slot] = false
			s.touchMap[slot] = 0
			if s.touchDown[slot] {
				s.touchDown[slot] = false
				s.sink.HandleEvent(Up(PointerID(slot)))
			}
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9). Returns the
// existing slot or allocates a new one; -1 when all slots are taken.
func (s *EbitenSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxSourcePointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxSourcePointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}
