package grip

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	ID     int64   `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Kind   string  `json:"kind,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// defaultScriptTick is the simulated frame duration between script steps.
const defaultScriptTick = 16 * time.Millisecond

// ScriptRunner replays a scripted pointer sequence into an event sink with
// synthesized timestamps, for automated tests and demos. Scripts are JSON:
//
//	{"steps": [
//	  {"action": "down", "id": 1, "x": 0,   "y": 0},
//	  {"action": "down", "id": 2, "x": 100, "y": 0},
//	  {"action": "move", "id": 2, "x": 150, "y": 0},
//	  {"action": "wait", "frames": 3},
//	  {"action": "up",   "id": 1},
//	  {"action": "up",   "id": 2}
//	]}
//
// Actions: down, move, up, cancel, wait. Down steps accept an optional
// "kind" of touch, mouse, or stylus (default touch). Each step advances the
// simulated clock by one frame; wait advances it by "frames" frames.
type ScriptRunner struct {
	steps  []scriptStep
	cursor int
	tick   time.Duration
	now    time.Time
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, step := range script.Steps {
		switch step.Action {
		case "down", "move", "up", "cancel", "wait":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, step.Action)
		}
		if _, err := parseDeviceKind(step.Kind); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{
		steps: script.Steps,
		tick:  defaultScriptTick,
		now:   time.Now(),
	}, nil
}

func parseDeviceKind(s string) (DeviceKind, error) {
	switch s {
	case "", "touch":
		return DeviceTouch, nil
	case "mouse":
		return DeviceMouse, nil
	case "stylus":
		return DeviceStylus, nil
	default:
		return DeviceTouch, fmt.Errorf("unknown device kind %q", s)
	}
}

// SetTick overrides the simulated frame duration between steps.
func (r *ScriptRunner) SetTick(tick time.Duration) {
	r.tick = tick
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.cursor >= len(r.steps)
}

// Step executes the next script step, delivering at most one event to sink.
// Returns false once the script is exhausted.
func (r *ScriptRunner) Step(sink EventSink) bool {
	if r.Done() {
		return false
	}
	step := r.steps[r.cursor]
	r.cursor++

	switch step.Action {
	case "wait":
		frames := step.Frames
		if frames < 1 {
			frames = 1
		}
		r.now = r.now.Add(time.Duration(frames) * r.tick)
		return true
	case "down":
		kind, _ := parseDeviceKind(step.Kind)
		r.now = r.now.Add(r.tick)
		sink.HandleEvent(Down(PointerID(step.ID), step.X, step.Y, kind, r.now))
	case "move":
		r.now = r.now.Add(r.tick)
		sink.HandleEvent(Move(PointerID(step.ID), step.X, step.Y, r.now))
	case "up":
		r.now = r.now.Add(r.tick)
		sink.HandleEvent(Up(PointerID(step.ID)))
	case "cancel":
		r.now = r.now.Add(r.tick)
		sink.HandleEvent(Cancel(PointerID(step.ID)))
	}
	return true
}

// Run executes every remaining step against sink.
func (r *ScriptRunner) Run(sink EventSink) {
	for r.Step(sink) {
	}
}
