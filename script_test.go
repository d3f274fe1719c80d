package grip

import (
	"testing"
	"time"
)

// recordingSink captures every event it receives.
type recordingSink struct {
	events []PointerEvent
}

func (s *recordingSink) HandleEvent(ev PointerEvent) {
	s.events = append(s.events, ev)
}

func TestLoadScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"malformed json", `{"steps": [`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "hover", "id": 1}]}`},
		{"unknown kind", `{"steps": [{"action": "down", "id": 1, "kind": "gamepad"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tc.json)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestScriptRunnerDeliversEvents(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "down", "id": 1, "x": 5, "y": 6, "kind": "stylus"},
		{"action": "move", "id": 1, "x": 9, "y": 6},
		{"action": "cancel", "id": 1}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	sink := &recordingSink{}
	runner.Run(sink)

	if len(sink.events) != 3 {
		t.Fatalf("got %d events, want 3", len(sink.events))
	}
	down := sink.events[0]
	if down.Phase != PhaseDown || down.ID != 1 || down.X != 5 || down.Kind != DeviceStylus {
		t.Errorf("down = %+v", down)
	}
	if sink.events[1].Phase != PhaseMove || sink.events[1].X != 9 {
		t.Errorf("move = %+v", sink.events[1])
	}
	if sink.events[2].Phase != PhaseCancel {
		t.Errorf("cancel = %+v", sink.events[2])
	}
	if !runner.Done() {
		t.Error("runner should be done after Run")
	}
	if runner.Step(sink) {
		t.Error("Step past the end should return false")
	}
}

func TestScriptRunnerWaitAdvancesClock(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "down", "id": 1, "x": 0, "y": 0},
		{"action": "wait", "frames": 5},
		{"action": "move", "id": 1, "x": 10, "y": 0}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	runner.SetTick(10 * time.Millisecond)

	sink := &recordingSink{}
	runner.Run(sink)

	gap := sink.events[1].Time.Sub(sink.events[0].Time)
	if gap != 60*time.Millisecond {
		t.Errorf("gap = %v, want 60ms (5 waited frames + 1 move frame)", gap)
	}
}

func TestScriptRunnerDrivesRecognizer(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "down", "id": 1, "x": 0,   "y": 0},
		{"action": "down", "id": 2, "x": 100, "y": 0},
		{"action": "move", "id": 1, "x": -50, "y": 0},
		{"action": "move", "id": 2, "x": 150, "y": 0},
		{"action": "up",   "id": 1},
		{"action": "up",   "id": 2}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	r, _, log := newTestRecognizer(Config{})
	runner.Run(r)

	if !contains(log.events, "start") || !contains(log.events, "end") {
		t.Fatalf("scripted pinch should run a full gesture, got %v", log.events)
	}
	if got := log.lastUpdate(t).Scale; !almostEqual(got, 2.0) {
		t.Errorf("scripted scale = %v, want 2.0", got)
	}
}
