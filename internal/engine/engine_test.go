package engine

import (
	"testing"

	"github.com/chordkit/chordkit/internal/key"
	"github.com/chordkit/chordkit/internal/keymap"
	"github.com/chordkit/chordkit/internal/match"
)

func keydown(raw string, mods ...string) key.RawEvent {
	ev := key.RawEvent{RawKey: raw}
	for _, m := range mods {
		switch m {
		case "ctrl":
			ev.Ctrl = true
		case "alt":
			ev.Alt = true
		case "shift":
			ev.Shift = true
		case "meta":
			ev.Meta = true
		}
	}
	return ev
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	km := keymap.New("test").
		Add("ctrl+k", "palette").
		Add("g t", "next-tab")
	return New(km, DefaultConfig())
}

func TestEngineDispatch(t *testing.T) {
	e := newTestEngine(t)

	var fired []string
	e.Matcher().RegisterHandler("palette", func(action string, _ *key.Sequence) {
		fired = append(fired, action)
	})

	res := e.HandleKeyDown(keydown("k", "ctrl"))
	if res.Status != match.StatusFired {
		t.Fatalf("status = %v, want fired", res.Status)
	}
	if len(fired) != 1 || fired[0] != "palette" {
		t.Fatalf("fired = %v, want [palette]", fired)
	}
}

func TestEngineRecorderPriority(t *testing.T) {
	e := newTestEngine(t)

	matched := false
	e.Matcher().RegisterHandler("palette", func(string, *key.Sequence) {
		matched = true
	})

	var captured *key.Sequence
	e.Recorder().OnCapture = func(seq *key.Sequence, _ key.Display) {
		captured = seq
	}

	e.StartRecording()

	// While recording, the matcher must never see the event even though
	// it would match a binding.
	res := e.HandleKeyDown(keydown("k", "ctrl"))
	if res.Status != match.StatusIgnored {
		t.Fatalf("status = %v, want ignored while recording", res.Status)
	}
	if !res.PreventDefault || !res.StopPropagation {
		t.Fatal("recording consumption should carry the configured advice")
	}
	if matched {
		t.Fatal("matcher fired during an active recording session")
	}

	e.HandleKeyUp(keydown("k", "ctrl"))
	e.Recorder().Finalize()

	if captured == nil || captured.ID() != "ctrl+k" {
		t.Fatalf("captured = %v, want ctrl+k", captured)
	}

	// Once the session ends the matcher takes over again.
	res = e.HandleKeyDown(keydown("k", "ctrl"))
	if res.Status != match.StatusFired {
		t.Fatalf("status after recording = %v, want fired", res.Status)
	}
	if !matched {
		t.Fatal("matcher did not fire after recording ended")
	}
}

func TestEngineHookConsumesEvent(t *testing.T) {
	e := newTestEngine(t)

	fired := false
	e.Matcher().RegisterHandler("palette", func(string, *key.Sequence) {
		fired = true
	})

	id := e.AddHook(FuncHook{
		PreKeyEventFunc: func(ev key.RawEvent) bool {
			return ev.RawKey == "k"
		},
	})

	res := e.HandleKeyDown(keydown("k", "ctrl"))
	if res.Status != match.StatusIgnored {
		t.Fatalf("status = %v, want ignored", res.Status)
	}
	if fired {
		t.Fatal("consumed event still reached the matcher")
	}

	e.RemoveHook(id)
	res = e.HandleKeyDown(keydown("k", "ctrl"))
	if res.Status != match.StatusFired {
		t.Fatalf("status after unregister = %v, want fired", res.Status)
	}
}

func TestEngineHookPriorityOrder(t *testing.T) {
	e := newTestEngine(t)

	var order []string
	e.hooks.RegisterWithPriority(FuncHook{
		PreKeyEventFunc: func(key.RawEvent) bool {
			order = append(order, "low")
			return false
		},
	}, HookPriorityLow)
	e.hooks.RegisterWithPriority(FuncHook{
		PreKeyEventFunc: func(key.RawEvent) bool {
			order = append(order, "high")
			return false
		},
	}, HookPriorityHigh)

	e.HandleKeyDown(keydown("x"))
	if len(order) != 2 || order[0] != "high" || order[1] != "low" {
		t.Fatalf("order = %v, want [high low]", order)
	}
}

func TestEnginePostHookSeesResult(t *testing.T) {
	e := newTestEngine(t)
	e.Matcher().RegisterHandler("palette", func(string, *key.Sequence) {})

	var got match.Result
	e.AddHook(FuncHook{
		PostKeyEventFunc: func(_ key.RawEvent, res match.Result) {
			got = res
		},
	})

	e.HandleKeyDown(keydown("k", "ctrl"))
	if got.Status != match.StatusFired || got.Action != "palette" {
		t.Fatalf("post hook result = %+v, want fired palette", got)
	}
}

func TestEngineMetrics(t *testing.T) {
	e := newTestEngine(t)
	e.Matcher().RegisterHandler("palette", func(string, *key.Sequence) {})

	e.HandleKeyDown(keydown("k", "ctrl"))
	e.HandleKeyDown(keydown("z"))
	e.StartRecording()
	e.CancelRecording()

	snap := e.Metrics().Snapshot()
	if snap.KeyEvents != 2 {
		t.Errorf("KeyEvents = %d, want 2", snap.KeyEvents)
	}
	if snap.Dispatches != 1 {
		t.Errorf("Dispatches = %d, want 1", snap.Dispatches)
	}
	if snap.RecordingSessions != 1 {
		t.Errorf("RecordingSessions = %d, want 1", snap.RecordingSessions)
	}
}

func TestEngineSetKeymap(t *testing.T) {
	e := newTestEngine(t)

	fired := false
	e.Matcher().RegisterHandler("save", func(string, *key.Sequence) {
		fired = true
	})

	e.SetKeymap(keymap.New("replacement").Add("ctrl+s", "save"))

	if res := e.HandleKeyDown(keydown("k", "ctrl")); res.Status == match.StatusFired {
		t.Fatal("old binding fired after keymap replacement")
	}
	if res := e.HandleKeyDown(keydown("s", "ctrl")); res.Status != match.StatusFired {
		t.Fatalf("new binding status = %v, want fired", res.Status)
	}
	if !fired {
		t.Fatal("save handler did not run")
	}
}
