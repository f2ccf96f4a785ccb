package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionJump) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionJump)
	if !f.Has(ActionLeft) || !f.Has(ActionJump) || f.Has(ActionRight) {
		t.Errorf("Has() mismatch: %v", f.Actions)
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone() should not share storage")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionJump, "Jump"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}

func TestRuntimeConfigDt(t *testing.T) {
	if got := DefaultConfig().Dt(); got != 1.0/60.0 {
		t.Errorf("default Dt() = %v, expected 1/60", got)
	}
	if got := (RuntimeConfig{TickRate: 20}).Dt(); got != 0.05 {
		t.Errorf("Dt() at 20 ticks = %v, expected 0.05", got)
	}
	if got := (RuntimeConfig{}).Dt(); got != 1.0/60.0 {
		t.Errorf("zero TickRate Dt() = %v, expected 1/60", got)
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventCoin, EventLevelCleared}}
	if !r.Has(EventCoin) || !r.Has(EventLevelCleared) {
		t.Error("Has() missed an event")
	}
	if r.Has(EventDied) {
		t.Error("Has(EventDied) should be false")
	}
	if EventPackCleared.String() != "pack-cleared" {
		t.Errorf("EventPackCleared.String() = %q", EventPackCleared.String())
	}
}
