package core

import "testing"

func TestInputFrameCounts(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionRotate)

	if got := f.Count(ActionLeft); got != 2 {
		t.Errorf("Count(Left) = %d, expected 2", got)
	}
	if !f.Has(ActionRotate) {
		t.Error("Has(Rotate) should be true")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) || f.Has(ActionRotate) {
		t.Error("Clear should remove all actions")
	}
	if clone.Count(ActionLeft) != 2 {
		t.Error("Clone should not be affected by Clear")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionDown) {
		t.Error("Zero frame should report no actions")
	}

	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set on zero frame should allocate and record")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionDown, "Down"},
		{ActionRotate, "Rotate"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
