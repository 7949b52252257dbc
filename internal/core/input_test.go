package core

import (
	"testing"
	"time"
)

func TestInputFrameSetUnset(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	if !f.Has(ActionLeft) {
		t.Error("Has(Left) should be true after Set")
	}

	f.Unset(ActionLeft)
	if f.Has(ActionLeft) {
		t.Error("Has(Left) should be false after Unset")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	zero.Unset(ActionJump) // Should not panic
	zero.Set(ActionJump)
	if !zero.Has(ActionJump) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionRight) {
		t.Error("clone should keep actions after original is cleared")
	}
	if f.Has(ActionRight) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionIsHeld(t *testing.T) {
	tests := []struct {
		a    Action
		held bool
	}{
		{ActionLeft, true},
		{ActionRight, true},
		{ActionJump, true},
		{ActionSuperJump, true},
		{ActionConfirm, false},
		{ActionPause, false},
		{ActionRestart, false},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		if got := tc.a.IsHeld(); got != tc.held {
			t.Errorf("%s.IsHeld() = %v, expected %v", tc.a, got, tc.held)
		}
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	h.Press(ActionLeft, start)
	if !h.Held(ActionLeft) {
		t.Fatal("Left should be held right after press")
	}

	// Auto-repeat inside the window keeps it held
	h.Press(ActionLeft, start.Add(80*time.Millisecond))
	if released := h.Expire(start.Add(150 * time.Millisecond)); len(released) != 0 {
		t.Errorf("nothing should expire yet, got %v", released)
	}

	released := h.Expire(start.Add(181 * time.Millisecond))
	if len(released) != 1 || released[0] != ActionLeft {
		t.Errorf("Expire() = %v, expected [Left]", released)
	}
	if h.Held(ActionLeft) {
		t.Error("Left should no longer be held")
	}
}

func TestHoldTrackerApply(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHoldTracker(0)
	h.Press(ActionJump, now)

	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionPause)
	h.Apply(&f)

	if !f.Has(ActionJump) {
		t.Error("held Jump should be applied")
	}
	if f.Has(ActionLeft) {
		t.Error("Left is not held and should be cleared")
	}
	if !f.Has(ActionPause) {
		t.Error("control actions should be left untouched")
	}

	h.Release(ActionJump)
	h.Apply(&f)
	if f.Has(ActionJump) {
		t.Error("released Jump should be cleared")
	}
}
