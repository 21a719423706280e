package game

import "testing"

func TestMoveModeStepping(t *testing.T) {
	if got := ModeSneak.Increase(); got != ModeWalk {
		t.Errorf("Sneak should step up to walk, got %v", got)
	}
	if got := ModeWalk.Increase(); got != ModeRun {
		t.Errorf("Walk should step up to run, got %v", got)
	}
	if got := ModeRun.Increase(); got != ModeRun {
		t.Errorf("Run should saturate, got %v", got)
	}
	if got := ModeRun.Decrease(); got != ModeWalk {
		t.Errorf("Run should step down to walk, got %v", got)
	}
	if got := ModeSneak.Decrease(); got != ModeSneak {
		t.Errorf("Sneak should saturate, got %v", got)
	}
}

func TestMoveModeCrouching(t *testing.T) {
	if !ModeSneak.Crouching() {
		t.Error("Sneaking should crouch")
	}
	if ModeWalk.Crouching() || ModeRun.Crouching() {
		t.Error("Walking and running should not crouch")
	}
}

func TestMoveModeRadiusDelta(t *testing.T) {
	cases := []struct {
		mode MoveMode
		want int
	}{
		{ModeSneak, -1},
		{ModeWalk, 0},
		{ModeRun, 1},
	}
	for _, tc := range cases {
		if got := tc.mode.RadiusDelta(); got != tc.want {
			t.Errorf("%v radius delta = %d, want %d", tc.mode, got, tc.want)
		}
	}
}
