package physics

import "testing"

func TestDescribe(t *testing.T) {
	var typedNil *StillBall
	tests := []struct {
		obj  Object
		want string
	}{
		{NewStillBall(1, NewVec2(10, 20)), "STILL_BALL (1,  10.0,  20.0)"},
		{NewRollingBall(3, NewVec2(100, 200), NewVec2(-5.5, 0), NewVec2(1, -2)),
			"ROLLING_BALL (3, 100.0, 200.0,  -5.5,   0.0,   1.0,  -2.0)"},
		{NewHole(NewVec2(0, 1350)), "HOLE (   0.0,1350.0)"},
		{NewHCushion(2700), "HCUSHION (2700.0)"},
		{NewVCushion(0), "VCUSHION (   0.0)"},
		{nil, "NULL;"},
		{typedNil, "NULL;"},
	}
	for _, tt := range tests {
		if got := Describe(tt.obj); got != tt.want {
			t.Errorf("Describe = %q, want %q", got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindHCushion.String() != "HCUSHION" || Kind(99).String() != "UNKNOWN" {
		t.Errorf("unexpected kind names %s %s", KindHCushion, Kind(99))
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Type: EventTimeout, Slot: -1, Target: -1, Time: 1.5}, "timeout at 1.5000"},
		{Event{Type: EventStop, Slot: 12, Target: -1, Number: 3, Time: 2}, "stop ball=3 slot=12 at 2.0000"},
		{Event{Type: EventBall, Slot: 10, Target: 11, Number: 0, Time: 0.25}, "ball ball=0 slot=10 target=11 at 0.2500"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
