package physics

import "testing"

func TestStopConvertsSlowBall(t *testing.T) {
	p := DefaultParams()
	rb := NewRollingBall(5, NewVec2(120, 340), NewVec2(0.005, 0), NewVec2(-150, 0))

	obj, stopped := p.Stop(rb)
	if !stopped {
		t.Fatal("slow ball did not stop")
	}
	sb, ok := obj.(*StillBall)
	if !ok {
		t.Fatalf("Stop returned %s, want a still ball", Describe(obj))
	}
	if sb.Number != 5 || sb.Pos != (Vec2{120, 340}) {
		t.Errorf("still ball = %s, want number 5 at (120,340)", sb)
	}
}

func TestStopAtEpsilonKeepsRolling(t *testing.T) {
	p := DefaultParams()
	p.VelEpsilon = 0.5
	rb := NewRollingBall(5, NewVec2(1, 1), NewVec2(0.5, 0), Vec2{})

	obj, stopped := p.Stop(rb)
	if stopped {
		t.Error("ball at exactly epsilon should keep rolling")
	}
	if obj != Object(rb) {
		t.Error("Stop replaced a ball that kept rolling")
	}
}

func TestStopIgnoresOtherObjects(t *testing.T) {
	p := DefaultParams()
	for _, obj := range []Object{nil, NewStillBall(1, Vec2{}), NewHole(Vec2{}), NewHCushion(0)} {
		if _, stopped := p.Stop(obj); stopped {
			t.Errorf("Stop(%s) reported stopped", Describe(obj))
		}
	}
}

func TestStopSlotReplacesInPlace(t *testing.T) {
	tbl := tableWith(DefaultParams(),
		NewRollingBall(3, NewVec2(500, 500), NewVec2(0, 0.001), Vec2{}),
	)
	if !tbl.stopSlot(10) {
		t.Fatal("stopSlot did not stop a crawling ball")
	}
	if got := Describe(tbl.Objects[10]); got != "STILL_BALL (3, 500.0, 500.0)" {
		t.Errorf("slot 10 = %q", got)
	}
	if tbl.stopSlot(10) {
		t.Error("stopSlot on a still ball reported stopped")
	}
	if tbl.stopSlot(-1) || tbl.stopSlot(MaxObjects) {
		t.Error("stopSlot out of range reported stopped")
	}
}
