package physics

import (
	"math"
	"testing"
)

const tol = 1e-9

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// shortParams keeps each Segment call bounded so tests stay fast.
func shortParams(maxTime float64) Params {
	p := DefaultParams()
	p.MaxTime = maxTime
	return p
}

func tableWith(p Params, objs ...Object) *Table {
	t := NewTable(p)
	for _, o := range objs {
		t.Add(o)
	}
	return t
}

func rollingIn(t *testing.T, tbl *Table, slot int) *RollingBall {
	t.Helper()
	rb, ok := tbl.Objects[slot].(*RollingBall)
	if !ok {
		t.Fatalf("slot %d = %s, want a rolling ball", slot, Describe(tbl.Objects[slot]))
	}
	return rb
}
