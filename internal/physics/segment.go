package physics

import (
	"errors"
	"math"
)

// ErrNoSimulation is returned by Segment when there is nothing to simulate:
// the table is nil or has no rolling balls.
var ErrNoSimulation = errors.New("physics: no rolling balls to simulate")

// Segment advances a copy of t to the next physical event and returns it.
// The receiver is never modified.
//
// Time moves forward in SimRate sub-steps. After each sub-step every rolling
// ball is re-integrated from its state in t. The first overlapping pair,
// scanning moving balls then struck objects in ascending slot order, is
// resolved and ends the call. A pair only counts while the moving ball is
// still closing on the other object, so an overlap that is already opening
// up is skipped and a later slot can win the scan. Failing that, the first ball that has slowed
// below VelEpsilon comes to rest and ends the call. With neither, the call
// returns after MaxTime with a timeout event.
func (t *Table) Segment() (*Table, Event, error) {
	if t == nil || t.Rolling() == 0 {
		return nil, Event{}, ErrNoSimulation
	}

	next := t.Clone()
	steps := t.Params.subSteps()

	for n := int64(1); n <= steps; n++ {
		elapsed := float64(n) * t.Params.SimRate

		for i := FirstBallSlot; i < MaxObjects; i++ {
			if rb, ok := next.rollingAt(i); ok {
				Roll(rb, t.Objects[i], elapsed)
			}
		}

		if i, j, ok := next.firstContact(); ok {
			ev := next.Bounce(i, j)
			next.Time += elapsed
			ev.Time = next.Time
			return next, ev, nil
		}

		for i := FirstBallSlot; i < MaxObjects; i++ {
			rb, ok := next.rollingAt(i)
			if !ok {
				continue
			}
			number := rb.Number
			if next.stopSlot(i) {
				next.Time += elapsed
				return next, Event{Type: EventStop, Slot: i, Target: -1, Number: number, Time: next.Time}, nil
			}
		}
	}

	next.Time += float64(steps) * t.Params.SimRate
	return next, Event{Type: EventTimeout, Slot: -1, Target: -1, Time: next.Time}, nil
}

// firstContact finds the lowest rolling ball slot overlapping anything,
// paired with the lowest slot it overlaps.
func (t *Table) firstContact() (int, int, bool) {
	for i := FirstBallSlot; i < MaxObjects; i++ {
		if _, ok := t.rollingAt(i); !ok {
			continue
		}
		for j := 0; j < MaxObjects; j++ {
			if j == i || !present(t.Objects[j]) {
				continue
			}
			if t.inContact(i, j) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// subSteps is the number of SimRate increments that fit in MaxTime.
func (p Params) subSteps() int64 {
	if p.SimRate <= 0 {
		return 1
	}
	n := int64(math.Ceil(p.MaxTime/p.SimRate - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}
