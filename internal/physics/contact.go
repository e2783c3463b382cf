package physics

import (
	"errors"
	"math"
)

var (
	// ErrNoObject is returned when a contact query is missing an object.
	ErrNoObject = errors.New("physics: missing object")
	// ErrNotRolling is returned when the moving member of a contact query is
	// not a rolling ball.
	ErrNotRolling = errors.New("physics: distance requires a rolling ball")
)

// Distance returns the signed separation between rolling ball a and any other
// object b. A negative value means the two overlap.
func (p Params) Distance(a, b Object) (float64, error) {
	if !present(a) || !present(b) {
		return 0, ErrNoObject
	}
	rb, ok := a.(*RollingBall)
	if !ok {
		return 0, ErrNotRolling
	}

	switch o := b.(type) {
	case *RollingBall:
		return rb.Pos.Minus(o.Pos).Magnitude() - p.BallDiameter(), nil
	case *StillBall:
		return rb.Pos.Minus(o.Pos).Magnitude() - p.BallDiameter(), nil
	case *Hole:
		return rb.Pos.Minus(o.Pos).Magnitude() - p.HoleRadius, nil
	case *HCushion:
		return math.Abs(rb.Pos.Y-o.Y) - p.BallRadius, nil
	case *VCushion:
		return math.Abs(rb.Pos.X-o.X) - p.BallRadius, nil
	}
	return 0, ErrNoObject
}

// inContact reports whether the rolling ball in slot i overlaps slot j while
// still closing on it. Pairs the evaluator cannot measure never count.
func (t *Table) inContact(i, j int) bool {
	d, err := t.Params.Distance(t.Objects[i], t.Objects[j])
	if err != nil || d >= 0 {
		return false
	}
	return closing(t.Objects[i].(*RollingBall), t.Objects[j])
}

// closing reports whether a is moving toward b. A pair that is already
// separating has been resolved on an earlier sub-step. Holes always capture.
func closing(a *RollingBall, b Object) bool {
	switch o := b.(type) {
	case *RollingBall:
		return a.Vel.Minus(o.Vel).Dot(a.Pos.Minus(o.Pos)) < 0
	case *StillBall:
		return a.Vel.Dot(a.Pos.Minus(o.Pos)) < 0
	case *HCushion:
		return (a.Pos.Y-o.Y)*a.Vel.Y < 0
	case *VCushion:
		return (a.Pos.X-o.X)*a.Vel.X < 0
	}
	return true
}
