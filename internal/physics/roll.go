package physics

// Roll moves next to where prev would be after t seconds of constant
// acceleration. Both must be rolling balls, otherwise Roll does nothing.
//
// Drag is never allowed to reverse a ball: when an axis velocity changes
// sign, that axis' velocity and acceleration are clamped to zero.
func Roll(next, prev Object, t float64) {
	if !present(next) || !present(prev) {
		return
	}
	n, ok := next.(*RollingBall)
	if !ok {
		return
	}
	o, ok := prev.(*RollingBall)
	if !ok {
		return
	}

	n.Pos.X, n.Vel.X, n.Acc.X = rollAxis(o.Pos.X, o.Vel.X, o.Acc.X, t)
	n.Pos.Y, n.Vel.Y, n.Acc.Y = rollAxis(o.Pos.Y, o.Vel.Y, o.Acc.Y, t)
}

func rollAxis(pos, vel, acc, t float64) (float64, float64, float64) {
	nextPos := pos + vel*t + 0.5*acc*t*t
	nextVel := vel + acc*t
	if vel*nextVel < 0 {
		return nextPos, 0.0, 0.0
	}
	return nextPos, nextVel, acc
}
