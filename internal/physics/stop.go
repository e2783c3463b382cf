package physics

// Stop converts a rolling ball slower than VelEpsilon into a still ball at
// the same position. It returns the replacement and true when the ball
// stopped; otherwise obj is returned unchanged with false.
func (p Params) Stop(obj Object) (Object, bool) {
	if !present(obj) {
		return obj, false
	}
	rb, ok := obj.(*RollingBall)
	if !ok {
		return obj, false
	}
	if rb.Vel.Magnitude() < p.VelEpsilon {
		return NewStillBall(rb.Number, rb.Pos), true
	}
	return obj, false
}

// stopSlot runs the stop detector on slot i and stores the result back.
func (t *Table) stopSlot(i int) bool {
	if i < 0 || i >= MaxObjects {
		return false
	}
	obj, stopped := t.Params.Stop(t.Objects[i])
	if stopped {
		t.Objects[i] = obj
	}
	return stopped
}
