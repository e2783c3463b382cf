package physics

// Bounce resolves a contact between the rolling ball in slot i and the
// object in slot j. Nothing happens unless slot i holds a rolling ball and
// slot j holds an object.
func (t *Table) Bounce(i, j int) Event {
	ev := Event{Slot: i, Target: j}
	if t == nil || j < 0 || j >= MaxObjects || !present(t.Objects[j]) {
		return ev
	}
	a, ok := t.rollingAt(i)
	if !ok {
		return ev
	}
	ev.Number = a.Number

	switch b := t.Objects[j].(type) {
	case *HCushion:
		a.Vel.Y = -a.Vel.Y
		a.Acc.Y = -a.Acc.Y
		ev.Type = EventCushion

	case *VCushion:
		a.Vel.X = -a.Vel.X
		a.Acc.X = -a.Acc.X
		ev.Type = EventCushion

	case *Hole:
		t.Objects[i] = nil
		ev.Type = EventPocket

	case *StillBall:
		// A struck ball wakes and takes its share of the impact in the
		// same resolution.
		woken := Wake(b)
		t.Objects[j] = woken
		t.Params.Exchange(a, woken)
		ev.Type = EventBall

	case *RollingBall:
		t.Params.Exchange(a, b)
		ev.Type = EventBall
	}
	return ev
}

// Wake turns a still ball into a rolling ball with no velocity or
// acceleration.
func Wake(b *StillBall) *RollingBall {
	if b == nil {
		return nil
	}
	return NewRollingBall(b.Number, b.Pos, Vec2{}, Vec2{})
}

// Exchange performs an equal-mass elastic collision between a and b along
// their line of centres, then points each ball's drag against its new
// velocity. Tangential components are untouched. Balls at or below
// VelEpsilon keep their previous acceleration, less any axis that no longer
// opposes their motion.
func (p Params) Exchange(a, b *RollingBall) {
	if a == nil || b == nil {
		return
	}
	rab := a.Pos.Minus(b.Pos)
	if rab.IsZero() {
		return
	}
	n := rab.Normalize()
	vRelN := a.Vel.Minus(b.Vel).Dot(n)

	a.Vel = a.Vel.Minus(n.Times(vRelN))
	b.Vel = b.Vel.Plus(n.Times(vRelN))

	p.applyDrag(a)
	p.applyDrag(b)
}

func (p Params) applyDrag(b *RollingBall) {
	speed := b.Vel.Magnitude()
	if speed > p.VelEpsilon {
		b.Acc = b.Vel.Invert().Times(p.Drag / speed)
		return
	}
	// Kept drag must oppose the motion on each axis.
	if b.Acc.X*b.Vel.X >= 0 {
		b.Acc.X = 0
	}
	if b.Acc.Y*b.Vel.Y >= 0 {
		b.Acc.Y = 0
	}
}
