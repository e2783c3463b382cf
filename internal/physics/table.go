package physics

// Table is one snapshot of the simulation: a clock and a fixed set of slots.
// Slots 0-3 hold the cushions, 4-9 the holes and 10 onward the balls. A
// table exclusively owns the objects in its slots.
type Table struct {
	Time    float64
	Objects [MaxObjects]Object
	Params  Params
}

// NewTable creates an empty table with cushions and holes laid out for p.
func NewTable(p Params) *Table {
	w := p.TableWidth
	l := p.TableLength

	t := &Table{Params: p}
	t.Objects[0] = NewHCushion(0.0)
	t.Objects[1] = NewHCushion(l)
	t.Objects[2] = NewVCushion(0.0)
	t.Objects[3] = NewVCushion(w)

	// Corners and the middle of each long rail.
	t.Objects[4] = NewHole(NewVec2(0, 0))
	t.Objects[5] = NewHole(NewVec2(w, 0))
	t.Objects[6] = NewHole(NewVec2(0, l/2.0))
	t.Objects[7] = NewHole(NewVec2(0, l))
	t.Objects[8] = NewHole(NewVec2(w, l/2.0))
	t.Objects[9] = NewHole(NewVec2(w, l))
	return t
}

// NewStandardTable creates an empty table with DefaultParams.
func NewStandardTable() *Table {
	return NewTable(DefaultParams())
}

// Add places obj in the first empty slot. It reports false, leaving the
// table untouched, when the table or object is absent or the table is full.
func (t *Table) Add(obj Object) bool {
	if t == nil || !present(obj) {
		return false
	}
	for i := range t.Objects {
		if !present(t.Objects[i]) {
			t.Objects[i] = obj
			return true
		}
	}
	return false
}

// Clone returns a deep copy of t. Cloning nil yields nil.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	c := &Table{Time: t.Time, Params: t.Params}
	for i, obj := range t.Objects {
		if present(obj) {
			c.Objects[i] = obj.clone()
		}
	}
	return c
}

// Free drops every object the table owns.
func (t *Table) Free() {
	if t == nil {
		return
	}
	for i := range t.Objects {
		t.Objects[i] = nil
	}
}

// Rolling counts the rolling balls on the table.
func (t *Table) Rolling() int {
	if t == nil {
		return 0
	}
	n := 0
	for i := FirstBallSlot; i < MaxObjects; i++ {
		if _, ok := t.rollingAt(i); ok {
			n++
		}
	}
	return n
}

// Balls counts every ball still on the table.
func (t *Table) Balls() int {
	if t == nil {
		return 0
	}
	n := 0
	for i := FirstBallSlot; i < MaxObjects; i++ {
		if IsBall(t.Objects[i]) {
			n++
		}
	}
	return n
}

// FindBall returns the slot holding the ball with the given number, or -1.
func (t *Table) FindBall(number byte) int {
	if t == nil {
		return -1
	}
	for i := FirstBallSlot; i < MaxObjects; i++ {
		if n, ok := BallNumber(t.Objects[i]); ok && n == number {
			return i
		}
	}
	return -1
}

func (t *Table) rollingAt(i int) (*RollingBall, bool) {
	if i < 0 || i >= MaxObjects {
		return nil, false
	}
	rb, ok := t.Objects[i].(*RollingBall)
	return rb, ok && rb != nil
}
