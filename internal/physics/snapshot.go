package physics

import (
	"errors"
	"fmt"
)

// ErrBadSnapshot is returned when a snapshot cannot be turned back into a
// table.
var ErrBadSnapshot = errors.New("physics: invalid snapshot")

// ObjectState is the flat form of one occupied slot.
type ObjectState struct {
	Slot   int     `json:"slot"`
	Type   string  `json:"type"`
	Number int     `json:"number"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	AX     float64 `json:"ax"`
	AY     float64 `json:"ay"`
}

// Snapshot is the transport form of a table.
type Snapshot struct {
	Time    float64       `json:"time"`
	Objects []ObjectState `json:"objects"`
}

// Snapshot flattens the table. Empty slots are omitted.
func (t *Table) Snapshot() Snapshot {
	s := Snapshot{Objects: make([]ObjectState, 0, MaxObjects)}
	if t == nil {
		return s
	}
	s.Time = t.Time
	for i, obj := range t.Objects {
		if !present(obj) {
			continue
		}
		st := ObjectState{Slot: i, Type: obj.Kind().String()}
		switch o := obj.(type) {
		case *StillBall:
			st.Number = int(o.Number)
			st.X, st.Y = o.Pos.X, o.Pos.Y
		case *RollingBall:
			st.Number = int(o.Number)
			st.X, st.Y = o.Pos.X, o.Pos.Y
			st.VX, st.VY = o.Vel.X, o.Vel.Y
			st.AX, st.AY = o.Acc.X, o.Acc.Y
		case *Hole:
			st.X, st.Y = o.Pos.X, o.Pos.Y
		case *HCushion:
			st.Y = o.Y
		case *VCushion:
			st.X = o.X
		}
		s.Objects = append(s.Objects, st)
	}
	return s
}

// Table rebuilds a table simulated with p from the snapshot. Cushions and
// holes must sit in their fixed slots and balls in ball slots.
func (s Snapshot) Table(p Params) (*Table, error) {
	t := &Table{Time: s.Time, Params: p}
	for _, st := range s.Objects {
		if st.Slot < 0 || st.Slot >= MaxObjects {
			return nil, fmt.Errorf("%w: slot %d out of range", ErrBadSnapshot, st.Slot)
		}
		if st.Number < 0 || st.Number > 255 {
			return nil, fmt.Errorf("%w: ball number %d out of range", ErrBadSnapshot, st.Number)
		}
		pos := NewVec2(st.X, st.Y)
		var obj Object
		switch st.Type {
		case KindStillBall.String():
			obj = NewStillBall(byte(st.Number), pos)
		case KindRollingBall.String():
			obj = NewRollingBall(byte(st.Number), pos, NewVec2(st.VX, st.VY), NewVec2(st.AX, st.AY))
		case KindHole.String():
			obj = NewHole(pos)
		case KindHCushion.String():
			obj = NewHCushion(st.Y)
		case KindVCushion.String():
			obj = NewVCushion(st.X)
		default:
			return nil, fmt.Errorf("%w: unknown object type %q in slot %d", ErrBadSnapshot, st.Type, st.Slot)
		}
		if !slotAccepts(st.Slot, obj.Kind()) {
			return nil, fmt.Errorf("%w: %s cannot occupy slot %d", ErrBadSnapshot, st.Type, st.Slot)
		}
		if t.Objects[st.Slot] != nil {
			return nil, fmt.Errorf("%w: slot %d listed twice", ErrBadSnapshot, st.Slot)
		}
		t.Objects[st.Slot] = obj
	}
	for i := 0; i < FirstBallSlot; i++ {
		if t.Objects[i] == nil {
			return nil, fmt.Errorf("%w: slot %d has no %s", ErrBadSnapshot, i, boundaryKind(i))
		}
	}
	return t, nil
}

// boundaryKind is the fixed object kind of a cushion or hole slot.
func boundaryKind(slot int) Kind {
	switch {
	case slot < 2:
		return KindHCushion
	case slot < FirstHoleSlot:
		return KindVCushion
	}
	return KindHole
}

func slotAccepts(slot int, k Kind) bool {
	if slot >= FirstBallSlot {
		return k == KindStillBall || k == KindRollingBall
	}
	return k == boundaryKind(slot)
}
