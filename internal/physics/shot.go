package physics

import (
	"errors"
	"math"
)

var (
	ErrBallNotFound = errors.New("physics: ball not on table")
	ErrBallMoving   = errors.New("physics: ball is already rolling")
	ErrSegmentLimit = errors.New("physics: segment limit reached before the table came to rest")
)

// Strike sets the still ball with the given number rolling at vel, with drag
// acting against its direction of travel.
func (t *Table) Strike(number byte, vel Vec2) error {
	i := t.FindBall(number)
	if i < 0 {
		return ErrBallNotFound
	}
	sb, ok := t.Objects[i].(*StillBall)
	if !ok {
		return ErrBallMoving
	}

	var acc Vec2
	if speed := vel.Magnitude(); speed > t.Params.VelEpsilon {
		acc = vel.Invert().Times(t.Params.Drag / speed)
	}
	t.Objects[i] = NewRollingBall(sb.Number, sb.Pos, vel, acc)
	return nil
}

// Simulate runs Segment from t until nothing is rolling. It returns the table
// after every segment together with the event that ended it. A positive
// maxSegments bounds the number of segments.
func Simulate(t *Table, maxSegments int) ([]*Table, []Event, error) {
	var segments []*Table
	var events []Event

	cur := t
	for {
		if maxSegments > 0 && len(segments) >= maxSegments {
			if cur.Rolling() > 0 {
				return segments, events, ErrSegmentLimit
			}
			return segments, events, nil
		}
		next, ev, err := cur.Segment()
		if errors.Is(err, ErrNoSimulation) {
			return segments, events, nil
		}
		if err != nil {
			return segments, events, err
		}
		segments = append(segments, next)
		events = append(events, ev)
		cur = next
	}
}

// Advance returns a copy of t with every rolling ball moved dt seconds
// forward. Contacts are not resolved.
func (t *Table) Advance(dt float64) *Table {
	if t == nil {
		return nil
	}
	next := t.Clone()
	for i := FirstBallSlot; i < MaxObjects; i++ {
		if rb, ok := next.rollingAt(i); ok {
			Roll(rb, t.Objects[i], dt)
		}
	}
	next.Time += dt
	return next
}

// Frames samples the simulated shot every interval seconds. Each segment
// contributes interpolated tables from its starting state, followed by the
// segment table itself.
func Frames(start *Table, segments []*Table, interval float64) []*Table {
	if start == nil {
		return nil
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	frames := []*Table{start.Clone()}
	prev := start
	for _, seg := range segments {
		span := seg.Time - prev.Time
		n := int(math.Floor(span / interval))
		for k := 1; k <= n; k++ {
			dt := float64(k) * interval
			if dt >= span {
				break
			}
			frames = append(frames, prev.Advance(dt))
		}
		frames = append(frames, seg.Clone())
		prev = seg
	}
	return frames
}
