package physics

import "math"

// NumRackBalls is the cue ball plus fifteen object balls.
const NumRackBalls = 16

// rackOrder lists the ball numbers row by row from the apex. The 8-ball sits
// in the middle of the third row.
var rackOrder = [5][]byte{
	{1},
	{2, 15},
	{5, 8, 10},
	{4, 7, 9, 6},
	{14, 12, 11, 13, 3},
}

// Rack returns the break position of every ball, indexed by ball number. The
// apex sits a table-width from the top rail and rows grow toward it; the cue
// ball sits on the head spot the same distance from the bottom rail.
func Rack(p Params) [NumRackBalls]Vec2 {
	var pos [NumRackBalls]Vec2

	gap := p.BallDiameter() + 4.0
	rowStep := math.Sqrt(3.0) / 2.0 * gap
	apex := NewVec2(p.TableWidth/2.0, p.TableWidth/2.0)

	for row, balls := range rackOrder {
		y := apex.Y - float64(row)*rowStep
		left := apex.X - float64(len(balls)-1)*gap/2.0
		for k, number := range balls {
			pos[number] = NewVec2(left+float64(k)*gap, y)
		}
	}

	pos[CueBall] = NewVec2(p.TableWidth/2.0, p.TableLength-p.TableWidth/2.0)
	return pos
}

// NewRackedTable creates a table with all sixteen balls at rest in the rack.
func NewRackedTable(p Params) *Table {
	t := NewTable(p)
	for number, pos := range Rack(p) {
		t.Add(NewStillBall(byte(number), pos))
	}
	return t
}
