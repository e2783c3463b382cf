package physics

// Kind tags the five object variants a table slot can hold.
type Kind int

const (
	KindStillBall Kind = iota
	KindRollingBall
	KindHole
	KindHCushion
	KindVCushion
)

func (k Kind) String() string {
	switch k {
	case KindStillBall:
		return "STILL_BALL"
	case KindRollingBall:
		return "ROLLING_BALL"
	case KindHole:
		return "HOLE"
	case KindHCushion:
		return "HCUSHION"
	case KindVCushion:
		return "VCUSHION"
	}
	return "UNKNOWN"
}

// Object is anything that can sit in a table slot. The set of
// implementations is closed: StillBall, RollingBall, Hole, HCushion and
// VCushion.
type Object interface {
	Kind() Kind
	String() string
	clone() Object
}

// StillBall is a ball at rest. Number 0 is the cue ball.
type StillBall struct {
	Number byte `json:"number"`
	Pos    Vec2 `json:"pos"`
}

// RollingBall is a moving ball under constant acceleration.
type RollingBall struct {
	Number byte `json:"number"`
	Pos    Vec2 `json:"pos"`
	Vel    Vec2 `json:"vel"`
	Acc    Vec2 `json:"acc"`
}

// Hole is a pocket. Holes never move.
type Hole struct {
	Pos Vec2 `json:"pos"`
}

// HCushion is an infinite horizontal rail at height Y.
type HCushion struct {
	Y float64 `json:"y"`
}

// VCushion is an infinite vertical rail at X.
type VCushion struct {
	X float64 `json:"x"`
}

func NewStillBall(number byte, pos Vec2) *StillBall {
	return &StillBall{Number: number, Pos: pos}
}

func NewRollingBall(number byte, pos, vel, acc Vec2) *RollingBall {
	return &RollingBall{Number: number, Pos: pos, Vel: vel, Acc: acc}
}

func NewHole(pos Vec2) *Hole {
	return &Hole{Pos: pos}
}

func NewHCushion(y float64) *HCushion {
	return &HCushion{Y: y}
}

func NewVCushion(x float64) *VCushion {
	return &VCushion{X: x}
}

func (*StillBall) Kind() Kind   { return KindStillBall }
func (*RollingBall) Kind() Kind { return KindRollingBall }
func (*Hole) Kind() Kind        { return KindHole }
func (*HCushion) Kind() Kind    { return KindHCushion }
func (*VCushion) Kind() Kind    { return KindVCushion }

func (b *StillBall) clone() Object {
	c := *b
	return &c
}

func (b *RollingBall) clone() Object {
	c := *b
	return &c
}

func (h *Hole) clone() Object {
	c := *h
	return &c
}

func (c *HCushion) clone() Object {
	n := *c
	return &n
}

func (c *VCushion) clone() Object {
	n := *c
	return &n
}

// present reports whether obj holds a real object. A typed nil pointer
// stored in the interface counts as absent.
func present(obj Object) bool {
	switch o := obj.(type) {
	case nil:
		return false
	case *StillBall:
		return o != nil
	case *RollingBall:
		return o != nil
	case *Hole:
		return o != nil
	case *HCushion:
		return o != nil
	case *VCushion:
		return o != nil
	}
	return false
}

// IsBall reports whether obj is a still or rolling ball.
func IsBall(obj Object) bool {
	if !present(obj) {
		return false
	}
	k := obj.Kind()
	return k == KindStillBall || k == KindRollingBall
}

// BallNumber returns the number of a still or rolling ball.
func BallNumber(obj Object) (byte, bool) {
	if !present(obj) {
		return 0, false
	}
	switch o := obj.(type) {
	case *StillBall:
		return o.Number, true
	case *RollingBall:
		return o.Number, true
	}
	return 0, false
}

// BallPosition returns the centre of a still or rolling ball.
func BallPosition(obj Object) (Vec2, bool) {
	if !present(obj) {
		return Vec2{}, false
	}
	switch o := obj.(type) {
	case *StillBall:
		return o.Pos, true
	case *RollingBall:
		return o.Pos, true
	}
	return Vec2{}, false
}
