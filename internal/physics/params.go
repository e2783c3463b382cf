package physics

import (
	"errors"
	"fmt"
)

// Table layout and default physics constants. Lengths are millimetres, times seconds.
const (
	MaxObjects     = 26
	FirstHoleSlot  = 4
	FirstBallSlot  = 10
	NumCushions    = 4
	NumHoles       = 6
	MaxBalls       = MaxObjects - FirstBallSlot

	DefaultBallRadius    = 28.5
	DefaultTableLength   = 2700.0
	DefaultTableWidth    = DefaultTableLength / 2.0
	DefaultHoleRadius    = 2 * 2 * DefaultBallRadius
	DefaultSimRate       = 0.0001
	DefaultVelEpsilon    = 0.01
	DefaultDrag          = 150.0
	DefaultMaxTime       = 604800.0
	DefaultFrameInterval = 0.01
)

// CueBall is the number carried by the cue ball.
const CueBall byte = 0

// ErrInvalidParams is returned by Validate.
var ErrInvalidParams = errors.New("physics: invalid parameters")

// Params holds the constants a table is simulated with. They never change
// for the lifetime of a table.
type Params struct {
	TableWidth  float64 `json:"table_width" yaml:"table_width"`
	TableLength float64 `json:"table_length" yaml:"table_length"`
	BallRadius  float64 `json:"ball_radius" yaml:"ball_radius"`
	HoleRadius  float64 `json:"hole_radius" yaml:"hole_radius"`
	SimRate     float64 `json:"sim_rate" yaml:"sim_rate"`
	MaxTime     float64 `json:"max_time" yaml:"max_time"`
	VelEpsilon  float64 `json:"vel_epsilon" yaml:"vel_epsilon"`
	Drag        float64 `json:"drag" yaml:"drag"`
}

// DefaultParams returns the standard table: 1350 x 2700 mm, 57 mm balls.
func DefaultParams() Params {
	return Params{
		TableWidth:  DefaultTableWidth,
		TableLength: DefaultTableLength,
		BallRadius:  DefaultBallRadius,
		HoleRadius:  DefaultHoleRadius,
		SimRate:     DefaultSimRate,
		MaxTime:     DefaultMaxTime,
		VelEpsilon:  DefaultVelEpsilon,
		Drag:        DefaultDrag,
	}
}

// BallDiameter is twice the ball radius.
func (p Params) BallDiameter() float64 {
	return 2 * p.BallRadius
}

// Validate checks that every constant is usable by the stepper.
func (p Params) Validate() error {
	switch {
	case p.TableWidth <= 0 || p.TableLength <= 0:
		return fmt.Errorf("%w: table dimensions must be positive (%.1f x %.1f)", ErrInvalidParams, p.TableWidth, p.TableLength)
	case p.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %.3f", ErrInvalidParams, p.BallRadius)
	case p.HoleRadius <= 0:
		return fmt.Errorf("%w: hole radius must be positive, got %.3f", ErrInvalidParams, p.HoleRadius)
	case p.SimRate <= 0:
		return fmt.Errorf("%w: sim rate must be positive, got %g", ErrInvalidParams, p.SimRate)
	case p.MaxTime < p.SimRate:
		return fmt.Errorf("%w: max time %g is shorter than one sub-step %g", ErrInvalidParams, p.MaxTime, p.SimRate)
	case p.VelEpsilon <= 0:
		return fmt.Errorf("%w: velocity epsilon must be positive, got %g", ErrInvalidParams, p.VelEpsilon)
	case p.Drag < 0:
		return fmt.Errorf("%w: drag must not be negative, got %g", ErrInvalidParams, p.Drag)
	}
	return nil
}
