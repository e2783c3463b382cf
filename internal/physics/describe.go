package physics

import (
	"fmt"
	"strings"
)

func (b *StillBall) String() string {
	return fmt.Sprintf("STILL_BALL (%d,%6.1f,%6.1f)", b.Number, b.Pos.X, b.Pos.Y)
}

func (b *RollingBall) String() string {
	return fmt.Sprintf("ROLLING_BALL (%d,%6.1f,%6.1f,%6.1f,%6.1f,%6.1f,%6.1f)",
		b.Number, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Acc.X, b.Acc.Y)
}

func (h *Hole) String() string {
	return fmt.Sprintf("HOLE (%6.1f,%6.1f)", h.Pos.X, h.Pos.Y)
}

func (c *HCushion) String() string {
	return fmt.Sprintf("HCUSHION (%6.1f)", c.Y)
}

func (c *VCushion) String() string {
	return fmt.Sprintf("VCUSHION (%6.1f)", c.X)
}

// Describe renders one object as a single line. Absent objects render as
// "NULL;".
func Describe(obj Object) string {
	if !present(obj) {
		return "NULL;"
	}
	return obj.String()
}

// String renders the clock followed by every slot, one per line.
func (t *Table) String() string {
	if t == nil {
		return "NULL;"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "time = %6.1f;\n", t.Time)
	for i, obj := range t.Objects {
		fmt.Fprintf(&sb, "  [%02d] = %s\n", i, Describe(obj))
	}
	return sb.String()
}
