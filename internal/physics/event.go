package physics

import "fmt"

// EventType names what ended a segment.
type EventType string

const (
	EventBall    EventType = "ball"    // ball struck another ball
	EventCushion EventType = "cushion" // ball struck a rail
	EventPocket  EventType = "pocket"  // ball fell into a hole
	EventStop    EventType = "stop"    // ball came to rest
	EventTimeout EventType = "timeout" // nothing happened before MaxTime
)

// Event records the outcome of one Segment call.
type Event struct {
	Type   EventType `json:"type"`
	Slot   int       `json:"slot"`   // moving ball's slot, -1 for timeouts
	Target int       `json:"target"` // struck slot, -1 when nothing was struck
	Number byte      `json:"number"` // moving ball's number
	Time   float64   `json:"time"`   // table clock after the event
}

func (e Event) String() string {
	switch e.Type {
	case EventTimeout:
		return fmt.Sprintf("%s at %.4f", e.Type, e.Time)
	case EventStop:
		return fmt.Sprintf("%s ball=%d slot=%d at %.4f", e.Type, e.Number, e.Slot, e.Time)
	}
	return fmt.Sprintf("%s ball=%d slot=%d target=%d at %.4f", e.Type, e.Number, e.Slot, e.Target, e.Time)
}
