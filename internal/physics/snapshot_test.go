package physics

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	p := DefaultParams()
	tbl := NewRackedTable(p)
	if err := tbl.Strike(CueBall, NewVec2(40, -900)); err != nil {
		t.Fatal(err)
	}
	tbl.Objects[15] = nil
	tbl.Time = 3.25

	data, err := json.Marshal(tbl.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatal(err)
	}
	if len(snap.Objects) != MaxObjects-1 {
		t.Errorf("snapshot has %d objects, want %d", len(snap.Objects), MaxObjects-1)
	}

	got, err := snap.Table(p)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != tbl.String() {
		t.Errorf("rebuilt table differs:\n%s\nwant:\n%s", got, tbl)
	}
	if got.Objects[15] != nil {
		t.Error("empty slot was filled")
	}
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	p := DefaultParams()
	ball := ObjectState{Slot: 10, Type: "STILL_BALL", Number: 1, X: 100, Y: 100}

	tests := []struct {
		name   string
		modify func(s *Snapshot)
	}{
		{"slot too high", func(s *Snapshot) { s.Objects = append(s.Objects, ObjectState{Slot: MaxObjects, Type: "STILL_BALL"}) }},
		{"negative slot", func(s *Snapshot) { s.Objects = append(s.Objects, ObjectState{Slot: -1, Type: "HOLE"}) }},
		{"ball number", func(s *Snapshot) { s.Objects = append(s.Objects, ObjectState{Slot: 10, Type: "STILL_BALL", Number: 300}) }},
		{"unknown type", func(s *Snapshot) { s.Objects = append(s.Objects, ObjectState{Slot: 10, Type: "TRIANGLE"}) }},
		{"ball in cushion slot", func(s *Snapshot) { s.Objects[0] = ObjectState{Slot: 0, Type: "ROLLING_BALL", Number: 1} }},
		{"ball in hole slot", func(s *Snapshot) { s.Objects[5] = ObjectState{Slot: 5, Type: "STILL_BALL", Number: 1} }},
		{"hole in ball slot", func(s *Snapshot) { s.Objects = append(s.Objects, ObjectState{Slot: 12, Type: "HOLE"}) }},
		{"wrong cushion", func(s *Snapshot) { s.Objects[2] = ObjectState{Slot: 2, Type: "HCUSHION", Y: 5} }},
		{"duplicate slot", func(s *Snapshot) { s.Objects = append(s.Objects, ball, ball) }},
		{"missing cushion", func(s *Snapshot) { s.Objects = s.Objects[1:] }},
		{"missing hole", func(s *Snapshot) { s.Objects = append(s.Objects[:9:9], ball) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := NewStandardTable().Snapshot()
			tt.modify(&snap)
			if _, err := snap.Table(p); !errors.Is(err, ErrBadSnapshot) {
				t.Errorf("err = %v, want ErrBadSnapshot", err)
			}
		})
	}

	snap := NewStandardTable().Snapshot()
	snap.Objects = append(snap.Objects, ball)
	if _, err := snap.Table(p); err != nil {
		t.Errorf("valid snapshot rejected: %v", err)
	}
}
