package shortcut

import (
	"testing"

	"github.com/uber/h3-go/v4"
)

func TestCellForAntimeridianFold(t *testing.T) {
	a := CellFor(180.0, 10.0)
	b := CellFor(-180.0, 10.0)
	if a != b {
		t.Errorf("lng=180 and lng=-180 should map to the same H3 cell, got %v vs %v", a, b)
	}
}

func TestLookupRoundTrip(t *testing.T) {
	c := CellFor(13.358, 52.5061)
	idx := New(map[h3.Cell]Payload{
		c: {Unique: true, ZoneID: 7},
	})
	p, err := idx.Lookup(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Unique || p.ZoneID != 7 {
		t.Errorf("unexpected payload: %+v", p)
	}
}

func TestLookupMissingCellIsCorruptData(t *testing.T) {
	idx := New(map[h3.Cell]Payload{})
	other := CellFor(0, 0)
	if _, err := idx.Lookup(other); err == nil {
		t.Error("expected an error for a cell missing from the total-coverage map")
	}
}

func TestCandidatePayload(t *testing.T) {
	c := CellFor(34.8, 31.5) // Jerusalem/Gaza border region, likely a candidate cell
	idx := New(map[h3.Cell]Payload{
		c: {Unique: false, PolyIDs: []uint32{3, 1, 9}},
	})
	p, err := idx.Lookup(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Unique || len(p.PolyIDs) != 3 {
		t.Errorf("unexpected payload: %+v", p)
	}
}
