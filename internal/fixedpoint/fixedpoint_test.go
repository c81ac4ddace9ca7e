package fixedpoint

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []float64{0, 1, -1, 45.123456, -122.4194, 179.9999999, -179.9999999}
	for _, d := range cases {
		fx, err := ToFixedLng(d)
		if err != nil {
			t.Fatalf("ToFixedLng(%v): %v", d, err)
		}
		back := ToDegrees(fx)
		if math.Abs(back-d) > 0.5e-7 {
			t.Errorf("round trip %v -> %v -> %v, diff too large", d, fx, back)
		}
	}
}

func TestAntimeridianFold(t *testing.T) {
	pos, err := ToFixedLng(180.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	neg, err := ToFixedLng(-180.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos != neg {
		t.Errorf("+180 (%d) should fold to the same fixed value as -180 (%d)", pos, neg)
	}
}

func TestOutOfBounds(t *testing.T) {
	if _, err := ToFixedLng(180.0001); err == nil {
		t.Error("expected OutOfBounds for lng > 180")
	}
	if _, err := ToFixedLng(-180.0001); err == nil {
		t.Error("expected OutOfBounds for lng < -180")
	}
	if _, err := ToFixedLat(90.0001); err == nil {
		t.Error("expected OutOfBounds for lat > 90")
	}
	if _, err := ToFixedLat(-90.0001); err == nil {
		t.Error("expected OutOfBounds for lat < -90")
	}
}

func TestBoundaryValuesAccepted(t *testing.T) {
	if _, err := ToFixedLat(90); err != nil {
		t.Errorf("lat=90 should be valid: %v", err)
	}
	if _, err := ToFixedLat(-90); err != nil {
		t.Errorf("lat=-90 should be valid: %v", err)
	}
}
