package pip

import "testing"

func square() Ring {
	return Ring{
		X: []int32{0, 100, 100, 0},
		Y: []int32{0, 0, 100, 100},
	}
}

func TestInsideSquare(t *testing.T) {
	r := square()
	if !Inside(50, 50, r) {
		t.Error("center of square should be inside")
	}
}

func TestOutsideSquare(t *testing.T) {
	r := square()
	if Inside(150, 50, r) {
		t.Error("point to the right of square should be outside")
	}
	if Inside(-10, 50, r) {
		t.Error("point to the left of square should be outside")
	}
	if Inside(50, 150, r) {
		t.Error("point above square should be outside")
	}
	if Inside(50, -10, r) {
		t.Error("point below square should be outside")
	}
}

func TestHoleExclusion(t *testing.T) {
	outer := square()
	hole := Ring{
		X: []int32{25, 75, 75, 25},
		Y: []int32{25, 25, 75, 75},
	}
	if !Inside(50, 50, outer) {
		t.Fatal("point should be inside outer ring")
	}
	if !Inside(50, 50, hole) {
		t.Error("point should be inside the hole ring, meaning it is excluded from the outer zone")
	}
	// point inside outer but outside hole
	if !Inside(10, 10, outer) {
		t.Error("point near corner should be inside outer ring")
	}
	if Inside(10, 10, hole) {
		t.Error("point near corner should not be inside the hole")
	}
}

func TestDegenerateRing(t *testing.T) {
	r := Ring{X: []int32{0, 1}, Y: []int32{0, 1}}
	if Inside(0, 0, r) {
		t.Error("a ring with fewer than 3 vertices can never contain a point")
	}
}

func TestConcavePolygon(t *testing.T) {
	// L-shaped polygon (concave) made of 6 vertices
	r := Ring{
		X: []int32{0, 100, 100, 50, 50, 0},
		Y: []int32{0, 0, 50, 50, 100, 100},
	}
	if !Inside(10, 10, r) {
		t.Error("point in lower rectangle of L-shape should be inside")
	}
	if !Inside(10, 90, r) {
		t.Error("point in upper-left rectangle of L-shape should be inside")
	}
	if Inside(90, 90, r) {
		t.Error("point in the notch of the L-shape should be outside")
	}
}
