package engine

import (
	"testing"

	"tzlookup/internal/polygonstore"
	"tzlookup/internal/shortcut"

	"github.com/uber/h3-go/v4"
)

// buildFixture 构造一个小型合成世界：两个外环共享同一个快捷单元格（Candidate），
// 外环 0 是一个小正方形（"Test/Square"），外环 1 是包住它的大正方形（"Etc/GMT"），
// 并在外环 1 上打了两个洞——一个与外环 0 重合，另一个是无主空洞，用于测试洞排除后
// 候选耗尽的未命中路径。候选列表顺序为 [0, 1]：更具体的外环排在更宽泛的外环之前，
// 这与射线法判定依赖调用方提供的顺序这一不变式一致。
func buildFixture(t *testing.T) (*Engine, h3.Cell, h3.Cell) {
	t.Helper()

	const base = 200_000_000 // 20.0 度 * 1e7

	sq := func(x0, y0, size int32) ([]int32, []int32) {
		return []int32{x0, x0 + size, x0 + size, x0}, []int32{y0, y0, y0 + size, y0 + size}
	}

	outerX0, outerY0 := sq(base, base, 10)
	outerX1, outerY1 := sq(base-100, base-100, 200)
	holeX0, holeY0 := outerX0, outerY0 // 与外环 0 完全重合的洞
	holeX1, holeY1 := sq(base+20, base+20, 10)

	outerXFlat := append(append([]int32{}, outerX0...), outerX1...)
	outerYFlat := append(append([]int32{}, outerY0...), outerY1...)
	outerOffsets := []uint32{0, 4, 8}

	holeXFlat := append(append([]int32{}, holeX0...), holeX1...)
	holeYFlat := append(append([]int32{}, holeY0...), holeY1...)
	holeOffsets := []uint32{0, 4, 8}

	xmin := []int32{base, base - 100}
	xmax := []int32{base + 10, base + 100}
	ymin := []int32{base, base - 100}
	ymax := []int32{base + 10, base + 100}

	zoneID := []uint32{0, 1}
	zonePositions := []uint32{0, 1, 2, 2}
	zoneNames := []string{"Test/Square", "Etc/GMT", "Europe/Berlin"}

	holeFirst := []uint32{0, 0}
	holeCount := []uint32{0, 2}

	store := polygonstore.New(
		outerXFlat, outerYFlat, outerOffsets,
		holeXFlat, holeYFlat, holeOffsets,
		xmin, xmax, ymin, ymax,
		zoneID,
		zonePositions, zoneNames,
		holeFirst, holeCount,
	)

	candidateLng, candidateLat := 20.0000005, 20.0000005
	candidateCell := shortcut.CellFor(candidateLng, candidateLat)

	berlinCell := shortcut.CellFor(13.405, 52.52)
	oceanCell := shortcut.CellFor(0, 0)

	idx := shortcut.New(map[h3.Cell]shortcut.Payload{
		candidateCell: {Unique: false, PolyIDs: []uint32{0, 1}},
		berlinCell:    {Unique: true, ZoneID: 2},
		oceanCell:     {Unique: true, ZoneID: 1},
	})

	return New(store, idx), berlinCell, oceanCell
}

func TestTimezoneAtUniqueCell(t *testing.T) {
	e, _, _ := buildFixture(t)

	name, ok, err := e.TimezoneAt(13.405, 52.52)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || name != "Europe/Berlin" {
		t.Errorf("got (%q, %v), want (Europe/Berlin, true)", name, ok)
	}
}

func TestTimezoneAtOceanUniqueCell(t *testing.T) {
	e, _, _ := buildFixture(t)

	name, ok, err := e.TimezoneAt(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || name != "Etc/GMT" {
		t.Errorf("got (%q, %v), want (Etc/GMT, true)", name, ok)
	}
}

func TestTimezoneAtLandFiltersOcean(t *testing.T) {
	e, _, _ := buildFixture(t)

	name, ok, err := e.TimezoneAtLand(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || name != "" {
		t.Errorf("got (%q, %v), want a miss for an ocean zone", name, ok)
	}
}

func TestTimezoneAtInnerSquare(t *testing.T) {
	e, _, _ := buildFixture(t)

	name, ok, err := e.TimezoneAt(20.0000005, 20.0000005)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || name != "Test/Square" {
		t.Errorf("got (%q, %v), want (Test/Square, true)", name, ok)
	}
}

func TestTimezoneAtOuterSquareOutsideHoles(t *testing.T) {
	e, _, _ := buildFixture(t)

	name, ok, err := e.TimezoneAt(20.000005, 20.000005)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || name != "Etc/GMT" {
		t.Errorf("got (%q, %v), want (Etc/GMT, true)", name, ok)
	}
}

func TestTimezoneAtInsideOrphanHoleMisses(t *testing.T) {
	e, _, _ := buildFixture(t)

	name, ok, err := e.TimezoneAt(20.0000025, 20.0000025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || name != "" {
		t.Errorf("got (%q, %v), want a miss (query lands in an orphan hole)", name, ok)
	}
}

func TestUniqueTimezoneAtRejectsCandidateCell(t *testing.T) {
	e, _, _ := buildFixture(t)

	name, ok, err := e.UniqueTimezoneAt(20.0000005, 20.0000005)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || name != "" {
		t.Errorf("got (%q, %v), want a miss: unique_timezone_at never does polygon tests", name, ok)
	}
}

func TestCertainTimezoneAtAliasesTimezoneAt(t *testing.T) {
	e, _, _ := buildFixture(t)

	want, wantOK, wantErr := e.TimezoneAt(13.405, 52.52)
	got, gotOK, gotErr := e.CertainTimezoneAt(13.405, 52.52)
	if want != got || wantOK != gotOK || (wantErr == nil) != (gotErr == nil) {
		t.Errorf("CertainTimezoneAt diverged from TimezoneAt: (%q,%v,%v) vs (%q,%v,%v)", want, wantOK, wantErr, got, gotOK, gotErr)
	}
}

func TestOutOfBoundsCoordinate(t *testing.T) {
	e, _, _ := buildFixture(t)

	if _, _, err := e.TimezoneAt(200.0, 10.0); err == nil {
		t.Error("expected an out-of-bounds error for longitude 200")
	}
	if _, _, err := e.TimezoneAt(10.0, 95.0); err == nil {
		t.Error("expected an out-of-bounds error for latitude 95")
	}
}

func TestGetGeometryByName(t *testing.T) {
	e, _, _ := buildFixture(t)

	mp, err := e.GetGeometry("Test/Square", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mp) != 1 || len(mp[0].Outer.Lng) != 4 {
		t.Fatalf("unexpected geometry shape: %+v", mp)
	}
}

func TestGetGeometryUnknownZone(t *testing.T) {
	e, _, _ := buildFixture(t)

	if _, err := e.GetGeometry("Nowhere/Imaginary", false); err == nil {
		t.Error("expected an error for an unknown zone name")
	}
}

func TestLiteEngineResolvesCandidateCellByFrequency(t *testing.T) {
	full, berlinCell, oceanCell := buildFixture(t)
	_ = berlinCell
	_ = oceanCell

	lite := NewLite(full.polys, full.shortcuts)

	// 候选列表 [0, 1] 里两个时区各出现一次，并列时取最先出现的一个（"Test/Square"）。
	name, ok, err := lite.TimezoneAt(20.0000005, 20.0000005)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || name != "Test/Square" {
		t.Errorf("lite engine should resolve a Candidate cell by zone frequency, got (%q, %v)", name, ok)
	}

	name, ok, err = lite.TimezoneAt(13.405, 52.52)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || name != "Europe/Berlin" {
		t.Errorf("lite engine should resolve Unique cells, got (%q, %v)", name, ok)
	}
}
