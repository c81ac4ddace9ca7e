// 包 polygonstore：多边形的只读列式存储
// 背景：外环与洞分别存放在各自的列式数组中（便于射线法扫描时的缓存局部性）；
// 每个外环额外携带包围盒、所属时区 id，以及指向其洞集合的区间。
// 所有数据在构造后只读；越界访问被视为数据损坏，返回 *engineerr.CorruptDataError 而非做任何恢复。
package polygonstore

import (
	"tzlookup/internal/engineerr"
)

// Polygon：某个外环或洞的列式坐标视图；零拷贝，底层引用 Store 的平坦数组。
// 首尾顶点不重复（闭合边是隐式的）。
type Polygon struct {
	X []int32
	Y []int32
}

// Len 返回顶点数。
func (p Polygon) Len() int { return len(p.X) }

// Store：只读多边形存储，见 §3/§4.2。
type Store struct {
	outerXFlat []int32
	outerYFlat []int32
	// outerOffsets 的长度为 P+1；多边形 i 的顶点落在 [outerOffsets[i], outerOffsets[i+1])
	outerOffsets []uint32

	holeXFlat    []int32
	holeYFlat    []int32
	holeOffsets  []uint32 // 长度 K+1

	xmin, xmax, ymin, ymax []int32 // 长度 P，定点整数包围盒

	zoneID []uint32 // 长度 P，外环所属的时区 id

	// zonePositions 长度 N+1：时区 z 的多边形落在 [zonePositions[z], zonePositions[z+1])，
	// 区间内按顶点数从大到小排序。
	zonePositions []uint32
	zoneNames     []string

	// holeRegistry：outer polygon id -> (first hole id, count)，count 可能为 0
	holeFirst []uint32
	holeCount []uint32
}

// New 使用已经加载好的列式数据构造 Store。加载器负责从磁盘文件填充这些切片；
// Store 本身不做 I/O。传入的切片长度必须满足 §3 的不变式：访问器只按 P/K/N 检查传入的下标，
// 越界下标返回 CorruptDataError；切片之间的长度一致性不做检查，某个切片短于这些数量时访问会 panic。
func New(
	outerXFlat, outerYFlat []int32, outerOffsets []uint32,
	holeXFlat, holeYFlat []int32, holeOffsets []uint32,
	xmin, xmax, ymin, ymax []int32,
	zoneID []uint32,
	zonePositions []uint32, zoneNames []string,
	holeFirst, holeCount []uint32,
) *Store {
	return &Store{
		outerXFlat: outerXFlat, outerYFlat: outerYFlat, outerOffsets: outerOffsets,
		holeXFlat: holeXFlat, holeYFlat: holeYFlat, holeOffsets: holeOffsets,
		xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax,
		zoneID: zoneID,
		zonePositions: zonePositions, zoneNames: zoneNames,
		holeFirst: holeFirst, holeCount: holeCount,
	}
}

// NumPolygons 返回外环数量 P。
func (s *Store) NumPolygons() int { return len(s.outerOffsets) - 1 }

// NumHoles 返回洞的数量 K。
func (s *Store) NumHoles() int { return len(s.holeOffsets) - 1 }

// NumZones 返回时区数量 N。
func (s *Store) NumZones() int { return len(s.zoneNames) }

func corrupt(component, detail string) error {
	return &engineerr.CorruptDataError{Component: component, Detail: detail}
}

// Polygon 返回外环 i 的列式视图，零拷贝，O(1)。
func (s *Store) Polygon(i int) (Polygon, error) {
	if i < 0 || i >= s.NumPolygons() {
		return Polygon{}, corrupt("polygonstore", "outer polygon index out of range")
	}
	start, end := s.outerOffsets[i], s.outerOffsets[i+1]
	return Polygon{X: s.outerXFlat[start:end], Y: s.outerYFlat[start:end]}, nil
}

// Bbox 返回外环 i 的定点整数包围盒 (xmin, ymin, xmax, ymax)，O(1)。
func (s *Store) Bbox(i int) (xmin, ymin, xmax, ymax int32, err error) {
	if i < 0 || i >= s.NumPolygons() {
		return 0, 0, 0, 0, corrupt("polygonstore", "bbox index out of range")
	}
	return s.xmin[i], s.ymin[i], s.xmax[i], s.ymax[i], nil
}

// ZoneOf 返回外环 i 所属的时区 id，O(1)。
func (s *Store) ZoneOf(i int) (uint32, error) {
	if i < 0 || i >= s.NumPolygons() {
		return 0, corrupt("polygonstore", "zone_of index out of range")
	}
	return s.zoneID[i], nil
}

// HoleRange 返回外环 i 的洞在洞数组中的 [first, first+count) 区间。
func (s *Store) HoleRange(i int) (first, count uint32, err error) {
	if i < 0 || i >= s.NumPolygons() {
		return 0, 0, corrupt("polygonstore", "hole range index out of range")
	}
	return s.holeFirst[i], s.holeCount[i], nil
}

// Hole 返回洞 j 的列式视图，零拷贝，O(1)。
func (s *Store) Hole(j int) (Polygon, error) {
	if j < 0 || j >= s.NumHoles() {
		return Polygon{}, corrupt("polygonstore", "hole index out of range")
	}
	start, end := s.holeOffsets[j], s.holeOffsets[j+1]
	return Polygon{X: s.holeXFlat[start:end], Y: s.holeYFlat[start:end]}, nil
}

// HolesOf 以闭包方式迭代外环 i 的所有洞，O(1) 建立，O(count) 遍历。
// fn 返回 false 时提前终止迭代。
func (s *Store) HolesOf(i int, fn func(hole Polygon) bool) error {
	first, count, err := s.HoleRange(i)
	if err != nil {
		return err
	}
	for k := uint32(0); k < count; k++ {
		h, err := s.Hole(int(first + k))
		if err != nil {
			return err
		}
		if !fn(h) {
			return nil
		}
	}
	return nil
}

// PolygonsOfZone 以闭包方式迭代属于时区 z 的外环 id，按存储顺序（顶点数从大到小）。
func (s *Store) PolygonsOfZone(z int, fn func(polyID int) bool) error {
	if z < 0 || z >= s.NumZones() {
		return corrupt("polygonstore", "zone index out of range")
	}
	start, end := s.zonePositions[z], s.zonePositions[z+1]
	for p := start; p < end; p++ {
		if !fn(int(p)) {
			return nil
		}
	}
	return nil
}

// ZoneName 返回时区 z 的 IANA 名称，O(1)。
func (s *Store) ZoneName(z int) (string, error) {
	if z < 0 || z >= len(s.zoneNames) {
		return "", corrupt("polygonstore", "zone name index out of range")
	}
	return s.zoneNames[z], nil
}

// ZoneNames 返回全部时区名称，供 engine.ZoneNames() 使用；调用方不得修改返回的切片。
func (s *Store) ZoneNames() []string { return s.zoneNames }

// ZoneIDByName 返回名称对应的时区 id；未找到返回 false。
func (s *Store) ZoneIDByName(name string) (int, bool) {
	for i, n := range s.zoneNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
