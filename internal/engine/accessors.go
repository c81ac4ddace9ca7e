package engine

import (
	"tzlookup/internal/engineerr"
	"tzlookup/internal/polygonstore"
	"tzlookup/internal/shortcut"
)

// ZoneNames 实现 §6 的 zone_names() 过程：返回数据集中全部 IANA 时区名称。
func (e *Engine) ZoneNames() []string { return e.polys.ZoneNames() }

// NumZones 返回数据集中的时区数量 N。
func (e *Engine) NumZones() int { return e.polys.NumZones() }

// NumPolygons 返回外环数量 P（上游 nr_of_polygons 的等价物）。
func (e *Engine) NumPolygons() int { return e.polys.NumPolygons() }

// ZoneIDOf 返回外环 polyID 所属的时区 id（上游 zone_id_of 的等价物）。
func (e *Engine) ZoneIDOf(polyID int) (uint32, error) { return e.polys.ZoneOf(polyID) }

// ZoneNameFromID 返回时区 id 对应的名称（上游 zone_name_from_id 的等价物）。
func (e *Engine) ZoneNameFromID(zoneID int) (string, error) { return e.polys.ZoneName(zoneID) }

// ZoneNameFromPolyID 返回外环 polyID 所属时区的名称（上游 zone_name_from_poly_id 的等价物）。
func (e *Engine) ZoneNameFromPolyID(polyID int) (string, error) {
	z, err := e.polys.ZoneOf(polyID)
	if err != nil {
		return "", err
	}
	return e.polys.ZoneName(int(z))
}

// ShortcutPolygons 返回给定坐标所在快捷单元格的候选外环 id 列表；Unique 单元格返回 nil。
// 对应上游 get_shortcut_polys，是调试/内省用途的只读访问器，不在查询热路径上。
func (e *Engine) ShortcutPolygons(lng, lat float64) ([]uint32, error) {
	if _, _, err := foldAndFix(lng, lat); err != nil {
		return nil, err
	}
	payload, err := e.shortcuts.Lookup(shortcut.CellFor(lng, lat))
	if err != nil {
		return nil, err
	}
	if payload.Unique {
		return nil, nil
	}
	return payload.PolyIDs, nil
}

// MostCommonZoneID 返回给定坐标所在快捷单元格里出现频率最高的时区 id，不做多边形测试。
// 对应上游 most_common_zone_id：Unique 单元格直接返回其时区；Candidate 单元格返回候选集合中
// 出现次数最多的时区 id（并列时取候选列表中最先出现的那个，见 pickMostCommonZone）。
func (e *Engine) MostCommonZoneID(lng, lat float64) (int, bool, error) {
	if _, _, err := foldAndFix(lng, lat); err != nil {
		return 0, false, err
	}
	payload, err := e.shortcuts.Lookup(shortcut.CellFor(lng, lat))
	if err != nil {
		return 0, false, err
	}
	if payload.Unique {
		return int(payload.ZoneID), true, nil
	}
	if len(payload.PolyIDs) == 0 {
		return 0, false, nil
	}
	zoneIDs := make([]uint32, len(payload.PolyIDs))
	for i, pid := range payload.PolyIDs {
		z, err := e.polys.ZoneOf(int(pid))
		if err != nil {
			return 0, false, err
		}
		zoneIDs[i] = z
	}
	return int(pickMostCommonZone(zoneIDs)), true, nil
}

// pickMostCommonZone 在一组候选多边形各自所属的时区 id 里选出出现次数最多的那个；
// 并列时取最先出现（即候选列表中位置最靠前）的时区 id，与上游 most_common_zone_id
// 对候选排序的依赖方式保持一致的确定性。
func pickMostCommonZone(zoneIDs []uint32) uint32 {
	counts := make(map[uint32]int)
	order := make(map[uint32]int)
	for i, z := range zoneIDs {
		counts[z]++
		if _, seen := order[z]; !seen {
			order[z] = i
		}
	}
	best := uint32(0)
	bestCount := -1
	bestOrder := -1
	for z, c := range counts {
		if c > bestCount || (c == bestCount && order[z] < bestOrder) {
			best, bestCount, bestOrder = z, c, order[z]
		}
	}
	return best
}

// GetGeometry 实现 §4.5.5：按时区名称检索其全部外环与洞，坐标以浮点度数返回。
func (e *Engine) GetGeometry(name string, coordsAsPairs bool) (MultiPolygon, error) {
	zoneID, ok := e.polys.ZoneIDByName(name)
	if !ok {
		return nil, &engineerr.UnknownZoneError{Name: name}
	}
	return e.geometryForZone(zoneID, coordsAsPairs)
}

// GetGeometryByID 是 GetGeometry 的按 id 版本。
func (e *Engine) GetGeometryByID(zoneID int, coordsAsPairs bool) (MultiPolygon, error) {
	if zoneID < 0 || zoneID >= e.polys.NumZones() {
		return nil, &engineerr.UnknownZoneError{ID: zoneID, ByID: true}
	}
	return e.geometryForZone(zoneID, coordsAsPairs)
}

func (e *Engine) geometryForZone(zoneID int, coordsAsPairs bool) (MultiPolygon, error) {
	var polyIDs []int
	if err := e.polys.PolygonsOfZone(zoneID, func(polyID int) bool {
		polyIDs = append(polyIDs, polyID)
		return true
	}); err != nil {
		return nil, err
	}
	result := make(MultiPolygon, 0, len(polyIDs))
	for _, polyID := range polyIDs {
		outer, err := e.polys.Polygon(polyID)
		if err != nil {
			return nil, err
		}
		p := Polygon{Outer: newRing(outer.X, outer.Y, coordsAsPairs)}
		var holeErr error
		if err := e.polys.HolesOf(polyID, func(h polygonstore.Polygon) bool {
			p.Holes = append(p.Holes, newRing(h.X, h.Y, coordsAsPairs))
			return true
		}); err != nil {
			holeErr = err
		}
		if holeErr != nil {
			return nil, holeErr
		}
		result = append(result, p)
	}
	return result, nil
}
