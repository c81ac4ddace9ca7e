package engine

import (
	"strings"

	"tzlookup/internal/polygonstore"
	"tzlookup/internal/shortcut"
)

// LiteEngine：只做快捷单元格解析，从不执行射线法多边形测试。
// 对应上游 TimezoneFinderL：Unique 单元格正常解析；Candidate 单元格不会被当作未命中，
// 而是返回候选列表中出现次数最多（按候选多边形个数计，并列时取最先出现者）的时区——见上游
// TimezoneFinderL.timezone_at 与 most_common_zone_id
// （original_source/timezonefinder/timezonefinder.py:147-161,221-236）。
// 仍然依赖 polys 做 poly_id -> zone_id / zone_id -> 名称 的查表，但从不触碰坐标列数据。
type LiteEngine struct {
	polys     *polygonstore.Store
	shortcuts *shortcut.Index
}

var _ Finder = (*LiteEngine)(nil)

// NewLite 使用已加载的多边形存储（仅用于 zone 查表）与快捷索引构造精简引擎。
func NewLite(polys *polygonstore.Store, shortcuts *shortcut.Index) *LiteEngine {
	return &LiteEngine{polys: polys, shortcuts: shortcuts}
}

// TimezoneAt 实现上游 TimezoneFinderL.timezone_at：Unique 单元格直接返回其时区；
// Candidate 单元格返回候选集合中最常见的时区，候选列表为空时视为未命中。
func (e *LiteEngine) TimezoneAt(lng, lat float64) (string, bool, error) {
	if _, _, err := foldAndFix(lng, lat); err != nil {
		return "", false, err
	}
	cell := shortcut.CellFor(lng, lat)
	payload, err := e.shortcuts.Lookup(cell)
	if err != nil {
		return "", false, err
	}
	if payload.Unique {
		name, err := e.polys.ZoneName(int(payload.ZoneID))
		if err != nil {
			return "", false, err
		}
		return name, true, nil
	}
	if len(payload.PolyIDs) == 0 {
		return "", false, nil
	}
	zoneIDs := make([]uint32, len(payload.PolyIDs))
	for i, pid := range payload.PolyIDs {
		z, err := e.polys.ZoneOf(int(pid))
		if err != nil {
			return "", false, err
		}
		zoneIDs[i] = z
	}
	name, err := e.polys.ZoneName(int(pickMostCommonZone(zoneIDs)))
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

// TimezoneAtLand 与 TimezoneAt 一致，额外过滤海洋时区。
func (e *LiteEngine) TimezoneAtLand(lng, lat float64) (string, bool, error) {
	name, ok, err := e.TimezoneAt(lng, lat)
	if err != nil || !ok {
		return name, ok, err
	}
	if strings.HasPrefix(name, OceanZonePrefix) {
		return "", false, nil
	}
	return name, true, nil
}

// UniqueTimezoneAt 仅在快捷单元格是 Unique 时返回结果，与完整引擎语义相同。
func (e *LiteEngine) UniqueTimezoneAt(lng, lat float64) (string, bool, error) {
	if _, _, err := foldAndFix(lng, lat); err != nil {
		return "", false, err
	}
	cell := shortcut.CellFor(lng, lat)
	payload, err := e.shortcuts.Lookup(cell)
	if err != nil {
		return "", false, err
	}
	if !payload.Unique {
		return "", false, nil
	}
	name, err := e.polys.ZoneName(int(payload.ZoneID))
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}
