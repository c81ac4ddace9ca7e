// 包 engine：查询引擎，编排定点坐标转换、H3 快捷索引、多边形存储与射线法判定
// 背景：对外暴露 timezone_at / timezone_at_land / unique_timezone_at / certain_timezone_at /
// get_geometry，短路不变式（Unique 单元格免多边形测试、候选集合塌缩为单一时区时提前返回）
// 是查询路径的性能关键（§4.5）。引擎构造后只读，天然支持多个 goroutine 并发只读查询。
package engine

import (
	"strings"

	"tzlookup/internal/engineerr"
	"tzlookup/internal/fixedpoint"
	"tzlookup/internal/metrics"
	"tzlookup/internal/pip"
	"tzlookup/internal/polygonstore"
	"tzlookup/internal/shortcut"
)

// OceanZonePrefix：海洋时区名称前缀，timezone_at_land 据此过滤。
const OceanZonePrefix = "Etc/GMT"

// Finder：timezone_at 系列查询的统一契约，Engine 与 LiteEngine 都实现它。
type Finder interface {
	TimezoneAt(lng, lat float64) (string, bool, error)
	TimezoneAtLand(lng, lat float64) (string, bool, error)
	UniqueTimezoneAt(lng, lat float64) (string, bool, error)
}

// Engine：完整引擎，持有多边形存储与快捷索引，支持多边形级别的精确判定。
type Engine struct {
	polys     *polygonstore.Store
	shortcuts *shortcut.Index
}

var _ Finder = (*Engine)(nil)

// New 使用已加载的多边形存储与快捷索引构造引擎。两者都应来自同一个数据集目录，
// 调用方（internal/loader）负责保证它们之间 id 的一致性。
func New(polys *polygonstore.Store, shortcuts *shortcut.Index) *Engine {
	return &Engine{polys: polys, shortcuts: shortcuts}
}

func foldAndFix(lng, lat float64) (int32, int32, error) {
	qx, err := fixedpoint.ToFixedLng(lng)
	if err != nil {
		return 0, 0, &engineerr.OutOfBoundsError{Lng: lng, Lat: lat}
	}
	qy, err := fixedpoint.ToFixedLat(lat)
	if err != nil {
		return 0, 0, &engineerr.OutOfBoundsError{Lng: lng, Lat: lat}
	}
	return qx, qy, nil
}

// TimezoneAt 实现 §4.5.1：Unique 单元格直接返回，否则遍历候选集合，
// 一旦剩余候选全部同属一个时区就提前返回，不必测试剩余多边形。
func (e *Engine) TimezoneAt(lng, lat float64) (string, bool, error) {
	qx, qy, err := foldAndFix(lng, lat)
	if err != nil {
		return "", false, err
	}
	cell := shortcut.CellFor(lng, lat)
	payload, err := e.shortcuts.Lookup(cell)
	if err != nil {
		return "", false, err
	}
	if payload.Unique {
		metrics.ShortcutUniqueTotal.Inc()
		name, err := e.polys.ZoneName(int(payload.ZoneID))
		if err != nil {
			return "", false, err
		}
		return name, true, nil
	}
	metrics.ShortcutCandidateTotal.Inc()
	return e.resolveCandidates(qx, qy, payload.PolyIDs)
}

// resolveCandidates 遍历候选外环 id，在出现以下任一情况时返回：
// (a) 剩余候选的时区 id 已经全部相同（无需继续测试几何），
// (b) 精确命中某个候选（通过包围盒拒绝 + 射线法 + 洞排除）。
func (e *Engine) resolveCandidates(qx, qy int32, candidates []uint32) (string, bool, error) {
	n := len(candidates)
	zoneIDs := make([]uint32, n)
	for i, pid := range candidates {
		z, err := e.polys.ZoneOf(int(pid))
		if err != nil {
			return "", false, err
		}
		zoneIDs[i] = z
	}
	// suffixUnique[i] == true 表示 zoneIDs[i:] 中所有元素相同。
	suffixUnique := make([]bool, n+1)
	suffixUnique[n] = true
	for i := n - 1; i >= 0; i-- {
		if i == n-1 {
			suffixUnique[i] = true
		} else {
			suffixUnique[i] = suffixUnique[i+1] && zoneIDs[i] == zoneIDs[i+1]
		}
	}
	for i, pid := range candidates {
		if suffixUnique[i] {
			metrics.CandidatesTestedTotal.Observe(float64(i))
			name, err := e.polys.ZoneName(int(zoneIDs[i]))
			if err != nil {
				return "", false, err
			}
			return name, true, nil
		}
		xmin, ymin, xmax, ymax, err := e.polys.Bbox(int(pid))
		if err != nil {
			return "", false, err
		}
		if qx < xmin || qx > xmax || qy < ymin || qy > ymax {
			continue
		}
		poly, err := e.polys.Polygon(int(pid))
		if err != nil {
			return "", false, err
		}
		if !pip.Inside(qx, qy, pip.Ring{X: poly.X, Y: poly.Y}) {
			continue
		}
		inHole := false
		if err := e.polys.HolesOf(int(pid), func(h polygonstore.Polygon) bool {
			if pip.Inside(qx, qy, pip.Ring{X: h.X, Y: h.Y}) {
				inHole = true
				return false
			}
			return true
		}); err != nil {
			return "", false, err
		}
		if inHole {
			continue
		}
		metrics.CandidatesTestedTotal.Observe(float64(i + 1))
		name, err := e.polys.ZoneName(int(zoneIDs[i]))
		if err != nil {
			return "", false, err
		}
		return name, true, nil
	}
	metrics.CandidatesTestedTotal.Observe(float64(n))
	return "", false, nil
}

// TimezoneAtLand 实现 §4.5.2：与 timezone_at 完全一致，唯一区别是命中海洋时区
// （名称以 Etc/GMT 开头）时对外呈现为未命中。Unique 单元格内部仍然正常解析出
// 海洋时区名称，只是在这里被过滤掉——过滤只发生在公开包装层。
func (e *Engine) TimezoneAtLand(lng, lat float64) (string, bool, error) {
	name, ok, err := e.TimezoneAt(lng, lat)
	if err != nil || !ok {
		return name, ok, err
	}
	if strings.HasPrefix(name, OceanZonePrefix) {
		return "", false, nil
	}
	return name, true, nil
}

// UniqueTimezoneAt 实现 §4.5.3：仅在快捷单元格是 Unique 时返回结果，完全不做多边形测试。
// Candidate 单元格一律返回未命中，无论它实际会解析成什么时区。
func (e *Engine) UniqueTimezoneAt(lng, lat float64) (string, bool, error) {
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

// CertainTimezoneAt 实现 §4.5.4（已废弃）：在海洋数据集下与 timezone_at 结果相同，
// 保留仅为 API 兼容，内部直接复用同一实现。
//
// Deprecated: 请使用 TimezoneAt。
func (e *Engine) CertainTimezoneAt(lng, lat float64) (string, bool, error) {
	return e.TimezoneAt(lng, lat)
}
