// 包 shortcut：H3 分辨率 3 的全球六边形快捷索引
// 背景：每个六边形要么直接关联唯一时区（Unique），要么携带一组候选外环 id（Candidate）；
// 这是查询路径上最重要的性能捷径——Unique 命中无需任何多边形测试。
// 反子午线的单元格归属完全交给 H3 库处理，本包不在查询前做除 §4.1 折叠以外的额外归一化。
package shortcut

import (
	"tzlookup/internal/engineerr"
	"tzlookup/internal/fixedpoint"

	"github.com/uber/h3-go/v4"
)

// Resolution：固定为 3（约 120km 边长）。更低分辨率单元格内多边形过多，更高分辨率会
// 使单元格数量和存储体积暴增。
const Resolution = 3

// Payload：单个快捷单元格的载荷，是一个带标签的联合，而非共享字段的哨兵值。
type Payload struct {
	// Unique 为 true 时 ZoneID 有效，PolyIDs 必须为空。
	// Unique 为 false 时 PolyIDs 非空，ZoneID 未使用。
	Unique  bool
	ZoneID  uint32
	PolyIDs []uint32
}

// Index：只读的单元格 -> 载荷映射，总映射（每个分辨率 3 单元格都有条目）。
type Index struct {
	entries map[h3.Cell]Payload
}

// New 使用已加载的条目构造索引。加载器负责保证总覆盖（§3 不变式 1）；
// 本包不再重复校验，缺失的单元格在 Lookup 时会被当作数据损坏处理。
func New(entries map[h3.Cell]Payload) *Index {
	return &Index{entries: entries}
}

// CellFor 将经度折叠（+180° -> -180°）后，直接用浮点经纬度计算其所在的分辨率 3 H3 单元格，
// 不经过定点坐标转换。
// 注意：传入 H3 的必须是折叠后但未经其它归一化的原始浮点经纬度——H3 自己处理反子午线。
func CellFor(lng, lat float64) h3.Cell {
	lng = fixedpoint.FoldLongitude(lng)
	return h3.LatLngToCell(h3.LatLng{Lat: lat, Lng: lng}, Resolution)
}

// Lookup 返回单元格 c 的载荷，O(1)。
func (idx *Index) Lookup(c h3.Cell) (Payload, error) {
	p, ok := idx.entries[c]
	if !ok {
		return Payload{}, &engineerr.CorruptDataError{
			Component: "shortcut",
			Detail:    "no entry for cell " + c.String() + " (total coverage invariant violated)",
		}
	}
	return p, nil
}

// Len 返回索引中的单元格数量，主要用于诊断/测试。
func (idx *Index) Len() int { return len(idx.entries) }
