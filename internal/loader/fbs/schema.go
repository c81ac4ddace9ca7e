// 包 fbs：§6 所述三张 FlatBuffers 表（Polygon、PolyColl、Entry/Shortcuts）的手写访问器。
// 背景：数据集文件由上游的 Python 工具链生成，这里只实现只读访问，不包含构建器——
// 本引擎从不在运行时序列化/修改数据集。字段顺序与 vtable 偏移量必须与生成该数据集的
// schema 保持一致（见 §6 的 schema 注释）：
//
//	table Polygon  { x: [int32]; y: [int32]; }
//	table PolyColl { polygons: [Polygon]; }
//	table Entry    { h3_id: uint64; zone_id: uint16; poly_ids: [uint32]; }
//	table Shortcuts{ entries: [Entry]; }
package fbs

import flatbuffers "github.com/google/flatbuffers/go"

// Polygon 对应 schema 中的同名表：一对等长的定点坐标列。
type Polygon struct {
	_tab flatbuffers.Table
}

func (rcv *Polygon) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Polygon) X(j int) int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o == 0 {
		return 0
	}
	a := rcv._tab.Vector(o)
	return rcv._tab.GetInt32(a + flatbuffers.UOffsetT(j)*4)
}

func (rcv *Polygon) XLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o == 0 {
		return 0
	}
	return rcv._tab.VectorLen(o)
}

func (rcv *Polygon) Y(j int) int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o == 0 {
		return 0
	}
	a := rcv._tab.Vector(o)
	return rcv._tab.GetInt32(a + flatbuffers.UOffsetT(j)*4)
}

func (rcv *Polygon) YLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o == 0 {
		return 0
	}
	return rcv._tab.VectorLen(o)
}

// PolyColl 对应 schema 中的 PolyColl：多个 Polygon 的集合，用于 boundaries/ 与 holes/ 两个文件。
type PolyColl struct {
	_tab flatbuffers.Table
}

// GetRootAsPolyColl 解析一个完整 FlatBuffers 缓冲区的根表。
func GetRootAsPolyColl(buf []byte, offset flatbuffers.UOffsetT) *PolyColl {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &PolyColl{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *PolyColl) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *PolyColl) Polygons(obj *Polygon, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o == 0 {
		return false
	}
	x := rcv._tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 4
	x = rcv._tab.Indirect(x)
	obj.Init(rcv._tab.Bytes, x)
	return true
}

func (rcv *PolyColl) PolygonsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o == 0 {
		return 0
	}
	return rcv._tab.VectorLen(o)
}

// Entry 对应 schema 中的 Entry：poly_ids 为空即为 Unique（此时 zone_id 有效），
// 否则为 Candidate（zone_id 字段未使用）。
type Entry struct {
	_tab flatbuffers.Table
}

func (rcv *Entry) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Entry) H3Id() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o == 0 {
		return 0
	}
	return rcv._tab.GetUint64(o + rcv._tab.Pos)
}

func (rcv *Entry) ZoneId() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o == 0 {
		return 0
	}
	return rcv._tab.GetUint16(o + rcv._tab.Pos)
}

func (rcv *Entry) PolyIds(j int) uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o == 0 {
		return 0
	}
	a := rcv._tab.Vector(o)
	return rcv._tab.GetUint32(a + flatbuffers.UOffsetT(j)*4)
}

func (rcv *Entry) PolyIdsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o == 0 {
		return 0
	}
	return rcv._tab.VectorLen(o)
}

// Shortcuts 对应 schema 中的 Shortcuts：按 h3_id 排序的 Entry 集合（hybrid_shortcuts_{u8,u16}.fbs）。
type Shortcuts struct {
	_tab flatbuffers.Table
}

func GetRootAsShortcuts(buf []byte, offset flatbuffers.UOffsetT) *Shortcuts {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Shortcuts{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Shortcuts) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Shortcuts) Entries(obj *Entry, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o == 0 {
		return false
	}
	x := rcv._tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 4
	x = rcv._tab.Indirect(x)
	obj.Init(rcv._tab.Bytes, x)
	return true
}

func (rcv *Shortcuts) EntriesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o == 0 {
		return 0
	}
	return rcv._tab.VectorLen(o)
}
