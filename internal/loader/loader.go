// 包 loader：按 §6 的文件清单组装 polygonstore.Store 与 shortcut.Index
// 背景：加载是唯一允许做 I/O 与失败日志的阶段；构造完成后的 Store/Index 是纯内存只读
// 结构，查询路径不再触碰文件系统。mmap 与 in-memory 两种模式共享完全相同的解码代码，
// 区别只在于 mmapfile.Open 返回的字节切片来自页缓存还是一次性整体读入的堆内存。
package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/uber/h3-go/v4"

	"tzlookup/internal/config"
	"tzlookup/internal/engineerr"
	"tzlookup/internal/loader/fbs"
	"tzlookup/internal/loader/mmapfile"
	"tzlookup/internal/loader/npy"
	"tzlookup/internal/logger"
	"tzlookup/internal/polygonstore"
	"tzlookup/internal/shortcut"
)

// Dataset 持有加载完成后的两个只读结构，以及需要在引擎生命周期结束时释放的 mmap 句柄。
type Dataset struct {
	Polys     *polygonstore.Store
	Shortcuts *shortcut.Index
	closers   []*mmapfile.File
}

// Close 释放所有 mmap 映射；in-memory 模式下是 no-op。
func (d *Dataset) Close() error {
	var first error
	for _, f := range d.closers {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Load 按 cfg 指定的目录与模式读取全部数据集文件。
func Load(cfg config.Config) (*Dataset, error) {
	logger.L().Info("dataset_load_begin", "dir", cfg.DataDir, "in_memory", cfg.InMemory)

	ds := &Dataset{}

	zoneNames, err := loadZoneNames(filepath.Join(cfg.DataDir, "timezone_names.txt"))
	if err != nil {
		return nil, err
	}

	zoneID, err := npy.ReadZoneIDs(filepath.Join(cfg.DataDir, "zone_ids.npy"), cfg.ZoneIDWidth)
	if err != nil {
		return nil, err
	}
	zonePositions, err := npy.ReadUint32(filepath.Join(cfg.DataDir, "zone_positions.npy"))
	if err != nil {
		return nil, err
	}
	xmin, err := npy.ReadInt32(filepath.Join(cfg.DataDir, "xmin.npy"))
	if err != nil {
		return nil, err
	}
	xmax, err := npy.ReadInt32(filepath.Join(cfg.DataDir, "xmax.npy"))
	if err != nil {
		return nil, err
	}
	ymin, err := npy.ReadInt32(filepath.Join(cfg.DataDir, "ymin.npy"))
	if err != nil {
		return nil, err
	}
	ymax, err := npy.ReadInt32(filepath.Join(cfg.DataDir, "ymax.npy"))
	if err != nil {
		return nil, err
	}

	outerXFlat, outerYFlat, outerOffsets, outerFile, err := loadPolyColl(filepath.Join(cfg.DataDir, "boundaries", "coordinates.fbs"), cfg.InMemory)
	if err != nil {
		return nil, err
	}
	ds.closers = append(ds.closers, outerFile)

	holeXFlat, holeYFlat, holeOffsets, holeFile, err := loadPolyColl(filepath.Join(cfg.DataDir, "holes", "coordinates.fbs"), cfg.InMemory)
	if err != nil {
		return nil, err
	}
	ds.closers = append(ds.closers, holeFile)

	numPolygons := len(outerOffsets) - 1
	holeFirst, holeCount, err := loadHoleRegistry(filepath.Join(cfg.DataDir, "hole_registry.json"), numPolygons)
	if err != nil {
		return nil, err
	}

	ds.Polys = polygonstore.New(
		outerXFlat, outerYFlat, outerOffsets,
		holeXFlat, holeYFlat, holeOffsets,
		xmin, xmax, ymin, ymax,
		zoneID,
		zonePositions, zoneNames,
		holeFirst, holeCount,
	)

	idx, shortcutFile, err := loadShortcuts(cfg)
	if err != nil {
		return nil, err
	}
	ds.closers = append(ds.closers, shortcutFile)
	ds.Shortcuts = idx

	logger.L().Info("dataset_load_done", "polygons", ds.Polys.NumPolygons(), "zones", ds.Polys.NumZones(), "shortcut_cells", idx.Len())
	return ds, nil
}

func loadZoneNames(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &engineerr.LoadFailureError{Path: path, Cause: err}
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		if l == "" {
			continue
		}
		names = append(names, l)
	}
	return names, nil
}

// loadPolyColl 将一个 PolyColl FlatBuffers 文件展开为列式扁平数组 + 偏移量数组。
func loadPolyColl(path string, inMemory bool) (xFlat, yFlat []int32, offsets []uint32, f *mmapfile.File, err error) {
	f, err = mmapfile.Open(path, inMemory)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	buf := f.Bytes()
	if len(buf) == 0 {
		return nil, nil, []uint32{0}, f, nil
	}
	coll := fbs.GetRootAsPolyColl(buf, 0)
	n := coll.PolygonsLength()
	offsets = make([]uint32, n+1)
	var total uint32
	var poly fbs.Polygon
	for i := 0; i < n; i++ {
		if !coll.Polygons(&poly, i) {
			return nil, nil, nil, f, &engineerr.CorruptDataError{Component: "loader", Detail: "missing polygon entry in coordinates.fbs"}
		}
		vlen := poly.XLength()
		if vlen != poly.YLength() {
			return nil, nil, nil, f, &engineerr.CorruptDataError{Component: "loader", Detail: "mismatched x/y vertex counts"}
		}
		total += uint32(vlen)
		offsets[i+1] = total
	}
	xFlat = make([]int32, total)
	yFlat = make([]int32, total)
	var cursor uint32
	for i := 0; i < n; i++ {
		coll.Polygons(&poly, i)
		vlen := poly.XLength()
		for j := 0; j < vlen; j++ {
			xFlat[cursor] = poly.X(j)
			yFlat[cursor] = poly.Y(j)
			cursor++
		}
	}
	return xFlat, yFlat, offsets, f, nil
}

// loadHoleRegistry 将 {"<outer_id>": [first_hole_id, count], ...} 展开为按外环 id 索引的
// 两个定长数组；JSON 里缺席的外环视为零洞。
func loadHoleRegistry(path string, numPolygons int) (holeFirst, holeCount []uint32, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &engineerr.LoadFailureError{Path: path, Cause: err}
	}
	var raw map[string][2]uint32
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, nil, &engineerr.CorruptDataError{Component: "loader", Detail: "hole_registry.json: " + err.Error()}
	}
	holeFirst = make([]uint32, numPolygons)
	holeCount = make([]uint32, numPolygons)
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil || id < 0 || id >= numPolygons {
			return nil, nil, &engineerr.CorruptDataError{Component: "loader", Detail: "hole_registry.json: outer id out of range: " + k}
		}
		holeFirst[id] = v[0]
		holeCount[id] = v[1]
	}
	return holeFirst, holeCount, nil
}

func loadShortcuts(cfg config.Config) (*shortcut.Index, *mmapfile.File, error) {
	name := "hybrid_shortcuts_u16.fbs"
	if cfg.ZoneIDWidth == 1 {
		name = "hybrid_shortcuts_u8.fbs"
	}
	path := filepath.Join(cfg.DataDir, name)
	f, err := mmapfile.Open(path, cfg.InMemory)
	if err != nil {
		return nil, nil, err
	}
	buf := f.Bytes()
	entries := make(map[h3.Cell]shortcut.Payload)
	if len(buf) == 0 {
		return shortcut.New(entries), f, nil
	}
	sc := fbs.GetRootAsShortcuts(buf, 0)
	n := sc.EntriesLength()
	var e fbs.Entry
	for i := 0; i < n; i++ {
		if !sc.Entries(&e, i) {
			return nil, f, &engineerr.CorruptDataError{Component: "loader", Detail: "missing shortcut entry"}
		}
		cell := h3.Cell(e.H3Id())
		plen := e.PolyIdsLength()
		if plen == 0 {
			entries[cell] = shortcut.Payload{Unique: true, ZoneID: uint32(e.ZoneId())}
			continue
		}
		ids := make([]uint32, plen)
		for j := 0; j < plen; j++ {
			ids[j] = e.PolyIds(j)
		}
		entries[cell] = shortcut.Payload{Unique: false, PolyIDs: ids}
	}
	return shortcut.New(entries), f, nil
}
