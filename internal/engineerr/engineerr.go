// 包 engineerr：查询引擎的错误分类
// 背景：区分调用方错误（坐标越界、未知时区）与数据错误（数据损坏、加载失败）；
// 加载失败时引擎不会被构造出来。数据损坏作为普通错误返回给调用方，引擎不保存“中毒”状态，
// 之后的调用不会被拒绝，而是照常在同一份数据上执行；也不做任何恢复尝试。
package engineerr

import "fmt"

// OutOfBoundsError：经度或纬度超出合法范围 [-180,180] / [-90,90]
type OutOfBoundsError struct {
	Lng, Lat float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("engineerr: coordinate (%.6f, %.6f) out of bounds", e.Lng, e.Lat)
}

// UnknownZoneError：get_geometry 查询了不存在的时区名称或 id
type UnknownZoneError struct {
	Name string
	ID   int
	ByID bool
}

func (e *UnknownZoneError) Error() string {
	if e.ByID {
		return fmt.Sprintf("engineerr: unknown zone id %d", e.ID)
	}
	return fmt.Sprintf("engineerr: unknown zone name %q", e.Name)
}

// CorruptDataError：索引越界或数据文件结构不完整；只随本次调用返回，引擎不记录中毒状态。
type CorruptDataError struct {
	Component string
	Detail    string
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("engineerr: corrupt data in %s: %s", e.Component, e.Detail)
}

// LoadFailureError：构造期间文件缺失/不可读/magic 不匹配；引擎从未被创建出来。
type LoadFailureError struct {
	Path  string
	Cause error
}

func (e *LoadFailureError) Error() string {
	return fmt.Sprintf("engineerr: failed to load %s: %v", e.Path, e.Cause)
}

func (e *LoadFailureError) Unwrap() error { return e.Cause }
