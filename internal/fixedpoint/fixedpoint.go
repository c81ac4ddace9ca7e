// 包 fixedpoint：经纬度浮点数与定点整数之间的互转
// 背景：所有几何运算（包围盒比较、射线法判定）都在定点整数域进行，避免浮点误差累积；
// 换算比例固定为 1e7，恰好覆盖全球经纬度范围并落在有符号 32 位整数内。
package fixedpoint

import (
	"errors"
	"fmt"
	"math"
)

// Scale：定点换算比例（1 度 = 1e7 个单位）。赤道上的最大误差约为 1 厘米。
const Scale = 10_000_000

const (
	MinLng = -180.0
	MaxLng = 180.0
	MinLat = -90.0
	MaxLat = 90.0
)

// ErrOutOfBounds：经纬度超出合法范围
var ErrOutOfBounds = errors.New("fixedpoint: coordinate out of bounds")

// Coordinate kind，仅用于产生更清晰的错误信息
type Axis int

const (
	Longitude Axis = iota
	Latitude
)

func (a Axis) String() string {
	if a == Latitude {
		return "latitude"
	}
	return "longitude"
}

// OutOfBoundsError：携带触发错误的具体数值与轴，供调用方诊断
type OutOfBoundsError struct {
	Axis  Axis
	Value float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("fixedpoint: %s %.6f out of bounds", e.Axis, e.Value)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// FoldLongitude：将 +180° 折叠为 -180°，与数据集在反子午线处的裁剪方式保持一致。
// 必须在转换为定点整数之前调用，且不得在经过 H3 单元格定位之后再次归一化。
func FoldLongitude(lng float64) float64 {
	if lng == MaxLng {
		return MinLng
	}
	return lng
}

// ToFixedLng：将经度转换为定点整数，范围校验失败返回 *OutOfBoundsError。
func ToFixedLng(lng float64) (int32, error) {
	lng = FoldLongitude(lng)
	if lng < MinLng || lng > MaxLng {
		return 0, &OutOfBoundsError{Axis: Longitude, Value: lng}
	}
	return toFixed(lng), nil
}

// ToFixedLat：将纬度转换为定点整数，范围校验失败返回 *OutOfBoundsError。
func ToFixedLat(lat float64) (int32, error) {
	if lat < MinLat || lat > MaxLat {
		return 0, &OutOfBoundsError{Axis: Latitude, Value: lat}
	}
	return toFixed(lat), nil
}

func toFixed(d float64) int32 {
	return int32(math.Round(d * Scale))
}

// ToDegrees：定点整数换算回浮点度数。
func ToDegrees(v int32) float64 {
	return float64(v) / Scale
}
