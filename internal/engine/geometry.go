package engine

import "tzlookup/internal/fixedpoint"

// Point：浮点经纬度坐标对，get_geometry 以 coordsAsPairs=true 时使用。
type Point struct {
	Lng float64
	Lat float64
}

// Ring：一个环的几何表示；依据调用方要求的格式只填充其中一种表示。
// AsPairs 为 true 时 Pairs 有效；否则 Lng/Lat 平行数组有效。
type Ring struct {
	AsPairs bool
	Lng     []float64
	Lat     []float64
	Pairs   []Point
}

func newRing(x, y []int32, asPairs bool) Ring {
	n := len(x)
	if asPairs {
		pairs := make([]Point, n)
		for i := 0; i < n; i++ {
			pairs[i] = Point{Lng: fixedpoint.ToDegrees(x[i]), Lat: fixedpoint.ToDegrees(y[i])}
		}
		return Ring{AsPairs: true, Pairs: pairs}
	}
	lng := make([]float64, n)
	lat := make([]float64, n)
	for i := 0; i < n; i++ {
		lng[i] = fixedpoint.ToDegrees(x[i])
		lat[i] = fixedpoint.ToDegrees(y[i])
	}
	return Ring{Lng: lng, Lat: lat}
}

// Polygon：一个外环及其洞，均以浮点经纬度表示。
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// MultiPolygon：get_geometry 的返回类型，outer 环按存储顺序排列。
type MultiPolygon []Polygon
