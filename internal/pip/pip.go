// 包 pip：定点整数域上的水平射线点入多边形判定
// 背景：对每条边做严格的纵坐标跨越测试再结合交点横坐标比较；两个判定都使用严格不等号，
// 因此共享顶点在相邻两条边上至多被计数一次，水平边与顶点命中按惯例得到明确（半开区间）语义。
// 约束：恰好落在边上的点结果未定义（§4.4），调用方不应依赖该情形的具体返回值。
package pip

// Ring：一个环的列式坐标（定点整数，首尾顶点不重复，隐式闭合边）。
type Ring struct {
	X []int32
	Y []int32
}

// Inside 判定点 (qx, qy) 是否落在环内，使用偶奇规则做水平射线投射。
//
// 边的跨越测试：对边 A=(ax,ay) -> B=(bx,by)
//  1. 恰好一个端点的纵坐标大于 qy（严格不等号）；
//  2. 且交点横坐标严格大于 qx，等价地比较
//     (bx-ax)*(qy-ay) 与 (qx-ax)*(by-ay) 的大小（方向取决于 by-ay 的符号）。
//     其中经度差最大约 3.6e9，纬度差最大约 1.8e9，每个乘积不超过约 6.5e18；
//     两个乘积直接比较而不相减，因此在有符号 64 位整数范围内不会溢出，无需 128 位运算。
func Inside(qx, qy int32, ring Ring) bool {
	n := len(ring.X)
	if n < 3 {
		return false
	}
	inside := false
	ay := int64(ring.Y[n-1])
	ax := int64(ring.X[n-1])
	qx64 := int64(qx)
	qy64 := int64(qy)
	for i := 0; i < n; i++ {
		bx := int64(ring.X[i])
		by := int64(ring.Y[i])
		if (ay > qy64) != (by > qy64) {
			lhs := (bx - ax) * (qy64 - ay)
			rhs := (qx64 - ax) * (by - ay)
			if by > ay {
				if lhs > rhs {
					inside = !inside
				}
			} else {
				if lhs < rhs {
					inside = !inside
				}
			}
		}
		ax, ay = bx, by
	}
	return inside
}
