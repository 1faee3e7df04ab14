// Package types 定义共享的基础类型
package types

// Rect 轴对齐包围盒（整数像素坐标）
//
// 所有实体的位置与碰撞都使用 Rect 表示：
// X/Y 为左上角，W/H 为宽高（不为负）。
type Rect struct {
	X, Y int
	W, H int
}

// NewRectCentered 创建以 (cx, cy) 为中心、宽高为 w×h 的矩形
func NewRectCentered(cx, cy, w, h int) Rect {
	r := Rect{W: w, H: h}
	r.SetCenter(cx, cy)
	return r
}

// Left 左边缘
func (r Rect) Left() int { return r.X }

// Right 右边缘（不包含）
func (r Rect) Right() int { return r.X + r.W }

// Top 上边缘
func (r Rect) Top() int { return r.Y }

// Bottom 下边缘（不包含）
func (r Rect) Bottom() int { return r.Y + r.H }

// Center 返回中心点坐标
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SetCenter 移动矩形，使中心落在 (cx, cy)
func (r *Rect) SetCenter(cx, cy int) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Move 返回平移 (dx, dy) 后的新矩形
func (r Rect) Move(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Empty 宽或高为 0 时返回 true
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects AABB 重叠检测
//
// 仅边缘相接不算碰撞；空矩形与任何矩形都不相交。
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}
