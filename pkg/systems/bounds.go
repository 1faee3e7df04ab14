package systems

import "github.com/decker502/kokaton/pkg/types"

// InBounds 判断矩形是否位于游戏区域内
//
// 返回值分别为水平方向、垂直方向是否在界内：
// 左边缘 < 0 或右边缘 > width 时水平越界，垂直方向同理。
func InBounds(r types.Rect, width, height int) (horizontal, vertical bool) {
	horizontal = r.Left() >= 0 && r.Right() <= width
	vertical = r.Top() >= 0 && r.Bottom() <= height
	return horizontal, vertical
}

// SpriteDrawer 系统绘制精灵所需的最小渲染接口
type SpriteDrawer interface {
	DrawSprite(sprite types.Sprite, dst types.Rect)
}

// Playfield 游戏区域尺寸
type Playfield struct {
	Width  int
	Height int
}

// Contains 矩形是否在两个方向上都位于界内
func (p Playfield) Contains(r types.Rect) bool {
	h, v := InBounds(r, p.Width, p.Height)
	return h && v
}
