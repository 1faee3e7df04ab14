package components

import "github.com/decker502/kokaton/pkg/types"

// PositionComponent 实体的位置与碰撞包围盒
// 所有实体都用同一个 Rect 同时表示绘制位置和碰撞范围
type PositionComponent struct {
	Rect types.Rect
}
