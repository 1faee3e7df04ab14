package components

import "github.com/decker502/kokaton/pkg/types"

// LifetimeComponent 管理实体的生命周期（帧倒计时）
// 用于爆炸效果：每帧递减，归零后实体被清理
type LifetimeComponent struct {
	Remaining int // 剩余帧数

	// FrameInterval 两帧图像交替的间隔（帧）
	FrameInterval int

	// Frames 交替显示的两帧图像
	Frames [2]types.Sprite
}

// Expired 生命是否已耗尽
func (l *LifetimeComponent) Expired() bool {
	return l.Remaining <= 0
}
