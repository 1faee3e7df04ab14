package components

import "image/color"

// BombComponent 炸弹（障碍物）
type BombComponent struct {
	Radius int
	Color  color.RGBA
}
