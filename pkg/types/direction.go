package types

import "math"

// StepSize 每帧移动的像素步长
const StepSize = 5

// Direction 8 方向离散向量（也用作速度）
type Direction struct {
	DX, DY int
}

// 8 个罗盘方向，按逆时针从右开始定义
var (
	DirRight     = Direction{+StepSize, 0}
	DirUpRight   = Direction{+StepSize, -StepSize}
	DirUp        = Direction{0, -StepSize}
	DirUpLeft    = Direction{-StepSize, -StepSize}
	DirLeft      = Direction{-StepSize, 0}
	DirDownLeft  = Direction{-StepSize, +StepSize}
	DirDown      = Direction{0, +StepSize}
	DirDownRight = Direction{+StepSize, +StepSize}
)

// Directions 返回全部已注册方向（逆时针顺序）
func Directions() []Direction {
	return []Direction{
		DirRight, DirUpRight, DirUp, DirUpLeft,
		DirLeft, DirDownLeft, DirDown, DirDownRight,
	}
}

// IsZero 是否为零向量
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Registered 是否为 8 个已注册方向之一
func (d Direction) Registered() bool {
	for _, r := range Directions() {
		if r == d {
			return true
		}
	}
	return false
}

// Add 向量相加
func (d Direction) Add(o Direction) Direction {
	return Direction{d.DX + o.DX, d.DY + o.DY}
}

// Angle 返回方向角（度，屏幕坐标系下逆时针为正，右 = 0）
func (d Direction) Angle() float64 {
	return math.Atan2(float64(-d.DY), float64(d.DX)) * 180 / math.Pi
}
