package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针（触摸或鼠标左键）状态
type PointerState struct {
	// JustPressed 本帧刚按下
	JustPressed bool
	// Pressed 正在按住
	Pressed bool
	// X, Y 指针位置（逻辑坐标）
	X, Y int
}

// GetPointerState 获取当前帧的指针状态
// 同时支持触摸和鼠标，优先检测触摸
func GetPointerState() PointerState {
	state := PointerState{}

	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		state.Pressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		return state
	}

	state.X, state.Y = ebiten.CursorPosition()
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return state
}

// PointerDirection 将指针相对锚点的偏移量化为 -1/0/+1
//
// 每个轴上偏移超过 deadZone 才计入，避免手指抖动导致来回转向。
func PointerDirection(px, py, ax, ay, deadZone int) (dx, dy int) {
	return sign(px-ax, deadZone), sign(py-ay, deadZone)
}

func sign(v, deadZone int) int {
	switch {
	case v > deadZone:
		return 1
	case v < -deadZone:
		return -1
	default:
		return 0
	}
}
