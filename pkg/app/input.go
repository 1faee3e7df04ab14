package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/kokaton/pkg/types"
	"github.com/decker502/kokaton/pkg/utils"
)

// pointerDeadZone 触摸移动的死区（像素）
const pointerDeadZone = 20

// arrowKeys 方向键映射
var arrowKeys = map[ebiten.Key]types.Key{
	ebiten.KeyArrowUp:    types.KeyUp,
	ebiten.KeyArrowDown:  types.KeyDown,
	ebiten.KeyArrowLeft:  types.KeyLeft,
	ebiten.KeyArrowRight: types.KeyRight,
}

// KeyboardInput 基于 ebiten 键盘状态的输入源
//
// 方向键按住即生效；空格在按下的那一帧产生一次发射事件；
// 关闭窗口或按下 Esc 产生退出事件。
//
// 移动端没有键盘：按住屏幕时玩家朝触点方向移动，点击屏幕发射光束。
type KeyboardInput struct {
	isPressed     func(ebiten.Key) bool
	isJustPressed func(ebiten.Key) bool
	isClosing     func() bool

	// pointer 为 nil 时不处理触摸
	pointer func() PointerState
	// anchor 触摸移动的参照点（玩家中心）
	anchor func() (int, int)
}

// NewKeyboardInput 创建键盘输入源，移动端同时启用触摸
func NewKeyboardInput() *KeyboardInput {
	in := &KeyboardInput{
		isPressed:     ebiten.IsKeyPressed,
		isJustPressed: inpututil.IsKeyJustPressed,
		isClosing:     ebiten.IsWindowBeingClosed,
	}
	if utils.IsMobile() {
		in.pointer = GetPointerState
	}
	return in
}

// SetAnchor 设置触摸移动的参照点
func (in *KeyboardInput) SetAnchor(anchor func() (int, int)) {
	in.anchor = anchor
}

// Pressed 当前按住的方向键
func (in *KeyboardInput) Pressed() types.KeySet {
	pressed := types.NewKeySet()
	for ek, k := range arrowKeys {
		if in.isPressed(ek) {
			pressed[k] = true
		}
	}

	if in.pointer != nil && in.anchor != nil {
		if p := in.pointer(); p.Pressed {
			ax, ay := in.anchor()
			dx, dy := PointerDirection(p.X, p.Y, ax, ay, pointerDeadZone)
			switch dx {
			case 1:
				pressed[types.KeyRight] = true
			case -1:
				pressed[types.KeyLeft] = true
			}
			switch dy {
			case 1:
				pressed[types.KeyDown] = true
			case -1:
				pressed[types.KeyUp] = true
			}
		}
	}
	return pressed
}

// Events 本帧的离散事件，退出事件排在最前
func (in *KeyboardInput) Events() []types.Event {
	var events []types.Event
	if in.isClosing() || in.isJustPressed(ebiten.KeyEscape) {
		events = append(events, types.Event{Type: types.EventQuit})
	}
	if in.isJustPressed(ebiten.KeySpace) {
		events = append(events, types.Event{Type: types.EventFire})
	}
	if in.pointer != nil && in.pointer().JustPressed {
		events = append(events, types.Event{Type: types.EventFire})
	}
	return events
}
