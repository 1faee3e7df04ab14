package game

import (
	"time"

	"github.com/decker502/kokaton/pkg/types"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Renderer,Input,Clock

// Renderer 游戏循环的绘制目标
//
// 一帧内的绘制按调用顺序叠加，Present 提交整帧。
type Renderer interface {
	// DrawSprite 将图像绘制到 dst 矩形（左上角对齐，尺寸取图像本身）
	DrawSprite(sprite types.Sprite, dst types.Rect)
	// DrawText 按样式在 (x, y) 绘制文本
	DrawText(text string, style types.TextStyle, x, y int)
	// Present 提交当前帧
	Present()
}

// Input 键盘输入源
type Input interface {
	// Pressed 返回当前按住的方向键
	Pressed() types.KeySet
	// Events 返回自上次调用以来的离散事件（发射、退出），调用后清空
	Events() []types.Event
}

// Clock 帧节奏控制
type Clock interface {
	// Tick 等待到下一帧（按 fps 计算帧间隔）
	Tick(fps int)
	// Hold 停留 d 时长（游戏结束画面）
	Hold(d time.Duration)
}
