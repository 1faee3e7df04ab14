package config

import "image/color"

// 布局配置常量
// 本文件定义游戏画面的默认尺寸、颜色和文本位置

// 默认核心选项
const (
	DefaultScreenWidth  = 1100
	DefaultScreenHeight = 650
	DefaultHazardCount  = 5
	DefaultFrameRate    = 50

	// WindowTitle 窗口标题
	WindowTitle = "たたかえ！こうかとん"
)

// 游戏结束横幅位置：左上角位于 (Width/2 - GameOverOffsetX, Height/2)
const GameOverOffsetX = 150

var (
	// BombColor 默认炸弹颜色
	BombColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	// ScoreColor 分数文字颜色（蓝）
	ScoreColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

	// GameOverColor 游戏结束文字颜色（红）
	GameOverColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	// LetterboxColor 全屏时两侧填充色
	LetterboxColor = color.RGBA{A: 255}
)
