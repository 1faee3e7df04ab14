package types

import (
	"fmt"
	"image/color"
	"math"
)

// ImageID 渲染器侧图像的不透明句柄
type ImageID string

// Sprite 图像句柄及其像素尺寸
//
// 核心逻辑只关心尺寸（用于构造 Rect），具体像素由渲染器按 ID 解析。
type Sprite struct {
	ID ImageID
	W  int
	H  int
}

// SpriteSet 启动时一次性构建、之后只读的精灵表
type SpriteSet struct {
	Background Sprite

	// Player 朝向 -> 图像
	Player       map[Direction]Sprite
	PlayerHit    Sprite // 被炸弹击中
	PlayerScored Sprite // 击破炸弹

	// Beam 朝向 -> 旋转后的光束图像
	Beam map[Direction]Sprite

	Bomb      Sprite
	Explosion [2]Sprite
}

// Anchor 文本定位方式
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
)

// TextStyle 文本绘制样式
type TextStyle struct {
	Size   float64
	Color  color.RGBA
	Anchor Anchor
}

// RotatedSize 返回 w×h 图像旋转 angle 度并缩放 scale 后的包围盒尺寸
func RotatedSize(w, h int, angle, scale float64) (int, int) {
	rad := angle * math.Pi / 180
	cos, sin := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	fw, fh := float64(w)*scale, float64(h)*scale
	return int(math.Ceil(fw*cos + fh*sin - 1e-9)), int(math.Ceil(fw*sin + fh*cos - 1e-9))
}

// PlaceholderSpriteSet 构建只有尺寸、没有像素的精灵表
//
// 用于无渲染器的模拟运行与测试；尺寸与默认美术资源相近。
func PlaceholderSpriteSet(width, height, bombRadius int) *SpriteSet {
	const (
		playerW, playerH = 90, 80
		beamW, beamH     = 80, 30
		explosionSize    = 100
	)

	set := &SpriteSet{
		Background:   Sprite{ID: "placeholder/background", W: width, H: height},
		Player:       make(map[Direction]Sprite, 8),
		PlayerHit:    Sprite{ID: "placeholder/player-hit", W: playerW, H: playerH},
		PlayerScored: Sprite{ID: "placeholder/player-scored", W: playerW, H: playerH},
		Beam:         make(map[Direction]Sprite, 8),
		Bomb:         Sprite{ID: "placeholder/bomb", W: 2 * bombRadius, H: 2 * bombRadius},
		Explosion: [2]Sprite{
			{ID: "placeholder/explosion-0", W: explosionSize, H: explosionSize},
			{ID: "placeholder/explosion-1", W: explosionSize, H: explosionSize},
		},
	}

	for _, d := range Directions() {
		// 玩家图像只在斜向时旋转
		angle := 0.0
		if d.DX != 0 && d.DY != 0 {
			angle = 45
		}
		w, h := RotatedSize(playerW, playerH, angle, 1)
		set.Player[d] = Sprite{ID: ImageID(fmt.Sprintf("placeholder/player/%d,%d", d.DX, d.DY)), W: w, H: h}

		bw, bh := RotatedSize(beamW, beamH, d.Angle(), 1)
		set.Beam[d] = Sprite{ID: ImageID(fmt.Sprintf("placeholder/beam/%d,%d", d.DX, d.DY)), W: bw, H: bh}
	}
	set.Player[DirRight] = Sprite{ID: "placeholder/player/5,0", W: playerW, H: playerH}

	return set
}
