package components

import "github.com/decker502/kokaton/pkg/types"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
type SpriteComponent struct {
	Sprite types.Sprite
}
