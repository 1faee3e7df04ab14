package systems

import (
	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/ecs"
)

// BombSystem 炸弹的匀速移动与墙壁反弹
type BombSystem struct {
	em        *ecs.EntityManager
	drawer    SpriteDrawer
	playfield Playfield
}

// NewBombSystem 创建炸弹系统
func NewBombSystem(em *ecs.EntityManager, drawer SpriteDrawer, playfield Playfield) *BombSystem {
	return &BombSystem{em: em, drawer: drawer, playfield: playfield}
}

// Bombs 返回所有炸弹（按生成顺序）
func (s *BombSystem) Bombs() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.BombComponent, *components.PositionComponent](s.em)
}

// Update 移动并绘制所有炸弹
//
// 反弹判定使用移动前的位置：某一轴已越界则该轴速度取反，然后再移动。
// 因此炸弹可能先略微越界，下一帧才反弹回来。
func (s *BombSystem) Update() {
	for _, id := range s.Bombs() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if !ok {
			continue
		}

		horizontal, vertical := InBounds(pos.Rect, s.playfield.Width, s.playfield.Height)
		if !horizontal {
			vel.VX = -vel.VX
		}
		if !vertical {
			vel.VY = -vel.VY
		}
		pos.Rect = pos.Rect.Move(vel.VX, vel.VY)

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
			s.drawer.DrawSprite(sprite.Sprite, pos.Rect)
		}
	}
}
