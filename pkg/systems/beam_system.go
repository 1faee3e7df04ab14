package systems

import (
	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/ecs"
)

// BeamSystem 光束的移动、绘制和越界清理
//
// 光束自身不做碰撞判定，碰撞由 CollisionSystem 统一仲裁。
type BeamSystem struct {
	em        *ecs.EntityManager
	drawer    SpriteDrawer
	playfield Playfield
}

// NewBeamSystem 创建光束系统
func NewBeamSystem(em *ecs.EntityManager, drawer SpriteDrawer, playfield Playfield) *BeamSystem {
	return &BeamSystem{em: em, drawer: drawer, playfield: playfield}
}

// Beams 返回所有光束（按发射顺序）
func (s *BeamSystem) Beams() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.BeamComponent, *components.PositionComponent](s.em)
}

// Update 界内的光束沿速度移动并绘制；越界的光束本帧既不移动也不绘制
func (s *BeamSystem) Update() {
	for _, id := range s.Beams() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok || !s.playfield.Contains(pos.Rect) {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if !ok {
			continue
		}
		pos.Rect = pos.Rect.Move(vel.VX, vel.VY)

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
			s.drawer.DrawSprite(sprite.Sprite, pos.Rect)
		}
	}
}

// MarkOutOfBounds 标记所有越界光束待删除，返回标记数量
func (s *BeamSystem) MarkOutOfBounds() int {
	marked := 0
	for _, id := range s.Beams() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !s.playfield.Contains(pos.Rect) {
			s.em.DestroyEntity(id)
			marked++
		}
	}
	return marked
}
