package systems

import (
	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/ecs"
)

// LifetimeSystem 管理爆炸效果的帧倒计时与动画
type LifetimeSystem struct {
	em     *ecs.EntityManager
	drawer SpriteDrawer
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager, drawer SpriteDrawer) *LifetimeSystem {
	return &LifetimeSystem{em: em, drawer: drawer}
}

// Effects 返回所有拥有生命周期的实体
func (s *LifetimeSystem) Effects() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.LifetimeComponent, *components.PositionComponent](s.em)
}

// Update 先递减生命；仍存活时按 (剩余/间隔)%2 选择帧并绘制
//
// 生命为 N 的效果恰好绘制 N-1 次后不再输出。
// 例如默认 30 帧：剩余 29..20 显示第 0 帧，19..10 显示第 1 帧……
func (s *LifetimeSystem) Update() {
	for _, id := range s.Effects() {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		lifetime.Remaining--
		if lifetime.Expired() {
			continue
		}

		interval := lifetime.FrameInterval
		if interval <= 0 {
			interval = 1
		}
		frame := lifetime.Remaining / interval % 2

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		s.drawer.DrawSprite(lifetime.Frames[frame], pos.Rect)
	}
}

// MarkExpired 标记所有生命耗尽的效果待删除，返回标记数量
func (s *LifetimeSystem) MarkExpired() int {
	marked := 0
	for _, id := range s.Effects() {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		if lifetime.Expired() {
			s.em.DestroyEntity(id)
			marked++
		}
	}
	return marked
}
