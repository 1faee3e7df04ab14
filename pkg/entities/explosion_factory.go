package entities

import (
	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/config"
	"github.com/decker502/kokaton/pkg/ecs"
	"github.com/decker502/kokaton/pkg/types"
)

// NewExplosion 在被击破的炸弹中心生成爆炸效果
func NewExplosion(em *ecs.EntityManager, sprites *types.SpriteSet, cfg *config.GameConfig, bombRect types.Rect) ecs.EntityID {
	cx, cy := bombRect.Center()
	first := sprites.Explosion[0]

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		Rect: types.NewRectCentered(cx, cy, first.W, first.H),
	})
	em.AddComponent(id, &components.LifetimeComponent{
		Remaining:     cfg.Explosion.Life,
		FrameInterval: cfg.Explosion.FrameInterval,
		Frames:        sprites.Explosion,
	})
	return id
}
