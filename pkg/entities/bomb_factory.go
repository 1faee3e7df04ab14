package entities

import (
	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/config"
	"github.com/decker502/kokaton/pkg/ecs"
	"github.com/decker502/kokaton/pkg/types"
)

// RandomSource 炸弹位置随机源
type RandomSource interface {
	// IntRange 返回 [lo, hi] 闭区间内的随机整数
	IntRange(lo, hi int) int
}

// NewBomb 在游戏区域内随机位置生成一颗炸弹
//
// 中心取 [0,width]×[0,height] 内的随机点，包围盒为 2r×2r，
// 因此炸弹可能一开始就越界一部分，第一帧就会反弹。
func NewBomb(em *ecs.EntityManager, sprites *types.SpriteSet, cfg *config.GameConfig, rng RandomSource) ecs.EntityID {
	r := cfg.Hazard.Radius
	cx := rng.IntRange(0, cfg.Width)
	cy := rng.IntRange(0, cfg.Height)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		Rect: types.NewRectCentered(cx, cy, 2*r, 2*r),
	})
	em.AddComponent(id, &components.VelocityComponent{VX: cfg.Hazard.VX, VY: cfg.Hazard.VY})
	em.AddComponent(id, &components.SpriteComponent{Sprite: sprites.Bomb})
	em.AddComponent(id, &components.BombComponent{Radius: r, Color: cfg.Hazard.RGBA()})
	return id
}
