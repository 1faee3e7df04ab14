package entities

import (
	"fmt"

	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/ecs"
	"github.com/decker502/kokaton/pkg/types"
)

// NewBeam 从玩家当前朝向发射一道光束
//
// 速度 = 玩家朝向（此后与玩家无关）；
// 中心 = 玩家中心 + (宽*vx/10, 高*vy/10)，即沿朝向偏移半个身位。
func NewBeam(em *ecs.EntityManager, sprites *types.SpriteSet, playerID ecs.EntityID) (ecs.EntityID, error) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if !ok {
		return 0, fmt.Errorf("entity %d is not a player", playerID)
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, playerID)
	if !ok {
		return 0, fmt.Errorf("player %d has no position", playerID)
	}

	facing := player.Facing
	img, ok := sprites.Beam[facing]
	if !ok {
		return 0, fmt.Errorf("beam sprite for facing %+v not found", facing)
	}

	pcx, pcy := pos.Rect.Center()
	cx := pcx + pos.Rect.W*facing.DX/10
	cy := pcy + pos.Rect.H*facing.DY/10

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		Rect: types.NewRectCentered(cx, cy, img.W, img.H),
	})
	em.AddComponent(id, &components.VelocityComponent{VX: facing.DX, VY: facing.DY})
	em.AddComponent(id, &components.SpriteComponent{Sprite: img})
	em.AddComponent(id, &components.BeamComponent{})
	return id, nil
}
