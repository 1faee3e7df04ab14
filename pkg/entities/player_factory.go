// Package entities 提供实体工厂函数
//
// 每个工厂函数创建实体并挂载该类实体所需的全部组件。
package entities

import (
	"fmt"

	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/ecs"
	"github.com/decker502/kokaton/pkg/types"
)

// NewPlayer 创建玩家实体
//
// 玩家初始朝右，包围盒取朝右图像的尺寸并以 (cx, cy) 为中心。
// 之后切换图像不会改变包围盒。
func NewPlayer(em *ecs.EntityManager, sprites *types.SpriteSet, cx, cy int) (ecs.EntityID, error) {
	img, ok := sprites.Player[types.DirRight]
	if !ok {
		return 0, fmt.Errorf("player sprite for facing %+v not found", types.DirRight)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		Rect: types.NewRectCentered(cx, cy, img.W, img.H),
	})
	em.AddComponent(id, &components.SpriteComponent{Sprite: img})
	em.AddComponent(id, &components.PlayerComponent{
		Facing: types.DirRight,
		Images: sprites.Player,
	})
	return id, nil
}
