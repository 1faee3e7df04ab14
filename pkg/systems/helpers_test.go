package systems

import (
	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/ecs"
	"github.com/decker502/kokaton/pkg/types"
)

// drawCall 一次绘制请求
type drawCall struct {
	sprite types.Sprite
	dst    types.Rect
}

// recordingDrawer 记录所有绘制请求的测试渲染器
type recordingDrawer struct {
	calls []drawCall
}

func (d *recordingDrawer) DrawSprite(sprite types.Sprite, dst types.Rect) {
	d.calls = append(d.calls, drawCall{sprite: sprite, dst: dst})
}

func (d *recordingDrawer) reset() {
	d.calls = d.calls[:0]
}

var testPlayfield = Playfield{Width: 1100, Height: 650}

func testSprites() *types.SpriteSet {
	return types.PlaceholderSpriteSet(testPlayfield.Width, testPlayfield.Height, 10)
}

// addRectEntity 创建带位置与速度的实体，并挂上给定的标记组件
func addRectEntity(em *ecs.EntityManager, rect types.Rect, vx, vy int, tag any) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{Rect: rect})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.SpriteComponent{Sprite: types.Sprite{ID: "test", W: rect.W, H: rect.H}})
	em.AddComponent(id, tag)
	return id
}

func addBomb(em *ecs.EntityManager, rect types.Rect) ecs.EntityID {
	return addRectEntity(em, rect, 5, 5, &components.BombComponent{Radius: rect.W / 2})
}

func addBeam(em *ecs.EntityManager, rect types.Rect, vx, vy int) ecs.EntityID {
	return addRectEntity(em, rect, vx, vy, &components.BeamComponent{})
}

func rectOf(em *ecs.EntityManager, id ecs.EntityID) types.Rect {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return pos.Rect
}
