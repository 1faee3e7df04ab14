package systems

import (
	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/ecs"
	"github.com/decker502/kokaton/pkg/types"
)

// keyDeltas 方向键 -> 位移，按固定顺序累加
var keyDeltas = []struct {
	key   types.Key
	delta types.Direction
}{
	{types.KeyUp, types.DirUp},
	{types.KeyDown, types.DirDown},
	{types.KeyLeft, types.DirLeft},
	{types.KeyRight, types.DirRight},
}

// PlayerSystem 处理玩家的移动、朝向和绘制
type PlayerSystem struct {
	em        *ecs.EntityManager
	drawer    SpriteDrawer
	playfield Playfield
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, drawer SpriteDrawer, playfield Playfield) *PlayerSystem {
	return &PlayerSystem{
		em:        em,
		drawer:    drawer,
		playfield: playfield,
	}
}

// HandleInput 将按下的方向键合成为本帧位移
//
// 相反方向会互相抵消；结果可能是未注册的方向（如零向量）。
func HandleInput(pressed types.KeySet) types.Direction {
	var sum types.Direction
	for _, kd := range keyDeltas {
		if pressed[kd.key] {
			sum = sum.Add(kd.delta)
		}
	}
	return sum
}

// Move 尝试按 delta 移动玩家
//
// 移动后任一方向越界则整体撤销（不按轴裁剪），
// 因此斜向贴墙移动时另一轴也不会滑动。
// 返回是否实际发生了移动。
func (s *PlayerSystem) Move(id ecs.EntityID, delta types.Direction) bool {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return false
	}

	moved := pos.Rect.Move(delta.DX, delta.DY)
	if !s.playfield.Contains(moved) {
		return false
	}
	pos.Rect = moved
	return !delta.IsZero()
}

// Update 处理一帧输入：移动、更新朝向与图像、绘制
//
// 朝向只在位移非零且为已注册方向时更新，即使这次移动因越界被撤销。
// 未注册的位移仍会移动玩家，但保持原朝向与图像。
func (s *PlayerSystem) Update(id ecs.EntityID, pressed types.KeySet) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id)
	if !ok {
		return
	}

	delta := HandleInput(pressed)
	s.Move(id, delta)

	if !delta.IsZero() {
		if img, registered := player.Images[delta]; registered {
			player.Facing = delta
			sprite.Sprite = img
		}
	}

	s.Draw(id)
}

// SetImage 替换玩家当前图像（如击中/被击中时的表情），直到下次有效移动
func (s *PlayerSystem) SetImage(id ecs.EntityID, img types.Sprite) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
		sprite.Sprite = img
	}
}

// Draw 在玩家当前位置绘制当前图像
func (s *PlayerSystem) Draw(id ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id)
	if !ok {
		return
	}
	s.drawer.DrawSprite(sprite.Sprite, pos.Rect)
}
