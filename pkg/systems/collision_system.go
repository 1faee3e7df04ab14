package systems

import (
	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/ecs"
)

// HitPair 一次光束击破炸弹的配对
type HitPair struct {
	BombID ecs.EntityID
	BeamID ecs.EntityID
}

// CollisionSystem 处理游戏中的碰撞检测
//
// 只负责扫描并给出结果，销毁实体、加分等副作用由游戏循环统一执行。
type CollisionSystem struct {
	em *ecs.EntityManager
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{em: em}
}

// PlayerHit 查找第一个与玩家相交的炸弹
func (s *CollisionSystem) PlayerHit(playerID ecs.EntityID) (ecs.EntityID, bool) {
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.em, playerID)
	if !ok {
		return 0, false
	}

	for _, bombID := range ecs.GetEntitiesWith2[*components.BombComponent, *components.PositionComponent](s.em) {
		if s.em.IsMarkedForDestroy(bombID) {
			continue
		}
		bombPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, bombID)
		if playerPos.Rect.Intersects(bombPos.Rect) {
			return bombID, true
		}
	}
	return 0, false
}

// ResolveBeamHits 扫描炸弹与光束的碰撞，返回待销毁的配对
//
// 按炸弹为外层、光束为内层的顺序扫描：
//   - 每颗炸弹只取第一个命中的光束（命中后立即跳出内层循环）
//   - 已在本次扫描中被配对的光束不会再与后面的炸弹配对
//
// 因此一道光束每帧最多击破一颗炸弹。扫描不修改任何实体。
func (s *CollisionSystem) ResolveBeamHits() []HitPair {
	bombs := ecs.GetEntitiesWith2[*components.BombComponent, *components.PositionComponent](s.em)
	beams := ecs.GetEntitiesWith2[*components.BeamComponent, *components.PositionComponent](s.em)

	consumed := make(map[ecs.EntityID]bool)
	var pairs []HitPair

	for _, bombID := range bombs {
		if s.em.IsMarkedForDestroy(bombID) {
			continue
		}
		bombPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, bombID)

		for _, beamID := range beams {
			if consumed[beamID] || s.em.IsMarkedForDestroy(beamID) {
				continue
			}
			beamPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, beamID)

			// 一个光束只能击中一个炸弹，跳出内层循环
			if beamPos.Rect.Intersects(bombPos.Rect) {
				consumed[beamID] = true
				pairs = append(pairs, HitPair{BombID: bombID, BeamID: beamID})
				break
			}
		}
	}

	return pairs
}
