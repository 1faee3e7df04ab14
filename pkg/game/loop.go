package game

import (
	"fmt"
	"log"

	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/config"
	"github.com/decker502/kokaton/pkg/ecs"
	"github.com/decker502/kokaton/pkg/entities"
	"github.com/decker502/kokaton/pkg/systems"
	"github.com/decker502/kokaton/pkg/types"
)

// Loop 游戏主循环（状态机）
//
// 持有全部实体与系统，每次 Step 推进一帧。
// 只在单个 goroutine 中运行，不需要加锁。
type Loop struct {
	cfg      *config.GameConfig
	sprites  *types.SpriteSet
	renderer Renderer
	input    Input
	clock    Clock

	em       *ecs.EntityManager
	playerID ecs.EntityID

	playerSystem    *systems.PlayerSystem
	beamSystem      *systems.BeamSystem
	bombSystem      *systems.BombSystem
	lifetimeSystem  *systems.LifetimeSystem
	collisionSystem *systems.CollisionSystem

	score *Score
	state State
	frame int
}

// NewLoop 创建游戏循环并生成初始实体
//
// 初始状态：玩家位于配置的起点朝右，HazardCount 颗随机炸弹，分数 0。
func NewLoop(cfg *config.GameConfig, sprites *types.SpriteSet, renderer Renderer, input Input, clock Clock, rng entities.RandomSource) (*Loop, error) {
	em := ecs.NewEntityManager()
	playfield := systems.Playfield{Width: cfg.Width, Height: cfg.Height}

	playerID, err := entities.NewPlayer(em, sprites, cfg.Player.Start.X, cfg.Player.Start.Y)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	for i := 0; i < cfg.HazardCount; i++ {
		entities.NewBomb(em, sprites, cfg, rng)
	}

	l := &Loop{
		cfg:             cfg,
		sprites:         sprites,
		renderer:        renderer,
		input:           input,
		clock:           clock,
		em:              em,
		playerID:        playerID,
		playerSystem:    systems.NewPlayerSystem(em, renderer, playfield),
		beamSystem:      systems.NewBeamSystem(em, renderer, playfield),
		bombSystem:      systems.NewBombSystem(em, renderer, playfield),
		lifetimeSystem:  systems.NewLifetimeSystem(em, renderer),
		collisionSystem: systems.NewCollisionSystem(em),
		score:           NewScore(cfg),
		state:           StateRunning,
	}

	log.Printf("[Game] 游戏开始: %dx%d, 炸弹 %d 颗, %d FPS", cfg.Width, cfg.Height, cfg.HazardCount, cfg.FrameRate)
	return l, nil
}

// Step 推进一帧，只在 Running 状态下生效
func (l *Loop) Step() {
	if l.state != StateRunning {
		return
	}

	// 1. 离散事件：退出立即返回，发射则追加光束
	for _, ev := range l.input.Events() {
		switch ev.Type {
		case types.EventQuit:
			log.Printf("[Game] 收到退出请求 (frame=%d, score=%d)", l.frame, l.score.Count())
			l.state = StateQuit
			return
		case types.EventFire:
			if _, err := entities.NewBeam(l.em, l.sprites, l.playerID); err != nil {
				log.Printf("[Game] 无法发射光束: %v", err)
			}
		}
	}

	// 2. 背景
	l.renderer.DrawSprite(l.sprites.Background, types.Rect{W: l.cfg.Width, H: l.cfg.Height})

	// 3. 玩家与炸弹相撞：本帧结束游戏，不再结算光束
	if bombID, hit := l.collisionSystem.PlayerHit(l.playerID); hit {
		l.gameOver(bombID)
		return
	}

	// 4. 光束击破炸弹
	for _, pair := range l.collisionSystem.ResolveBeamHits() {
		l.applyHit(pair)
	}

	// 5. 清理已销毁、越界、过期的实体
	l.beamSystem.MarkOutOfBounds()
	l.lifetimeSystem.MarkExpired()
	l.em.RemoveMarkedEntities()

	// 6. 玩家
	l.playerSystem.Update(l.playerID, l.input.Pressed())

	// 7. 光束 -> 炸弹 -> 爆炸
	l.beamSystem.Update()
	l.bombSystem.Update()
	l.lifetimeSystem.Update()

	// 8. 分数
	l.score.Render(l.renderer)

	// 9. 提交并等待下一帧
	l.renderer.Present()
	l.frame++
	l.clock.Tick(l.cfg.FrameRate)
}

// gameOver 绘制被击中的玩家与结束横幅，停留后进入 GameOver
func (l *Loop) gameOver(bombID ecs.EntityID) {
	l.playerSystem.SetImage(l.playerID, l.sprites.PlayerHit)
	l.playerSystem.Draw(l.playerID)

	style := types.TextStyle{
		Size:   l.cfg.GameOver.FontSize,
		Color:  config.GameOverColor,
		Anchor: types.AnchorTopLeft,
	}
	l.renderer.DrawText(l.cfg.GameOver.Text, style, l.cfg.Width/2-config.GameOverOffsetX, l.cfg.Height/2)
	l.renderer.Present()
	l.clock.Hold(l.cfg.GameOver.Hold)

	log.Printf("[Game] 游戏结束: 被炸弹 %d 击中 (frame=%d, score=%d)", bombID, l.frame, l.score.Count())
	l.state = StateGameOver
}

// applyHit 结算一次光束击破炸弹
//
// 玩家换成得分表情并立即绘制一次；该表情保持到下次有效移动。
func (l *Loop) applyHit(pair systems.HitPair) {
	bombPos, ok := ecs.GetComponent[*components.PositionComponent](l.em, pair.BombID)
	if !ok {
		return
	}

	l.playerSystem.SetImage(l.playerID, l.sprites.PlayerScored)
	l.playerSystem.Draw(l.playerID)

	entities.NewExplosion(l.em, l.sprites, l.cfg, bombPos.Rect)
	l.em.DestroyEntity(pair.BombID)
	l.em.DestroyEntity(pair.BeamID)
	l.score.Increment()
}

// Run 循环执行 Step 直到离开 Running 状态，返回最终状态
func (l *Loop) Run() State {
	for l.state == StateRunning {
		l.Step()
	}
	return l.state
}

// State 当前状态
func (l *Loop) State() State {
	return l.state
}

// Frame 已完成的帧数
func (l *Loop) Frame() int {
	return l.frame
}

// Score 当前分数
func (l *Loop) Score() int {
	return l.score.Count()
}

// Entities 实体管理器（供调试与测试读取）
func (l *Loop) Entities() *ecs.EntityManager {
	return l.em
}

// PlayerCenter 玩家当前中心坐标
func (l *Loop) PlayerCenter() (int, int) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](l.em, l.playerID)
	if !ok {
		return 0, 0
	}
	return pos.Rect.Center()
}

// PlayerID 玩家实体
func (l *Loop) PlayerID() ecs.EntityID {
	return l.playerID
}
