package game_test

import (
	"slices"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/decker502/kokaton/pkg/components"
	"github.com/decker502/kokaton/pkg/config"
	"github.com/decker502/kokaton/pkg/ecs"
	"github.com/decker502/kokaton/pkg/game"
	"github.com/decker502/kokaton/pkg/game/mocks"
	"github.com/decker502/kokaton/pkg/types"
)

// seqRandom 依次返回预设坐标的随机源
type seqRandom struct {
	values []int
	next   int
}

func (r *seqRandom) IntRange(lo, hi int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

type loopFixture struct {
	cfg      *config.GameConfig
	sprites  *types.SpriteSet
	renderer *mocks.MockRenderer
	input    *mocks.MockInput
	clock    *mocks.MockClock
}

func newFixture(t *testing.T) *loopFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := config.DefaultGameConfig()
	return &loopFixture{
		cfg:      cfg,
		sprites:  types.PlaceholderSpriteSet(cfg.Width, cfg.Height, cfg.Hazard.Radius),
		renderer: mocks.NewMockRenderer(ctrl),
		input:    mocks.NewMockInput(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}
}

// newLoop 按给定炸弹中心坐标创建循环
func (f *loopFixture) newLoop(t *testing.T, bombs ...[2]int) *game.Loop {
	t.Helper()
	f.cfg.HazardCount = len(bombs)
	rng := &seqRandom{values: []int{0}}
	if len(bombs) > 0 {
		rng.values = nil
		for _, b := range bombs {
			rng.values = append(rng.values, b[0], b[1])
		}
	}

	loop, err := game.NewLoop(f.cfg, f.sprites, f.renderer, f.input, f.clock, rng)
	if err != nil {
		t.Fatalf("NewLoop failed: %v", err)
	}
	return loop
}

// allowFrames 放行普通帧中的绘制、按键与计时调用
func (f *loopFixture) allowFrames() {
	f.renderer.EXPECT().DrawSprite(gomock.Any(), gomock.Any()).AnyTimes()
	f.renderer.EXPECT().DrawText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.renderer.EXPECT().Present().AnyTimes()
	f.input.EXPECT().Pressed().Return(types.NewKeySet()).AnyTimes()
	f.clock.EXPECT().Tick(f.cfg.FrameRate).AnyTimes()
}

func fire() []types.Event {
	return []types.Event{{Type: types.EventFire}}
}

func quit() []types.Event {
	return []types.Event{{Type: types.EventQuit}}
}

func TestNewLoopInitialState(t *testing.T) {
	f := newFixture(t)
	loop := f.newLoop(t, [2]int{800, 500}, [2]int{900, 100}, [2]int{100, 600})

	if loop.State() != game.StateRunning {
		t.Errorf("expected Running, got %s", loop.State())
	}
	if loop.Score() != 0 || loop.Frame() != 0 {
		t.Errorf("expected score 0 and frame 0, got %d/%d", loop.Score(), loop.Frame())
	}

	em := loop.Entities()
	bombs := ecs.GetEntitiesWith1[*components.BombComponent](em)
	if len(bombs) != 3 {
		t.Errorf("expected 3 bombs, got %d", len(bombs))
	}

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, loop.PlayerID())
	if player.Facing != types.DirRight {
		t.Errorf("expected player facing right, got %+v", player.Facing)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, loop.PlayerID())
	if cx, cy := pos.Rect.Center(); cx != 300 || cy != 200 {
		t.Errorf("expected player centered at (300,200), got (%d,%d)", cx, cy)
	}
}

func TestNewLoopMissingPlayerSprite(t *testing.T) {
	f := newFixture(t)
	delete(f.sprites.Player, types.DirRight)

	if _, err := game.NewLoop(f.cfg, f.sprites, f.renderer, f.input, f.clock, &seqRandom{values: []int{0}}); err == nil {
		t.Error("expected error when the player sprite is missing")
	}
}

func TestStepQuitReturnsImmediately(t *testing.T) {
	f := newFixture(t)
	loop := f.newLoop(t, [2]int{800, 500})

	// 没有声明任何绘制或计时调用：退出帧不应产生输出
	f.input.EXPECT().Events().Return(quit())

	loop.Step()

	if loop.State() != game.StateQuit {
		t.Errorf("expected Quit, got %s", loop.State())
	}
	if loop.Frame() != 0 {
		t.Errorf("quit frame should not be counted, got %d", loop.Frame())
	}
}

func TestStepGameOverSameFrame(t *testing.T) {
	f := newFixture(t)
	// 第一颗炸弹压在玩家身上，第二颗正好在光束出生点
	loop := f.newLoop(t, [2]int{300, 200}, [2]int{345, 200})
	playerRect := types.NewRectCentered(300, 200, 90, 80)

	bannerStyle := types.TextStyle{
		Size:   f.cfg.GameOver.FontSize,
		Color:  config.GameOverColor,
		Anchor: types.AnchorTopLeft,
	}

	gomock.InOrder(
		f.input.EXPECT().Events().Return(fire()),
		f.renderer.EXPECT().DrawSprite(f.sprites.Background, types.Rect{W: 1100, H: 650}),
		f.renderer.EXPECT().DrawSprite(f.sprites.PlayerHit, playerRect),
		f.renderer.EXPECT().DrawText("GAME OVER", bannerStyle, 400, 325),
		f.renderer.EXPECT().Present(),
		f.clock.EXPECT().Hold(time.Second),
	)

	loop.Step()

	if loop.State() != game.StateGameOver {
		t.Fatalf("expected GameOver, got %s", loop.State())
	}
	if loop.Score() != 0 {
		t.Errorf("score should stay 0 when the player is hit, got %d", loop.Score())
	}

	// 终止状态下 Step 不再有任何效果
	loop.Step()
	if loop.State() != game.StateGameOver || loop.Frame() != 0 {
		t.Errorf("Step after game over should be a no-op")
	}
}

func TestStepFireSpawnsBeam(t *testing.T) {
	f := newFixture(t)
	loop := f.newLoop(t)
	f.allowFrames()

	f.input.EXPECT().Events().Return(fire()).Times(1)
	f.input.EXPECT().Events().Return(nil).AnyTimes()

	loop.Step()

	em := loop.Entities()
	beams := ecs.GetEntitiesWith1[*components.BeamComponent](em)
	if len(beams) != 1 {
		t.Fatalf("expected 1 beam, got %d", len(beams))
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, beams[0])
	if vel.VX != 5 || vel.VY != 0 {
		t.Errorf("beam velocity = (%d,%d), want (5,0)", vel.VX, vel.VY)
	}
	// 出生于 (345,200)，同一帧已移动一步
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, beams[0])
	if cx, cy := pos.Rect.Center(); cx != 350 || cy != 200 {
		t.Errorf("beam center = (%d,%d), want (350,200)", cx, cy)
	}

	// 飞出右边界后的下一帧被清理
	for i := 0; i < 200 && len(ecs.GetEntitiesWith1[*components.BeamComponent](em)) > 0; i++ {
		loop.Step()
	}
	if n := len(ecs.GetEntitiesWith1[*components.BeamComponent](em)); n != 0 {
		t.Errorf("expected beam to be pruned, %d left", n)
	}
}

func TestStepBeamScores(t *testing.T) {
	f := newFixture(t)
	f.cfg.Hazard.VX, f.cfg.Hazard.VY = -5, 0
	loop := f.newLoop(t, [2]int{700, 200})
	f.allowFrames()

	f.input.EXPECT().Events().Return(fire()).Times(1)
	f.input.EXPECT().Events().Return(nil).AnyTimes()

	em := loop.Entities()
	for i := 0; i < 60 && loop.Score() == 0; i++ {
		loop.Step()
	}

	if loop.State() != game.StateRunning {
		t.Fatalf("expected Running, got %s", loop.State())
	}
	if loop.Score() != 1 {
		t.Fatalf("expected score 1, got %d", loop.Score())
	}

	// 命中当帧已删除炸弹和光束，并生成爆炸
	if n := len(ecs.GetEntitiesWith1[*components.BombComponent](em)); n != 0 {
		t.Errorf("expected no bombs, got %d", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.BeamComponent](em)); n != 0 {
		t.Errorf("expected no beams, got %d", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.LifetimeComponent](em)); n != 1 {
		t.Errorf("expected 1 explosion, got %d", n)
	}

	// 站着不动时保持得分表情
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, loop.PlayerID())
	if sprite.Sprite != f.sprites.PlayerScored {
		t.Errorf("expected scored image, got %s", sprite.Sprite.ID)
	}

	// 爆炸在生命耗尽后被清理
	for i := 0; i < f.cfg.Explosion.Life+1; i++ {
		loop.Step()
	}
	if n := len(ecs.GetEntitiesWith1[*components.LifetimeComponent](em)); n != 0 {
		t.Errorf("expected explosion to be pruned, %d left", n)
	}
}

func TestRunUntilQuit(t *testing.T) {
	f := newFixture(t)
	loop := f.newLoop(t, [2]int{800, 500})

	f.renderer.EXPECT().DrawSprite(gomock.Any(), gomock.Any()).AnyTimes()
	f.renderer.EXPECT().DrawText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.renderer.EXPECT().Present().Times(3)
	f.input.EXPECT().Pressed().Return(types.NewKeySet()).Times(3)
	f.clock.EXPECT().Tick(f.cfg.FrameRate).Times(3)

	f.input.EXPECT().Events().Return(nil).Times(3)
	f.input.EXPECT().Events().Return(quit())

	if state := loop.Run(); state != game.StateQuit {
		t.Errorf("Run returned %s, want Quit", state)
	}
	if loop.Frame() != 3 {
		t.Errorf("expected 3 frames, got %d", loop.Frame())
	}
}

func TestStepRendersScore(t *testing.T) {
	f := newFixture(t)
	loop := f.newLoop(t)

	f.input.EXPECT().Events().Return(nil)
	f.input.EXPECT().Pressed().Return(types.NewKeySet(types.KeyDown))
	f.renderer.EXPECT().DrawSprite(gomock.Any(), gomock.Any()).AnyTimes()
	f.renderer.EXPECT().DrawText("Score: 0", gomock.Any(), 100, 600)
	f.renderer.EXPECT().Present()
	f.clock.EXPECT().Tick(50)

	loop.Step()

	pos, _ := ecs.GetComponent[*components.PositionComponent](loop.Entities(), loop.PlayerID())
	if _, cy := pos.Rect.Center(); cy != 205 {
		t.Errorf("expected player to move down to y=205, got %d", cy)
	}
}

// frameRecorder 按调用顺序记录绘制、提交与计时，同时充当 Renderer 和 Clock
type frameRecorder struct {
	calls []string
}

func (r *frameRecorder) DrawSprite(sprite types.Sprite, _ types.Rect) {
	// "placeholder/player-scored" -> "player", "placeholder/beam/5,0" -> "beam"
	kind := strings.TrimPrefix(string(sprite.ID), "placeholder/")
	if i := strings.IndexAny(kind, "/-"); i >= 0 {
		kind = kind[:i]
	}
	r.calls = append(r.calls, kind)
}

func (r *frameRecorder) DrawText(text string, _ types.TextStyle, _, _ int) {
	r.calls = append(r.calls, "text:"+text)
}

func (r *frameRecorder) Present()           { r.calls = append(r.calls, "present") }
func (r *frameRecorder) Tick(int)           { r.calls = append(r.calls, "tick") }
func (r *frameRecorder) Hold(time.Duration) { r.calls = append(r.calls, "hold") }

// firingInput 仅在 fire 为 true 的帧发射
type firingInput struct {
	fire bool
}

func (in *firingInput) Pressed() types.KeySet { return types.NewKeySet() }

func (in *firingInput) Events() []types.Event {
	if !in.fire {
		return nil
	}
	in.fire = false
	return fire()
}

func TestStepRenderOrder(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Hazard.VX, cfg.Hazard.VY = -5, 0
	cfg.HazardCount = 2
	sprites := types.PlaceholderSpriteSet(cfg.Width, cfg.Height, cfg.Hazard.Radius)
	rec := &frameRecorder{}
	input := &firingInput{fire: true}
	// 第一颗迎着光束飞来，第二颗在下方远离玩家
	rng := &seqRandom{values: []int{700, 200, 900, 500}}

	loop, err := game.NewLoop(cfg, sprites, rec, input, rec, rng)
	if err != nil {
		t.Fatalf("NewLoop failed: %v", err)
	}

	for i := 0; i < 60 && loop.Score() == 0; i++ {
		loop.Step()
	}
	if loop.Score() != 1 {
		t.Fatalf("expected score 1, got %d", loop.Score())
	}

	// 下一帧同时存在玩家、新光束、剩余炸弹和爆炸
	rec.calls = nil
	input.fire = true
	loop.Step()

	want := []string{"background", "player", "beam", "bomb", "explosion", "text:Score: 1", "present", "tick"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("frame calls = %v, want %v", rec.calls, want)
	}
}
