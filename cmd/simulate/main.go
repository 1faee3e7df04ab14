// simulate 无窗口运行游戏循环
//
// 使用占位精灵表和空渲染器驱动与桌面版完全相同的 game.Loop，
// 玩家随机移动并定期发射光束，用于长时间压测循环逻辑。
//
// 用法:
//
//	go run ./cmd/simulate -frames 10000 -seed 42 -fire-every 7 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/kokaton/pkg/config"
	"github.com/decker502/kokaton/pkg/game"
	"github.com/decker502/kokaton/pkg/types"
	"github.com/decker502/kokaton/pkg/utils"
)

var (
	frames    = flag.Int("frames", 3000, "最多运行的帧数")
	seed      = flag.Int64("seed", 1, "随机种子（0 表示使用当前时间）")
	fireEvery = flag.Int("fire-every", 10, "每隔多少帧发射一次光束（0 表示不发射）")
	realtime  = flag.Bool("realtime", false, "按配置帧率真实等待（默认不等待）")
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
)

// nullRenderer 丢弃所有绘制，只统计数量
type nullRenderer struct {
	sprites, texts, presents int
}

func (r *nullRenderer) DrawSprite(types.Sprite, types.Rect)        { r.sprites++ }
func (r *nullRenderer) DrawText(string, types.TextStyle, int, int) { r.texts++ }
func (r *nullRenderer) Present()                                   { r.presents++ }

// randomInput 随机方向键 + 定期发射，达到帧数上限后发出退出事件
type randomInput struct {
	rng       *utils.PRNGService
	frame     int
	maxFrames int
	fireEvery int
	held      types.KeySet
}

var allKeys = []types.Key{types.KeyUp, types.KeyDown, types.KeyLeft, types.KeyRight}

func (in *randomInput) Pressed() types.KeySet {
	// 每 25 帧换一次按键组合
	if in.held == nil || in.frame%25 == 0 {
		in.held = types.NewKeySet()
		for _, k := range allKeys {
			if in.rng.Intn(3) == 0 {
				in.held[k] = true
			}
		}
	}
	return in.held
}

func (in *randomInput) Events() []types.Event {
	in.frame++
	if in.frame > in.maxFrames {
		return []types.Event{{Type: types.EventQuit}}
	}
	if in.fireEvery > 0 && in.frame%in.fireEvery == 0 {
		return []types.Event{{Type: types.EventFire}}
	}
	return nil
}

// simClock 可选真实等待的时钟
type simClock struct {
	realtime bool
	held     time.Duration
}

func (c *simClock) Tick(fps int) {
	if c.realtime {
		time.Sleep(time.Second / time.Duration(fps))
	}
}

func (c *simClock) Hold(d time.Duration) {
	c.held += d
	if c.realtime {
		time.Sleep(d)
	}
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	sprites := types.PlaceholderSpriteSet(cfg.Width, cfg.Height, cfg.Hazard.Radius)
	rng := utils.NewPRNGService(*seed)

	renderer := &nullRenderer{}
	input := &randomInput{rng: rng, maxFrames: *frames, fireEvery: *fireEvery}
	clock := &simClock{realtime: *realtime}

	loop, err := game.NewLoop(cfg, sprites, renderer, input, clock, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	state := loop.Run()
	elapsed := time.Since(start)

	fmt.Printf("state=%s frames=%d score=%d\n", state, loop.Frame(), loop.Score())
	fmt.Printf("draws: sprites=%d texts=%d presents=%d hold=%s\n",
		renderer.sprites, renderer.texts, renderer.presents, clock.held)
	fmt.Printf("elapsed=%s\n", elapsed)
}
