package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/kokaton/pkg/app"
	"github.com/decker502/kokaton/pkg/config"
	"github.com/decker502/kokaton/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置 data/game.yaml）")
	assetDir   = flag.String("assets", "", "图片资源目录（默认使用配置中的 assets.dir）")
	seed       = flag.Int64("seed", 0, "炸弹位置随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		AssetDir:   *assetDir,
		Seed:       *seed,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃，启动错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	cfg := gameApp.GameConfig()
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	// 关闭窗口由游戏循环作为退出事件处理
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}

	loop := gameApp.Loop()
	log.Printf("[App] 最终状态: %s, frame=%d, score=%d", loop.State(), loop.Frame(), loop.Score())
}
