// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/kokaton/pkg/assets"
	"github.com/decker502/kokaton/pkg/config"
	"github.com/decker502/kokaton/pkg/embedded"
	"github.com/decker502/kokaton/pkg/game"
	"github.com/decker502/kokaton/pkg/utils"
)

// DefaultConfigPath 内置默认配置在 embedded 中的路径
const DefaultConfigPath = "data/game.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空则使用内置 data/game.yaml
	ConfigPath string
	// AssetDir 图片资源目录，为空则使用配置中的 assets.dir
	AssetDir string
	// Seed 炸弹位置随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg      *config.GameConfig
	loop     *game.Loop
	renderer *DisplayListRenderer
	clock    *FrameClock

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	assetFS, err := openAssets(cfg.AssetDir, gameConfig.Assets.Dir)
	if err != nil {
		return nil, err
	}

	resourceManager := assets.NewResourceManager(assetFS)
	sprites, err := assets.LoadSpriteSet(resourceManager, gameConfig)
	if err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	// 预加载两种字号，字体问题在启动时暴露
	for _, size := range []float64{gameConfig.Score.FontSize, gameConfig.GameOver.FontSize} {
		if _, err := resourceManager.LoadFont(gameConfig.Assets.Font, size); err != nil {
			return nil, fmt.Errorf("字体加载失败: %w", err)
		}
	}

	renderer := NewDisplayListRenderer(resourceManager, resourceManager, gameConfig.Assets.Font)
	clock := NewFrameClock()
	input := NewKeyboardInput()
	loop, err := game.NewLoop(gameConfig, sprites, renderer, input, clock, utils.NewPRNGService(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("游戏初始化失败: %w", err)
	}
	input.SetAnchor(loop.PlayerCenter)

	ebiten.SetTPS(gameConfig.FrameRate)
	log.Printf("[App] 初始化完成: TPS=%d", gameConfig.FrameRate)

	return &App{
		cfg:      gameConfig,
		loop:     loop,
		renderer: renderer,
		clock:    clock,
	}, nil
}

// loadGameConfig 读取指定配置文件，未指定时读取内置配置
func loadGameConfig(configPath string) (*config.GameConfig, error) {
	if configPath != "" {
		gameConfig, err := config.LoadGameConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载配置: %s", configPath)
		return gameConfig, nil
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内置配置读取失败: %w", err)
	}
	gameConfig, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内置配置解析失败: %w", err)
	}
	log.Printf("[Config] 加载内置配置: %s", DefaultConfigPath)
	return gameConfig, nil
}

// openAssets 选择图片资源的文件系统
//
// 优先级：-assets 目录 > 嵌入的资源（移动端） > 配置中的 assets.dir。
func openAssets(override, configured string) (fs.FS, error) {
	if override != "" {
		log.Printf("[App] 使用资源目录: %s", override)
		return os.DirFS(override), nil
	}
	if embedded.HasAssets() {
		sub, err := embedded.Sub(path.Join("assets", configured))
		if err != nil {
			return nil, fmt.Errorf("嵌入资源打开失败: %w", err)
		}
		log.Printf("[App] 使用嵌入资源: assets/%s", configured)
		return sub, nil
	}
	log.Printf("[App] 使用资源目录: %s", configured)
	return os.DirFS(configured), nil
}

// Update 推进一帧游戏逻辑
// 每个 tick 调用一次（TPS = 配置的帧率）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Width, a.cfg.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	return a.advance(ebiten.IsWindowBeingClosed())
}

// advance 根据循环状态推进一帧，返回 ebiten.Termination 表示结束
func (a *App) advance(closing bool) error {
	switch a.loop.State() {
	case game.StateRunning:
		a.loop.Step()
		if a.loop.State() == game.StateQuit {
			log.Printf("[App] 退出: frame=%d, score=%d", a.loop.Frame(), a.loop.Score())
			return ebiten.Termination
		}
		return nil

	case game.StateGameOver:
		// 结束画面停留到期或窗口被关闭
		if a.clock.HoldExpired() || closing {
			log.Printf("[App] 游戏结束: frame=%d, score=%d", a.loop.Frame(), a.loop.Score())
			return ebiten.Termination
		}
		return nil

	default:
		return ebiten.Termination
	}
}

// Draw 绘制最近提交的一帧
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(config.LetterboxColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.cfg
}

// Loop 返回游戏循环
func (a *App) Loop() *game.Loop {
	return a.loop
}
