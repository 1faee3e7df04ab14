package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏配置
//
// 顶层的 width / height / hazardCount / frameRate 是游戏循环构造时的核心选项，
// 其余嵌套段落调整实体参数与资源路径。
//
// 配置文件位置: data/game.yaml（嵌入二进制，可通过 -config 覆盖）
type GameConfig struct {
	// Width 游戏区域宽度（逻辑像素）
	Width int `yaml:"width"`
	// Height 游戏区域高度（逻辑像素）
	Height int `yaml:"height"`
	// HazardCount 开局生成的炸弹数量
	HazardCount int `yaml:"hazardCount"`
	// FrameRate 目标帧率（每秒帧数）
	FrameRate int `yaml:"frameRate"`

	Player    PlayerConfig    `yaml:"player"`
	Hazard    HazardConfig    `yaml:"hazard"`
	Explosion ExplosionConfig `yaml:"explosion"`
	GameOver  GameOverConfig  `yaml:"gameOver"`
	Score     ScoreConfig     `yaml:"score"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// Point 整数坐标
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	// Start 初始中心坐标
	Start Point `yaml:"start"`
	// Scale 玩家图像缩放
	Scale float64 `yaml:"scale"`
}

// HazardConfig 炸弹配置
type HazardConfig struct {
	Radius int `yaml:"radius"`
	// Color RGB 三元组
	Color []int `yaml:"color"`
	// VX / VY 初始速度
	VX int `yaml:"vx"`
	VY int `yaml:"vy"`
}

// RGBA 返回炸弹颜色
func (h HazardConfig) RGBA() color.RGBA {
	if len(h.Color) != 3 {
		return BombColor
	}
	return color.RGBA{R: uint8(h.Color[0]), G: uint8(h.Color[1]), B: uint8(h.Color[2]), A: 0xff}
}

// ExplosionConfig 爆炸效果配置
type ExplosionConfig struct {
	// Life 持续帧数
	Life int `yaml:"life"`
	// FrameInterval 两帧图像交替间隔（帧）
	FrameInterval int `yaml:"frameInterval"`
}

// GameOverConfig 游戏结束画面配置
type GameOverConfig struct {
	// Hold 游戏结束画面停留时间（如 "1s"）
	Hold time.Duration `yaml:"hold"`
	Text string        `yaml:"text"`
	// FontSize 横幅字号
	FontSize float64 `yaml:"fontSize"`
}

// ScoreConfig 分数显示配置
type ScoreConfig struct {
	// Format fmt 格式串，唯一参数为分数
	Format   string  `yaml:"format"`
	FontSize float64 `yaml:"fontSize"`
	// X 文本中心X坐标
	X int `yaml:"x"`
	// BottomMargin 文本中心距离底边的距离
	BottomMargin int `yaml:"bottomMargin"`
}

// AssetsConfig 资源路径配置（相对 Dir）
type AssetsConfig struct {
	Dir          string `yaml:"dir"`
	Player       string `yaml:"player"`
	PlayerHit    string `yaml:"playerHit"`
	PlayerScored string `yaml:"playerScored"`
	Beam         string `yaml:"beam"`
	Explosion    string `yaml:"explosion"`
	Background   string `yaml:"background"`
	// Font 可选 TTF 路径，为空时使用内置 Go Regular 字体
	Font string `yaml:"font"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:       DefaultScreenWidth,
		Height:      DefaultScreenHeight,
		HazardCount: DefaultHazardCount,
		FrameRate:   DefaultFrameRate,
		Player: PlayerConfig{
			Start: Point{X: 300, Y: 200},
			Scale: 0.9,
		},
		Hazard: HazardConfig{
			Radius: 10,
			Color:  []int{255, 0, 0},
			VX:     +5,
			VY:     +5,
		},
		Explosion: ExplosionConfig{
			Life:          30,
			FrameInterval: 10,
		},
		GameOver: GameOverConfig{
			Hold:     time.Second,
			Text:     "GAME OVER",
			FontSize: 80,
		},
		Score: ScoreConfig{
			Format:       "Score: %d",
			FontSize:     30,
			X:            100,
			BottomMargin: 50,
		},
		Assets: AssetsConfig{
			Dir:          "fig",
			Player:       "3.png",
			PlayerHit:    "8.png",
			PlayerScored: "6.png",
			Beam:         "beam.png",
			Explosion:    "explosion.gif",
			Background:   "pg_bg.jpg",
		},
	}
}

// ParseGameConfig 解析 YAML 配置
//
// 未出现的字段保持默认值。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("playfield size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frameRate must be positive, got %d", c.FrameRate)
	}
	if c.HazardCount < 0 {
		return fmt.Errorf("hazardCount must not be negative, got %d", c.HazardCount)
	}

	if c.Player.Start.X < 0 || c.Player.Start.X > c.Width ||
		c.Player.Start.Y < 0 || c.Player.Start.Y > c.Height {
		return fmt.Errorf("player start (%d,%d) outside playfield %dx%d",
			c.Player.Start.X, c.Player.Start.Y, c.Width, c.Height)
	}
	if c.Player.Scale <= 0 {
		return fmt.Errorf("player scale must be positive, got %.2f", c.Player.Scale)
	}

	if c.Hazard.Radius <= 0 {
		return fmt.Errorf("hazard radius must be positive, got %d", c.Hazard.Radius)
	}
	if len(c.Hazard.Color) != 3 {
		return fmt.Errorf("hazard color must have 3 components, got %d", len(c.Hazard.Color))
	}
	for _, v := range c.Hazard.Color {
		if v < 0 || v > 255 {
			return fmt.Errorf("hazard color component %d out of range [0,255]", v)
		}
	}

	if c.Explosion.Life <= 0 {
		return fmt.Errorf("explosion life must be positive, got %d", c.Explosion.Life)
	}
	if c.Explosion.FrameInterval <= 0 {
		return fmt.Errorf("explosion frameInterval must be positive, got %d", c.Explosion.FrameInterval)
	}

	if c.GameOver.Hold < 0 {
		return fmt.Errorf("gameOver hold must not be negative, got %s", c.GameOver.Hold)
	}
	if c.GameOver.FontSize <= 0 || c.Score.FontSize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}

	return nil
}

// FrameDuration 单帧时长
func (c *GameConfig) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
