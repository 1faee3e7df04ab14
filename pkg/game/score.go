package game

import (
	"fmt"

	"github.com/decker502/kokaton/pkg/config"
	"github.com/decker502/kokaton/pkg/types"
)

// Score 击破炸弹计数
type Score struct {
	value  int
	format string
	style  types.TextStyle
	x, y   int
}

// NewScore 按配置创建计分板，初始为 0
//
// 文本中心位于 (Score.X, 高度 - Score.BottomMargin)。
func NewScore(cfg *config.GameConfig) *Score {
	return &Score{
		format: cfg.Score.Format,
		style: types.TextStyle{
			Size:   cfg.Score.FontSize,
			Color:  config.ScoreColor,
			Anchor: types.AnchorCenter,
		},
		x: cfg.Score.X,
		y: cfg.Height - cfg.Score.BottomMargin,
	}
}

// Increment 分数 +1
func (s *Score) Increment() {
	s.value++
}

// Count 当前分数
func (s *Score) Count() int {
	return s.value
}

// Text 格式化后的分数文本
func (s *Score) Text() string {
	return fmt.Sprintf(s.format, s.value)
}

// Render 绘制分数
func (s *Score) Render(r Renderer) {
	r.DrawText(s.Text(), s.style, s.x, s.y)
}
