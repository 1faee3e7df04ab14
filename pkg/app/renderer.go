package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/kokaton/pkg/types"
)

// ImageSource 按 ImageID 解析精灵像素
type ImageSource interface {
	Image(id types.ImageID) *ebiten.Image
}

// FontSource 按字号提供字体
type FontSource interface {
	LoadFont(path string, size float64) (*text.GoTextFace, error)
}

// drawCommand 显示列表中的一条绘制命令
type drawCommand struct {
	isText bool

	sprite types.Sprite
	dst    types.Rect

	text  string
	style types.TextStyle
	x, y  int
}

// DisplayListRenderer 记录式渲染器
//
// 游戏循环在 Update 中调用 DrawSprite/DrawText，命令先记入待提交列表；
// Present 把它换成当前帧，ebiten 的 Draw 重放最近一次提交的帧。
// 因此游戏结束停留期间窗口持续显示结束画面。
type DisplayListRenderer struct {
	images   ImageSource
	fonts    FontSource
	fontPath string

	pending   []drawCommand
	presented []drawCommand
	frames    int

	missing map[types.ImageID]bool
}

// NewDisplayListRenderer 创建渲染器，fontPath 为空时使用内置字体
func NewDisplayListRenderer(images ImageSource, fonts FontSource, fontPath string) *DisplayListRenderer {
	return &DisplayListRenderer{
		images:   images,
		fonts:    fonts,
		fontPath: fontPath,
		missing:  make(map[types.ImageID]bool),
	}
}

// DrawSprite 记录一次精灵绘制
func (r *DisplayListRenderer) DrawSprite(sprite types.Sprite, dst types.Rect) {
	r.pending = append(r.pending, drawCommand{sprite: sprite, dst: dst})
}

// DrawText 记录一次文本绘制
func (r *DisplayListRenderer) DrawText(s string, style types.TextStyle, x, y int) {
	r.pending = append(r.pending, drawCommand{isText: true, text: s, style: style, x: x, y: y})
}

// Present 提交待绘制列表为当前帧
func (r *DisplayListRenderer) Present() {
	r.presented, r.pending = r.pending, r.presented[:0]
	r.frames++
}

// Frames 已提交的帧数
func (r *DisplayListRenderer) Frames() int {
	return r.frames
}

// Draw 将最近提交的帧绘制到屏幕
func (r *DisplayListRenderer) Draw(screen *ebiten.Image) {
	for _, cmd := range r.presented {
		if cmd.isText {
			r.drawText(screen, cmd)
		} else {
			r.drawSprite(screen, cmd)
		}
	}
}

func (r *DisplayListRenderer) drawSprite(screen *ebiten.Image, cmd drawCommand) {
	img := r.images.Image(cmd.sprite.ID)
	if img == nil {
		// 每个缺失的图像只记录一次
		if !r.missing[cmd.sprite.ID] {
			log.Printf("[Renderer] 未注册的图像: %s", cmd.sprite.ID)
			r.missing[cmd.sprite.ID] = true
		}
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(cmd.dst.X), float64(cmd.dst.Y))
	screen.DrawImage(img, op)
}

func (r *DisplayListRenderer) drawText(screen *ebiten.Image, cmd drawCommand) {
	face, err := r.fonts.LoadFont(r.fontPath, cmd.style.Size)
	if err != nil {
		log.Printf("[Renderer] 字体加载失败: %v", err)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cmd.x), float64(cmd.y))
	op.ColorScale.ScaleWithColor(cmd.style.Color)
	if cmd.style.Anchor == types.AnchorCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(screen, cmd.text, face, op)
}
