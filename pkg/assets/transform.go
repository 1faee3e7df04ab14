package assets

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/kokaton/pkg/types"
)

// Rotozoom 将图像逆时针旋转 angle 度并缩放 scale 倍
//
// 结果画布恰好容纳旋转后的包围盒，原图居中；空白处透明。
func Rotozoom(src *ebiten.Image, angle, scale float64) *ebiten.Image {
	b := src.Bounds()
	w, h := types.RotatedSize(b.Dx(), b.Dy(), angle, scale)
	dst := ebiten.NewImage(max(w, 1), max(h, 1))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	// 屏幕坐标 Y 轴向下，正角度在屏幕上是顺时针
	op.GeoM.Rotate(-angle * math.Pi / 180)
	op.GeoM.Translate(float64(w)/2, float64(h)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// Flip 按水平和/或垂直方向镜像图像
func Flip(src *ebiten.Image, horizontal, vertical bool) *ebiten.Image {
	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	dst := ebiten.NewImage(b.Dx(), b.Dy())

	op := &ebiten.DrawImageOptions{}
	sx, sy := 1.0, 1.0
	if horizontal {
		sx = -1
	}
	if vertical {
		sy = -1
	}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(w/2, h/2)
	dst.DrawImage(src, op)
	return dst
}

// NewCircleImage 生成 2r×2r 的实心圆图像，圆外透明
func NewCircleImage(radius int, clr color.Color) *ebiten.Image {
	size := 2 * radius
	img := ebiten.NewImage(size, size)
	r := float32(radius)
	vector.DrawFilledCircle(img, r, r, r, clr, true)
	return img
}
