package assets

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/kokaton/pkg/config"
	"github.com/decker502/kokaton/pkg/types"
)

// playerVariant 描述一个朝向的玩家图像如何由基础图像变换得到
type playerVariant struct {
	dir     types.Direction
	flipped bool    // 以朝右图像（水平翻转后）为底
	angle   float64 // 0 表示不旋转，直接使用底图
}

// playerVariants 朝向 -> 变换方式，从正右方开始逆时针
//
// 基础图像朝左；朝右图像是它的水平镜像。
// 斜向和上下方向在已缩放的底图上再旋转并缩放一次。
var playerVariants = []playerVariant{
	{types.DirRight, true, 0},
	{types.DirUpRight, true, 45},
	{types.DirUp, true, 90},
	{types.DirUpLeft, false, -45},
	{types.DirLeft, false, 0},
	{types.DirDownLeft, false, 45},
	{types.DirDown, true, -90},
	{types.DirDownRight, true, -45},
}

// LoadSpriteSet 加载全部图像、生成变换后的变体并注册到 rm
//
// 任一图像缺失或解码失败都会返回错误。
func LoadSpriteSet(rm *ResourceManager, cfg *config.GameConfig) (*types.SpriteSet, error) {
	a := cfg.Assets
	scale := cfg.Player.Scale

	load := func(name string) (*ebiten.Image, error) {
		img, err := rm.LoadImage(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load sprite: %w", err)
		}
		return img, nil
	}

	set := &types.SpriteSet{
		Player: make(map[types.Direction]types.Sprite, len(playerVariants)),
		Beam:   make(map[types.Direction]types.Sprite, len(playerVariants)),
	}

	bg, err := load(a.Background)
	if err != nil {
		return nil, err
	}
	set.Background = rm.Register("background", bg)

	// 玩家
	base, err := load(a.Player)
	if err != nil {
		return nil, err
	}
	left := Rotozoom(base, 0, scale)
	right := Flip(left, true, false)
	for _, v := range playerVariants {
		src := left
		if v.flipped {
			src = right
		}
		img := src
		if v.angle != 0 {
			img = Rotozoom(src, v.angle, scale)
		}
		set.Player[v.dir] = rm.Register(directionID("player", v.dir), img)
	}

	hit, err := load(a.PlayerHit)
	if err != nil {
		return nil, err
	}
	set.PlayerHit = rm.Register("player/hit", Rotozoom(hit, 0, scale))

	scored, err := load(a.PlayerScored)
	if err != nil {
		return nil, err
	}
	set.PlayerScored = rm.Register("player/scored", Rotozoom(scored, 0, scale))

	// 光束：按朝向角度旋转，不缩放
	beam, err := load(a.Beam)
	if err != nil {
		return nil, err
	}
	for _, d := range types.Directions() {
		set.Beam[d] = rm.Register(directionID("beam", d), Rotozoom(beam, d.Angle(), 1))
	}

	// 炸弹：程序生成的实心圆
	set.Bomb = rm.Register("bomb", NewCircleImage(cfg.Hazard.Radius, cfg.Hazard.RGBA()))

	// 爆炸：原图 + 上下左右翻转
	explosion, err := load(a.Explosion)
	if err != nil {
		return nil, err
	}
	set.Explosion[0] = rm.Register("explosion/0", explosion)
	set.Explosion[1] = rm.Register("explosion/1", Flip(explosion, true, true))

	log.Printf("[ResourceManager] 精灵表构建完成: 玩家 %d 向, 光束 %d 向", len(set.Player), len(set.Beam))
	return set, nil
}

func directionID(prefix string, d types.Direction) types.ImageID {
	return types.ImageID(fmt.Sprintf("%s/%d,%d", prefix, d.DX, d.DY))
}
