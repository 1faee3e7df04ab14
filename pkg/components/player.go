package components

import "github.com/decker502/kokaton/pkg/types"

// PlayerComponent 玩家（こうかとん）状态
type PlayerComponent struct {
	// Facing 当前朝向，同时决定光束的发射方向
	Facing types.Direction

	// Images 朝向 -> 图像 查找表（启动时注入，只读）
	Images map[types.Direction]types.Sprite
}
