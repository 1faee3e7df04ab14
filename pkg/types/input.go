package types

// Key 游戏使用的逻辑按键
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// KeySet 当前按下的按键快照
type KeySet map[Key]bool

// NewKeySet 由按键列表构造快照
func NewKeySet(keys ...Key) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[k] = true
	}
	return ks
}

// EventType 离散输入事件类型（按下沿触发）
type EventType int

const (
	// EventQuit 退出（关闭窗口 / Esc）
	EventQuit EventType = iota
	// EventFire 发射光束（空格）
	EventFire
)

// Event 离散输入事件
type Event struct {
	Type EventType
}
