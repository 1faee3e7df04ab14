package game

// State 游戏循环状态
type State int

const (
	// StateRunning 正常运行
	StateRunning State = iota
	// StateGameOver 玩家被炸弹击中（终止状态）
	StateGameOver
	// StateQuit 外部请求退出（关闭窗口或 Esc）
	StateQuit
)

// String 返回状态名称（用于日志）
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	case StateQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
