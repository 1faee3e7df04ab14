package components

// VelocityComponent 每帧位移（像素/帧）
type VelocityComponent struct {
	VX int
	VY int
}
