package app

import "time"

// FrameClock ebiten 驱动下的时钟
//
// 帧节奏由 ebiten.SetTPS 控制，Tick 只做计数；
// Hold 不阻塞，而是设置截止时间，由 App.Update 在到期后结束游戏。
type FrameClock struct {
	now       func() time.Time
	ticks     int
	holdUntil time.Time
}

// NewFrameClock 创建时钟
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick 记录一帧
func (c *FrameClock) Tick(fps int) {
	c.ticks++
}

// Ticks 已记录的帧数
func (c *FrameClock) Ticks() int {
	return c.ticks
}

// Hold 从现在起停留 d
func (c *FrameClock) Hold(d time.Duration) {
	c.holdUntil = c.now().Add(d)
}

// Holding 是否设置过停留
func (c *FrameClock) Holding() bool {
	return !c.holdUntil.IsZero()
}

// HoldExpired 停留是否已到期
func (c *FrameClock) HoldExpired() bool {
	return c.Holding() && !c.now().Before(c.holdUntil)
}
