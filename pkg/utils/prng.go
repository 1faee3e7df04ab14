// Package utils 提供通用工具函数
package utils

import (
	"math/rand"
	"time"
)

// PRNGService 可设定种子的随机数服务
// 固定种子时炸弹初始位置可复现（测试、模拟）
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService 创建随机数服务，seed 为 0 时使用当前时间
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn 返回 [0, n) 内的随机整数
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange 返回 [lo, hi] 闭区间内的随机整数
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
