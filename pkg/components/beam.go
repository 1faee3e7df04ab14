package components

// BeamComponent 光束标记组件
// 速度在生成时从玩家朝向复制，之后不再随玩家变化
type BeamComponent struct{}
