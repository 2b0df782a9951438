package components

import "math"

// AnimationComponent 管理基于时间的姿势循环
// 姿势索引 = floor(elapsed / TimePerPose) mod NumPoses
type AnimationComponent struct {
	TimePerPose float64 // 每个姿势的持续时间（毫秒），<= 0 表示静态图
	Paused      bool    // 为 true 时姿势由其他系统直接指定（如玩家跳跃）
}

// PoseAt 计算给定时间点的姿势索引，结果总在 [0, numPoses) 范围内
func (a *AnimationComponent) PoseAt(elapsedMs float64, numPoses int) int {
	if numPoses <= 1 || a.TimePerPose <= 0 || elapsedMs < 0 {
		return 0
	}
	idx := int(math.Floor(elapsedMs/a.TimePerPose)) % numPoses
	if idx < 0 {
		idx += numPoses
	}
	return idx
}
