package utils

import "math"

// HopCoefficients 推导跳跃的向下加速度和初始 Y 速度
// 使最长的跳跃（按住满 maxLinear 秒）在 ascent 秒时到达最高点，
// 且此时精灵图顶边恰好触及画布顶边（基线 Y = drawHeight）
//
// 参数:
//   - drawHeight: 玩家绘制高度（像素）
//   - groundY: 地平线 Y 坐标（像素）
//   - ascent: 跳跃开始到最高点的时间（秒）
//   - maxLinear: 最长匀速上升时间（秒），需小于 ascent
//
// 返回:
//   - accel: 向下加速度（像素/秒²，正值）
//   - v0: 初始 Y 速度（像素/秒，负值向上）
func HopCoefficients(drawHeight, groundY, ascent, maxLinear float64) (accel, v0 float64) {
	accel = 2 * (drawHeight - groundY) / (maxLinear*maxLinear - ascent*ascent)
	v0 = -accel * (ascent - maxLinear)
	return accel, v0
}

// HopOffset 计算跳跃开始 elapsed 秒后相对地平线的 Y 偏移（向下取整，负值表示在地面上方）
//
// linear 为 true 时处于匀速阶段：offset = v0 * t
// 否则 linearEnd 为匀速阶段结束时间：
// offset = v0 * le + v0 * (t - le) + accel * (t - le)² / 2
func HopOffset(v0, accel, elapsed, linearEnd float64, linear bool) float64 {
	if linear {
		return math.Floor(v0 * elapsed)
	}
	dt := elapsed - linearEnd
	return math.Floor(v0*linearEnd + v0*dt + 0.5*accel*dt*dt)
}
