package components

import "github.com/hajimehoshi/ebiten/v2"

// PlayerState 玩家（兔子）的动作状态
type PlayerState int

const (
	// PlayerRunning 在地面奔跑，循环播放奔跑姿势
	PlayerRunning PlayerState = iota
	// PlayerHopping 跳跃中，姿势由跳跃阶段决定
	PlayerHopping
	// PlayerIdle 失败后坐下嗅探，不再跟随前景移动
	PlayerIdle
)

// String 返回状态名称（与资源清单中的 rabbit 变体名一致）
func (s PlayerState) String() string {
	switch s {
	case PlayerRunning:
		return "run"
	case PlayerHopping:
		return "hop"
	case PlayerIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// PlayerSheet 某个状态使用的精灵图及其姿势数
type PlayerSheet struct {
	Image    *ebiten.Image
	NumPoses int
}

// PlayerComponent 玩家状态机与跳跃轨迹参数
//
// 跳跃分两个阶段：
//   - 匀速阶段：按住跳跃键期间以初速度 V0 匀速上升，最长 MaxLinearSeconds
//   - 抛物线阶段：松开或超时后受重力 Accel 作用，经过 AscentSeconds 后到达最高点并回落
//
// Accel 和 V0 在创建时推导，使最长跳跃的顶点恰好触及画布顶边
type PlayerComponent struct {
	State   PlayerState
	GroundY float64 // 奔跑时的基线 Y（地平线）

	Sheets map[PlayerState]PlayerSheet // 各状态的精灵图

	// 跳跃状态
	IsLinear         bool    // 是否处于匀速上升阶段
	HopStarted       bool    // 是否已记录跳跃开始时间
	HopStartMs       float64 // 跳跃开始的时间戳（毫秒）
	LinearEnded      bool    // 是否已记录匀速阶段结束时间
	LinearEndSeconds float64 // 匀速阶段持续时间（秒）

	// 跳跃轨迹参数
	Accel            float64 // 向下加速度（像素/秒²）
	V0               float64 // 初始 Y 速度（像素/秒，负值向上）
	AscentSeconds    float64 // 跳跃开始到最高点的时间（秒）
	MaxLinearSeconds float64 // 最长匀速上升时间（秒）

	IdleReturnSpeed float64 // 待机时回落地面的速度（像素/帧）

	// 跳跃各阶段使用的姿势索引
	LinearPose    int
	BallisticPose int
	DescentPose   int
}

// OnGround 判断玩家是否位于地平线上（只有在地面上才能起跳）
func (p *PlayerComponent) OnGround(pos *PositionComponent) bool {
	return pos.Y == p.GroundY
}

// ResetHop 清除跳跃时间记录
func (p *PlayerComponent) ResetHop() {
	p.IsLinear = false
	p.HopStarted = false
	p.HopStartMs = 0
	p.LinearEnded = false
	p.LinearEndSeconds = 0
}
