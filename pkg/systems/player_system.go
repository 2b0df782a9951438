package systems

import (
	"log"

	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/game"
	"github.com/gonewx/hoppy/pkg/utils"
)

// PlayerSystem 玩家（兔子）状态机
//
// 状态转换:
//
//	Running --Hop(在地面)--> Hopping --落地--> Running
//	Running/Hopping --Idle--> Idle（失败后不再离开，直到重置创建新玩家）
//
// 非法转换（空中起跳、待机时起跳）被静默忽略。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	world         *game.WorldState
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, world *game.WorldState) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		world:         world,
	}
}

// playerParts 玩家实体的组件集合
type playerParts struct {
	player *components.PlayerComponent
	pos    *components.PositionComponent
	sprite *components.SpriteComponent
	size   *components.DrawSizeComponent
	anim   *components.AnimationComponent
	scroll *components.ScrollComponent
}

func (s *PlayerSystem) parts(id ecs.EntityID) (playerParts, bool) {
	var p playerParts
	var ok bool
	if p.player, ok = ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); !ok {
		return p, false
	}
	if p.pos, ok = ecs.GetComponent[*components.PositionComponent](s.entityManager, id); !ok {
		return p, false
	}
	if p.sprite, ok = ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); !ok {
		return p, false
	}
	if p.size, ok = ecs.GetComponent[*components.DrawSizeComponent](s.entityManager, id); !ok {
		return p, false
	}
	if p.anim, ok = ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); !ok {
		return p, false
	}
	if p.scroll, ok = ecs.GetComponent[*components.ScrollComponent](s.entityManager, id); !ok {
		return p, false
	}
	return p, true
}

// Hop 开始跳跃
// 只有奔跑或跳跃状态且位于地平线上时生效，返回是否起跳
func (s *PlayerSystem) Hop(id ecs.EntityID) bool {
	p, ok := s.parts(id)
	if !ok || p.player.State == components.PlayerIdle {
		return false
	}
	if !p.player.OnGround(p.pos) {
		return false
	}

	if p.player.State != components.PlayerHopping {
		s.switchSheet(p, components.PlayerHopping)
		p.anim.Paused = true
	}
	p.player.IsLinear = true
	return true
}

// ReleaseHop 结束匀速上升阶段，之后受重力作用
func (s *PlayerSystem) ReleaseHop(id ecs.EntityID) {
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); ok {
		player.IsLinear = false
	}
}

// Idle 切换到待机状态（失败时调用）
// 兔子停止跟随前景并回落到地面
func (s *PlayerSystem) Idle(id ecs.EntityID) {
	p, ok := s.parts(id)
	if !ok || p.player.State == components.PlayerIdle {
		return
	}
	p.player.ResetHop()
	s.switchSheet(p, components.PlayerIdle)
	p.anim.Paused = false
	p.scroll.RelativeSpeed = 0
	log.Printf("[PlayerSystem] Player idle at y=%.0f", p.pos.Y)
}

// Update 按当前状态推进玩家
//
// 参数:
//   - id: 玩家实体
//   - timeMs: 游戏循环时钟（毫秒）
func (s *PlayerSystem) Update(id ecs.EntityID, timeMs float64) {
	p, ok := s.parts(id)
	if !ok {
		return
	}

	switch p.player.State {
	case components.PlayerRunning:
		// 姿势由 AnimationSystem 循环
	case components.PlayerHopping:
		s.updateHop(p, timeMs)
	case components.PlayerIdle:
		s.updateIdle(p)
	}
}

// updateHop 推进跳跃轨迹
func (s *PlayerSystem) updateHop(p playerParts, timeMs float64) {
	player := p.player
	pose := player.LinearPose

	if !player.HopStarted {
		player.HopStarted = true
		player.HopStartMs = timeMs
	}
	elapsed := (timeMs - player.HopStartMs) / 1000

	// 按住超过最长匀速时间后自动进入抛物线阶段
	if elapsed > player.MaxLinearSeconds {
		player.IsLinear = false
	}

	if player.IsLinear {
		p.pos.Y = player.GroundY + utils.HopOffset(player.V0, player.Accel, elapsed, 0, true)
	} else {
		pose = player.BallisticPose
		if !player.LinearEnded {
			player.LinearEnded = true
			player.LinearEndSeconds = elapsed
		}
		p.pos.Y = player.GroundY + utils.HopOffset(player.V0, player.Accel, elapsed, player.LinearEndSeconds, false)
	}

	if elapsed > player.AscentSeconds {
		pose = player.DescentPose
		if p.pos.Y >= player.GroundY {
			p.pos.Y = player.GroundY
			player.ResetHop()
			s.switchSheet(p, components.PlayerRunning)
			p.anim.Paused = false
			p.sprite.CurrentPose = p.anim.PoseAt(timeMs, p.sprite.NumPoses)
			return
		}
	}

	if pose >= p.sprite.NumPoses {
		pose = p.sprite.NumPoses - 1
	}
	p.sprite.CurrentPose = pose
}

// updateIdle 待机时回落到地面，不会低于地平线
func (s *PlayerSystem) updateIdle(p playerParts) {
	if p.pos.Y < p.player.GroundY {
		p.pos.Y += p.player.IdleReturnSpeed
		if p.pos.Y > p.player.GroundY {
			p.pos.Y = p.player.GroundY
		}
	}
}

// switchSheet 切换状态并替换精灵图，绘制尺寸按新精灵图重新计算
func (s *PlayerSystem) switchSheet(p playerParts, state components.PlayerState) {
	p.player.State = state
	sheet, ok := p.player.Sheets[state]
	if !ok {
		return
	}
	p.sprite.SetSheet(sheet.Image, sheet.NumPoses)
	p.size.Resize(p.sprite, s.world.CanvasHeight)
}
