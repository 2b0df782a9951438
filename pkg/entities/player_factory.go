package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/game"
	"github.com/gonewx/hoppy/pkg/utils"
)

// rabbitCategory 资源清单中兔子精灵图的分类名
const rabbitCategory = "rabbit"

// NewPlayerEntity 创建玩家（兔子）实体，初始为奔跑状态
//
// 参数:
//   - em: EntityManager 实例
//   - rm: ResourceManager 实例，提供 rabbit/run、rabbit/hop、rabbit/idle 精灵图
//   - world: 世界状态（画布尺寸与当前滚动速度）
//   - cfg: 玩家参数
//
// 返回: 创建的实体ID；任何一张精灵图缺失时返回错误
func NewPlayerEntity(em *ecs.EntityManager, rm *game.ResourceManager, world *game.WorldState, cfg config.PlayerConfig) (ecs.EntityID, error) {
	poses := map[components.PlayerState]int{
		components.PlayerRunning: cfg.RunPoses,
		components.PlayerHopping: cfg.HopPoses,
		components.PlayerIdle:    cfg.IdlePoses,
	}

	sheets := make(map[components.PlayerState]components.PlayerSheet, len(poses))
	for state, numPoses := range poses {
		img, err := rm.Get(rabbitCategory, state.String())
		if err != nil {
			return 0, fmt.Errorf("failed to create player: %w", err)
		}
		sheets[state] = components.PlayerSheet{Image: img, NumPoses: numPoses}
	}

	groundY := math.Floor(world.CanvasHeight * cfg.GroundFraction)
	run := sheets[components.PlayerRunning]

	sprite := components.NewSpriteComponent(run.Image, run.NumPoses, components.AnchorBottom)
	size := &components.DrawSizeComponent{HeightFraction: cfg.HeightFraction}
	size.Resize(sprite, world.CanvasHeight)

	// 奔跑时相对速度抵消前景滚动，兔子在画布上保持静止
	scrollSpeed := world.ScrollSpeed
	accel, v0 := utils.HopCoefficients(size.Height, groundY, cfg.AscentSeconds, cfg.MaxLinearSeconds())

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: math.Floor(world.CanvasWidth * cfg.XFraction),
		Y: groundY,
	})
	em.AddComponent(id, sprite)
	em.AddComponent(id, size)
	em.AddComponent(id, &components.AnimationComponent{
		TimePerPose: poseTime(cfg.PoseTimeNumerator, scrollSpeed),
	})
	em.AddComponent(id, &components.ScrollComponent{RelativeSpeed: -scrollSpeed})
	em.AddComponent(id, &components.PlayerComponent{
		State:            components.PlayerRunning,
		GroundY:          groundY,
		Sheets:           sheets,
		Accel:            accel,
		V0:               v0,
		AscentSeconds:    cfg.AscentSeconds,
		MaxLinearSeconds: cfg.MaxLinearSeconds(),
		IdleReturnSpeed:  cfg.IdleReturnSpeed,
		LinearPose:       cfg.LinearPose,
		BallisticPose:    cfg.BallisticPose,
		DescentPose:      cfg.DescentPose,
	})

	return id, nil
}

// poseTime 计算每个姿势的时长（毫秒），速度为 0 时返回 0（静态图）
func poseTime(numerator, speed float64) float64 {
	if speed == 0 {
		return 0
	}
	return math.Abs(numerator / speed)
}
