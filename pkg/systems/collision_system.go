package systems

import (
	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/types"
	"github.com/gonewx/hoppy/pkg/utils"
)

// CollisionResult 一帧碰撞检测的结果
type CollisionResult struct {
	Hit       bool               // 是否撞到障碍物
	HitKind   types.ObstacleKind // 第一个撞到的障碍物类型
	Collected []ecs.EntityID     // 本帧收集到的胡萝卜
	Points    int                // 本帧获得的分数
}

// CollisionSystem 检测玩家与障碍物、胡萝卜的碰撞
// 玩家使用完整绘制框，障碍物使用缩小的碰撞盒，胡萝卜使用完整绘制框
type CollisionSystem struct {
	entityManager *ecs.EntityManager
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{entityManager: em}
}

// Check 检测玩家与所有障碍物和胡萝卜的碰撞
// 只报告结果，不修改任何实体
func (s *CollisionSystem) Check(playerID ecs.EntityID) CollisionResult {
	var result CollisionResult

	ppos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return result
	}
	psize, ok := ecs.GetComponent[*components.DrawSizeComponent](s.entityManager, playerID)
	if !ok {
		return result
	}

	obstacles := ecs.GetEntitiesWith3[*components.ObstacleComponent, *components.HitBoxComponent, *components.PositionComponent](s.entityManager)
	for _, id := range obstacles {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		hitBox, _ := ecs.GetComponent[*components.HitBoxComponent](s.entityManager, id)
		size, ok := ecs.GetComponent[*components.DrawSizeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		x, y, w, h := hitBox.Rect(pos, size)
		if utils.PlayerOverlaps(ppos.X, ppos.Y, psize.Width, psize.Height, x, y, w, h) {
			if !result.Hit {
				obstacle, _ := ecs.GetComponent[*components.ObstacleComponent](s.entityManager, id)
				result.Hit = true
				result.HitKind = obstacle.Kind
			}
		}
	}

	collectibles := ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range collectibles {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		size, ok := ecs.GetComponent[*components.DrawSizeComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if utils.PlayerOverlaps(ppos.X, ppos.Y, psize.Width, psize.Height, pos.X, pos.Y, size.Width, size.Height) {
			collectible, _ := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id)
			result.Collected = append(result.Collected, id)
			result.Points += collectible.Points
		}
	}

	return result
}
