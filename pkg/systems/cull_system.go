package systems

import (
	"reflect"

	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/ecs"
)

var (
	obstacleType    = reflect.TypeOf(&components.ObstacleComponent{})
	collectibleType = reflect.TypeOf(&components.CollectibleComponent{})
)

// CullSystem 移除完全移出画布左边缘的障碍物
// 保留条件：X > -绘制宽度。失败后障碍物仍在移动，因此剔除每帧都执行
type CullSystem struct {
	entityManager *ecs.EntityManager
}

// NewCullSystem 创建剔除系统
func NewCullSystem(em *ecs.EntityManager) *CullSystem {
	return &CullSystem{entityManager: em}
}

// Update 标记离开画布的障碍物，返回本帧移除的数量
func (s *CullSystem) Update() int {
	removed := 0
	for _, id := range s.entityManager.GetEntitiesWith(obstacleType) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		size, ok := ecs.GetComponent[*components.DrawSizeComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if pos.X <= -size.Width {
			// 移除障碍物组件，使其在同一帧的后续查询中不再出现
			s.entityManager.RemoveComponent(id, obstacleType)
			s.entityManager.DestroyEntity(id)
			removed++
		}
	}
	return removed
}
