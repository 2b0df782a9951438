package systems

import (
	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/game"
)

// ScrollSystem 让实体随前景水平移动
// 每帧 X -= (全局滚动速度 + 实体相对速度)
type ScrollSystem struct {
	entityManager *ecs.EntityManager
	world         *game.WorldState
}

// NewScrollSystem 创建滚动系统
func NewScrollSystem(em *ecs.EntityManager, world *game.WorldState) *ScrollSystem {
	return &ScrollSystem{
		entityManager: em,
		world:         world,
	}
}

// Update 移动所有拥有 ScrollComponent 的实体
func (s *ScrollSystem) Update() {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ScrollComponent](s.entityManager)
	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		scroll, _ := ecs.GetComponent[*components.ScrollComponent](s.entityManager, id)
		pos.X -= s.world.ScrollSpeed + scroll.RelativeSpeed
	}
}
