package systems

import (
	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/game"
)

// ScenerySystem 视差背景层的滚动与平铺绘制
// 每层独立速度滚动，X <= -绘制宽度 时回绕到 0，因此 -绘制宽度 < X <= 0 恒成立
type ScenerySystem struct {
	entityManager *ecs.EntityManager
}

// NewScenerySystem 创建背景系统
func NewScenerySystem(em *ecs.EntityManager) *ScenerySystem {
	return &ScenerySystem{entityManager: em}
}

// Update 滚动所有背景层
func (s *ScenerySystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.SceneryComponent, *components.PositionComponent](s.entityManager) {
		scenery, _ := ecs.GetComponent[*components.SceneryComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		size, ok := ecs.GetComponent[*components.DrawSizeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.X -= scenery.Speed
		if pos.X <= -size.Width {
			pos.X = 0
		}
	}
}

// Draw 按创建顺序（从远到近）平铺绘制所有背景层
func (s *ScenerySystem) Draw(surface game.Surface) {
	for _, id := range ecs.GetEntitiesWith2[*components.SceneryComponent, *components.SpriteComponent](s.entityManager) {
		scenery, _ := ecs.GetComponent[*components.SceneryComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		size, _ := ecs.GetComponent[*components.DrawSizeComponent](s.entityManager, id)
		if pos == nil || size == nil {
			continue
		}

		src := sprite.SourceRect()
		for i := 0; i < scenery.NumDraws; i++ {
			surface.DrawRegion(sprite.Image, src, pos.X+float64(i)*size.Width, pos.Y, size.Width, size.Height)
		}
	}
}

// LayerCount 返回背景层数量
func (s *ScenerySystem) LayerCount() int {
	return len(ecs.GetEntitiesWith1[*components.SceneryComponent](s.entityManager))
}
