package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/game"
)

// sceneryCategory 资源清单中背景层的分类名
const sceneryCategory = "scenery"

// NewSceneryEntity 创建一个视差背景层
// 背景层高度等于画布高度，宽度按图像宽高比缩放，从 x=0 开始平铺
//
// 参数:
//   - foregroundSpeed: 前景滚动速度，层速度 = foregroundSpeed * layer.SpeedFraction
func NewSceneryEntity(em *ecs.EntityManager, rm *game.ResourceManager, world *game.WorldState, layer config.SceneryLayerConfig, foregroundSpeed float64) (ecs.EntityID, error) {
	img, err := rm.Get(sceneryCategory, layer.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to create scenery layer %s: %w", layer.Name, err)
	}

	sprite := components.NewSpriteComponent(img, 1, components.AnchorTop)
	size := &components.DrawSizeComponent{HeightFraction: 1}
	size.Resize(sprite, world.CanvasHeight)
	if size.Width <= 0 {
		return 0, fmt.Errorf("scenery layer %s has zero draw width", layer.Name)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, sprite)
	em.AddComponent(id, size)
	em.AddComponent(id, &components.SceneryComponent{
		Name:     layer.Name,
		Speed:    foregroundSpeed * layer.SpeedFraction,
		NumDraws: int(math.Ceil(world.CanvasWidth/size.Width)) + 1,
	})

	return id, nil
}
