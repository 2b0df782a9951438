package entities

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/game"
)

// NewCarrotEntity 在画布右边缘的随机高度（顶部 MaxYFraction 范围内）创建胡萝卜
// 胡萝卜与前景同速移动（相对速度为 0），以左上角为锚点绘制
func NewCarrotEntity(em *ecs.EntityManager, rm *game.ResourceManager, world *game.WorldState, cfg config.CollectibleConfig, rng *rand.Rand) (ecs.EntityID, error) {
	img, err := rm.Get(cfg.ImageCategory, "")
	if err != nil {
		return 0, fmt.Errorf("failed to create carrot: %w", err)
	}

	sprite := components.NewSpriteComponent(img, 1, components.AnchorTop)
	size := &components.DrawSizeComponent{HeightFraction: cfg.HeightFraction}
	size.Resize(sprite, world.CanvasHeight)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: world.CanvasWidth,
		Y: math.Floor(rng.Float64() * world.CanvasHeight * cfg.MaxYFraction),
	})
	em.AddComponent(id, sprite)
	em.AddComponent(id, size)
	em.AddComponent(id, &components.ScrollComponent{})
	em.AddComponent(id, &components.CollectibleComponent{Points: cfg.Points})

	return id, nil
}
