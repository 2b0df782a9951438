package entities

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/game"
	"github.com/gonewx/hoppy/pkg/types"
)

// NewObstacleEntity 在画布右边缘创建一个障碍物
//
// 参数:
//   - em: EntityManager 实例
//   - rm: ResourceManager 实例
//   - world: 世界状态（画布尺寸）
//   - cfg: 游戏配置（障碍物属性表与碰撞盒参数）
//   - kind: 障碍物类型
//   - rng: 随机数源（随机高度、随机速度、随机变体）
//
// 返回: 创建的实体ID
func NewObstacleEntity(em *ecs.EntityManager, rm *game.ResourceManager, world *game.WorldState, cfg *config.GameConfig, kind types.ObstacleKind, rng *rand.Rand) (ecs.EntityID, error) {
	stats, ok := cfg.ObstacleStatsFor(kind)
	if !ok {
		return 0, fmt.Errorf("no stats configured for obstacle %s", kind)
	}

	img, err := rm.Get(stats.ImageCategory, stats.ImageVariant)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", kind, err)
	}

	speed := stats.Speed
	if stats.HasRandomSpeed() {
		speed = float64(rng.Intn(stats.MaxSpeed-stats.MinSpeed+1) + stats.MinSpeed)
	}

	// 地面动物与兔子在同一地平线，飞行动物在随机高度
	var y float64
	if stats.GroundFraction > 0 {
		y = math.Floor(world.CanvasHeight * stats.GroundFraction)
	} else {
		y = math.Floor(rng.Float64() * world.CanvasHeight * stats.MaxYFraction)
	}

	sprite := components.NewSpriteComponent(img, stats.NumPoses, components.AnchorBottom)
	size := &components.DrawSizeComponent{HeightFraction: stats.HeightFraction}
	size.Resize(sprite, world.CanvasHeight)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: world.CanvasWidth, Y: y})
	em.AddComponent(id, sprite)
	em.AddComponent(id, size)
	em.AddComponent(id, &components.AnimationComponent{
		TimePerPose: poseTime(stats.PoseTimeNumerator, speed),
	})
	em.AddComponent(id, &components.ScrollComponent{RelativeSpeed: speed})
	em.AddComponent(id, &components.HitBoxComponent{
		InsetX:         cfg.HitBox.InsetX,
		InsetTop:       cfg.HitBox.InsetTop,
		WidthFraction:  cfg.HitBox.WidthFraction,
		HeightFraction: cfg.HitBox.HeightFraction,
	})
	em.AddComponent(id, &components.ObstacleComponent{Kind: kind})

	return id, nil
}

// NewBirdEntity 创建一只随机外观、随机速度的小鸟
func NewBirdEntity(em *ecs.EntityManager, rm *game.ResourceManager, world *game.WorldState, cfg *config.GameConfig, rng *rand.Rand) (ecs.EntityID, error) {
	return NewObstacleEntity(em, rm, world, cfg, types.ObstacleBird, rng)
}

// NewMammalEntity 按配置权重随机创建一只地面哺乳动物（默认权重相等，即均匀选择）
func NewMammalEntity(em *ecs.EntityManager, rm *game.ResourceManager, world *game.WorldState, cfg *config.GameConfig, rng *rand.Rand) (ecs.EntityID, error) {
	kind, err := PickMammal(cfg, rng)
	if err != nil {
		return 0, err
	}
	return NewObstacleEntity(em, rm, world, cfg, kind, rng)
}

// PickMammal 按权重选择哺乳动物类型
func PickMammal(cfg *config.GameConfig, rng *rand.Rand) (types.ObstacleKind, error) {
	kinds, weights := cfg.WeightedMammals()
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return types.ObstacleUnknown, fmt.Errorf("no mammal has a positive weight")
	}

	r := rng.Intn(total)
	for i, w := range weights {
		if r < w {
			return kinds[i], nil
		}
		r -= w
	}
	return kinds[len(kinds)-1], nil
}
