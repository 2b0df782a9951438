package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/entities"
	"github.com/gonewx/hoppy/pkg/game"
)

// SpawnSystem 管理障碍物与胡萝卜的生成
//
// 启动延迟过后，每帧分别以 1/N 的概率生成一只小鸟和一只哺乳动物（60fps、N=480 时约每 8 秒一次）。
// 胡萝卜同一时刻只存在一个：被收集或完全移出左边缘后立即在右边缘生成新的。
type SpawnSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	world           *game.WorldState
	config          *config.GameConfig
	rng             *rand.Rand

	birdsSpawned   int // 已生成的小鸟数
	mammalsSpawned int // 已生成的哺乳动物数
}

// NewSpawnSystem 创建生成系统
// 参数:
//   - em: EntityManager 实例
//   - rm: ResourceManager 实例
//   - world: 世界状态
//   - cfg: 游戏配置（生成概率、启动延迟、障碍物属性）
//   - rng: 随机数源，测试中使用固定种子
func NewSpawnSystem(em *ecs.EntityManager, rm *game.ResourceManager, world *game.WorldState, cfg *config.GameConfig, rng *rand.Rand) *SpawnSystem {
	log.Printf("[SpawnSystem] Initialized with chance=1/%d, startup delay=%.0fms",
		cfg.SpawnChanceDenominator, cfg.StartupDelayMs)
	return &SpawnSystem{
		entityManager:   em,
		resourceManager: rm,
		world:           world,
		config:          cfg,
		rng:             rng,
	}
}

// Active 判断本帧是否进行生成与碰撞检测（未失败且已过启动延迟）
func (s *SpawnSystem) Active(timeMs float64) bool {
	return !s.world.Lost && timeMs > s.config.StartupDelayMs
}

// Update 执行本帧的随机生成和胡萝卜替换
//
// 参数:
//   - timeMs: 游戏循环时钟（毫秒）
func (s *SpawnSystem) Update(timeMs float64) {
	if !s.Active(timeMs) {
		return
	}

	if s.roll() {
		if _, err := entities.NewBirdEntity(s.entityManager, s.resourceManager, s.world, s.config, s.rng); err != nil {
			log.Printf("[SpawnSystem] Warning: failed to spawn bird: %v", err)
		} else {
			s.birdsSpawned++
		}
	}
	if s.roll() {
		if _, err := entities.NewMammalEntity(s.entityManager, s.resourceManager, s.world, s.config, s.rng); err != nil {
			log.Printf("[SpawnSystem] Warning: failed to spawn mammal: %v", err)
		} else {
			s.mammalsSpawned++
		}
	}

	// 胡萝卜完全移出左边缘后替换
	for _, id := range ecs.GetEntitiesWith1[*components.CollectibleComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		size, _ := ecs.GetComponent[*components.DrawSizeComponent](s.entityManager, id)
		if pos != nil && size != nil && pos.X < -size.Width {
			s.ReplaceCollectible()
			break
		}
	}
}

// roll 以 1/N 的概率返回 true
func (s *SpawnSystem) roll() bool {
	return s.rng.Intn(s.config.SpawnChanceDenominator) == 1
}

// ReplaceCollectible 移除当前所有胡萝卜并在右边缘生成一个新的
func (s *SpawnSystem) ReplaceCollectible() ecs.EntityID {
	for _, id := range ecs.GetEntitiesWith1[*components.CollectibleComponent](s.entityManager) {
		// 立即移除：同一帧内不能被再次收集
		s.entityManager.RemoveComponent(id, collectibleType)
		s.entityManager.DestroyEntity(id)
	}

	id, err := entities.NewCarrotEntity(s.entityManager, s.resourceManager, s.world, s.config.Collectible, s.rng)
	if err != nil {
		log.Printf("[SpawnSystem] Warning: failed to spawn carrot: %v", err)
		return 0
	}
	return id
}

// Counts 返回已生成的小鸟和哺乳动物数量
func (s *SpawnSystem) Counts() (birds, mammals int) {
	return s.birdsSpawned, s.mammalsSpawned
}

// ResetCounts 清零生成计数（重置时调用）
func (s *SpawnSystem) ResetCounts() {
	s.birdsSpawned = 0
	s.mammalsSpawned = 0
}
