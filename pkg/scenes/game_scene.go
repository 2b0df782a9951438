package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/entities"
	"github.com/gonewx/hoppy/pkg/game"
	"github.com/gonewx/hoppy/pkg/modules"
	"github.com/gonewx/hoppy/pkg/systems"
	"github.com/gonewx/hoppy/pkg/types"
	"github.com/gonewx/hoppy/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 游戏主场景
//
// 场景持有两个独立的循环：
//   - 背景循环：滚动视差背景层，失败时停止（背景冻结）
//   - 游戏循环：生成、碰撞、剔除、移动和动画，首次启动后一直运行
//
// 两个循环各自绘制到一块画布（背景、前景），Draw 时叠加到屏幕上。
type GameScene struct {
	resourceManager *game.ResourceManager
	config          *config.GameConfig
	world           *game.WorldState
	entityManager   *ecs.EntityManager
	rng             *rand.Rand

	// 系统
	scrollSystem    *systems.ScrollSystem
	animationSystem *systems.AnimationSystem
	playerSystem    *systems.PlayerSystem
	collisionSystem *systems.CollisionSystem
	spawnSystem     *systems.SpawnSystem
	cullSystem      *systems.CullSystem
	scenerySystem   *systems.ScenerySystem
	renderSystem    *systems.RenderSystem

	// 循环与画布
	gameLoop      *game.FrameLoop
	sceneryLoop   *game.FrameLoop
	background    *game.ImageSurface
	foreground    *game.ImageSurface
	sceneryDirty  bool // 背景层在上次绘制后是否移动过
	sceneryLoaded bool // 背景层只创建一次

	// UI 模块
	hud      *modules.HUDModule
	gameOver *modules.GameOverModule

	scores   *game.ScoreManager
	audio    *game.AudioManager
	pollHop  utils.HopPoller
	playerID ecs.EntityID
}

// NewGameScene 创建游戏场景并开始第一局
//
// 参数:
//   - rm: 已完成 LoadAll 的资源管理器
//   - cfg: 游戏配置
//   - scores: 最高分管理器（可使用 NewScoreManager(nil) 的降级模式）
//   - audioManager: 音效管理器，可为 nil（静音）
//   - rng: 随机数源
func NewGameScene(rm *game.ResourceManager, cfg *config.GameConfig, scores *game.ScoreManager, audioManager *game.AudioManager, rng *rand.Rand) (*GameScene, error) {
	if scores == nil {
		scores = game.NewScoreManager(nil)
	}

	world := game.NewWorldState(cfg.Screen.Width, cfg.Screen.Height)
	em := ecs.NewEntityManager()

	s := &GameScene{
		resourceManager: rm,
		config:          cfg,
		world:           world,
		entityManager:   em,
		rng:             rng,

		scrollSystem:    systems.NewScrollSystem(em, world),
		animationSystem: systems.NewAnimationSystem(em),
		playerSystem:    systems.NewPlayerSystem(em, world),
		collisionSystem: systems.NewCollisionSystem(em),
		spawnSystem:     systems.NewSpawnSystem(em, rm, world, cfg, rng),
		cullSystem:      systems.NewCullSystem(em),
		scenerySystem:   systems.NewScenerySystem(em),
		renderSystem:    systems.NewRenderSystem(em),

		gameLoop:    game.NewFrameLoop("game"),
		sceneryLoop: game.NewFrameLoop("scenery"),
		background:  game.NewImageSurface(cfg.Screen.Width, cfg.Screen.Height),
		foreground:  game.NewImageSurface(cfg.Screen.Width, cfg.Screen.Height),

		scores:  scores,
		audio:   audioManager,
		pollHop: utils.PollHopSignal,
	}

	hud, err := modules.NewHUDModule(world, scores)
	if err != nil {
		return nil, fmt.Errorf("failed to create HUD: %w", err)
	}
	s.hud = hud

	gameOver, err := modules.NewGameOverModule(world.CanvasWidth, world.CanvasHeight, modules.GameOverCallbacks{
		OnReset: func() {
			if err := s.Reset(); err != nil {
				log.Printf("[GameScene] Reset failed: %v", err)
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game over panel: %w", err)
	}
	s.gameOver = gameOver

	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetHopPoller 替换跳跃输入源（测试或自定义输入时使用）
func (s *GameScene) SetHopPoller(poller utils.HopPoller) {
	s.pollHop = poller
}

// World 返回世界状态
func (s *GameScene) World() *game.WorldState {
	return s.world
}

// Reset 开始新的一局
//
// 可以在任意状态下重复调用：背景层只创建一次，两个循环都不会重复启动，
// 旧的玩家、障碍物和胡萝卜全部清除后重新生成玩家和一个胡萝卜。
func (s *GameScene) Reset() error {
	s.world.ScrollSpeed = s.config.ScrollSpeed

	if !s.sceneryLoaded {
		if err := s.loadScenery(); err != nil {
			return err
		}
		s.sceneryLoaded = true
	}
	s.sceneryLoop.Start()

	s.clearEntities()

	playerID, err := entities.NewPlayerEntity(s.entityManager, s.resourceManager, s.world, s.config.Player)
	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}
	s.playerID = playerID
	s.spawnSystem.ReplaceCollectible()
	s.spawnSystem.ResetCounts()

	s.world.Score = 0
	s.world.Lost = false
	s.gameLoop.Start()
	s.gameOver.Hide()

	log.Printf("[GameScene] Game reset, scroll speed %.1f", s.world.ScrollSpeed)
	return nil
}

// loadScenery 按从远到近的顺序创建背景层
func (s *GameScene) loadScenery() error {
	for _, layer := range s.config.Scenery {
		if _, err := entities.NewSceneryEntity(s.entityManager, s.resourceManager, s.world, layer, s.config.ScrollSpeed); err != nil {
			return fmt.Errorf("failed to load scenery: %w", err)
		}
	}
	s.sceneryDirty = true
	log.Printf("[GameScene] Loaded %d scenery layers", len(s.config.Scenery))
	return nil
}

// clearEntities 移除玩家、所有障碍物和胡萝卜
func (s *GameScene) clearEntities() {
	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.CollectibleComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	// 立即清理，重置后的实体数量立刻准确
	s.entityManager.RemoveMarkedEntities()
	s.playerID = 0
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	deltaMs := deltaTime * 1000

	s.handleInput()

	// 面板在本帧游戏逻辑之前处理点击，重置后的第一帧立即开始运行
	s.gameOver.Update(deltaTime)

	if s.sceneryLoop.Tick(deltaMs) {
		s.scenerySystem.Update()
		s.sceneryDirty = true
	}

	if s.gameLoop.Tick(deltaMs) {
		s.step(s.gameLoop.ElapsedMs())
	}
}

// handleInput 处理跳跃输入，失败后忽略
func (s *GameScene) handleInput() {
	if s.pollHop == nil {
		return
	}
	signal := s.pollHop()
	if s.world.Lost {
		return
	}

	if signal.Pressed && s.playerSystem.Hop(s.playerID) {
		s.audio.PlaySound(game.SoundHop)
	}
	if signal.Released {
		s.playerSystem.ReleaseHop(s.playerID)
	}
}

// step 游戏循环的一帧
//
// 顺序：生成 -> 碰撞 -> 剔除 -> 移动 -> 玩家 -> 动画 -> 清理
func (s *GameScene) step(timeMs float64) {
	s.spawnSystem.Update(timeMs)

	if s.spawnSystem.Active(timeMs) {
		s.checkCollisions()
	}

	s.cullSystem.Update()
	s.scrollSystem.Update()
	s.playerSystem.Update(s.playerID, timeMs)
	s.animationSystem.Update(timeMs)

	s.entityManager.RemoveMarkedEntities()
}

// checkCollisions 处理玩家与障碍物、胡萝卜的碰撞
func (s *GameScene) checkCollisions() {
	result := s.collisionSystem.Check(s.playerID)
	if result.Hit {
		s.lose(result.HitKind)
		return
	}

	if len(result.Collected) > 0 {
		score := s.world.AddScore(result.Points)
		s.spawnSystem.ReplaceCollectible()
		s.audio.PlaySound(game.SoundCollect)
		log.Printf("[GameScene] Carrot collected, score %d", score)
	}
}

// lose 切换到失败状态
// 前景停止滚动，背景冻结，兔子回落待机，显示游戏结束面板
func (s *GameScene) lose(kind types.ObstacleKind) {
	if s.world.Lost {
		return
	}
	s.world.Lost = true
	s.world.ScrollSpeed = 0
	s.sceneryLoop.Stop()
	s.playerSystem.Idle(s.playerID)

	if s.scores.Submit(s.world.Score) {
		log.Printf("[GameScene] New best score %d", s.world.Score)
	}
	if err := s.scores.Save(); err != nil {
		log.Printf("[GameScene] Warning: failed to save score: %v", err)
	}

	s.audio.PlaySound(game.SoundLose)
	s.gameOver.Show()
	log.Printf("[GameScene] Hit a %s, final score %d", kind, s.world.Score)
}

// SaveOnExit 关闭窗口时保存最高分
func (s *GameScene) SaveOnExit() bool {
	if err := s.scores.Save(); err != nil {
		log.Printf("[GameScene] Warning: failed to save score on exit: %v", err)
		return false
	}
	return true
}

// Draw 绘制背景画布、前景画布和 UI
func (s *GameScene) Draw(screen *ebiten.Image) {
	// 背景循环停止时保留最后一帧
	if s.sceneryDirty {
		s.background.Clear()
		s.scenerySystem.Draw(s.background)
		s.sceneryDirty = false
	}
	s.renderSystem.Draw(s.foreground)

	screen.DrawImage(s.background.Image(), nil)
	screen.DrawImage(s.foreground.Image(), nil)

	s.hud.Draw(screen, s.gameLoop.ElapsedMs())
	s.gameOver.Draw(screen)
}
