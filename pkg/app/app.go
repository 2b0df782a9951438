// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/embedded"
	"github.com/gonewx/hoppy/pkg/game"
	"github.com/gonewx/hoppy/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName 存档目录名
const AppName = "hoppy"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用配置文件中的种子，仍为 0 时使用当前时间
	Seed int64
	// ConfigPath 游戏平衡配置路径，为空时使用 data/hoppy.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameConfig               *config.GameConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 任何图片加载失败都会返回错误，游戏不会启动。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultGameConfigPath
	}
	gameConfig, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded game config from %s", configPath)

	seed := cfg.Seed
	if seed == 0 {
		seed = gameConfig.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[App] Random seed: %d", seed)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器并等待所有图片加载完成
	resourceManager := game.NewResourceManager(embedded.FS(), audioContext, rng)
	if err := resourceManager.LoadResourceConfig(game.DefaultResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadAll(); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	// 最高分存储，打开失败时降级为内存记录
	gdataManager, err := game.OpenStorage(AppName)
	if err != nil {
		log.Printf("[App] Warning: score storage unavailable: %v (scores will not persist)", err)
		gdataManager = nil
	}
	scores := game.NewScoreManager(gdataManager)

	audioManager := game.NewAudioManager(resourceManager, gameConfig.Audio.Enabled, gameConfig.Audio.Volume)
	log.Printf("[App] AudioManager initialized")

	gameScene, err := scenes.NewGameScene(resourceManager, gameConfig, scores, audioManager, rng)
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 关闭窗口前保存最高分
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// ScreenSize 返回配置的画布尺寸，用于设置窗口大小
func (a *App) ScreenSize() (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}
