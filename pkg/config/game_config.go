package config

import (
	"fmt"
	"sort"

	"github.com/gonewx/hoppy/pkg/embedded"
	"github.com/gonewx/hoppy/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 游戏平衡配置文件的默认路径
const DefaultGameConfigPath = "data/hoppy.yaml"

// GameConfig 游戏平衡参数配置
// 所有数值均可通过 data/hoppy.yaml 覆盖，未出现在文件中的字段保留默认值
type GameConfig struct {
	Screen                 ScreenConfig             `yaml:"screen"`                 // 逻辑画布尺寸
	ScrollSpeed            float64                  `yaml:"scrollSpeed"`            // 前景滚动速度（像素/帧）
	StartupDelayMs         float64                  `yaml:"startupDelayMs"`         // 游戏开始后多久才开始生成障碍物（毫秒）
	SpawnChanceDenominator int                      `yaml:"spawnChanceDenominator"` // 每帧生成概率为 1/N
	Seed                   int64                    `yaml:"seed"`                   // 随机种子，0 表示使用当前时间
	Player                 PlayerConfig             `yaml:"player"`                 // 玩家（兔子）参数
	HitBox                 HitBoxConfig             `yaml:"hitBox"`                 // 障碍物碰撞盒内缩参数
	Collectible            CollectibleConfig        `yaml:"collectible"`            // 胡萝卜参数
	Scenery                []SceneryLayerConfig     `yaml:"scenery"`                // 视差背景层（从远到近）
	Obstacles              map[string]ObstacleStats `yaml:"obstacles"`              // 障碍物名称 -> 属性
	Audio                  AudioConfig              `yaml:"audio"`                  // 音效开关
}

// ScreenConfig 画布尺寸
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig 玩家角色参数
type PlayerConfig struct {
	XFraction         float64 `yaml:"xFraction"`         // 水平位置占画布宽度的比例
	GroundFraction    float64 `yaml:"groundFraction"`    // 地平线占画布高度的比例
	HeightFraction    float64 `yaml:"heightFraction"`    // 绘制高度占画布高度的比例
	PoseTimeNumerator float64 `yaml:"poseTimeNumerator"` // 每个姿势的时长 = numerator / scrollSpeed（毫秒）
	RunPoses          int     `yaml:"runPoses"`          // 奔跑精灵图姿势数
	HopPoses          int     `yaml:"hopPoses"`          // 跳跃精灵图姿势数
	IdlePoses         int     `yaml:"idlePoses"`         // 待机精灵图姿势数
	AscentSeconds     float64 `yaml:"ascentSeconds"`     // 跳跃开始到最高点的时间（秒）
	MaxLinearFraction float64 `yaml:"maxLinearFraction"` // 最长匀速上升时间占上升时间的比例
	IdleReturnSpeed   float64 `yaml:"idleReturnSpeed"`   // 待机状态下回落地面的速度（像素/帧）
	LinearPose        int     `yaml:"linearPose"`        // 匀速上升阶段使用的姿势
	BallisticPose     int     `yaml:"ballisticPose"`     // 抛物线阶段使用的姿势
	DescentPose       int     `yaml:"descentPose"`       // 超过上升时间后的下落姿势
}

// MaxLinearSeconds 返回最长匀速上升时间（秒）
func (p PlayerConfig) MaxLinearSeconds() float64 {
	return p.AscentSeconds * p.MaxLinearFraction
}

// HitBoxConfig 障碍物碰撞盒相对于精灵绘制框的内缩比例
// 碰撞盒 = (x + InsetX*w, y - InsetTop*h, WidthFraction*w, HeightFraction*h)
type HitBoxConfig struct {
	InsetX         float64 `yaml:"insetX"`
	InsetTop       float64 `yaml:"insetTop"`
	WidthFraction  float64 `yaml:"widthFraction"`
	HeightFraction float64 `yaml:"heightFraction"`
}

// CollectibleConfig 可收集物（胡萝卜）参数
type CollectibleConfig struct {
	HeightFraction float64 `yaml:"heightFraction"` // 绘制高度占画布高度的比例
	MaxYFraction   float64 `yaml:"maxYFraction"`   // 随机生成高度的上限比例（顶部 3/4）
	Points         int     `yaml:"points"`         // 每次收集的得分
	ImageCategory  string  `yaml:"imageCategory"`
}

// SceneryLayerConfig 单个视差背景层
type SceneryLayerConfig struct {
	Name          string  `yaml:"name"`          // 资源清单中 scenery 分类下的变体名
	SpeedFraction float64 `yaml:"speedFraction"` // 相对前景滚动速度的比例
}

// ObstacleStats 单个障碍物类型的属性
type ObstacleStats struct {
	ImageCategory     string  `yaml:"imageCategory"`     // 资源清单分类
	ImageVariant      string  `yaml:"imageVariant"`      // 变体名，为空时随机选择
	HeightFraction    float64 `yaml:"heightFraction"`    // 绘制高度占画布高度的比例
	NumPoses          int     `yaml:"numPoses"`          // 精灵图姿势数
	Speed             float64 `yaml:"speed"`             // 相对滚动速度（像素/帧），MaxSpeed > 0 时忽略
	MinSpeed          int     `yaml:"minSpeed"`          // 随机整数速度下限
	MaxSpeed          int     `yaml:"maxSpeed"`          // 随机整数速度上限（含），0 表示固定速度
	PoseTimeNumerator float64 `yaml:"poseTimeNumerator"` // 每个姿势的时长 = numerator / speed（毫秒）
	GroundFraction    float64 `yaml:"groundFraction"`    // 地面高度比例，0 表示随机高度
	MaxYFraction      float64 `yaml:"maxYFraction"`      // 随机高度的上限比例（仅 GroundFraction 为 0 时有效）
	Weight            int     `yaml:"weight"`            // 同类中随机选择的权重
}

// HasRandomSpeed 是否使用随机整数速度
func (s ObstacleStats) HasRandomSpeed() bool {
	return s.MaxSpeed > 0
}

// AudioConfig 音效配置
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// DefaultGameConfig 返回内置的默认平衡参数
// 3 秒启动延迟与 1/480 生成概率为有意的平衡参数（60fps 下约每 8 秒一次）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen:                 ScreenConfig{Width: 1200, Height: 600},
		ScrollSpeed:            3,
		StartupDelayMs:         3000,
		SpawnChanceDenominator: 480,
		Player: PlayerConfig{
			XFraction:         0.3,
			GroundFraction:    0.95,
			HeightFraction:    0.15,
			PoseTimeNumerator: 360,
			RunPoses:          6,
			HopPoses:          5,
			IdlePoses:         10,
			AscentSeconds:     1,
			MaxLinearFraction: 1.0 / 3.0,
			IdleReturnSpeed:   8,
			LinearPose:        1,
			BallisticPose:     2,
			DescentPose:       3,
		},
		HitBox: HitBoxConfig{
			InsetX:         0.2,
			InsetTop:       0.7,
			WidthFraction:  0.6,
			HeightFraction: 0.6,
		},
		Collectible: CollectibleConfig{
			HeightFraction: 0.1,
			MaxYFraction:   0.75,
			Points:         1,
			ImageCategory:  "carrot",
		},
		Scenery: []SceneryLayerConfig{
			{Name: "background", SpeedFraction: 0.5},
			{Name: "midground", SpeedFraction: 0.75},
			{Name: "foreground", SpeedFraction: 1},
		},
		Obstacles: map[string]ObstacleStats{
			types.ObstacleNameBird: {
				ImageCategory:     "birds",
				HeightFraction:    0.12,
				NumPoses:          3,
				MinSpeed:          1,
				MaxSpeed:          5,
				PoseTimeNumerator: 400,
				MaxYFraction:      0.5,
				Weight:            1,
			},
			types.ObstacleNameDeer: {
				ImageCategory:     "largeMammals",
				ImageVariant:      "deer",
				HeightFraction:    0.5,
				NumPoses:          8,
				Speed:             4,
				PoseTimeNumerator: 325,
				GroundFraction:    0.95,
				Weight:            1,
			},
			types.ObstacleNameFox: {
				ImageCategory:     "largeMammals",
				ImageVariant:      "fox",
				HeightFraction:    0.25,
				NumPoses:          6,
				Speed:             4,
				PoseTimeNumerator: 400,
				GroundFraction:    0.95,
				Weight:            1,
			},
			types.ObstacleNameWolf: {
				ImageCategory:     "largeMammals",
				ImageVariant:      "wolf",
				HeightFraction:    0.35,
				NumPoses:          8,
				Speed:             1.8,
				PoseTimeNumerator: 200,
				GroundFraction:    0.95,
				Weight:            1,
			},
		},
		Audio: AudioConfig{Enabled: true, Volume: 0.6},
	}
}

// LoadGameConfig 从嵌入资源加载游戏平衡配置
// 参数：
//
//	filepath - 配置文件路径（如 "data/hoppy.yaml"）
//
// 返回：
//
//	*GameConfig - 默认值叠加文件内容后的配置
//	error - 读取、解析或校验失败时返回
func LoadGameConfig(filepath string) (*GameConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filepath, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 内容并叠加到默认配置上
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.ScrollSpeed <= 0 {
		return fmt.Errorf("scrollSpeed must be > 0, got %v", cfg.ScrollSpeed)
	}
	if cfg.StartupDelayMs < 0 {
		return fmt.Errorf("startupDelayMs must be >= 0, got %v", cfg.StartupDelayMs)
	}
	if cfg.SpawnChanceDenominator < 1 {
		return fmt.Errorf("spawnChanceDenominator must be >= 1, got %d", cfg.SpawnChanceDenominator)
	}

	if err := validatePlayer(cfg.Player); err != nil {
		return fmt.Errorf("player: %w", err)
	}

	hb := cfg.HitBox
	if hb.WidthFraction <= 0 || hb.HeightFraction <= 0 {
		return fmt.Errorf("hitBox fractions must be > 0")
	}

	if cfg.Collectible.HeightFraction <= 0 || cfg.Collectible.HeightFraction > 1 {
		return fmt.Errorf("collectible.heightFraction must be in (0, 1], got %v", cfg.Collectible.HeightFraction)
	}
	if cfg.Collectible.MaxYFraction <= 0 || cfg.Collectible.MaxYFraction > 1 {
		return fmt.Errorf("collectible.maxYFraction must be in (0, 1], got %v", cfg.Collectible.MaxYFraction)
	}
	if cfg.Collectible.ImageCategory == "" {
		return fmt.Errorf("collectible.imageCategory cannot be empty")
	}

	if len(cfg.Scenery) == 0 {
		return fmt.Errorf("at least one scenery layer is required")
	}
	for i, layer := range cfg.Scenery {
		if layer.Name == "" {
			return fmt.Errorf("scenery[%d]: name cannot be empty", i)
		}
		if layer.SpeedFraction < 0 {
			return fmt.Errorf("scenery %s: speedFraction must be >= 0, got %v", layer.Name, layer.SpeedFraction)
		}
	}

	if _, ok := cfg.Obstacles[types.ObstacleNameBird]; !ok {
		return fmt.Errorf("obstacles: %s is required", types.ObstacleNameBird)
	}
	mammals := 0
	for name, stats := range cfg.Obstacles {
		kind, err := types.ParseObstacleKind(name)
		if err != nil {
			return fmt.Errorf("obstacles: %w", err)
		}
		if err := validateObstacle(name, stats); err != nil {
			return err
		}
		if kind.IsMammal() && stats.Weight > 0 {
			mammals++
		}
	}
	if mammals == 0 {
		return fmt.Errorf("obstacles: at least one mammal with weight > 0 is required")
	}

	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %v", cfg.Audio.Volume)
	}
	return nil
}

func validatePlayer(p PlayerConfig) error {
	if p.HeightFraction <= 0 || p.HeightFraction >= p.GroundFraction {
		return fmt.Errorf("heightFraction must be in (0, groundFraction), got %v", p.HeightFraction)
	}
	if p.GroundFraction <= 0 || p.GroundFraction > 1 {
		return fmt.Errorf("groundFraction must be in (0, 1], got %v", p.GroundFraction)
	}
	if p.RunPoses < 1 || p.HopPoses < 1 || p.IdlePoses < 1 {
		return fmt.Errorf("pose counts must be >= 1")
	}
	for _, pose := range []int{p.LinearPose, p.BallisticPose, p.DescentPose} {
		if pose < 0 || pose >= p.HopPoses {
			return fmt.Errorf("hop pose %d out of range [0, %d)", pose, p.HopPoses)
		}
	}
	if p.AscentSeconds <= 0 {
		return fmt.Errorf("ascentSeconds must be > 0, got %v", p.AscentSeconds)
	}
	// maxLinearFraction >= 0.5 时提前松开的跳跃会在到达最高点时间之前落到地平线以下
	if p.MaxLinearFraction < 0 || p.MaxLinearFraction >= 0.5 {
		return fmt.Errorf("maxLinearFraction must be in [0, 0.5), got %v", p.MaxLinearFraction)
	}
	if p.PoseTimeNumerator <= 0 {
		return fmt.Errorf("poseTimeNumerator must be > 0, got %v", p.PoseTimeNumerator)
	}
	if p.IdleReturnSpeed <= 0 {
		return fmt.Errorf("idleReturnSpeed must be > 0, got %v", p.IdleReturnSpeed)
	}
	return nil
}

func validateObstacle(name string, s ObstacleStats) error {
	if s.ImageCategory == "" {
		return fmt.Errorf("obstacle %s: imageCategory cannot be empty", name)
	}
	if s.HeightFraction <= 0 || s.HeightFraction > 1 {
		return fmt.Errorf("obstacle %s: heightFraction must be in (0, 1], got %v", name, s.HeightFraction)
	}
	if s.NumPoses < 1 {
		return fmt.Errorf("obstacle %s: numPoses must be >= 1, got %d", name, s.NumPoses)
	}
	if s.PoseTimeNumerator <= 0 {
		return fmt.Errorf("obstacle %s: poseTimeNumerator must be > 0, got %v", name, s.PoseTimeNumerator)
	}
	if s.HasRandomSpeed() {
		if s.MinSpeed < 1 || s.MinSpeed > s.MaxSpeed {
			return fmt.Errorf("obstacle %s: speed range [%d, %d] is invalid", name, s.MinSpeed, s.MaxSpeed)
		}
	} else if s.Speed <= 0 {
		// 速度参与姿势时长计算，必须为正
		return fmt.Errorf("obstacle %s: speed must be > 0, got %v", name, s.Speed)
	}
	if s.GroundFraction == 0 && (s.MaxYFraction <= 0 || s.MaxYFraction > 1) {
		return fmt.Errorf("obstacle %s: maxYFraction must be in (0, 1] for airborne obstacles", name)
	}
	if s.Weight < 0 {
		return fmt.Errorf("obstacle %s: weight must be >= 0, got %d", name, s.Weight)
	}
	return nil
}

// ObstacleStatsFor 返回指定类型的障碍物属性
func (cfg *GameConfig) ObstacleStatsFor(kind types.ObstacleKind) (ObstacleStats, bool) {
	stats, ok := cfg.Obstacles[kind.String()]
	return stats, ok
}

// WeightedMammals 返回权重大于 0 的哺乳动物类型及其权重（按名称排序，保证随机选择可复现）
func (cfg *GameConfig) WeightedMammals() ([]types.ObstacleKind, []int) {
	names := make([]string, 0, len(cfg.Obstacles))
	for name := range cfg.Obstacles {
		names = append(names, name)
	}
	sort.Strings(names)

	var kinds []types.ObstacleKind
	var weights []int
	for _, name := range names {
		kind, err := types.ParseObstacleKind(name)
		if err != nil || !kind.IsMammal() {
			continue
		}
		if w := cfg.Obstacles[name].Weight; w > 0 {
			kinds = append(kinds, kind)
			weights = append(weights, w)
		}
	}
	return kinds, weights
}
