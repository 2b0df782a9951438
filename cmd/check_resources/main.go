// check_resources 检查资源清单与游戏配置是否一致
//
// 检查内容：
//   - assets/config/resources.yaml 能正确解析，所有图片能解码，所有音效是合法的 WAV
//   - data/hoppy.yaml 能正确解析并通过校验
//   - 每张精灵图的宽度能被配置中的姿势数整除，背景层和胡萝卜引用的图片存在
//
// 用法：
//
//	go run ./cmd/check_resources -root .
//
// 发现任何问题时以非零状态退出。
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"sort"

	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var (
	root       = flag.String("root", ".", "项目根目录（包含 assets/ 和 data/）")
	configPath = flag.String("config", config.DefaultGameConfigPath, "游戏平衡配置文件路径")
)

func main() {
	flag.Parse()

	problems := check(os.DirFS(*root), *configPath)
	if len(problems) > 0 {
		fmt.Printf("发现 %d 个问题:\n", len(problems))
		for _, p := range problems {
			fmt.Printf("  ✗ %s\n", p)
		}
		os.Exit(1)
	}
	fmt.Println("✓ 资源清单与游戏配置检查通过")
}

// check 执行全部检查，返回问题列表
func check(fsys fs.FS, gameConfigPath string) []string {
	var problems []string

	manifestData, err := fs.ReadFile(fsys, game.DefaultResourceConfigPath)
	if err != nil {
		return []string{fmt.Sprintf("读取资源清单失败: %v", err)}
	}
	manifest, err := game.ParseResourceConfig(manifestData)
	if err != nil {
		return []string{fmt.Sprintf("资源清单无效: %v", err)}
	}

	configData, err := fs.ReadFile(fsys, gameConfigPath)
	if err != nil {
		return []string{fmt.Sprintf("读取游戏配置失败: %v", err)}
	}
	cfg, err := config.ParseGameConfig(configData)
	if err != nil {
		return []string{fmt.Sprintf("游戏配置无效: %v", err)}
	}

	// 读取所有图片的宽度
	widths := make(map[string]map[string]int)
	for name, category := range manifest.Categories {
		widths[name] = make(map[string]int)
		for _, img := range category.Images {
			p := manifest.ImagePath(img)
			w, err := imageWidth(fsys, p)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s/%s: %s: %v", name, img.ID, p, err))
				continue
			}
			widths[name][img.ID] = w
		}
	}

	for _, sound := range manifest.Sounds {
		p := manifest.SoundPath(sound)
		if err := checkWAV(fsys, p); err != nil {
			problems = append(problems, fmt.Sprintf("sound %s: %s: %v", sound.ID, p, err))
		}
	}

	// 精灵图宽度与姿势数
	playerPoses := map[string]int{
		"run":  cfg.Player.RunPoses,
		"hop":  cfg.Player.HopPoses,
		"idle": cfg.Player.IdlePoses,
	}
	for variant, n := range playerPoses {
		problems = append(problems, checkPoses(widths, "rabbit", variant, n)...)
	}
	for name, stats := range cfg.Obstacles {
		if stats.ImageVariant != "" {
			problems = append(problems, checkPoses(widths, stats.ImageCategory, stats.ImageVariant, stats.NumPoses)...)
			continue
		}
		if len(widths[stats.ImageCategory]) == 0 {
			problems = append(problems, fmt.Sprintf("obstacle %s: image category %q is missing", name, stats.ImageCategory))
		}
		for variant := range widths[stats.ImageCategory] {
			problems = append(problems, checkPoses(widths, stats.ImageCategory, variant, stats.NumPoses)...)
		}
	}
	if len(widths[cfg.Collectible.ImageCategory]) == 0 {
		problems = append(problems, fmt.Sprintf("collectible: image category %q is missing", cfg.Collectible.ImageCategory))
	}
	for _, layer := range cfg.Scenery {
		if _, ok := widths["scenery"][layer.Name]; !ok {
			problems = append(problems, fmt.Sprintf("scenery layer %q has no image", layer.Name))
		}
	}

	sort.Strings(problems)
	return problems
}

func imageWidth(fsys fs.FS, path string) (int, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, err
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return 0, fmt.Errorf("image has zero size")
	}
	return cfg.Width, nil
}

func checkWAV(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return err
	}
	_, err = wav.DecodeWithoutResampling(bytes.NewReader(data))
	return err
}

// checkPoses 检查精灵图宽度能否被姿势数整除
func checkPoses(widths map[string]map[string]int, category, variant string, numPoses int) []string {
	w, ok := widths[category][variant]
	if !ok {
		return []string{fmt.Sprintf("%s/%s: image is missing", category, variant)}
	}
	if numPoses > 0 && w%numPoses != 0 {
		return []string{fmt.Sprintf("%s/%s: width %d is not a multiple of %d poses", category, variant, w, numPoses)}
	}
	return nil
}
