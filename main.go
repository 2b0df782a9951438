package main

import (
	"flag"
	"log"

	"github.com/gonewx/hoppy/pkg/app"
	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用配置或当前时间）")
	configPath = flag.String("config", config.DefaultGameConfigPath, "游戏平衡配置文件路径（嵌入资源内）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	width, height := gameApp.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Hoppy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
