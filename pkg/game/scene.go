package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 表示一个游戏场景
// 每个场景拥有独立的更新与绘制逻辑
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，场景在程序退出前保存持久化数据（如最高分）
type Saveable interface {
	// SaveOnExit 返回 true 表示保存成功或无需保存
	SaveOnExit() bool
}
