package game

// WorldState 保存整局游戏共享的可变状态
// 由 GameScene 创建并传递给各个系统，不使用全局单例
type WorldState struct {
	CanvasWidth  float64 // 画布宽度（像素）
	CanvasHeight float64 // 画布高度（像素）

	ScrollSpeed float64 // 前景滚动速度（像素/帧），失败时为 0
	Score       int     // 本局收集的胡萝卜数
	Lost        bool    // 是否已失败（等待重置）
}

// NewWorldState 创建世界状态，初始为失败状态，等待第一次重置开始游戏
func NewWorldState(width, height int) *WorldState {
	return &WorldState{
		CanvasWidth:  float64(width),
		CanvasHeight: float64(height),
		Lost:         true,
	}
}

// AddScore 增加分数并返回新分数
// 分数只增不减，负数被忽略
func (w *WorldState) AddScore(points int) int {
	if points > 0 {
		w.Score += points
	}
	return w.Score
}
