package components

// ScrollComponent 让实体随全局滚动速度水平移动
// 每帧 X -= (全局滚动速度 + RelativeSpeed)
type ScrollComponent struct {
	RelativeSpeed float64 // 相对前景的额外速度（像素/帧），正值向左
}
