package components

// SceneryComponent 视差背景层
// 图像从左到右平铺 NumDraws 次以覆盖整个画布，X <= -绘制宽度时回绕到 0
type SceneryComponent struct {
	Name     string  // 层名称（background / midground / foreground）
	Speed    float64 // 滚动速度（像素/帧），为前景速度的固定比例
	NumDraws int     // 平铺次数 = ceil(画布宽度 / 绘制宽度) + 1
}
