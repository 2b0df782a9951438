package components

// HitBoxComponent 定义障碍物的碰撞盒
// 碰撞盒比精灵绘制框小且居中，避免精灵图透明边缘造成不公平的碰撞
type HitBoxComponent struct {
	InsetX         float64 // 碰撞盒左边相对绘制框左边的偏移（占绘制宽度比例）
	InsetTop       float64 // 碰撞盒顶边相对基线向上的偏移（占绘制高度比例）
	WidthFraction  float64 // 碰撞盒宽度占绘制宽度比例
	HeightFraction float64 // 碰撞盒高度占绘制高度比例
}

// Rect 返回碰撞盒的左上角坐标和尺寸
// pos.Y 为障碍物基线
func (h *HitBoxComponent) Rect(pos *PositionComponent, size *DrawSizeComponent) (x, y, w, hh float64) {
	x = pos.X + h.InsetX*size.Width
	y = pos.Y - h.InsetTop*size.Height
	w = h.WidthFraction * size.Width
	hh = h.HeightFraction * size.Height
	return x, y, w, hh
}
