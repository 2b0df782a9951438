package components

// PositionComponent 存储实体在画布上的位置
// 对动物类实体，Y 是脚底所在的基线（精灵图绘制在 Y - 绘制高度 处）；
// 对胡萝卜和背景层，Y 是绘制框的顶边
type PositionComponent struct {
	X float64
	Y float64
}
