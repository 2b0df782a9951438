package utils

// PlayerOverlaps 判断玩家绘制框与给定矩形是否重叠（严格不等式，边缘相接不算碰撞）
//
// 玩家绘制框以 (px, py) 为左下角：水平范围 [px, px+pw]，垂直范围 [py-ph, py]
// 目标矩形以 (x, y) 为左上角：水平范围 [x, x+w]，垂直范围 [y, y+h]
func PlayerOverlaps(px, py, pw, ph, x, y, w, h float64) bool {
	return x < px+pw &&
		x+w > px &&
		y < py &&
		y+h > py-ph
}
