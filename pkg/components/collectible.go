package components

// CollectibleComponent 标记实体为可收集物（胡萝卜）
// 同一时刻只存在一个，被收集或移出画布后立即替换
type CollectibleComponent struct {
	Points int // 收集时增加的分数
}
