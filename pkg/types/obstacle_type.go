// Package types 定义共享的基础类型
package types

import "fmt"

// ObstacleKind 定义障碍物的种类
type ObstacleKind int

const (
	// ObstacleUnknown 未知障碍物类型
	ObstacleUnknown ObstacleKind = iota

	// 飞行类（随机高度）
	ObstacleBird // 小鸟

	// 地面哺乳动物（与玩家同一地平线）
	ObstacleDeer // 鹿
	ObstacleFox  // 狐狸
	ObstacleWolf // 狼
)

// 配置文件与资源清单中使用的障碍物名称
const (
	ObstacleNameBird = "bird"
	ObstacleNameDeer = "deer"
	ObstacleNameFox  = "fox"
	ObstacleNameWolf = "wolf"
)

// MammalKinds 返回所有地面哺乳动物类型（生成器从中选择）
func MammalKinds() []ObstacleKind {
	return []ObstacleKind{ObstacleDeer, ObstacleFox, ObstacleWolf}
}

// IsMammal 判断是否为地面哺乳动物
func (k ObstacleKind) IsMammal() bool {
	return k == ObstacleDeer || k == ObstacleFox || k == ObstacleWolf
}

// String 返回障碍物名称
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleBird:
		return ObstacleNameBird
	case ObstacleDeer:
		return ObstacleNameDeer
	case ObstacleFox:
		return ObstacleNameFox
	case ObstacleWolf:
		return ObstacleNameWolf
	default:
		return "unknown"
	}
}

// ParseObstacleKind 将配置中的名称解析为 ObstacleKind
func ParseObstacleKind(name string) (ObstacleKind, error) {
	switch name {
	case ObstacleNameBird:
		return ObstacleBird, nil
	case ObstacleNameDeer:
		return ObstacleDeer, nil
	case ObstacleNameFox:
		return ObstacleFox, nil
	case ObstacleNameWolf:
		return ObstacleWolf, nil
	}
	return ObstacleUnknown, fmt.Errorf("unknown obstacle kind: %q", name)
}
