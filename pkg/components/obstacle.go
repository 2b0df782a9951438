package components

import "github.com/gonewx/hoppy/pkg/types"

// ObstacleComponent 标记实体为障碍物
// 障碍物从画布右边缘生成，完全移出左边缘后被移除
type ObstacleComponent struct {
	Kind types.ObstacleKind
}
