package systems

import (
	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/ecs"
)

// AnimationSystem 根据时间戳为精灵图选择当前姿势
// 所有动画共用游戏循环的时钟：姿势 = floor(time / timePerPose) mod 姿势数
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Update 更新所有未暂停动画的姿势
//
// 参数:
//   - timeMs: 游戏循环时钟（毫秒）
func (s *AnimationSystem) Update(timeMs float64) {
	entities := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.AnimationComponent](s.entityManager)
	for _, id := range entities {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if anim.Paused {
			continue
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		sprite.CurrentPose = anim.PoseAt(timeMs, sprite.NumPoses)
	}
}
