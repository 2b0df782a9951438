package systems

import (
	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/game"
)

// RenderSystem 绘制游戏层（不含背景）
// 绘制顺序：障碍物（按生成顺序）→ 胡萝卜 → 玩家
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 清空画布并绘制所有游戏实体
func (s *RenderSystem) Draw(surface game.Surface) {
	surface.Clear()

	for _, id := range ecs.GetEntitiesWith2[*components.ObstacleComponent, *components.SpriteComponent](s.entityManager) {
		s.drawEntity(surface, id)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.SpriteComponent](s.entityManager) {
		s.drawEntity(surface, id)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.SpriteComponent](s.entityManager) {
		s.drawEntity(surface, id)
	}
}

// drawEntity 绘制实体当前姿势
// AnchorBottom 的实体绘制在 (X, Y - 高度)，AnchorTop 的实体绘制在 (X, Y)
func (s *RenderSystem) drawEntity(surface game.Surface, id ecs.EntityID) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	size, ok := ecs.GetComponent[*components.DrawSizeComponent](s.entityManager, id)
	if !ok {
		return
	}

	y := pos.Y
	if sprite.Anchor == components.AnchorBottom {
		y -= size.Height
	}
	surface.DrawRegion(sprite.Image, sprite.SourceRect(), pos.X, y, size.Width, size.Height)
}
