package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/entities"
	"github.com/gonewx/hoppy/pkg/types"
)

func TestRenderOrderAndAnchors(t *testing.T) {
	em := ecs.NewEntityManager()
	rm := newTestResources()
	world := newTestWorld()
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(9))

	// 故意先创建玩家，绘制顺序仍应为 障碍物 → 胡萝卜 → 玩家
	if _, err := entities.NewPlayerEntity(em, rm, world, cfg.Player); err != nil {
		t.Fatal(err)
	}
	if _, err := entities.NewCarrotEntity(em, rm, world, cfg.Collectible, rng); err != nil {
		t.Fatal(err)
	}
	if _, err := entities.NewObstacleEntity(em, rm, world, cfg, types.ObstacleWolf, rng); err != nil {
		t.Fatal(err)
	}

	surface := &recordingSurface{}
	NewRenderSystem(em).Draw(surface)

	if surface.clears != 1 {
		t.Errorf("Clear called %d times, want 1", surface.clears)
	}
	if len(surface.calls) != 3 {
		t.Fatalf("draw calls = %d, want 3", len(surface.calls))
	}

	wolf, carrot, player := surface.calls[0], surface.calls[1], surface.calls[2]

	// 动物以底边对齐基线
	if wolf.dx != 1200 || wolf.dy != 570-210 {
		t.Errorf("wolf drawn at (%v, %v), want (1200, 360)", wolf.dx, wolf.dy)
	}
	if player.dx != 360 || player.dy != 480 || player.dw != 90 {
		t.Errorf("player drawn at (%v, %v) w=%v, want (360, 480) w=90", player.dx, player.dy, player.dw)
	}
	// 胡萝卜以左上角为锚点
	if carrot.dx != 1200 || carrot.dh != 60 {
		t.Errorf("carrot drawn at x=%v h=%v, want x=1200 h=60", carrot.dx, carrot.dh)
	}
	// 单个姿势的源矩形
	if player.srcRect.Dx() != 10 {
		t.Errorf("player source width = %d, want one pose (10)", player.srcRect.Dx())
	}
}
