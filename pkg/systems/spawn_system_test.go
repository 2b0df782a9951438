package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/ecs"
)

func newSpawnFixture(seed int64) (*ecs.EntityManager, *SpawnSystem) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	return em, NewSpawnSystem(em, newTestResources(), newTestWorld(), cfg, rand.New(rand.NewSource(seed)))
}

func TestSpawnRateMatchesChance(t *testing.T) {
	em, spawn := newSpawnFixture(2024)

	const frames = 480 * 200
	for i := 0; i < frames; i++ {
		spawn.Update(4000 + float64(i)*frameMs)
		// 定期清空障碍物，避免实体无限增长
		if i%1000 == 0 {
			em.Clear()
		}
	}

	birds, mammals := spawn.Counts()
	// 期望 200 次，标准差约 14
	for name, n := range map[string]int{"birds": birds, "mammals": mammals} {
		if n < 140 || n > 260 {
			t.Errorf("%s spawned %d times over %d frames, want about %d", name, n, frames, frames/480)
		}
	}
}

func TestNoSpawnDuringStartupDelay(t *testing.T) {
	_, spawn := newSpawnFixture(1)

	for i := 0; i < 180; i++ {
		spawn.Update(float64(i) * frameMs)
	}
	if birds, mammals := spawn.Counts(); birds != 0 || mammals != 0 {
		t.Errorf("spawned %d birds and %d mammals during the startup delay", birds, mammals)
	}
	if spawn.Active(3000) {
		t.Error("spawning must start strictly after 3000ms")
	}
	if !spawn.Active(3000.1) {
		t.Error("spawning should be active after the delay")
	}
}

func TestNoSpawnWhileLost(t *testing.T) {
	_, spawn := newSpawnFixture(1)
	spawn.world.Lost = true

	for i := 0; i < 5000; i++ {
		spawn.Update(10000 + float64(i)*frameMs)
	}
	if birds, mammals := spawn.Counts(); birds != 0 || mammals != 0 {
		t.Errorf("spawned %d birds and %d mammals while lost", birds, mammals)
	}
}

func TestReplaceCollectibleKeepsExactlyOne(t *testing.T) {
	em, spawn := newSpawnFixture(5)

	first := spawn.ReplaceCollectible()
	second := spawn.ReplaceCollectible()
	em.RemoveMarkedEntities()

	carrots := ecs.GetEntitiesWith1[*components.CollectibleComponent](em)
	if len(carrots) != 1 || carrots[0] != second {
		t.Fatalf("carrots = %v, want only %d", carrots, second)
	}
	if em.IsAlive(first) {
		t.Error("replaced carrot should be destroyed")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, second)
	if pos.X != 1200 || pos.Y < 0 || pos.Y >= 450 {
		t.Errorf("new carrot at (%v, %v), want x=1200, y in top 3/4", pos.X, pos.Y)
	}
}

func TestOffscreenCarrotIsReplaced(t *testing.T) {
	em, spawn := newSpawnFixture(5)
	id := spawn.ReplaceCollectible()
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	size, _ := ecs.GetComponent[*components.DrawSizeComponent](em, id)

	// 恰好等于 -宽度 时不替换（严格小于）
	pos.X = -size.Width
	spawn.Update(5000)
	if !em.IsAlive(id) || !ecs.HasComponent[*components.CollectibleComponent](em, id) {
		t.Fatal("carrot at exactly -width must not be replaced yet")
	}

	pos.X = -size.Width - 1
	spawn.Update(5000 + frameMs)
	em.RemoveMarkedEntities()
	if em.IsAlive(id) {
		t.Error("offscreen carrot should be replaced")
	}
	if n := len(ecs.GetEntitiesWith1[*components.CollectibleComponent](em)); n != 1 {
		t.Errorf("carrot count = %d, want 1", n)
	}
}
