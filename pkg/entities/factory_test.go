package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/hoppy/pkg/components"
	"github.com/gonewx/hoppy/pkg/config"
	"github.com/gonewx/hoppy/pkg/ecs"
	"github.com/gonewx/hoppy/pkg/game"
	"github.com/gonewx/hoppy/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// newTestResources 注册测试用的精灵图（每个姿势 10x10 像素）
func newTestResources() *game.ResourceManager {
	rm := game.NewResourceManager(nil, nil, rand.New(rand.NewSource(1)))
	rm.AddImage("rabbit", "run", ebiten.NewImage(60, 10))
	rm.AddImage("rabbit", "hop", ebiten.NewImage(50, 10))
	rm.AddImage("rabbit", "idle", ebiten.NewImage(100, 10))
	rm.AddImage("largeMammals", "deer", ebiten.NewImage(80, 10))
	rm.AddImage("largeMammals", "fox", ebiten.NewImage(60, 10))
	rm.AddImage("largeMammals", "wolf", ebiten.NewImage(80, 10))
	rm.AddImage("birds", "cardinal", ebiten.NewImage(30, 10))
	rm.AddImage("birds", "robin", ebiten.NewImage(30, 10))
	rm.AddImage("carrot", "carrot", ebiten.NewImage(10, 20))
	rm.AddImage("scenery", "background", ebiten.NewImage(272, 160))
	return rm
}

func newTestWorld() *game.WorldState {
	w := game.NewWorldState(1200, 600)
	w.ScrollSpeed = 3
	w.Lost = false
	return w
}

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewPlayerEntity(em, newTestResources(), newTestWorld(), cfg.Player)
	if err != nil {
		t.Fatalf("NewPlayerEntity error: %v", err)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 360 || pos.Y != 570 {
		t.Errorf("player position = (%v, %v), want (360, 570)", pos.X, pos.Y)
	}

	size, _ := ecs.GetComponent[*components.DrawSizeComponent](em, id)
	if size.Width != 90 || size.Height != 90 {
		t.Errorf("player size = %vx%v, want 90x90", size.Width, size.Height)
	}

	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	if anim.TimePerPose != 120 {
		t.Errorf("TimePerPose = %v, want 360/3 = 120", anim.TimePerPose)
	}

	scroll, _ := ecs.GetComponent[*components.ScrollComponent](em, id)
	if scroll.RelativeSpeed != -3 {
		t.Errorf("RelativeSpeed = %v, want -3", scroll.RelativeSpeed)
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatal("player component missing")
	}
	if player.State != components.PlayerRunning {
		t.Errorf("initial state = %v, want run", player.State)
	}
	if math.Abs(player.Accel-1080) > 1e-6 || math.Abs(player.V0+720) > 1e-6 {
		t.Errorf("hop coefficients = (%v, %v), want (1080, -720)", player.Accel, player.V0)
	}
	if player.Sheets[components.PlayerIdle].NumPoses != 10 {
		t.Errorf("idle poses = %d, want 10", player.Sheets[components.PlayerIdle].NumPoses)
	}
}

func TestNewPlayerEntityMissingSheet(t *testing.T) {
	rm := game.NewResourceManager(nil, nil, nil)
	rm.AddImage("rabbit", "run", ebiten.NewImage(60, 10))

	_, err := NewPlayerEntity(ecs.NewEntityManager(), rm, newTestWorld(), config.DefaultGameConfig().Player)
	if err == nil {
		t.Error("expected error when hop/idle sheets are missing")
	}
}

func TestNewObstacleEntity(t *testing.T) {
	cfg := config.DefaultGameConfig()
	world := newTestWorld()
	rm := newTestResources()

	tests := []struct {
		kind      types.ObstacleKind
		wantSpeed float64
		wantH     float64
		wantTPP   float64
	}{
		{types.ObstacleDeer, 4, 300, 325.0 / 4},
		{types.ObstacleFox, 4, 150, 100},
		{types.ObstacleWolf, 1.8, 210, 200 / 1.8},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, err := NewObstacleEntity(em, rm, world, cfg, tt.kind, rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("NewObstacleEntity error: %v", err)
			}

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.X != 1200 || pos.Y != 570 {
				t.Errorf("position = (%v, %v), want (1200, 570)", pos.X, pos.Y)
			}
			scroll, _ := ecs.GetComponent[*components.ScrollComponent](em, id)
			if scroll.RelativeSpeed != tt.wantSpeed {
				t.Errorf("speed = %v, want %v", scroll.RelativeSpeed, tt.wantSpeed)
			}
			size, _ := ecs.GetComponent[*components.DrawSizeComponent](em, id)
			if size.Height != tt.wantH || size.Width != tt.wantH {
				t.Errorf("size = %vx%v, want %vx%v", size.Width, size.Height, tt.wantH, tt.wantH)
			}
			anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
			if math.Abs(anim.TimePerPose-tt.wantTPP) > 1e-9 {
				t.Errorf("TimePerPose = %v, want %v", anim.TimePerPose, tt.wantTPP)
			}
			if !ecs.HasComponent[*components.HitBoxComponent](em, id) {
				t.Error("obstacle must have a hit box")
			}
		})
	}
}

func TestNewBirdEntityRandomness(t *testing.T) {
	cfg := config.DefaultGameConfig()
	world := newTestWorld()
	rm := newTestResources()
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(7))

	speeds := make(map[float64]bool)
	for i := 0; i < 200; i++ {
		id, err := NewBirdEntity(em, rm, world, cfg, rng)
		if err != nil {
			t.Fatalf("NewBirdEntity error: %v", err)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.Y < 0 || pos.Y >= 300 {
			t.Fatalf("bird y = %v, want within top half [0, 300)", pos.Y)
		}
		scroll, _ := ecs.GetComponent[*components.ScrollComponent](em, id)
		if scroll.RelativeSpeed < 1 || scroll.RelativeSpeed > 5 {
			t.Fatalf("bird speed = %v, want 1..5", scroll.RelativeSpeed)
		}
		speeds[scroll.RelativeSpeed] = true

		anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
		if anim.TimePerPose != 400/scroll.RelativeSpeed {
			t.Fatalf("bird TimePerPose = %v, want 400/%v", anim.TimePerPose, scroll.RelativeSpeed)
		}
	}
	if len(speeds) != 5 {
		t.Errorf("expected all 5 integer speeds, got %v", speeds)
	}
}

func TestPickMammalUniform(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(3))

	counts := make(map[types.ObstacleKind]int)
	const n = 9000
	for i := 0; i < n; i++ {
		kind, err := PickMammal(cfg, rng)
		if err != nil {
			t.Fatalf("PickMammal error: %v", err)
		}
		counts[kind]++
	}
	for _, kind := range types.MammalKinds() {
		if c := counts[kind]; c < n/3-300 || c > n/3+300 {
			t.Errorf("%s picked %d times, want about %d", kind, c, n/3)
		}
	}
}

func TestPickMammalWeights(t *testing.T) {
	cfg := config.DefaultGameConfig()
	fox := cfg.Obstacles[types.ObstacleNameFox]
	fox.Weight = 0
	cfg.Obstacles[types.ObstacleNameFox] = fox

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		kind, _ := PickMammal(cfg, rng)
		if kind == types.ObstacleFox {
			t.Fatal("fox has weight 0 and must never be picked")
		}
	}
}

func TestNewCarrotEntity(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(11))
	rm := newTestResources()
	world := newTestWorld()

	for i := 0; i < 100; i++ {
		id, err := NewCarrotEntity(em, rm, world, cfg.Collectible, rng)
		if err != nil {
			t.Fatalf("NewCarrotEntity error: %v", err)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X != 1200 {
			t.Fatalf("carrot x = %v, want 1200", pos.X)
		}
		if pos.Y < 0 || pos.Y >= 450 {
			t.Fatalf("carrot y = %v, want within top 3/4 [0, 450)", pos.Y)
		}
	}

	carrots := ecs.GetEntitiesWith1[*components.CollectibleComponent](em)
	size, _ := ecs.GetComponent[*components.DrawSizeComponent](em, carrots[0])
	if size.Height != 60 || size.Width != 30 {
		t.Errorf("carrot size = %vx%v, want 30x60", size.Width, size.Height)
	}
}

func TestNewSceneryEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	layer := config.SceneryLayerConfig{Name: "background", SpeedFraction: 0.5}

	id, err := NewSceneryEntity(em, newTestResources(), newTestWorld(), layer, 3)
	if err != nil {
		t.Fatalf("NewSceneryEntity error: %v", err)
	}

	size, _ := ecs.GetComponent[*components.DrawSizeComponent](em, id)
	// 272x160 缩放到高度 600：宽度 = floor(600 * 1.7) = 1020
	if size.Height != 600 || size.Width != 1020 {
		t.Errorf("scenery size = %vx%v, want 1020x600", size.Width, size.Height)
	}

	scenery, _ := ecs.GetComponent[*components.SceneryComponent](em, id)
	if scenery.Speed != 1.5 {
		t.Errorf("scenery speed = %v, want 1.5", scenery.Speed)
	}
	// ceil(1200 / 1020) + 1 = 3
	if scenery.NumDraws != 3 {
		t.Errorf("NumDraws = %d, want 3", scenery.NumDraws)
	}

	if _, err := NewSceneryEntity(em, newTestResources(), newTestWorld(), config.SceneryLayerConfig{Name: "sky"}, 3); err == nil {
		t.Error("expected error for unknown scenery layer")
	}
}
