package modules

import (
	"testing"

	"github.com/gonewx/hoppy/pkg/game"
)

func TestHUDScoreText(t *testing.T) {
	world := game.NewWorldState(800, 600)
	world.Score = 7

	hud, err := NewHUDModule(world, nil)
	if err != nil {
		t.Fatalf("NewHUDModule error: %v", err)
	}
	if got := hud.ScoreText(); got != "Carrots: 7" {
		t.Errorf("ScoreText = %q, want %q", got, "Carrots: 7")
	}

	// 没有存储时 ScoreManager 退化为内存记录
	scores := game.NewScoreManager(nil)
	scores.Submit(3)
	hud, err = NewHUDModule(world, scores)
	if err != nil {
		t.Fatalf("NewHUDModule error: %v", err)
	}
	if got := hud.ScoreText(); got != "Carrots: 7   Best: 7" {
		t.Errorf("ScoreText = %q, want current score shown as best", got)
	}

	world.Score = 1
	if got := hud.ScoreText(); got != "Carrots: 1   Best: 3" {
		t.Errorf("ScoreText = %q, want %q", got, "Carrots: 1   Best: 3")
	}
}
