package game

import "testing"

func TestFrameLoopStartIsIdempotent(t *testing.T) {
	loop := NewFrameLoop("game")
	if loop.Running() || loop.Started() {
		t.Fatal("new loop must not be running")
	}

	if !loop.Start() {
		t.Error("first Start should start the loop")
	}
	if loop.Start() {
		t.Error("second Start must not start another loop")
	}

	loop.Tick(16)
	loop.Tick(16)
	if loop.Frames() != 2 {
		t.Errorf("Frames = %d, want 2 (one loop only)", loop.Frames())
	}
}

func TestFrameLoopStopFreezesClock(t *testing.T) {
	loop := NewFrameLoop("scenery")
	loop.Start()
	if !loop.Tick(10) {
		t.Error("running loop should execute its body")
	}

	loop.Stop()
	if loop.Tick(10) {
		t.Error("stopped loop must not execute its body")
	}
	if loop.ElapsedMs() != 10 {
		t.Errorf("ElapsedMs = %v, want 10", loop.ElapsedMs())
	}

	// 重新启动后继续累计，不重置时钟
	loop.Start()
	loop.Tick(5)
	if loop.ElapsedMs() != 15 {
		t.Errorf("ElapsedMs after restart = %v, want 15", loop.ElapsedMs())
	}
	if !loop.Started() {
		t.Error("Started should stay true")
	}
}

func TestWorldState(t *testing.T) {
	w := NewWorldState(1200, 600)
	if !w.Lost {
		t.Error("world should wait for the first reset")
	}
	if w.CanvasWidth != 1200 || w.CanvasHeight != 600 {
		t.Errorf("canvas = %vx%v, want 1200x600", w.CanvasWidth, w.CanvasHeight)
	}

	w.AddScore(1)
	w.AddScore(-5)
	if got := w.AddScore(1); got != 2 {
		t.Errorf("Score = %d, want 2", got)
	}
}
