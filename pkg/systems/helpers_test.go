package systems

import (
	"image"
	"math/rand"

	"github.com/gonewx/hoppy/pkg/game"
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
	rm.AddImage("carrot", "carrot", ebiten.NewImage(10, 20))
	rm.AddImage("scenery", "background", ebiten.NewImage(272, 160))
	rm.AddImage("scenery", "midground", ebiten.NewImage(272, 160))
	rm.AddImage("scenery", "foreground", ebiten.NewImage(272, 160))
	return rm
}

func newTestWorld() *game.WorldState {
	w := game.NewWorldState(1200, 600)
	w.ScrollSpeed = 3
	w.Lost = false
	return w
}

// drawCall 一次 DrawRegion 调用
type drawCall struct {
	src            *ebiten.Image
	srcRect        image.Rectangle
	dx, dy, dw, dh float64
}

// recordingSurface 记录绘制调用的 Surface
type recordingSurface struct {
	calls  []drawCall
	clears int
}

func (r *recordingSurface) DrawRegion(src *ebiten.Image, srcRect image.Rectangle, dx, dy, dw, dh float64) {
	r.calls = append(r.calls, drawCall{src: src, srcRect: srcRect, dx: dx, dy: dy, dw: dw, dh: dh})
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.calls = nil
}
