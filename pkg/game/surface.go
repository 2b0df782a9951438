package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface 渲染目标
// 系统只通过这两个操作绘制，测试中可以替换为记录调用的假实现
type Surface interface {
	// DrawRegion 将 src 的 srcRect 区域缩放绘制到目标矩形 (dx, dy, dw, dh)
	DrawRegion(src *ebiten.Image, srcRect image.Rectangle, dx, dy, dw, dh float64)
	// Clear 清空整个画布
	Clear()
}

// ImageSurface 以 ebiten.Image 作为渲染目标
type ImageSurface struct {
	target *ebiten.Image
}

// NewImageSurface 创建指定尺寸的离屏渲染目标
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{target: ebiten.NewImage(width, height)}
}

// Image 返回底层图像，用于合成到屏幕
func (s *ImageSurface) Image() *ebiten.Image {
	return s.target
}

// DrawRegion 实现 Surface
func (s *ImageSurface) DrawRegion(src *ebiten.Image, srcRect image.Rectangle, dx, dy, dw, dh float64) {
	if src == nil || srcRect.Dx() <= 0 || srcRect.Dy() <= 0 || dw <= 0 || dh <= 0 {
		return
	}
	sub := src.SubImage(srcRect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dw/float64(srcRect.Dx()), dh/float64(srcRect.Dy()))
	op.GeoM.Translate(dx, dy)
	// 像素风格精灵图，关闭平滑
	op.Filter = ebiten.FilterNearest
	s.target.DrawImage(sub, op)
}

// Clear 实现 Surface
func (s *ImageSurface) Clear() {
	s.target.Clear()
}
