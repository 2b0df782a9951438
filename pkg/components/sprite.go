package components

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteAnchor 决定精灵图相对于 PositionComponent.Y 的对齐方式
type SpriteAnchor int

const (
	// AnchorBottom 图像底边对齐 Y（动物：Y 是地面基线）
	AnchorBottom SpriteAnchor = iota
	// AnchorTop 图像顶边对齐 Y（胡萝卜、背景层）
	AnchorTop
)

// SpriteComponent 存储实体的视觉表现
// 精灵图为水平排列的 NumPoses 个姿势，单个姿势宽度 = 图像宽度 / NumPoses
type SpriteComponent struct {
	Image       *ebiten.Image
	SheetWidth  int // 整张精灵图宽度（像素），创建时从图像读取
	SheetHeight int // 精灵图高度（像素）
	NumPoses    int // 姿势数量，>= 1
	CurrentPose int // 当前绘制的姿势索引，范围 [0, NumPoses)
	Anchor      SpriteAnchor
}

// NewSpriteComponent 根据图像和姿势数创建精灵组件
// 图像为 nil 时尺寸为 0（仅用于测试场景）
func NewSpriteComponent(img *ebiten.Image, numPoses int, anchor SpriteAnchor) *SpriteComponent {
	s := &SpriteComponent{Anchor: anchor}
	s.SetSheet(img, numPoses)
	return s
}

// SetSheet 切换精灵图（玩家状态切换时调用），当前姿势归零
func (s *SpriteComponent) SetSheet(img *ebiten.Image, numPoses int) {
	if numPoses < 1 {
		numPoses = 1
	}
	s.Image = img
	s.NumPoses = numPoses
	s.CurrentPose = 0
	s.SheetWidth, s.SheetHeight = 0, 0
	if img != nil {
		b := img.Bounds()
		s.SheetWidth, s.SheetHeight = b.Dx(), b.Dy()
	}
}

// PoseWidth 返回单个姿势的宽度（像素）
func (s *SpriteComponent) PoseWidth() float64 {
	return float64(s.SheetWidth) / float64(s.NumPoses)
}

// SourceRect 返回当前姿势在精灵图中的源矩形
func (s *SpriteComponent) SourceRect() image.Rectangle {
	pw := s.PoseWidth()
	x0 := int(math.Floor(float64(s.CurrentPose) * pw))
	x1 := int(math.Floor(float64(s.CurrentPose+1) * pw))
	return image.Rect(x0, 0, x1, s.SheetHeight)
}

// DrawSizeComponent 存储实体的绘制尺寸
// 尺寸在创建或切换精灵图时计算一次，不逐帧重算
type DrawSizeComponent struct {
	Width          float64
	Height         float64
	HeightFraction float64 // 绘制高度占画布高度的比例
}

// ComputeDrawSize 按画布高度比例和姿势宽高比计算绘制尺寸（向下取整）
//
// 参数:
//   - poseWidth: 单个姿势宽度（像素）
//   - sheetHeight: 精灵图高度（像素）
//   - heightFraction: 绘制高度占画布高度的比例
//   - canvasHeight: 画布高度（像素）
func ComputeDrawSize(poseWidth float64, sheetHeight int, heightFraction, canvasHeight float64) (width, height float64) {
	height = math.Floor(heightFraction * canvasHeight)
	if sheetHeight <= 0 {
		return 0, height
	}
	ratio := poseWidth / float64(sheetHeight)
	width = math.Floor(height * ratio)
	return width, height
}

// Resize 根据精灵组件重新计算绘制尺寸
func (d *DrawSizeComponent) Resize(sprite *SpriteComponent, canvasHeight float64) {
	d.Width, d.Height = ComputeDrawSize(sprite.PoseWidth(), sprite.SheetHeight, d.HeightFraction, canvasHeight)
}
