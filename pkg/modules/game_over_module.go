package modules

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// overlayMaxAlpha 遮罩完全淡入后的不透明度
	overlayMaxAlpha = 0.55
	// overlayFadeSeconds 遮罩淡入时长（秒）
	overlayFadeSeconds = 0.4
)

// GameOverCallbacks 游戏结束面板的回调函数
type GameOverCallbacks struct {
	OnReset func() // 点击"重新开始"按钮
}

// GameOverModule 游戏结束面板
// 失败后淡入半透明遮罩，显示"Game Over"标题和重新开始按钮。
// 按钮只在面板可见时可用，游戏进行中点击无效。
type GameOverModule struct {
	ui          *ebitenui.UI
	resetButton *widget.Button
	callbacks   GameOverCallbacks

	titleFace  text.Face
	buttonFace text.Face

	width, height float64

	visible bool
	fade    *gween.Tween
	alpha   float32
}

// NewGameOverModule 创建游戏结束面板
//
// 参数:
//   - width, height: 画布尺寸
//   - callbacks: 回调函数
func NewGameOverModule(width, height float64, callbacks GameOverCallbacks) (*GameOverModule, error) {
	titleFace, err := newFace(48)
	if err != nil {
		return nil, err
	}
	buttonFace, err := newFace(22)
	if err != nil {
		return nil, err
	}

	m := &GameOverModule{
		callbacks:  callbacks,
		titleFace:  titleFace,
		buttonFace: buttonFace,
		width:      width,
		height:     height,
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	m.resetButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 44),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(resetButtonImage()),
		widget.ButtonOpts.Text("Play again", &m.buttonFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 236, 179, 255},
			Pressed:  color.RGBA{220, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			m.requestReset()
		}),
	)
	m.resetButton.GetWidget().Disabled = true
	root.AddChild(m.resetButton)

	m.ui = &ebitenui.UI{Container: root}
	return m, nil
}

func resetButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{196, 98, 16, 255})
	hover := image.NewNineSliceColor(color.RGBA{224, 120, 30, 255})
	pressed := image.NewNineSliceColor(color.RGBA{160, 80, 12, 255})
	disabled := image.NewNineSliceColor(color.RGBA{60, 60, 60, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Show 显示面板并开始淡入
func (m *GameOverModule) Show() {
	if m.visible {
		return
	}
	m.visible = true
	m.alpha = 0
	m.fade = gween.New(0, overlayMaxAlpha, overlayFadeSeconds, ease.Linear)
	m.resetButton.GetWidget().Disabled = false
}

// Hide 隐藏面板，重新开始按钮随之禁用
func (m *GameOverModule) Hide() {
	m.visible = false
	m.fade = nil
	m.alpha = 0
	m.resetButton.GetWidget().Disabled = true
}

// Visible 面板是否可见
func (m *GameOverModule) Visible() bool {
	return m.visible
}

// ResetEnabled 重新开始按钮是否可用
func (m *GameOverModule) ResetEnabled() bool {
	return !m.resetButton.GetWidget().Disabled
}

// Alpha 当前遮罩不透明度
func (m *GameOverModule) Alpha() float32 {
	return m.alpha
}

// requestReset 处理按钮点击
func (m *GameOverModule) requestReset() {
	if !m.visible {
		return
	}
	log.Printf("[GameOverModule] Reset requested")
	if m.callbacks.OnReset != nil {
		m.callbacks.OnReset()
	}
}

// advanceFade 推进淡入动画
func (m *GameOverModule) advanceFade(deltaTime float64) {
	if m.fade == nil {
		return
	}
	value, finished := m.fade.Update(float32(deltaTime))
	m.alpha = value
	if finished {
		m.fade = nil
	}
}

// Update 更新淡入动画和按钮交互
func (m *GameOverModule) Update(deltaTime float64) {
	if !m.visible {
		return
	}
	m.advanceFade(deltaTime)
	m.ui.Update()
}

// Draw 绘制遮罩、标题和按钮
func (m *GameOverModule) Draw(screen *ebiten.Image) {
	if !m.visible {
		return
	}

	overlay := color.RGBA{A: uint8(m.alpha * 255)}
	vector.DrawFilledRect(screen, 0, 0, float32(m.width), float32(m.height), overlay, false)

	title := "Game Over"
	w, h := text.Measure(title, m.titleFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((m.width-w)/2, m.height/2-h-48)
	op.ColorScale.ScaleWithColor(color.White)
	op.ColorScale.ScaleAlpha(m.alpha / overlayMaxAlpha)
	text.Draw(screen, title, m.titleFace, op)

	m.ui.Draw(screen)
}
