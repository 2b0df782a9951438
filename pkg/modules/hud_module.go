package modules

import (
	"fmt"
	"image/color"

	"github.com/gonewx/hoppy/pkg/game"
	"github.com/gonewx/hoppy/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// hintDurationMs 开局操作提示显示的时长
const hintDurationMs = 3000

// HUDModule 分数显示
// 左上角显示本局分数和历史最高分，开局时在画面中央显示操作提示
type HUDModule struct {
	world  *game.WorldState
	scores *game.ScoreManager

	scoreFace *text.GoTextFace
	hintFace  *text.GoTextFace
	hint      string
}

// NewHUDModule 创建分数显示模块
//
// 参数:
//   - world: 世界状态（读取本局分数）
//   - scores: 最高分管理器，可为 nil（不显示最高分）
func NewHUDModule(world *game.WorldState, scores *game.ScoreManager) (*HUDModule, error) {
	scoreFace, err := newFace(24)
	if err != nil {
		return nil, err
	}
	hintFace, err := newFace(18)
	if err != nil {
		return nil, err
	}

	hint := "Hold SPACE or click to hop higher"
	if utils.IsMobile() {
		hint = "Hold your finger down to hop higher"
	}

	return &HUDModule{
		world:     world,
		scores:    scores,
		scoreFace: scoreFace,
		hintFace:  hintFace,
		hint:      hint,
	}, nil
}

// ScoreText 返回分数栏文字
func (m *HUDModule) ScoreText() string {
	if m.scores == nil {
		return fmt.Sprintf("Carrots: %d", m.world.Score)
	}
	best := m.scores.Best()
	if m.world.Score > best {
		best = m.world.Score
	}
	return fmt.Sprintf("Carrots: %d   Best: %d", m.world.Score, best)
}

// Draw 绘制分数栏和操作提示
//
// 参数:
//   - timeMs: 本局开始以来的时间（毫秒），用于控制提示的显示
func (m *HUDModule) Draw(screen *ebiten.Image, timeMs float64) {
	// 先绘制阴影再绘制文字
	shadowOp := &text.DrawOptions{}
	shadowOp.GeoM.Translate(18, 14)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 160})
	text.Draw(screen, m.ScoreText(), m.scoreFace, shadowOp)

	op := &text.DrawOptions{}
	op.GeoM.Translate(16, 12)
	op.ColorScale.ScaleWithColor(color.RGBA{255, 236, 179, 255})
	text.Draw(screen, m.ScoreText(), m.scoreFace, op)

	if m.world.Lost || timeMs > hintDurationMs {
		return
	}
	w, _ := text.Measure(m.hint, m.hintFace, 0)
	hintOp := &text.DrawOptions{}
	hintOp.GeoM.Translate((m.world.CanvasWidth-w)/2, m.world.CanvasHeight*0.4)
	hintOp.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, m.hint, m.hintFace, hintOp)
}
