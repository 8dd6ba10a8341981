package systems

import (
	"image/color"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 按钮背景颜色（按交互状态）
var (
	ButtonNormalColor   = color.RGBA{R: 40, G: 70, B: 100, A: 230}
	ButtonHoveredColor  = color.RGBA{R: 60, G: 105, B: 145, A: 240}
	ButtonPressedColor  = color.RGBA{R: 25, G: 45, B: 70, A: 255}
	ButtonDisabledColor = color.RGBA{R: 60, G: 60, B: 60, A: 200}
	ButtonBorderColor   = color.RGBA{R: 200, G: 220, B: 235, A: 255}
	// ButtonSelectedBorderColor 设置页中当前选中项的边框颜色
	ButtonSelectedBorderColor = color.RGBA{R: 230, G: 230, B: 128, A: 255}
)

// buttonTextScale 按钮文字放大倍数
const buttonTextScale = 2.0

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体（纯色矩形 + 居中文字）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y := float32(button.X), float32(button.Y)
	w, h := float32(button.Width), float32(button.Height)
	vector.DrawFilledRect(screen, x, y, w, h, ButtonBackgroundColor(button.State), true)

	border := ButtonBorderColor
	strokeWidth := float32(1)
	if button.Selected {
		border = ButtonSelectedBorderColor
		strokeWidth = 3
	}
	vector.StrokeRect(screen, x, y, w, h, strokeWidth, border, true)

	s.drawButtonText(screen, button)
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent) {
	if button.Text == "" {
		return
	}

	centerX := button.X + button.Width/2
	centerY := button.Y + button.Height/2

	// 先绘制阴影
	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Scale(buttonTextScale, buttonTextScale)
	shadowOp.GeoM.Translate(centerX+2, centerY+2)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
	text.Draw(screen, button.Text, s.face, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(buttonTextScale, buttonTextScale)
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(button.TextColor)
	text.Draw(screen, button.Text, s.face, op)
}

// ButtonBackgroundColor 根据交互状态返回按钮背景色
func ButtonBackgroundColor(state components.UIState) color.RGBA {
	switch state {
	case components.UIHovered:
		return ButtonHoveredColor
	case components.UIClicked:
		return ButtonPressedColor
	case components.UIDisabled:
		return ButtonDisabledColor
	default:
		return ButtonNormalColor
	}
}
