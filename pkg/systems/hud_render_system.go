package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUDTextColor HUD 文字颜色 (0.9, 0.9, 0.5)
var HUDTextColor = color.RGBA{R: 230, G: 230, B: 128, A: 255}

// hudTextScale HUD 字体放大倍数（basicfont 只有 13px 一种字号）
const hudTextScale = 2.0

// HUDRenderSystem 绘制会话时间和人口计数
//
// 左下角显示已进行的秒数（两位小数），右下角显示 Attached 藤壶数量。
// 只读取 Session，不修改任何状态。
type HUDRenderSystem struct {
	session *game.Session
	face    text.Face
}

// NewHUDRenderSystem 创建 HUD 渲染系统
func NewHUDRenderSystem(session *game.Session) *HUDRenderSystem {
	return &HUDRenderSystem{
		session: session,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// FormatElapsed 格式化会话时间
func FormatElapsed(seconds float64) string {
	return fmt.Sprintf("%.2f", seconds)
}

// FormatPopulation 格式化人口计数
func FormatPopulation(count int) string {
	return fmt.Sprintf("%d", count)
}

// Draw 绘制 HUD
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	marginX := float64(bounds.Dx()) * config.HUDMarginPercent
	marginY := float64(bounds.Dy()) * config.HUDMarginPercent
	bottom := float64(bounds.Dy()) - marginY

	// 左下角：时间
	s.drawText(screen, FormatElapsed(s.session.ElapsedSeconds), marginX, bottom, text.AlignStart)
	// 右下角：人口
	s.drawText(screen, FormatPopulation(s.session.PopulationCount), float64(bounds.Dx())-marginX, bottom, text.AlignEnd)
}

// drawText 以 (x, bottom) 为锚点绘制放大的文字
func (s *HUDRenderSystem) drawText(screen *ebiten.Image, str string, x, bottom float64, align text.Align) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = align
	op.LayoutOptions.SecondaryAlign = text.AlignEnd
	op.GeoM.Scale(hudTextScale, hudTextScale)
	op.GeoM.Translate(x, bottom)
	op.ColorScale.ScaleWithColor(HUDTextColor)
	text.Draw(screen, str, s.face, op)
}
