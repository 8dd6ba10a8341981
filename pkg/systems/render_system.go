package systems

import (
	"image/color"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 场景配色
var (
	OceanColor      = color.RGBA{R: 18, G: 52, B: 86, A: 255}
	WhaleBodyColor  = color.RGBA{R: 70, G: 90, B: 110, A: 255}
	WhaleBellyColor = color.RGBA{R: 150, G: 165, B: 175, A: 255}
	WhaleEyeColor   = color.RGBA{R: 20, G: 20, B: 25, A: 255}

	// AttachedBarnacleColor 已附着藤壶的颜色
	AttachedBarnacleColor = color.RGBA{R: 196, G: 186, B: 160, A: 255}
	// HighlightColor 悬停藤壶的描边颜色
	HighlightColor = color.RGBA{R: 255, G: 240, B: 120, A: 255}

	// AttachingPalette 附着期间轮换的材质颜色，按 MaterialIndex 取模
	AttachingPalette = []color.RGBA{
		{R: 220, G: 120, B: 90, A: 255},
		{R: 120, G: 200, B: 140, A: 255},
		{R: 110, G: 150, B: 230, A: 255},
	}
)

// ellipseImageRadius 椭圆模板图片的半径，绘制时通过 GeoM 缩放
const ellipseImageRadius = 64

// RenderSystem 渲染鲸鱼和藤壶
//
// 藤壶按创建顺序绘制，已移除（Gone）的藤壶不绘制。
// 附着中的藤壶半径随附着进度增长，颜色随材质索引轮换。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	volume        config.SpawnVolume
	ellipse       *ebiten.Image // 白色圆形模板，用于绘制任意椭圆
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, volume config.SpawnVolume) *RenderSystem {
	size := ellipseImageRadius * 2
	img := ebiten.NewImage(size, size)
	vector.DrawFilledCircle(img, ellipseImageRadius, ellipseImageRadius, ellipseImageRadius, color.White, true)

	return &RenderSystem{
		entityManager: em,
		volume:        volume,
		ellipse:       img,
	}
}

// Draw 绘制整个场景
// highlighted 为指针下方的藤壶，没有时传 ecs.InvalidEntity
func (s *RenderSystem) Draw(screen *ebiten.Image, highlighted ecs.EntityID) {
	screen.Fill(OceanColor)

	for _, id := range ecs.GetEntitiesWith1[*components.WhaleComponent](s.entityManager) {
		whale, _ := ecs.GetComponent[*components.WhaleComponent](s.entityManager, id)
		s.drawWhale(screen, whale)
	}

	ids := ecs.GetEntitiesWith2[*components.BarnacleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		barnacle, _ := ecs.GetComponent[*components.BarnacleComponent](s.entityManager, id)
		if barnacle.IsGone() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y := BarnacleScreenPosition(s.volume, pos)
		radius := float32(config.BarnacleRadius * BarnacleRadiusScale(barnacle))
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, BarnacleColor(barnacle), true)

		if id == highlighted {
			vector.StrokeCircle(screen, float32(x), float32(y), float32(config.BarnacleRadius)+2, 2, HighlightColor, true)
		}
	}
}

// drawWhale 绘制鲸鱼：身体、腹部、眼睛
func (s *RenderSystem) drawWhale(screen *ebiten.Image, whale *components.WhaleComponent) {
	s.drawEllipse(screen, whale.CenterX, whale.CenterY, whale.RadiusX, whale.RadiusY, WhaleBodyColor)
	s.drawEllipse(screen, whale.CenterX+whale.RadiusX*0.1, whale.CenterY+whale.RadiusY*0.55,
		whale.RadiusX*0.75, whale.RadiusY*0.35, WhaleBellyColor)

	eyeX := whale.CenterX - whale.RadiusX*0.72
	eyeY := whale.CenterY + whale.RadiusY*0.1
	vector.DrawFilledCircle(screen, float32(eyeX), float32(eyeY), 6, WhaleEyeColor, true)
}

// drawEllipse 通过缩放圆形模板绘制椭圆
func (s *RenderSystem) drawEllipse(screen *ebiten.Image, cx, cy, rx, ry float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-ellipseImageRadius, -ellipseImageRadius)
	op.GeoM.Scale(rx/ellipseImageRadius, ry/ellipseImageRadius)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.ellipse, op)
}

// BarnacleColor 返回藤壶当前的绘制颜色
func BarnacleColor(b *components.BarnacleComponent) color.RGBA {
	switch b.Status {
	case components.BarnacleAttaching:
		return AttachingPalette[b.MaterialIndex%len(AttachingPalette)]
	case components.BarnacleAttached:
		return AttachedBarnacleColor
	default:
		return color.RGBA{}
	}
}

// BarnacleRadiusScale 返回藤壶半径相对 BarnacleRadius 的比例
// 附着中从 0.4 缓出增长到 1.0，附着完成后为 1.0
func BarnacleRadiusScale(b *components.BarnacleComponent) float64 {
	if b.Status != components.BarnacleAttaching || b.AttachedTimer == nil {
		return 1.0
	}
	progress := utils.Clamp01(b.AttachedTimer.Elapsed / b.AttachedTimer.Duration)
	return utils.Lerp(0.4, 1.0, utils.EaseOutCubic(progress))
}
