package entities

import (
	"image/color"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/ecs"
)

// MenuTextColor 菜单按钮文字颜色
var MenuTextColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}

// NewMenuButton 创建菜单按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮位置（屏幕坐标，左上角）
//   - width, height: 按钮尺寸
//   - text: 按钮文字
//   - action: 按钮对应的菜单动作
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewMenuButton(
	em *ecs.EntityManager,
	x, y, width, height float64,
	text string,
	action components.MenuAction,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Text:      text,
		TextColor: MenuTextColor,
		Action:    action,
		State:     components.UINormal,
		Enabled:   true,
		OnClick:   onClick,
	})

	// 添加 UI 组件标记（方便过滤）
	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})

	return entity
}
