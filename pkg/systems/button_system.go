package systems

import (
	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测鼠标悬停（更新按钮状态为 UIHovered）
//   - 检测鼠标按下（UIClicked，显示按下效果）
//   - 释放时触发 OnClick 回调
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update() {
	utils.UpdateLastTouchPosition()
	x, y := utils.GetPointerPosition()
	released, rx, ry := utils.IsPointerJustReleased()
	if released {
		x, y = rx, ry
	}
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || len(ebiten.AppendTouchIDs(nil)) > 0

	s.HandlePointer(float64(x), float64(y), pressed, released)
}

// HandlePointer 用给定的指针状态更新所有按钮
// 回调在遍历结束后统一触发，回调内可以安全地增删按钮实体
func (s *ButtonSystem) HandlePointer(x, y float64, pressed, released bool) {
	var clicked []func()

	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			s.syncUIState(entityID, button.State)
			continue
		}

		if !utils.PointInRect(x, y, button.X, button.Y, button.Width, button.Height) {
			button.State = components.UINormal
			s.syncUIState(entityID, button.State)
			continue
		}

		switch {
		case released:
			// 释放瞬间触发回调，之后恢复悬停状态
			if button.OnClick != nil {
				clicked = append(clicked, button.OnClick)
			}
			button.State = components.UIHovered
		case pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
		s.syncUIState(entityID, button.State)
	}

	for _, onClick := range clicked {
		onClick()
	}
}

func (s *ButtonSystem) syncUIState(entityID ecs.EntityID, state components.UIState) {
	if ui, ok := ecs.GetComponent[*components.UIComponent](s.entityManager, entityID); ok {
		ui.State = state
	}
}
