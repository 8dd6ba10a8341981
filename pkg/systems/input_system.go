package systems

import (
	"log"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem 把指针输入转换为藤壶交互事件
//
// 每帧：
//   - 指针下方有藤壶时产生 Hover
//   - 悬停目标变化时产生 Selection
//   - 左键/触摸按下时对指针下方的藤壶产生 Clicked
//
// 事件只推入 BarnacleSimulation 的队列，由下一次 Tick 的第 4 步统一处理。
type InputSystem struct {
	entityManager *ecs.EntityManager
	simulation    *BarnacleSimulation
	volume        config.SpawnVolume

	lastHovered ecs.EntityID // 上一帧悬停的藤壶
	onBack      func()       // Esc/Q 回调（返回菜单）
}

// NewInputSystem 创建输入系统
// 参数:
//   - sim: 事件的接收方
//   - volume: 生成体积，用于把实体坐标投影到屏幕
//   - onBack: 按下 Esc 或 Q 时调用，可为 nil
func NewInputSystem(sim *BarnacleSimulation, volume config.SpawnVolume, onBack func()) *InputSystem {
	return &InputSystem{
		entityManager: sim.EntityManager(),
		simulation:    sim,
		volume:        volume,
		onBack:        onBack,
	}
}

// Update 读取本帧输入并推送交互事件
// 按下 Esc/Q 时返回 true，此时不再产生交互事件
func (s *InputSystem) Update() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		log.Printf("[InputSystem] Back to menu requested")
		if s.onBack != nil {
			s.onBack()
		}
		return true
	}

	utils.UpdateLastTouchPosition()
	state := utils.GetInputState()

	events := s.HandlePointer(float64(state.X), float64(state.Y), state.JustPressed)
	if s.lastHovered != ecs.InvalidEntity {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	if len(events) > 0 {
		s.simulation.PushEvents(events...)
	}
	return false
}

// HandlePointer 根据指针位置和按下状态生成本帧的交互事件（不读取设备）
func (s *InputSystem) HandlePointer(x, y float64, pressed bool) []components.InteractionEvent {
	var events []components.InteractionEvent

	target := PickBarnacle(s.entityManager, s.volume, x, y)

	if target != s.lastHovered && target != ecs.InvalidEntity {
		events = append(events, components.InteractionEvent{Kind: components.InteractionSelection, Target: target})
	}
	s.lastHovered = target

	if target == ecs.InvalidEntity {
		return events
	}

	events = append(events, components.InteractionEvent{Kind: components.InteractionHover, Target: target})
	if pressed {
		log.Printf("[InputSystem] Clicked barnacle %d at (%.0f, %.0f)", target, x, y)
		events = append(events, components.InteractionEvent{Kind: components.InteractionClicked, Target: target})
	}
	return events
}

// PickBarnacle 返回屏幕坐标 (x, y) 处最上层的未移除藤壶
// 藤壶按创建顺序绘制，后创建的在上层；没有命中时返回 ecs.InvalidEntity
func PickBarnacle(em *ecs.EntityManager, volume config.SpawnVolume, x, y float64) ecs.EntityID {
	hit := ecs.InvalidEntity
	ids := ecs.GetEntitiesWith2[*components.BarnacleComponent, *components.PositionComponent](em)
	for _, id := range ids {
		barnacle, _ := ecs.GetComponent[*components.BarnacleComponent](em, id)
		if barnacle.IsGone() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sx, sy := BarnacleScreenPosition(volume, pos)
		if utils.PointInCircle(x, y, sx, sy, config.BarnacleRadius) {
			hit = id
		}
	}
	return hit
}

// BarnacleScreenPosition 计算藤壶在屏幕上的中心点
func BarnacleScreenPosition(volume config.SpawnVolume, pos *components.PositionComponent) (float64, float64) {
	nx, ny, nz := volume.Normalize(pos.X, pos.Y, pos.Z)
	return config.ProjectToScreen(nx, ny, nz)
}

// Hovered 返回上一帧指针下方的藤壶（用于高亮），没有时为 ecs.InvalidEntity
func (s *InputSystem) Hovered() ecs.EntityID {
	return s.lastHovered
}
