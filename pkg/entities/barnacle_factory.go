package entities

import (
	"fmt"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/ecs"
)

// NewBarnacleEntity 创建一个藤壶实体
// 参数:
//   - manager: EntityManager 实例
//   - cfg: 藤壶配置（计时器时长、材质数量）
//   - x, y, z: 生成位置
//
// 返回: 创建的实体ID；计时器时长非法时返回 components.ErrInvalidDuration
//
// 新藤壶处于 Attaching 状态，两个计时器从零开始。
func NewBarnacleEntity(manager *ecs.EntityManager, cfg *config.BarnacleConfig, x, y, z float64) (ecs.EntityID, error) {
	// 先构造计时器，失败时不留下半成品实体
	attachingTimer, err := components.NewTimerComponent("barnacle_attaching", cfg.AttachingPeriod, true)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("failed to create barnacle: %w", err)
	}
	attachedTimer, err := components.NewTimerComponent("barnacle_attached", cfg.AttachedDuration, false)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("failed to create barnacle: %w", err)
	}

	cycle := cfg.MaterialCycle
	if cycle < 1 {
		cycle = 1
	}

	id := manager.CreateEntity()

	// 添加位置组件
	ecs.AddComponent(manager, id, &components.PositionComponent{
		X: x,
		Y: y,
		Z: z,
	})

	// 添加藤壶组件
	ecs.AddComponent(manager, id, &components.BarnacleComponent{
		Status:         components.BarnacleAttaching,
		AttachingTimer: attachingTimer,
		AttachedTimer:  attachedTimer,
		MaterialIndex:  0,
		MaterialCycle:  cycle,
	})

	return id, nil
}

// NewWhaleEntity 创建鲸鱼实体（藤壶的宿主，仅用于渲染）
func NewWhaleEntity(manager *ecs.EntityManager) ecs.EntityID {
	id := manager.CreateEntity()
	ecs.AddComponent(manager, id, &components.WhaleComponent{
		CenterX: config.WhaleCenterX,
		CenterY: config.WhaleCenterY,
		RadiusX: config.WhaleRadiusX,
		RadiusY: config.WhaleRadiusY,
	})
	return id
}
