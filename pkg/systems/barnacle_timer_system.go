package systems

import (
	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/ecs"
)

// BarnacleTimerSystem 推进所有藤壶的计时器（tick 第 1 步）
// 已进入 Gone 的藤壶不再处理计时器
type BarnacleTimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewBarnacleTimerSystem 创建藤壶计时器系统
func NewBarnacleTimerSystem(em *ecs.EntityManager) *BarnacleTimerSystem {
	return &BarnacleTimerSystem{
		entityManager: em,
	}
}

// Update 推进所有非 Gone 藤壶的两个计时器
func (s *BarnacleTimerSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.BarnacleComponent](s.entityManager)

	for _, id := range entities {
		barnacle, ok := ecs.GetComponent[*components.BarnacleComponent](s.entityManager, id)
		if !ok || barnacle.IsGone() {
			continue
		}

		barnacle.AttachingTimer.Tick(deltaTime)
		barnacle.AttachedTimer.Tick(deltaTime)
	}
}
