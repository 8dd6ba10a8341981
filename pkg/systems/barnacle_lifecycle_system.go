package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/ecs"
)

var (
	// ErrStaleEntityReference 事件指向的实体已不在存储中
	// 可恢复：丢弃该事件，继续处理同批次的其他事件
	ErrStaleEntityReference = errors.New("stale entity reference")
	// ErrNotBarnacle 事件指向的实体存在，但不是藤壶
	ErrNotBarnacle = errors.New("entity is not a barnacle")
)

// BarnacleLifecycleSystem 根据计时器推进藤壶状态（tick 第 2 步）
//
// 状态机:
//   - Attaching 且 AttachedTimer 刚触发 → Attached
//   - 非 Gone 且 AttachingTimer 刚触发 → 更新材质轮换索引（仅渲染用）
//   - Gone 为终止状态，只能由 ForceGone 进入
type BarnacleLifecycleSystem struct {
	entityManager *ecs.EntityManager
}

// NewBarnacleLifecycleSystem 创建藤壶生命周期系统
func NewBarnacleLifecycleSystem(em *ecs.EntityManager) *BarnacleLifecycleSystem {
	return &BarnacleLifecycleSystem{
		entityManager: em,
	}
}

// Update 读取本 tick 已推进的计时器，应用状态转换
func (s *BarnacleLifecycleSystem) Update() {
	entities := ecs.GetEntitiesWith1[*components.BarnacleComponent](s.entityManager)

	for _, id := range entities {
		barnacle, ok := ecs.GetComponent[*components.BarnacleComponent](s.entityManager, id)
		if !ok || barnacle.IsGone() {
			continue
		}

		if barnacle.Status == components.BarnacleAttaching && barnacle.AttachedTimer.JustFinished {
			barnacle.Status = components.BarnacleAttached
			log.Printf("[BarnacleLifecycleSystem] Barnacle %d attached", id)
		}

		if barnacle.AttachingTimer.JustFinished {
			cycle := barnacle.MaterialCycle
			if cycle < 1 {
				cycle = 1
			}
			barnacle.MaterialIndex = int(barnacle.AttachingTimer.TimesFinished % uint64(cycle))
		}
	}
}

// ForceGone 强制藤壶进入 Gone 状态（点击移除）
//
// 返回:
//   - changed: 状态是否发生了变化（已是 Gone 时为 false）
//   - error: 实体不存在时返回 ErrStaleEntityReference，不是藤壶时返回 ErrNotBarnacle
func ForceGone(em *ecs.EntityManager, id ecs.EntityID) (bool, error) {
	if !em.EntityExists(id) {
		return false, fmt.Errorf("entity %d: %w", id, ErrStaleEntityReference)
	}

	barnacle, ok := ecs.GetComponent[*components.BarnacleComponent](em, id)
	if !ok {
		return false, fmt.Errorf("entity %d: %w", id, ErrNotBarnacle)
	}

	if barnacle.IsGone() {
		return false, nil
	}

	previous := barnacle.Status
	barnacle.Status = components.BarnacleGone
	log.Printf("[BarnacleLifecycleSystem] Barnacle %d removed (%s -> Gone)", id, previous)
	return true, nil
}
