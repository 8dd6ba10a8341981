package systems

import (
	"errors"
	"log"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/game"
)

// SelectionEventSystem 消费外部输入源产生的交互事件（tick 第 4 步）
//
// 事件按到达顺序处理，每个 tick 结束后队列清空，事件不会跨 tick 保留。
// Selection/Hover 只记录观测状态；Clicked 强制目标进入 Gone。
type SelectionEventSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	queue         []components.InteractionEvent

	hovered  ecs.EntityID // 最近一次 Hover 的目标
	selected ecs.EntityID // 最近一次 Selection 的目标
}

// NewSelectionEventSystem 创建交互事件系统
func NewSelectionEventSystem(em *ecs.EntityManager, session *game.Session) *SelectionEventSystem {
	return &SelectionEventSystem{
		entityManager: em,
		session:       session,
		queue:         make([]components.InteractionEvent, 0, 8),
	}
}

// Push 追加事件到本 tick 的批次
func (s *SelectionEventSystem) Push(events ...components.InteractionEvent) {
	s.queue = append(s.queue, events...)
}

// Pending 返回尚未处理的事件数量
func (s *SelectionEventSystem) Pending() int {
	return len(s.queue)
}

// Hovered 返回最近一次悬停的实体
func (s *SelectionEventSystem) Hovered() ecs.EntityID {
	return s.hovered
}

// Selected 返回最近一次选中的实体
func (s *SelectionEventSystem) Selected() ecs.EntityID {
	return s.selected
}

// Update 按顺序处理并清空事件队列
// 返回处理过程中遇到的可恢复错误（如 ErrStaleEntityReference），不会中断批次
func (s *SelectionEventSystem) Update() []error {
	if len(s.queue) == 0 {
		return nil
	}

	var errs []error
	for _, event := range s.queue {
		if err := s.handle(event); err != nil {
			errs = append(errs, err)
		}
	}
	s.queue = s.queue[:0]
	return errs
}

// handle 处理单个事件
func (s *SelectionEventSystem) handle(event components.InteractionEvent) error {
	switch event.Kind {
	case components.InteractionSelection:
		s.selected = event.Target
		log.Printf("[SelectionEventSystem] Selection: %d", event.Target)
	case components.InteractionHover:
		s.hovered = event.Target
	case components.InteractionClicked:
		changed, err := ForceGone(s.entityManager, event.Target)
		if err != nil {
			if errors.Is(err, ErrStaleEntityReference) && s.session != nil {
				s.session.StaleReferences++
			}
			log.Printf("[SelectionEventSystem] WARNING: dropping click: %v", err)
			return err
		}
		if changed && s.session != nil {
			s.session.RemovedCount++
		}
	default:
		log.Printf("[SelectionEventSystem] WARNING: unknown event kind %d", int(event.Kind))
	}
	return nil
}
