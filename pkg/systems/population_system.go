package systems

import (
	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/game"
)

// PopulationSystem 统计处于 Attached 状态的藤壶数量（tick 第 5 步）
// 结果发布到 Session.PopulationCount，供 HUD 读取
type PopulationSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
}

// NewPopulationSystem 创建人口计数系统
func NewPopulationSystem(em *ecs.EntityManager, session *game.Session) *PopulationSystem {
	return &PopulationSystem{
		entityManager: em,
		session:       session,
	}
}

// Update 重新计算并发布 Attached 数量
func (s *PopulationSystem) Update() int {
	count := CountAttached(s.entityManager)
	s.session.SetPopulation(count)
	return count
}

// CountAttached 返回处于 Attached 状态的藤壶数量
func CountAttached(em *ecs.EntityManager) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BarnacleComponent](em) {
		barnacle, ok := ecs.GetComponent[*components.BarnacleComponent](em, id)
		if ok && barnacle.Status == components.BarnacleAttached {
			count++
		}
	}
	return count
}
