package systems

import (
	"testing"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/game"
)

func TestPopulationSystem_CountsOnlyAttached(t *testing.T) {
	em := ecs.NewEntityManager()
	session := game.NewSession()
	system := NewPopulationSystem(em, session)

	statuses := []components.BarnacleStatus{
		components.BarnacleAttaching,
		components.BarnacleAttached,
		components.BarnacleAttached,
		components.BarnacleGone,
		components.BarnacleAttached,
	}
	for _, status := range statuses {
		_, barnacle := newTestBarnacle(t, em)
		barnacle.Status = status
	}

	if got := system.Update(); got != 3 {
		t.Errorf("Update() = %d, want 3", got)
	}
	if session.PopulationCount != 3 {
		t.Errorf("PopulationCount = %d, want 3", session.PopulationCount)
	}
}

func TestPopulationSystem_AttachingDoesNotChangeCount(t *testing.T) {
	em := ecs.NewEntityManager()
	session := game.NewSession()
	system := NewPopulationSystem(em, session)

	_, barnacle := newTestBarnacle(t, em)
	barnacle.Status = components.BarnacleAttached
	system.Update()

	for i := 0; i < 5; i++ {
		newTestBarnacle(t, em)
	}
	if got := system.Update(); got != 1 {
		t.Errorf("Spawning Attaching barnacles changed count to %d", got)
	}
}

func TestPopulationSystem_EmptyStore(t *testing.T) {
	em := ecs.NewEntityManager()
	session := game.NewSession()
	session.PopulationCount = 9

	if got := NewPopulationSystem(em, session).Update(); got != 0 {
		t.Errorf("Update() on empty store = %d, want 0", got)
	}
	if session.PopulationCount != 0 {
		t.Errorf("PopulationCount should be republished as 0, got %d", session.PopulationCount)
	}
}
