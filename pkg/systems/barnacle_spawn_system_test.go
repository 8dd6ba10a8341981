package systems

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/game"
)

func newTestSpawnSystem(t *testing.T, interval float64, seed int64) (*BarnacleSpawnSystem, *ecs.EntityManager, *game.Session) {
	t.Helper()
	em := ecs.NewEntityManager()
	session := game.NewSession()
	system, err := NewBarnacleSpawnSystem(em, session, config.DefaultBarnacleConfig(), interval, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewBarnacleSpawnSystem failed: %v", err)
	}
	return system, em, session
}

// TestBarnacleSpawn_Cadence 间隔 1.0 秒：1.0 秒步长每 tick 生成，0.5 秒步长每两个 tick 生成
func TestBarnacleSpawn_Cadence(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		every int
	}{
		{"one second ticks", 1.0, 1},
		{"half second ticks", 0.5, 2},
		{"quarter second ticks", 0.25, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, em, session := newTestSpawnSystem(t, 1.0, 1)

			for tick := 1; tick <= 12; tick++ {
				system.TickTimer(tt.delta)
				spawned := system.Update()

				wantSpawn := tick%tt.every == 0
				if (len(spawned) == 1) != wantSpawn {
					t.Errorf("tick %d: spawned %d, want spawn=%v", tick, len(spawned), wantSpawn)
				}
			}

			want := 12 / tt.every
			if got := len(ecs.GetEntitiesWith1[*components.BarnacleComponent](em)); got != want {
				t.Errorf("barnacle count = %d, want %d", got, want)
			}
			if session.SpawnedCount != want {
				t.Errorf("SpawnedCount = %d, want %d", session.SpawnedCount, want)
			}
		})
	}
}

func TestBarnacleSpawn_PositionsInUnitCube(t *testing.T) {
	system, em, _ := newTestSpawnSystem(t, 1.0, 7)

	for i := 0; i < 200; i++ {
		system.TickTimer(1.0)
		for _, req := range system.Update() {
			for _, v := range []float64{req.X, req.Y, req.Z} {
				if v < 0 || v >= 1 {
					t.Fatalf("spawn coordinate %v outside [0,1)", v)
				}
			}
			pos, ok := ecs.GetComponent[*components.PositionComponent](em, req.Entity)
			if !ok || pos.X != req.X || pos.Y != req.Y || pos.Z != req.Z {
				t.Fatalf("entity position does not match spawn request: %+v vs %+v", pos, req)
			}
		}
	}
}

func TestBarnacleSpawn_DeterministicWithSeed(t *testing.T) {
	a, _, _ := newTestSpawnSystem(t, 1.0, 99)
	b, _, _ := newTestSpawnSystem(t, 1.0, 99)

	for i := 0; i < 10; i++ {
		a.TickTimer(1.0)
		b.TickTimer(1.0)
		ra, rb := a.Update(), b.Update()
		if len(ra) != 1 || len(rb) != 1 {
			t.Fatal("both systems should spawn every tick")
		}
		if ra[0] != rb[0] {
			t.Fatalf("same seed produced different spawns: %+v vs %+v", ra[0], rb[0])
		}
	}
}

func TestBarnacleSpawn_Disable(t *testing.T) {
	system, _, session := newTestSpawnSystem(t, 1.0, 1)

	system.TickTimer(1.0)
	if spawned := system.Update(); len(spawned) != 1 {
		t.Fatal("Spawner should fire after one interval")
	}

	system.Disable()
	for i := 0; i < 5; i++ {
		system.TickTimer(1.0)
		if spawned := system.Update(); len(spawned) != 0 {
			t.Errorf("tick %d: disabled spawner must not spawn", i+1)
		}
	}
	if session.SpawnedCount != 1 {
		t.Errorf("SpawnedCount = %d, want 1", session.SpawnedCount)
	}
}

// TestBarnacleSpawn_LongFrameDoesNotBurst 一次长帧之后，后续短帧不会连续补生成
func TestBarnacleSpawn_LongFrameDoesNotBurst(t *testing.T) {
	system, em, _ := newTestSpawnSystem(t, 1.0, 1)

	system.TickTimer(3.5)
	if spawned := system.Update(); len(spawned) != 1 {
		t.Fatalf("long frame spawned %d, want 1", len(spawned))
	}

	for frame := 1; frame <= 3; frame++ {
		system.TickTimer(0.016)
		if spawned := system.Update(); len(spawned) != 0 {
			t.Errorf("frame %d after long frame spawned again", frame)
		}
	}

	if got := len(ecs.GetEntitiesWith1[*components.BarnacleComponent](em)); got != 1 {
		t.Errorf("barnacle count = %d, want 1", got)
	}
}

func TestBarnacleSpawn_InvalidInterval(t *testing.T) {
	em := ecs.NewEntityManager()
	_, err := NewBarnacleSpawnSystem(em, game.NewSession(), config.DefaultBarnacleConfig(), 0, rand.New(rand.NewSource(1)))
	if !errors.Is(err, components.ErrInvalidDuration) {
		t.Errorf("Expected ErrInvalidDuration, got %v", err)
	}
}
