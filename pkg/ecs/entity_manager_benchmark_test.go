package ecs

import "testing"

type benchmarkStatus struct {
	Value int
}

type benchmarkPosition struct {
	X, Y, Z float64
}

// setupBenchmarkEntities 创建指定数量的实体，每个实体带状态与位置组件
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &benchmarkStatus{Value: i % 3})
		em.AddComponent(id, &benchmarkPosition{})
	}
	return em
}

func BenchmarkGetEntitiesWith2_1000(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*benchmarkStatus, *benchmarkPosition](em)
	}
}

func BenchmarkGetComponent(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GetComponent[*benchmarkStatus](em, EntityID(i%1000+1))
	}
}
