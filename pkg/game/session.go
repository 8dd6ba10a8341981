package game

import "time"

// Session 一局游戏的会话状态
//
// 会话内的共享可变状态（人口计数、统计数据）集中在这里，
// 由场景持有并以指针传入各个系统，不使用全局单例。
// 只有单线程的 tick 流程会写入这些字段。
type Session struct {
	// ElapsedSeconds 会话已进行的时间（秒），供 HUD 显示
	ElapsedSeconds float64
	// PopulationCount 当前处于 Attached 状态的藤壶数量
	// 只由 PopulationSystem 在每个 tick 末尾重新计算
	PopulationCount int

	// 以下为统计数据，会话结束时写入历史记录
	Ticks           uint64 // 已执行的 tick 数
	SpawnedCount    int    // 累计生成的藤壶数量
	RemovedCount    int    // 累计被点击移除的藤壶数量
	PeakPopulation  int    // 最大的 Attached 数量
	StaleReferences int    // 指向不存在实体的点击事件数量

	StartedAt time.Time // 会话开始的墙钟时间
}

// NewSession 创建新的会话
func NewSession() *Session {
	return &Session{
		StartedAt: time.Now(),
	}
}

// SetPopulation 发布新的人口计数并更新峰值
func (s *Session) SetPopulation(count int) {
	s.PopulationCount = count
	if count > s.PeakPopulation {
		s.PeakPopulation = count
	}
}

// SessionSummary 会话结束时的摘要（写入历史记录）
type SessionSummary struct {
	StartedAt      time.Time
	ElapsedSeconds float64
	Ticks          uint64
	Spawned        int
	Removed        int
	PeakPopulation int
	FinalCount     int
}

// Summary 生成当前会话的摘要
func (s *Session) Summary() SessionSummary {
	return SessionSummary{
		StartedAt:      s.StartedAt,
		ElapsedSeconds: s.ElapsedSeconds,
		Ticks:          s.Ticks,
		Spawned:        s.SpawnedCount,
		Removed:        s.RemovedCount,
		PeakPopulation: s.PeakPopulation,
		FinalCount:     s.PopulationCount,
	}
}
