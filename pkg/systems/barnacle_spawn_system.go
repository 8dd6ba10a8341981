package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/entities"
	"github.com/decker502/barnacles/pkg/game"
)

// SpawnRequest 一次生成请求，交给外部放置/渲染使用
type SpawnRequest struct {
	Entity ecs.EntityID
	X      float64
	Y      float64
	Z      float64
}

// BarnacleSpawnSystem 管理藤壶的定时生成
//
// 生成位置在生成体积内均匀采样（不是鲸鱼网格表面采样），
// 生成是无条件的，不限制藤壶总数。
type BarnacleSpawnSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	cfg           *config.BarnacleConfig
	rng           *rand.Rand
	spawnTimer    *components.TimerComponent // 重复计时器
	enabled       bool
}

// NewBarnacleSpawnSystem 创建藤壶生成系统
// 参数:
//   - em: EntityManager 实例
//   - session: 会话状态（累计生成数）
//   - cfg: 藤壶配置
//   - interval: 生成间隔（秒），必须为正数
//   - rng: 随机源，传入固定种子可得到可重放的生成序列
func NewBarnacleSpawnSystem(em *ecs.EntityManager, session *game.Session, cfg *config.BarnacleConfig, interval float64, rng *rand.Rand) (*BarnacleSpawnSystem, error) {
	timer, err := components.NewTimerComponent("barnacle_spawn", interval, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create spawn timer: %w", err)
	}

	log.Printf("[BarnacleSpawnSystem] Initialized with interval=%.2fs, volume=%v-%v",
		interval, cfg.SpawnVolume.Min, cfg.SpawnVolume.Max)

	return &BarnacleSpawnSystem{
		entityManager: em,
		session:       session,
		cfg:           cfg,
		rng:           rng,
		spawnTimer:    timer,
		enabled:       true,
	}, nil
}

// TickTimer 推进生成计时器（tick 第 1 步）
func (s *BarnacleSpawnSystem) TickTimer(deltaTime float64) {
	if !s.enabled {
		return
	}
	s.spawnTimer.Tick(deltaTime)
}

// Update 检查计时器是否刚触发，触发则生成一只藤壶（tick 第 3 步）
// 返回本 tick 的生成请求（至多一个）
func (s *BarnacleSpawnSystem) Update() []SpawnRequest {
	if !s.enabled || !s.spawnTimer.JustFinished {
		return nil
	}

	x, y, z := s.samplePosition()
	id, err := entities.NewBarnacleEntity(s.entityManager, s.cfg, x, y, z)
	if err != nil {
		log.Printf("[BarnacleSpawnSystem] WARNING: Failed to spawn barnacle: %v", err)
		return nil
	}

	if s.session != nil {
		s.session.SpawnedCount++
	}
	log.Printf("[BarnacleSpawnSystem] Spawned barnacle %d at (%.3f, %.3f, %.3f)", id, x, y, z)

	return []SpawnRequest{{Entity: id, X: x, Y: y, Z: z}}
}

// samplePosition 在生成体积内对每个坐标独立均匀采样
func (s *BarnacleSpawnSystem) samplePosition() (float64, float64, float64) {
	var p [3]float64
	for axis := 0; axis < 3; axis++ {
		lo := s.cfg.SpawnVolume.Min[axis]
		hi := s.cfg.SpawnVolume.Max[axis]
		p[axis] = lo + s.rng.Float64()*(hi-lo)
	}
	return p[0], p[1], p[2]
}

// Interval 返回当前生成间隔
func (s *BarnacleSpawnSystem) Interval() float64 {
	return s.spawnTimer.Duration
}

// Disable 停止自动生成，已生成的藤壶继续演化
func (s *BarnacleSpawnSystem) Disable() {
	s.enabled = false
	log.Printf("[BarnacleSpawnSystem] Auto spawn DISABLED")
}
