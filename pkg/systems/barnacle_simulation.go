package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/game"
)

// TickResult 单个 tick 的输出
type TickResult struct {
	Spawned    []SpawnRequest // 本 tick 生成的藤壶
	Errors     []error        // 事件处理中遇到的可恢复错误
	Population int            // tick 结束时的 Attached 数量
}

// BarnacleSimulation 藤壶生命周期的 tick 编排器
//
// 每个 tick 按固定顺序执行：
//  1. 推进所有计时器（藤壶计时器与生成计时器）
//  2. 根据计时器推进藤壶状态
//  3. 检查生成计时器并提交新藤壶
//  4. 处理并清空交互事件
//  5. 重新计算人口计数
//
// 第 3 步新建的藤壶本 tick 不推进计时器，但会被第 4、5 步看到。
type BarnacleSimulation struct {
	entityManager *ecs.EntityManager
	session       *game.Session

	timerSystem      *BarnacleTimerSystem
	lifecycleSystem  *BarnacleLifecycleSystem
	spawnSystem      *BarnacleSpawnSystem
	selectionSystem  *SelectionEventSystem
	populationSystem *PopulationSystem
}

// SimulationOptions 编排器的可选参数
type SimulationOptions struct {
	// SpawnInterval 覆盖配置中的生成间隔，0 表示使用配置值
	SpawnInterval float64
	// Rand 随机源；为 nil 时按配置种子（或当前时间）创建
	Rand *rand.Rand
}

// NewBarnacleSimulation 创建编排器
// 配置非法（如非正数时长）时立即返回错误
func NewBarnacleSimulation(em *ecs.EntityManager, session *game.Session, cfg *config.BarnacleConfig, opts SimulationOptions) (*BarnacleSimulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid barnacle config: %w", err)
	}

	interval := cfg.SpawnInterval
	if opts.SpawnInterval != 0 {
		interval = opts.SpawnInterval
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	spawnSystem, err := NewBarnacleSpawnSystem(em, session, cfg, interval, rng)
	if err != nil {
		return nil, err
	}

	return &BarnacleSimulation{
		entityManager:    em,
		session:          session,
		timerSystem:      NewBarnacleTimerSystem(em),
		lifecycleSystem:  NewBarnacleLifecycleSystem(em),
		spawnSystem:      spawnSystem,
		selectionSystem:  NewSelectionEventSystem(em, session),
		populationSystem: NewPopulationSystem(em, session),
	}, nil
}

// PushEvents 将外部交互事件加入下一次 Tick 的批次
func (s *BarnacleSimulation) PushEvents(events ...components.InteractionEvent) {
	s.selectionSystem.Push(events...)
}

// Tick 执行一个 tick
func (s *BarnacleSimulation) Tick(deltaTime float64) TickResult {
	if deltaTime < 0 {
		deltaTime = 0
	}
	s.session.ElapsedSeconds += deltaTime
	s.session.Ticks++

	// 1. 计时器
	s.timerSystem.Update(deltaTime)
	s.spawnSystem.TickTimer(deltaTime)

	// 2. 状态转换
	s.lifecycleSystem.Update()

	// 3. 生成
	spawned := s.spawnSystem.Update()

	// 4. 交互事件
	errs := s.selectionSystem.Update()

	// 5. 人口计数
	population := s.populationSystem.Update()

	return TickResult{
		Spawned:    spawned,
		Errors:     errs,
		Population: population,
	}
}

// EntityManager 返回实体存储
func (s *BarnacleSimulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Session 返回会话状态
func (s *BarnacleSimulation) Session() *game.Session {
	return s.session
}

// SpawnSystem 返回生成系统（用于启用/禁用自动生成）
func (s *BarnacleSimulation) SpawnSystem() *BarnacleSpawnSystem {
	return s.spawnSystem
}

// SelectionSystem 返回交互事件系统（用于读取悬停/选中状态）
func (s *BarnacleSimulation) SelectionSystem() *SelectionEventSystem {
	return s.selectionSystem
}
