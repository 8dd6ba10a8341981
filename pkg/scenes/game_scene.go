package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/entities"
	"github.com/decker502/barnacles/pkg/game"
	"github.com/decker502/barnacles/pkg/systems"
	"github.com/decker502/barnacles/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 藤壶会话场景
//
// 每次进入都会创建新的实体存储、会话和模拟器。
// Update 先把指针输入转换为交互事件，再执行一次 Tick；
// 退出时把会话摘要写入历史记录。
type GameScene struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	history         *game.HistoryStore

	entityManager *ecs.EntityManager
	session       *game.Session
	simulation    *systems.BarnacleSimulation

	inputSystem     *systems.InputSystem
	renderSystem    *systems.RenderSystem
	hudRenderSystem *systems.HUDRenderSystem

	// 移动端没有键盘，用左上角按钮返回菜单
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	lastResult systems.TickResult
	saved      bool
	leaving    bool // 已请求返回菜单，不再推进 tick
}

// NewGameScene 创建游戏场景
// 参数:
//   - sm: 场景管理器（Esc/Q 返回菜单）
//   - settings: 用户设置（生成间隔覆盖、HUD 开关），可为 nil
//   - history: 会话历史，可为 nil
//   - cfg: 藤壶配置
//
// 配置非法时返回错误
func NewGameScene(sm *game.SceneManager, settings *game.SettingsManager, history *game.HistoryStore, cfg *config.BarnacleConfig) (*GameScene, error) {
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	em := ecs.NewEntityManager()
	session := game.NewSession()

	sim, err := systems.NewBarnacleSimulation(em, session, cfg, systems.SimulationOptions{
		SpawnInterval: settings.GetSettings().SpawnInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create barnacle simulation: %w", err)
	}

	scene := &GameScene{
		sceneManager:    sm,
		settingsManager: settings,
		history:         history,
		entityManager:   em,
		session:         session,
		simulation:      sim,
		renderSystem:    systems.NewRenderSystem(em, cfg.SpawnVolume),
		hudRenderSystem: systems.NewHUDRenderSystem(session),
	}
	scene.inputSystem = systems.NewInputSystem(sim, cfg.SpawnVolume, scene.backToMenu)

	entities.NewWhaleEntity(em)

	if utils.IsMobile() {
		scene.buttonSystem = systems.NewButtonSystem(em)
		scene.buttonRenderSystem = systems.NewButtonRenderSystem(em)
		entities.NewMenuButton(em, 10, 10, 120, 44, "Menu", components.MenuActionBack, scene.backToMenu)
	}

	log.Printf("[GameScene] New session, spawn interval %.2fs", sim.SpawnSystem().Interval())
	return scene, nil
}

func (s *GameScene) backToMenu() {
	s.leaving = true
	if s.sceneManager != nil {
		s.sceneManager.RequestMode(game.ModeMenu)
	}
}

// Update 处理输入并推进一个 tick
func (s *GameScene) Update(deltaTime float64) {
	if s.buttonSystem != nil {
		s.buttonSystem.Update()
	}
	if s.inputSystem.Update() {
		return
	}
	s.step(deltaTime)
}

// step 执行一次模拟 tick；请求返回菜单之后不再推进
func (s *GameScene) step(deltaTime float64) {
	if s.leaving {
		return
	}
	s.lastResult = s.simulation.Tick(deltaTime)
	for _, err := range s.lastResult.Errors {
		log.Printf("[GameScene] Recoverable tick error: %v", err)
	}
}

// Draw 绘制鲸鱼、藤壶和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.inputSystem.Hovered())
	if s.settingsManager.GetSettings().ShowHUD {
		s.hudRenderSystem.Draw(screen)
	}
	if s.buttonRenderSystem != nil {
		s.buttonRenderSystem.Draw(screen)
	}
}

// Session 返回当前会话
func (s *GameScene) Session() *game.Session {
	return s.session
}

// Simulation 返回模拟器
func (s *GameScene) Simulation() *systems.BarnacleSimulation {
	return s.simulation
}

// SaveOnExit 把会话摘要写入历史记录
// 空会话（没有执行过 tick）不记录；重复调用只写一次
func (s *GameScene) SaveOnExit() bool {
	if s.saved || s.history == nil || s.session.Ticks == 0 {
		return true
	}

	summary := s.session.Summary()
	if err := s.history.Record(summary); err != nil {
		log.Printf("[GameScene] Failed to record session: %v", err)
		return false
	}
	s.saved = true

	log.Printf("[GameScene] Session recorded: %.2fs, peak %d, spawned %d, removed %d",
		summary.ElapsedSeconds, summary.PeakPopulation, summary.Spawned, summary.Removed)
	return true
}
