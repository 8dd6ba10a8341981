package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameMode 顶层游戏状态
type GameMode int

const (
	ModeMenu GameMode = iota // 菜单
	ModeGame                 // 游戏中
)

// String 返回状态名称
func (m GameMode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModeGame:
		return "Game"
	default:
		return "Unknown"
	}
}

// SceneFactory 场景工厂函数类型
// 用于按状态创建新场景，避免 game 包与 scenes 包循环依赖
type SceneFactory func(mode GameMode) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene  Scene
	currentMode   GameMode
	sceneFactory  SceneFactory // 场景工厂函数，用于创建新场景
	pendingMode   *GameMode    // 延迟到下一帧开始时切换，避免在 Update 中途替换场景
	quitRequested bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or SwitchMode to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The outgoing scene gets a chance to save its state first.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.exitCurrent()
	sm.currentScene = scene
}

// SwitchMode 立即切换到指定状态，使用工厂创建新场景
// 每次进入 ModeGame 都会得到一个全新的会话
func (sm *SceneManager) SwitchMode(mode GameMode) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(mode)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", mode)
		return
	}

	sm.SwitchTo(newScene)
	sm.currentMode = mode
	log.Printf("[SceneManager] 切换到状态: %s", mode)
}

// RequestMode 请求在下一次 Update 开始时切换状态
// 场景在自己的 Update 内部调用此方法
func (sm *SceneManager) RequestMode(mode GameMode) {
	sm.pendingMode = &mode
}

// RequestQuit 请求退出程序（由 App 在下一帧返回 ebiten.Termination）
func (sm *SceneManager) RequestQuit() {
	sm.quitRequested = true
}

// QuitRequested 是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitRequested
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// GetCurrentMode 返回当前状态
func (sm *SceneManager) GetCurrentMode() GameMode {
	return sm.currentMode
}

// Shutdown 程序退出前调用，让当前场景保存状态
func (sm *SceneManager) Shutdown() {
	sm.exitCurrent()
	sm.currentScene = nil
}

// exitCurrent 通知当前场景即将退出
func (sm *SceneManager) exitCurrent() {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[SceneManager] Warning: scene failed to save on exit")
		}
	}
}

// Update updates the currently active scene.
// Pending mode switches are applied before the scene runs.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.pendingMode != nil {
		mode := *sm.pendingMode
		sm.pendingMode = nil
		sm.SwitchMode(mode)
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
