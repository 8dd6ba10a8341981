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
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// menuScreen identifies which page of the menu is visible.
type menuScreen int

const (
	menuScreenMain menuScreen = iota
	menuScreenSettings
)

// MainMenuScene represents the menu shown in front of the whale.
// It has a main page (New Game / Settings / Quit) and a settings page
// (spawn interval, HUD toggle, Back).
type MainMenuScene struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	history         *game.HistoryStore
	defaultInterval float64 // spawn interval from the barnacle config

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	renderSystem       *systems.RenderSystem

	screen        menuScreen
	pendingScreen *menuScreen // applied after the button system finishes its pass
	buttons       []ecs.EntityID
	bestLine      string
	lastLine      string
}

// NewMainMenuScene creates the menu scene.
//
// Parameters:
//   - sm: SceneManager used to start a game or quit.
//   - settings: persisted user settings; nil falls back to in-memory defaults.
//   - history: session history used for the "best run" and "last run" lines; may be nil.
//   - cfg: barnacle config, used for the default spawn interval and the whale backdrop.
func NewMainMenuScene(sm *game.SceneManager, settings *game.SettingsManager, history *game.HistoryStore, cfg *config.BarnacleConfig) *MainMenuScene {
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	em := ecs.NewEntityManager()
	scene := &MainMenuScene{
		sceneManager:       sm,
		settingsManager:    settings,
		history:            history,
		defaultInterval:    cfg.SpawnInterval,
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em),
		buttonRenderSystem: systems.NewButtonRenderSystem(em),
		renderSystem:       systems.NewRenderSystem(em, cfg.SpawnVolume),
	}

	entities.NewWhaleEntity(em)
	scene.loadHistory()
	scene.buildScreen(menuScreenMain)

	log.Printf("[MainMenuScene] Created")
	return scene
}

// loadHistory reads the best and the most recent session for display.
func (m *MainMenuScene) loadHistory() {
	if m.history == nil {
		return
	}
	best, ok, err := m.history.Best()
	if err != nil {
		log.Printf("[MainMenuScene] Warning: failed to read history: %v", err)
		return
	}
	if ok {
		m.bestLine = fmt.Sprintf("Best: %d barnacles in %.2fs", best.PeakPopulation, best.ElapsedSeconds)
	}

	recent, err := m.history.Recent(1)
	if err != nil {
		log.Printf("[MainMenuScene] Warning: failed to read recent sessions: %v", err)
		return
	}
	if len(recent) > 0 {
		last := recent[0]
		m.lastLine = fmt.Sprintf("Last: %d barnacles in %.2fs (%d removed)", last.PeakPopulation, last.ElapsedSeconds, last.Removed)
	}
}

// buildScreen replaces the current buttons with those of the given page.
func (m *MainMenuScene) buildScreen(screen menuScreen) {
	for _, id := range m.buttons {
		m.entityManager.DestroyEntity(id)
	}
	m.entityManager.RemoveMarkedEntities()
	m.buttons = m.buttons[:0]
	m.screen = screen

	switch screen {
	case menuScreenMain:
		m.addButton(0, 3, config.MenuButtonWidth, "New Game", components.MenuActionPlay, func() {
			log.Printf("[MainMenuScene] New Game")
			m.sceneManager.RequestMode(game.ModeGame)
		})
		m.addButton(1, 3, config.MenuButtonWidth, "Settings", components.MenuActionSettings, func() {
			m.requestScreen(menuScreenSettings)
		})
		m.addButton(2, 3, config.MenuButtonWidth, "Quit", components.MenuActionQuit, func() {
			log.Printf("[MainMenuScene] Quit")
			m.sceneManager.RequestQuit()
		})

	case menuScreenSettings:
		m.addButton(0, 3, config.SettingsButtonWidth, m.spawnIntervalLabel(), components.MenuActionToggle, m.cycleSpawnInterval)
		m.addButton(1, 3, config.SettingsButtonWidth, m.showHUDLabel(), components.MenuActionToggle, m.toggleShowHUD)
		m.addButton(2, 3, config.SettingsButtonWidth, "Back", components.MenuActionBack, func() {
			m.requestScreen(menuScreenMain)
		})
	}
}

func (m *MainMenuScene) addButton(index, count int, width float64, label string, action components.MenuAction, onClick func()) {
	x, y := config.MenuButtonLayout(index, count, width)
	id := entities.NewMenuButton(m.entityManager, x, y, width, config.MenuButtonHeight, label, action, onClick)
	m.buttons = append(m.buttons, id)
}

func (m *MainMenuScene) requestScreen(screen menuScreen) {
	m.pendingScreen = &screen
}

func (m *MainMenuScene) spawnIntervalLabel() string {
	interval := m.settingsManager.EffectiveSpawnInterval(m.defaultInterval)
	return fmt.Sprintf("Spawn Interval: %.1fs", interval)
}

func (m *MainMenuScene) showHUDLabel() string {
	if m.settingsManager.GetSettings().ShowHUD {
		return "Show HUD: On"
	}
	return "Show HUD: Off"
}

// cycleSpawnInterval advances to the next spawn interval option and persists it.
func (m *MainMenuScene) cycleSpawnInterval() {
	current := m.settingsManager.EffectiveSpawnInterval(m.defaultInterval)
	next := config.NextSpawnInterval(current)
	m.settingsManager.SetSpawnInterval(next)
	m.saveSettings()
	m.requestScreen(menuScreenSettings)
}

// toggleShowHUD flips the HUD visibility setting and persists it.
func (m *MainMenuScene) toggleShowHUD() {
	m.settingsManager.SetShowHUD(!m.settingsManager.GetSettings().ShowHUD)
	m.saveSettings()
	m.requestScreen(menuScreenSettings)
}

func (m *MainMenuScene) saveSettings() {
	if err := m.settingsManager.Save(); err != nil {
		log.Printf("[MainMenuScene] Warning: failed to save settings: %v", err)
	}
}

// ButtonLabels returns the labels of the visible buttons in layout order.
func (m *MainMenuScene) ButtonLabels() []string {
	labels := make([]string, 0, len(m.buttons))
	for _, id := range m.buttons {
		if button, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, id); ok {
			labels = append(labels, button.Text)
		}
	}
	return labels
}

// Update handles button interaction and applies page switches.
func (m *MainMenuScene) Update(deltaTime float64) {
	m.buttonSystem.Update()
	m.applyPendingScreen()
}

func (m *MainMenuScene) applyPendingScreen() {
	if m.pendingScreen == nil {
		return
	}
	screen := *m.pendingScreen
	m.pendingScreen = nil
	m.buildScreen(screen)
}

// Draw renders the whale backdrop, the buttons and the history lines.
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	m.renderSystem.Draw(screen, ecs.InvalidEntity)
	m.buttonRenderSystem.Draw(screen)

	if m.bestLine != "" {
		ebitenutil.DebugPrintAt(screen, m.bestLine, 10, 10)
	}
	if m.lastLine != "" {
		ebitenutil.DebugPrintAt(screen, m.lastLine, 10, 26)
	}
}
