package scenes

import (
	"log"

	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// NewSceneFactory returns a factory that builds the scene for each game mode.
// A game scene that fails to build yields nil, which SceneManager reports and ignores.
func NewSceneFactory(sm *game.SceneManager, settings *game.SettingsManager, history *game.HistoryStore, cfg *config.BarnacleConfig) game.SceneFactory {
	return func(mode game.GameMode) game.Scene {
		switch mode {
		case game.ModeMenu:
			return NewMainMenuScene(sm, settings, history, cfg)
		case game.ModeGame:
			scene, err := NewGameScene(sm, settings, history, cfg)
			if err != nil {
				log.Printf("[SceneFactory] %v", err)
				return nil
			}
			return scene
		default:
			return nil
		}
	}
}
