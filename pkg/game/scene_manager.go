package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// 如果场景实现了 Starter，先调用 OnStart；OnStart 失败时保持原场景不变。
func (sm *SceneManager) SwitchTo(scene Scene) error {
	if scene == nil {
		return fmt.Errorf("cannot switch to nil scene")
	}
	if starter, ok := scene.(Starter); ok {
		if err := starter.OnStart(); err != nil {
			return fmt.Errorf("failed to start scene: %w", err)
		}
	}
	sm.currentScene = scene
	log.Printf("[SceneManager] 切换场景: %T", scene)
	return nil
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
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
