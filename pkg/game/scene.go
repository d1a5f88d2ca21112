package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game state (e.g., the overworld).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Starter 是一个可选接口，场景在第一次成为活动场景时调用 OnStart
//
// 用于在场景切入时加载资源、创建实体（镜头、训练师等）。
type Starter interface {
	OnStart() error
}
