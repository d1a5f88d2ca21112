package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/overworld/pkg/animation"
	"github.com/decker502/overworld/pkg/components"
	"github.com/decker502/overworld/pkg/config"
	"github.com/decker502/overworld/pkg/ecs"
	"github.com/decker502/overworld/pkg/game"
	"github.com/decker502/overworld/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// fpsFontSize FPS 文本字号
const fpsFontSize = 12

// AxisInput 每个 tick 采样一次、之后按名称读取的输入源（input.InputHandler）
type AxisInput interface {
	systems.AxisSampler
	animation.AxisReader
}

// OverworldDeps 大地图场景依赖
type OverworldDeps struct {
	Display   *config.DisplayConfig
	Resources *game.ResourceManager
	Input     AxisInput
	Selector  *animation.Selector
	// FPSSource 为 nil 时使用 ebiten.ActualFPS
	FPSSource func() float64
}

// OverworldScene 大地图场景：屏幕中央一个由方向键驱动的训练师
type OverworldScene struct {
	display   *config.DisplayConfig
	resources *game.ResourceManager

	entityManager *ecs.EntityManager

	inputSystem           *systems.InputSystem
	trainerMovementSystem *systems.TrainerMovementSystem
	fpsCounterSystem      *systems.FPSCounterSystem
	renderSystem          *systems.RenderSystem
	uiTextSystem          *systems.UITextSystem

	trainerEntity ecs.EntityID
	cameraEntity  ecs.EntityID
	fpsEntity     ecs.EntityID
}

// NewOverworldScene 创建大地图场景，实体在 OnStart 中创建
func NewOverworldScene(deps OverworldDeps) *OverworldScene {
	display := deps.Display
	if display == nil {
		display = config.DefaultDisplayConfig()
	}

	em := ecs.NewEntityManager()
	scene := &OverworldScene{
		display:               display,
		resources:             deps.Resources,
		entityManager:         em,
		inputSystem:           systems.NewInputSystem(deps.Input),
		trainerMovementSystem: systems.NewTrainerMovementSystem(em, deps.Input, deps.Selector),
		fpsCounterSystem:      systems.NewFPSCounterSystem(em, deps.FPSSource),
	}
	if deps.Resources != nil {
		scene.renderSystem = systems.NewRenderSystem(em, deps.Resources)
	}
	scene.uiTextSystem = systems.NewUITextSystem(em, nil)
	return scene
}

// OnStart 加载行走图与字体，创建镜头、训练师和 FPS 文本
func (s *OverworldScene) OnStart() error {
	if s.resources != nil {
		if err := s.resources.LoadSpriteSheet(); err != nil {
			return fmt.Errorf("failed to load trainer sprite sheet: %w", err)
		}
		face, err := s.resources.LoadFont(fpsFontSize)
		if err != nil {
			log.Printf("[OverworldScene] Warning: 字体加载失败，使用调试字体: %v", err)
		} else {
			s.uiTextSystem = systems.NewUITextSystem(s.entityManager, face)
		}
	}

	s.spawnEntities()
	return nil
}

// spawnEntities 创建镜头、训练师和 FPS 文本实体
func (s *OverworldScene) spawnEntities() {
	width := float64(s.display.Width)
	height := float64(s.display.Height)

	// 镜头覆盖整个场地，(0, 0) 在左下角
	s.cameraEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.cameraEntity, &components.CameraComponent{
		Width:  width,
		Height: height,
	})
	ecs.AddComponent(s.entityManager, s.cameraEntity, &components.PositionComponent{
		X: width * 0.5,
		Y: height * 0.5,
		Z: 1,
	})

	// 训练师位于屏幕中央，从向下的第一帧开始
	s.trainerEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.trainerEntity, &components.TrainerComponent{
		Width:  config.TrainerWidth,
		Height: config.TrainerHeight,
	})
	ecs.AddComponent(s.entityManager, s.trainerEntity, &components.PositionComponent{
		X: width / 2,
		Y: height / 2,
		Z: 0,
	})
	ecs.AddComponent(s.entityManager, s.trainerEntity, &components.SpriteComponent{FrameIndex: 0})

	s.fpsEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.fpsEntity, &components.FPSCounterComponent{})
	ecs.AddComponent(s.entityManager, s.fpsEntity, &components.UITextComponent{
		X:       8,
		Y:       8,
		Color:   color.White,
		Visible: s.display.ShowFPS,
	})

	log.Printf("[OverworldScene] 训练师实体 %d 创建于 (%.0f, %.0f)", s.trainerEntity, width/2, height/2)
}

// Update 每个 tick 依次运行输入、训练师移动和 FPS 系统
func (s *OverworldScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.trainerMovementSystem.Update(deltaTime)
	s.fpsCounterSystem.Update(deltaTime)
}

// Draw 清屏后绘制精灵和 UI 文本
func (s *OverworldScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.display.BackgroundColor())
	if s.renderSystem != nil {
		s.renderSystem.Draw(screen)
	}
	s.uiTextSystem.Draw(screen)
}

// ToggleFPS 切换 FPS 文本显示
func (s *OverworldScene) ToggleFPS() {
	s.uiTextSystem.ToggleFPSVisible()
}

// TrainerFrame 返回训练师当前帧索引
func (s *OverworldScene) TrainerFrame() (int, bool) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.trainerEntity)
	if !ok {
		return 0, false
	}
	return sprite.FrameIndex, true
}

// EntityManager 返回场景的实体管理器
func (s *OverworldScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
