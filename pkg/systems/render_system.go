package systems

import (
	"sort"

	"github.com/decker502/overworld/pkg/components"
	"github.com/decker502/overworld/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameSource 按帧索引提供精灵图像（game.ResourceManager 实现此接口）
type FrameSource interface {
	SpriteFrame(index int) *ebiten.Image
}

// Camera 镜头视野：中心点与世界尺寸
type Camera struct {
	X, Y          float64
	Width, Height float64
}

// WorldToScreen 将世界坐标（原点左下，Y 向上）映射为屏幕坐标（原点左上，Y 向下）
func (c Camera) WorldToScreen(x, y float64, screenW, screenH int) (float64, float64) {
	left := c.X - c.Width/2
	bottom := c.Y - c.Height/2
	sx := (x - left) * float64(screenW) / c.Width
	sy := float64(screenH) - (y-bottom)*float64(screenH)/c.Height
	return sx, sy
}

// RenderSystem 按镜头绘制所有拥有 SpriteComponent 和 PositionComponent 的实体
type RenderSystem struct {
	entityManager *ecs.EntityManager
	frames        FrameSource
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, frames FrameSource) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		frames:        frames,
	}
}

// ActiveCamera 返回第一个镜头实体的视野，没有镜头时返回 false
func (s *RenderSystem) ActiveCamera() (Camera, bool) {
	entities := ecs.GetEntitiesWith2[*components.CameraComponent, *components.PositionComponent](s.entityManager)
	if len(entities) == 0 {
		return Camera{}, false
	}
	id := entities[0]
	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	return Camera{X: pos.X, Y: pos.Y, Width: cam.Width, Height: cam.Height}, true
}

// drawOrder 返回按 Z 升序排列的可绘制实体
func (s *RenderSystem) drawOrder() []ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)
	sort.SliceStable(entities, func(i, j int) bool {
		pi, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entities[i])
		pj, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entities[j])
		return pi.Z < pj.Z
	})
	return entities
}

// Draw 绘制所有精灵，精灵中心对齐实体位置
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	camera, ok := s.ActiveCamera()
	if !ok || camera.Width <= 0 || camera.Height <= 0 {
		return
	}

	bounds := screen.Bounds()
	scaleX := float64(bounds.Dx()) / camera.Width
	scaleY := float64(bounds.Dy()) / camera.Height

	for _, id := range s.drawOrder() {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		frame := s.frames.SpriteFrame(sprite.FrameIndex)
		if frame == nil {
			continue
		}

		fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
		sx, sy := camera.WorldToScreen(pos.X, pos.Y, bounds.Dx(), bounds.Dy())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(fw)/2, -float64(fh)/2)
		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(frame, op)
	}
}
