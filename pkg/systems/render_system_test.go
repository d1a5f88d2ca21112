package systems

import (
	"testing"

	"github.com/decker502/overworld/pkg/components"
	"github.com/decker502/overworld/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

type nilFrames struct{}

func (nilFrames) SpriteFrame(int) *ebiten.Image { return nil }

func TestCameraWorldToScreen(t *testing.T) {
	// 500x500 镜头居中于 (250, 250)，原点在左下角
	camera := Camera{X: 250, Y: 250, Width: 500, Height: 500}

	tests := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{"center", 250, 250, 250, 250},
		{"bottom left", 0, 0, 0, 500},
		{"top right", 500, 500, 500, 0},
		{"above center", 250, 400, 250, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := camera.WorldToScreen(tt.x, tt.y, 500, 500)
			if sx != tt.sx || sy != tt.sy {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestCameraWorldToScreenScaled(t *testing.T) {
	camera := Camera{X: 250, Y: 250, Width: 500, Height: 500}
	sx, sy := camera.WorldToScreen(125, 125, 1000, 1000)
	if sx != 250 || sy != 750 {
		t.Errorf("WorldToScreen scaled = (%v, %v), want (250, 750)", sx, sy)
	}
}

func TestActiveCamera(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em, nilFrames{})

	if _, ok := system.ActiveCamera(); ok {
		t.Fatal("expected no camera")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{Width: 500, Height: 500})
	ecs.AddComponent(em, id, &components.PositionComponent{X: 250, Y: 250, Z: 1})

	camera, ok := system.ActiveCamera()
	if !ok {
		t.Fatal("expected camera")
	}
	if camera != (Camera{X: 250, Y: 250, Width: 500, Height: 500}) {
		t.Errorf("camera = %+v", camera)
	}
}

func TestDrawOrderByZ(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em, nilFrames{})

	back := em.CreateEntity()
	front := em.CreateEntity()
	ecs.AddComponent(em, front, &components.SpriteComponent{})
	ecs.AddComponent(em, front, &components.PositionComponent{Z: 2})
	ecs.AddComponent(em, back, &components.SpriteComponent{})
	ecs.AddComponent(em, back, &components.PositionComponent{Z: -1})

	order := system.drawOrder()
	if len(order) != 2 || order[0] != back || order[1] != front {
		t.Errorf("drawOrder = %v, want [%d %d]", order, back, front)
	}
}
