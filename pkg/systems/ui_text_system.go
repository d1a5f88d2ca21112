package systems

import (
	"image/color"

	"github.com/decker502/overworld/pkg/components"
	"github.com/decker502/overworld/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// UITextSystem 在屏幕空间绘制 UITextComponent
type UITextSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewUITextSystem 创建 UI 文本系统
// face 为 nil 时退回 ebitenutil.DebugPrintAt（无颜色）
func NewUITextSystem(em *ecs.EntityManager, face text.Face) *UITextSystem {
	return &UITextSystem{
		entityManager: em,
		face:          face,
	}
}

// Draw 绘制所有可见文本
func (s *UITextSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.UITextComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.UITextComponent](s.entityManager, id)
		if !label.Visible || label.Text == "" {
			continue
		}

		if s.face == nil {
			ebitenutil.DebugPrintAt(screen, label.Text, label.X, label.Y)
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(label.X), float64(label.Y))
		var clr color.Color = color.White
		if label.Color != nil {
			clr = label.Color
		}
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, label.Text, s.face, op)
	}
}

// ToggleFPSVisible 切换所有 FPS 文本的可见性
func (s *UITextSystem) ToggleFPSVisible() {
	for _, id := range ecs.GetEntitiesWith2[*components.FPSCounterComponent, *components.UITextComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.UITextComponent](s.entityManager, id)
		label.Visible = !label.Visible
	}
}
