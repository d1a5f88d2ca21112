package systems

import (
	"fmt"

	"github.com/decker502/overworld/pkg/components"
	"github.com/decker502/overworld/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultFPSSampleSize FPS 平均窗口大小
const DefaultFPSSampleSize = 20

// FPSCounterSystem 采样 FPS 并更新 FPS 文本
type FPSCounterSystem struct {
	entityManager *ecs.EntityManager
	fpsSource     func() float64
}

// NewFPSCounterSystem 创建 FPS 计数系统
// fpsSource 为 nil 时使用 ebiten.ActualFPS
func NewFPSCounterSystem(em *ecs.EntityManager, fpsSource func() float64) *FPSCounterSystem {
	if fpsSource == nil {
		fpsSource = ebiten.ActualFPS
	}
	return &FPSCounterSystem{
		entityManager: em,
		fpsSource:     fpsSource,
	}
}

// Update 写入一个新采样并刷新文本
func (s *FPSCounterSystem) Update(deltaTime float64) {
	fps := s.fpsSource()

	entities := ecs.GetEntitiesWith2[*components.FPSCounterComponent, *components.UITextComponent](s.entityManager)
	for _, id := range entities {
		counter, _ := ecs.GetComponent[*components.FPSCounterComponent](s.entityManager, id)
		label, _ := ecs.GetComponent[*components.UITextComponent](s.entityManager, id)

		if len(counter.Samples) == 0 {
			counter.Samples = make([]float64, 0, DefaultFPSSampleSize)
		}
		if len(counter.Samples) < cap(counter.Samples) {
			counter.Samples = append(counter.Samples, fps)
		} else {
			counter.Samples[counter.Next] = fps
		}
		counter.Next = (counter.Next + 1) % cap(counter.Samples)

		sum := 0.0
		for _, sample := range counter.Samples {
			sum += sample
		}
		counter.Average = sum / float64(len(counter.Samples))
		label.Text = fmt.Sprintf("FPS: %.0f", counter.Average)
	}
}
