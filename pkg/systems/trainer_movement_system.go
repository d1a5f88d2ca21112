package systems

import (
	"log"

	"github.com/decker502/overworld/pkg/animation"
	"github.com/decker502/overworld/pkg/components"
	"github.com/decker502/overworld/pkg/ecs"
)

// TrainerMovementSystem 根据方向输入更新训练师行走图的帧索引
//
// 每个 tick 读取一次输入轴，对所有同时拥有 TrainerComponent 和 SpriteComponent 的实体
// 调用方向/帧选择器，只修改 SpriteComponent.FrameIndex。
type TrainerMovementSystem struct {
	entityManager *ecs.EntityManager
	axes          animation.AxisReader
	selector      *animation.Selector
}

// NewTrainerMovementSystem 创建训练师移动系统
//
// 参数:
//   - em: 实体管理器
//   - axes: 输入轴来源（通常是 input.InputHandler）
//   - selector: 方向/帧选择器，为 nil 时使用默认区间表和垂直优先
func NewTrainerMovementSystem(em *ecs.EntityManager, axes animation.AxisReader, selector *animation.Selector) *TrainerMovementSystem {
	if selector == nil {
		selector = animation.NewSelector(nil, animation.VerticalFirst)
	}
	return &TrainerMovementSystem{
		entityManager: em,
		axes:          axes,
		selector:      selector,
	}
}

// Update 推进所有训练师的行走动画
func (s *TrainerMovementSystem) Update(deltaTime float64) {
	axes := animation.ReadAxes(s.axes)
	requested := animation.RequestedDirection(axes, s.selector.Priority)
	if requested == animation.Stationary {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.TrainerComponent, *components.SpriteComponent](s.entityManager)
	for _, id := range entities {
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}

		previous := sprite.FrameIndex
		sprite.FrameIndex = animation.NextFrame(s.selector.Table, previous, requested)

		if s.selector.Table.DirectionOf(previous) != requested {
			log.Printf("[TrainerMovementSystem] 实体 %d 转向 %s: 帧 %d -> %d", id, requested, previous, sprite.FrameIndex)
		}
	}
}
