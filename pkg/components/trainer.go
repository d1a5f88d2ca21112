package components

// TrainerComponent 标记由玩家输入驱动的训练师实体
// 拥有此组件和 SpriteComponent 的实体每个 tick 由 TrainerMovementSystem 更新帧索引
type TrainerComponent struct {
	Width  float64 // 精灵宽度（像素）
	Height float64 // 精灵高度（像素）
}
