package components

// SpriteComponent 存储实体在行走图中当前显示的帧
type SpriteComponent struct {
	FrameIndex int // 当前帧索引，实体创建时为 0
}
