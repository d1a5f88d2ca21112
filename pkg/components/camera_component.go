package components

// CameraComponent 标准 2D 正交镜头
//
// 镜头中心由同一实体的 PositionComponent 给出，视野为 Width x Height 世界单位。
// 世界坐标原点在左下角，渲染时翻转 Y 轴映射到屏幕坐标。
type CameraComponent struct {
	// Width 视野宽度（世界单位）
	Width float64

	// Height 视野高度（世界单位）
	Height float64
}
