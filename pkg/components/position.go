package components

// PositionComponent 世界坐标（原点在左下角，Y 轴向上）
type PositionComponent struct {
	X, Y float64
	Z    float64 // 绘制层级，数值越大越靠前
}
