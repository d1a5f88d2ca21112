package components

// FPSCounterComponent 将平均 FPS 写入同一实体的 UITextComponent
type FPSCounterComponent struct {
	// Samples 最近的 FPS 采样（环形缓冲）
	Samples []float64

	// Next 下一次写入的位置
	Next int

	// Average 采样平均值
	Average float64
}
