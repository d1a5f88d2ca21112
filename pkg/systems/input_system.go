package systems

// AxisSampler 每个 tick 采样一次输入设备（input.InputHandler 实现此接口）
type AxisSampler interface {
	Update()
}

// InputSystem 在其它系统之前采样输入，保证同一 tick 内所有系统读到相同的轴值
type InputSystem struct {
	sampler AxisSampler
}

// NewInputSystem 创建输入系统
func NewInputSystem(sampler AxisSampler) *InputSystem {
	return &InputSystem{sampler: sampler}
}

// Update 采样输入
func (s *InputSystem) Update(deltaTime float64) {
	if s.sampler != nil {
		s.sampler.Update()
	}
}
