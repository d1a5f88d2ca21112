// Package input 将键盘/手柄状态映射为按名称读取的输入轴
package input

import (
	"fmt"
	"math"

	"github.com/decker502/overworld/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// axis 解析后的轴绑定
type axis struct {
	pos         []ebiten.Key
	neg         []ebiten.Key
	hasGamepad  bool
	gamepadAxis ebiten.StandardGamepadAxis
	invert      bool
	deadZone    float64
}

// InputHandler 持有轴绑定与本 tick 的轴值
//
// 每个 tick 调用一次 Update 采样设备，之后 AxisValue 返回本 tick 的快照。
// 未绑定的轴名返回 (0, false)。
type InputHandler struct {
	device Device
	axes   map[string]axis
	values map[string]float64
}

// NewInputHandler 根据绑定配置创建 InputHandler
//
// 参数:
//   - bindings: 输入绑定配置
//   - device: 输入设备，为 nil 时使用 EbitenDevice
//
// 返回:
//   - error: 按键名或手柄轴名无法识别时返回错误
func NewInputHandler(bindings *config.BindingsConfig, device Device) (*InputHandler, error) {
	if bindings == nil {
		return nil, fmt.Errorf("bindings config is nil")
	}
	if device == nil {
		device = &EbitenDevice{}
	}

	h := &InputHandler{
		device: device,
		axes:   make(map[string]axis, len(bindings.Axes)),
		values: make(map[string]float64, len(bindings.Axes)),
	}

	for _, name := range bindings.AxisNames() {
		binding := bindings.Axes[name]
		a := axis{
			invert:   binding.InvertGamepad,
			deadZone: binding.DeadZone,
		}
		for _, keyName := range binding.Pos {
			key, err := ParseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("axis %q: %w", name, err)
			}
			a.pos = append(a.pos, key)
		}
		for _, keyName := range binding.Neg {
			key, err := ParseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("axis %q: %w", name, err)
			}
			a.neg = append(a.neg, key)
		}
		if binding.GamepadAxis != "" {
			gamepadAxis, err := ParseGamepadAxis(binding.GamepadAxis)
			if err != nil {
				return nil, fmt.Errorf("axis %q: %w", name, err)
			}
			a.hasGamepad = true
			a.gamepadAxis = gamepadAxis
		}
		h.axes[name] = a
	}

	return h, nil
}

// Update 采样所有已绑定轴的当前值
func (h *InputHandler) Update() {
	for name, a := range h.axes {
		h.values[name] = h.sample(a)
	}
}

// AxisValue 返回本 tick 的轴值，范围 [-1, 1]
func (h *InputHandler) AxisValue(name string) (float64, bool) {
	if _, ok := h.axes[name]; !ok {
		return 0, false
	}
	return h.values[name], true
}

// sample 计算单个轴的值：键盘优先，键盘无信号时读取手柄
func (h *InputHandler) sample(a axis) float64 {
	value := 0.0
	if h.anyPressed(a.pos) {
		value++
	}
	if h.anyPressed(a.neg) {
		value--
	}
	if value != 0 || !a.hasGamepad {
		return value
	}

	raw := h.device.GamepadAxisValue(a.gamepadAxis)
	if a.invert {
		raw = -raw
	}
	if math.Abs(raw) < a.deadZone {
		return 0
	}
	return math.Max(-1, math.Min(1, raw))
}

func (h *InputHandler) anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if h.device.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
