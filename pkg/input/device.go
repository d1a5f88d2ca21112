package input

import "github.com/hajimehoshi/ebiten/v2"

// Device 原始输入设备状态
//
// 生产环境使用 ebiten 轮询实现，测试中可替换为假设备。
type Device interface {
	IsKeyPressed(key ebiten.Key) bool
	// GamepadAxisValue 返回第一个标准布局手柄的轴值，无手柄时返回 0
	GamepadAxisValue(axis ebiten.StandardGamepadAxis) float64
}

// EbitenDevice 基于 ebiten 全局输入状态的 Device 实现
type EbitenDevice struct {
	gamepadIDs []ebiten.GamepadID
}

// IsKeyPressed 检查按键是否按下
func (d *EbitenDevice) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// GamepadAxisValue 读取第一个支持标准布局的手柄的轴值
func (d *EbitenDevice) GamepadAxisValue(axis ebiten.StandardGamepadAxis) float64 {
	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])
	for _, id := range d.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return ebiten.StandardGamepadAxisValue(id, axis)
		}
	}
	return 0
}
