package input

import (
	"testing"

	"github.com/decker502/overworld/pkg/animation"
	"github.com/decker502/overworld/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeDevice 测试用输入设备
type fakeDevice struct {
	pressed map[ebiten.Key]bool
	axes    map[ebiten.StandardGamepadAxis]float64
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		pressed: make(map[ebiten.Key]bool),
		axes:    make(map[ebiten.StandardGamepadAxis]float64),
	}
}

func (d *fakeDevice) IsKeyPressed(key ebiten.Key) bool {
	return d.pressed[key]
}

func (d *fakeDevice) GamepadAxisValue(axis ebiten.StandardGamepadAxis) float64 {
	return d.axes[axis]
}

func newTestHandler(t *testing.T, device Device) *InputHandler {
	t.Helper()
	h, err := NewInputHandler(config.DefaultBindingsConfig(), device)
	if err != nil {
		t.Fatalf("NewInputHandler() error: %v", err)
	}
	return h
}

func TestAxisValueFromKeys(t *testing.T) {
	tests := []struct {
		name       string
		pressed    []ebiten.Key
		horizontal float64
		vertical   float64
	}{
		{"nothing pressed", nil, 0, 0},
		{"right", []ebiten.Key{ebiten.KeyD}, 1, 0},
		{"left arrow", []ebiten.Key{ebiten.KeyArrowLeft}, -1, 0},
		{"up", []ebiten.Key{ebiten.KeyW}, 0, 1},
		{"down arrow", []ebiten.Key{ebiten.KeyArrowDown}, 0, -1},
		{"opposite keys cancel", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, 0, 0},
		{"diagonal", []ebiten.Key{ebiten.KeyA, ebiten.KeyW}, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := newFakeDevice()
			for _, key := range tt.pressed {
				device.pressed[key] = true
			}
			h := newTestHandler(t, device)
			h.Update()

			if got, ok := h.AxisValue(animation.AxisHorizontal); !ok || got != tt.horizontal {
				t.Errorf("horizontal = (%v, %v), want (%v, true)", got, ok, tt.horizontal)
			}
			if got, ok := h.AxisValue(animation.AxisVertical); !ok || got != tt.vertical {
				t.Errorf("vertical = (%v, %v), want (%v, true)", got, ok, tt.vertical)
			}
		})
	}
}

func TestAxisValueFromGamepad(t *testing.T) {
	device := newFakeDevice()
	h := newTestHandler(t, device)

	// 标准手柄纵轴向下为正，默认绑定翻转后向上为正
	device.axes[ebiten.StandardGamepadAxisLeftStickVertical] = -0.8
	device.axes[ebiten.StandardGamepadAxisLeftStickHorizontal] = 0.1 // 死区内
	h.Update()

	if got, _ := h.AxisValue(animation.AxisVertical); got != 0.8 {
		t.Errorf("vertical = %v, want 0.8", got)
	}
	if got, _ := h.AxisValue(animation.AxisHorizontal); got != 0 {
		t.Errorf("horizontal = %v, want 0 (dead zone)", got)
	}

	// 键盘有信号时覆盖手柄
	device.pressed[ebiten.KeyS] = true
	h.Update()
	if got, _ := h.AxisValue(animation.AxisVertical); got != -1 {
		t.Errorf("vertical with key = %v, want -1", got)
	}
}

func TestAxisValueUnboundAxis(t *testing.T) {
	h := newTestHandler(t, newFakeDevice())
	h.Update()
	if _, ok := h.AxisValue("zoom"); ok {
		t.Error("unbound axis should report ok=false")
	}
}

func TestNewInputHandlerRejectsUnknownNames(t *testing.T) {
	badKey := config.DefaultBindingsConfig()
	badKey.Axes[animation.AxisHorizontal] = config.AxisBinding{Pos: []string{"Hyper"}}
	if _, err := NewInputHandler(badKey, newFakeDevice()); err == nil {
		t.Error("expected error for unknown key")
	}

	badAxis := config.DefaultBindingsConfig()
	badAxis.Axes[animation.AxisVertical] = config.AxisBinding{GamepadAxis: "trigger"}
	if _, err := NewInputHandler(badAxis, newFakeDevice()); err == nil {
		t.Error("expected error for unknown gamepad axis")
	}

	if _, err := NewInputHandler(nil, newFakeDevice()); err == nil {
		t.Error("expected error for nil bindings")
	}
}

// InputHandler 可直接作为选择器的 AxisReader 使用
func TestInputHandlerDrivesSelector(t *testing.T) {
	device := newFakeDevice()
	device.pressed[ebiten.KeyArrowUp] = true
	device.pressed[ebiten.KeyArrowRight] = true
	h := newTestHandler(t, device)
	h.Update()

	selector := animation.NewSelector(nil, animation.VerticalFirst)
	if got := selector.Next(0, animation.ReadAxes(h)); got != 12 {
		t.Errorf("Next(0) = %d, want 12", got)
	}
}

func TestParseKey(t *testing.T) {
	for name, want := range map[string]ebiten.Key{
		"W":          ebiten.KeyW,
		"arrowRight": ebiten.KeyArrowRight,
		" left ":     ebiten.KeyArrowLeft,
		"Space":      ebiten.KeySpace,
		"f1":         ebiten.KeyF1,
		"Digit1":     ebiten.KeyDigit1,
		"numpad8":    ebiten.KeyNumpad8,
	} {
		got, err := ParseKey(name)
		if err != nil || got != want {
			t.Errorf("ParseKey(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseKey("Hyper"); err == nil {
		t.Error("ParseKey(\"Hyper\") should fail")
	}
}
