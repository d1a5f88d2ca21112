package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// gamepadAxisNames 绑定文件中可用的标准手柄轴名
var gamepadAxisNames = map[string]ebiten.StandardGamepadAxis{
	"leftstickhorizontal":  ebiten.StandardGamepadAxisLeftStickHorizontal,
	"leftstickvertical":    ebiten.StandardGamepadAxisLeftStickVertical,
	"rightstickhorizontal": ebiten.StandardGamepadAxisRightStickHorizontal,
	"rightstickvertical":   ebiten.StandardGamepadAxisRightStickVertical,
}

// ParseKey 将按键名解析为 ebiten.Key
//
// 接受 ebiten 的全部按键名（不区分大小写），例如 "W"、"ArrowUp"、"Space"、"F1"、"Digit1"。
func ParseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return key, nil
}

// ParseGamepadAxis 将手柄轴名解析为 ebiten.StandardGamepadAxis
func ParseGamepadAxis(name string) (ebiten.StandardGamepadAxis, error) {
	axis, ok := gamepadAxisNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown gamepad axis %q", name)
	}
	return axis, nil
}
