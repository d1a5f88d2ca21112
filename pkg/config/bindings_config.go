package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/decker502/overworld/pkg/animation"
	"gopkg.in/yaml.v3"
)

// AxisBinding 一个输入轴的绑定
//
// 键盘按键模拟轴：正向键按下为 +1，负向键按下为 -1，同时按下为 0。
// 手柄摇杆在键盘无信号时生效，绝对值小于 DeadZone 视为 0。
type AxisBinding struct {
	// Pos 正向按键名（如 "D", "ArrowRight"）
	Pos []string `yaml:"pos"`

	// Neg 负向按键名
	Neg []string `yaml:"neg"`

	// GamepadAxis 标准手柄轴名（如 "leftStickHorizontal"），为空表示不绑定手柄
	GamepadAxis string `yaml:"gamepadAxis,omitempty"`

	// InvertGamepad 是否翻转手柄轴（标准手柄的纵轴向下为正）
	InvertGamepad bool `yaml:"invertGamepad,omitempty"`

	// DeadZone 手柄死区
	DeadZone float64 `yaml:"deadZone,omitempty"`
}

// BindingsConfig 输入绑定配置
//
// 配置文件位置: data/bindings.yaml
type BindingsConfig struct {
	// Axes 轴名 -> 绑定（训练师移动使用 "horizontal" 和 "vertical"）
	Axes map[string]AxisBinding `yaml:"axes"`

	// AxisPriority 水平与垂直同时有输入时的优先轴: "vertical"（默认）或 "horizontal"
	AxisPriority string `yaml:"axisPriority"`
}

// DefaultBindingsConfig 返回默认绑定：方向键/WASD + 左摇杆
func DefaultBindingsConfig() *BindingsConfig {
	return &BindingsConfig{
		Axes: map[string]AxisBinding{
			animation.AxisHorizontal: {
				Pos:         []string{"D", "ArrowRight"},
				Neg:         []string{"A", "ArrowLeft"},
				GamepadAxis: "leftStickHorizontal",
				DeadZone:    0.25,
			},
			animation.AxisVertical: {
				Pos:           []string{"W", "ArrowUp"},
				Neg:           []string{"S", "ArrowDown"},
				GamepadAxis:   "leftStickVertical",
				InvertGamepad: true,
				DeadZone:      0.25,
			},
		},
		AxisPriority: "vertical",
	}
}

// LoadBindingsConfig 从文件加载输入绑定配置
func LoadBindingsConfig(path string) (*BindingsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings config: %w", err)
	}
	return ParseBindingsConfig(data)
}

// ParseBindingsConfig 解析 YAML 输入绑定配置
func ParseBindingsConfig(data []byte) (*BindingsConfig, error) {
	var config BindingsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse bindings config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bindings config: %w", err)
	}
	return &config, nil
}

// Validate 验证配置有效性
//
// 按键名与手柄轴名的合法性由 input 包在构建 InputHandler 时检查。
func (c *BindingsConfig) Validate() error {
	if len(c.Axes) == 0 {
		return fmt.Errorf("no axes defined")
	}
	for _, name := range c.AxisNames() {
		binding := c.Axes[name]
		if len(binding.Pos) == 0 && len(binding.Neg) == 0 && binding.GamepadAxis == "" {
			return fmt.Errorf("axis %q has no keys and no gamepad axis", name)
		}
		if binding.DeadZone < 0 || binding.DeadZone >= 1 {
			return fmt.Errorf("axis %q deadZone must be within [0, 1), got %.2f", name, binding.DeadZone)
		}
	}
	if _, err := c.Priority(); err != nil {
		return err
	}
	return nil
}

// Priority 返回解析后的轴优先级
func (c *BindingsConfig) Priority() (animation.AxisPriority, error) {
	return animation.ParseAxisPriority(c.AxisPriority)
}

// AxisNames 返回已绑定的轴名（排序后）
func (c *BindingsConfig) AxisNames() []string {
	names := make([]string, 0, len(c.Axes))
	for name := range c.Axes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
