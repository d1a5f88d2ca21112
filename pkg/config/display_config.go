package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// 默认显示参数
const (
	GameWindowWidth  = 500
	GameWindowHeight = 500
	DefaultTPS       = 60
)

// DisplayConfig 窗口与渲染配置
//
// 配置文件位置: data/display.yaml
type DisplayConfig struct {
	// Title 窗口标题
	Title string `yaml:"title"`

	// Width/Height 逻辑屏幕尺寸（像素）
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// ClearColor 背景清屏颜色 [r, g, b, a]，取值 0.0 ~ 1.0
	ClearColor [4]float64 `yaml:"clearColor"`

	// TicksPerSecond 每秒逻辑 tick 数，行走图每个 tick 最多推进一帧
	TicksPerSecond int `yaml:"ticksPerSecond"`

	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`

	// ShowFPS 是否显示 FPS 文本
	ShowFPS bool `yaml:"showFPS"`
}

// DefaultDisplayConfig 返回默认显示配置（500x500，黑色背景，60 TPS）
func DefaultDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Title:          "Overworld",
		Width:          GameWindowWidth,
		Height:         GameWindowHeight,
		ClearColor:     [4]float64{0, 0, 0, 1},
		TicksPerSecond: DefaultTPS,
		ShowFPS:        true,
	}
}

// LoadDisplayConfig 从文件加载显示配置
func LoadDisplayConfig(path string) (*DisplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read display config: %w", err)
	}
	return ParseDisplayConfig(data)
}

// ParseDisplayConfig 解析 YAML 显示配置，未填写的字段使用默认值
func ParseDisplayConfig(data []byte) (*DisplayConfig, error) {
	config := DefaultDisplayConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse display config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid display config: %w", err)
	}
	return config, nil
}

// Validate 验证配置有效性
func (c *DisplayConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticksPerSecond must be positive, got %d", c.TicksPerSecond)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("clearColor[%d] must be within [0, 1], got %.2f", i, v)
		}
	}
	return nil
}

// BackgroundColor 将 ClearColor 转换为 color.RGBA
func (c *DisplayConfig) BackgroundColor() color.RGBA {
	return color.RGBA{
		R: uint8(c.ClearColor[0]*255 + 0.5),
		G: uint8(c.ClearColor[1]*255 + 0.5),
		B: uint8(c.ClearColor[2]*255 + 0.5),
		A: uint8(c.ClearColor[3]*255 + 0.5),
	}
}
