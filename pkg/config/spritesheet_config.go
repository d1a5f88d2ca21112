package config

import (
	"fmt"
	"os"

	"github.com/decker502/overworld/pkg/animation"
	"gopkg.in/yaml.v3"
)

// 训练师精灵尺寸（像素）
const (
	TrainerWidth  = 34
	TrainerHeight = 52
)

// FrameRangeConfig 一个方向在行走图中的帧区间 [min, max)
type FrameRangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// SpriteSheetConfig 训练师行走图配置
//
// 行走图是按行优先排列的等尺寸网格，帧索引 i 对应第 i/columns 行、第 i%columns 列。
//
// 配置文件位置: data/trainer_spritesheet.yaml
type SpriteSheetConfig struct {
	// Texture 行走图 PNG 路径（embedded 或 -config-dir 内的相对路径），为空时程序生成占位图
	Texture string `yaml:"texture"`

	// SpriteWidth/SpriteHeight 单帧尺寸
	SpriteWidth  int `yaml:"spriteWidth"`
	SpriteHeight int `yaml:"spriteHeight"`

	// Columns/Rows 网格列数与行数
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`

	// Directions 方向名 -> 帧区间
	Directions map[string]FrameRangeConfig `yaml:"directions"`
}

// DefaultSpriteSheetConfig 返回默认行走图配置（4x4 网格，每方向 3 帧）
func DefaultSpriteSheetConfig() *SpriteSheetConfig {
	table := animation.DefaultRangeTable()
	directions := make(map[string]FrameRangeConfig, len(animation.Directions))
	for _, d := range animation.Directions {
		r := table.Range(d)
		directions[d.String()] = FrameRangeConfig{Min: r.Min, Max: r.Max}
	}
	return &SpriteSheetConfig{
		SpriteWidth:  TrainerWidth,
		SpriteHeight: TrainerHeight,
		Columns:      4,
		Rows:         4,
		Directions:   directions,
	}
}

// LoadSpriteSheetConfig 从文件加载行走图配置
func LoadSpriteSheetConfig(path string) (*SpriteSheetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet config: %w", err)
	}
	return ParseSpriteSheetConfig(data)
}

// ParseSpriteSheetConfig 解析 YAML 行走图配置
//
// 未提供 directions 时使用默认区间表。
func ParseSpriteSheetConfig(data []byte) (*SpriteSheetConfig, error) {
	config := DefaultSpriteSheetConfig()
	config.Directions = nil
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse sprite sheet config: %w", err)
	}
	if len(config.Directions) == 0 {
		config.Directions = DefaultSpriteSheetConfig().Directions
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sprite sheet config: %w", err)
	}
	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 帧尺寸与网格尺寸为正
//   - 方向区间构成合法的区间表
//   - 所有区间都落在网格内
func (c *SpriteSheetConfig) Validate() error {
	if c.SpriteWidth <= 0 || c.SpriteHeight <= 0 {
		return fmt.Errorf("sprite size must be positive, got %dx%d", c.SpriteWidth, c.SpriteHeight)
	}
	if c.Columns <= 0 || c.Rows <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.Columns, c.Rows)
	}

	table, err := c.RangeTable()
	if err != nil {
		return err
	}
	if table.MaxIndex() > c.FrameCount() {
		return fmt.Errorf("direction ranges need %d frames but the %dx%d grid holds %d",
			table.MaxIndex(), c.Columns, c.Rows, c.FrameCount())
	}
	return nil
}

// FrameCount 返回网格中的总帧数
func (c *SpriteSheetConfig) FrameCount() int {
	return c.Columns * c.Rows
}

// RangeTable 根据 Directions 构建只读区间表
func (c *SpriteSheetConfig) RangeTable() (*animation.RangeTable, error) {
	ranges := make(map[animation.Direction]animation.FrameRange, len(c.Directions))
	for name, r := range c.Directions {
		d, err := animation.ParseDirection(name)
		if err != nil {
			return nil, err
		}
		ranges[d] = animation.FrameRange{Min: r.Min, Max: r.Max}
	}
	return animation.NewRangeTable(ranges)
}
