package animation

import (
	"errors"
	"fmt"
)

// 默认行走图布局：每个方向 3 帧，区间起点按 4 对齐
const (
	SpritesPerDirection = 3

	DownMin  = 0
	LeftMin  = 4
	RightMin = 8
	UpMin    = 12
)

// ErrInvalidRange 区间表不合法（空区间、负索引或区间重叠）
var ErrInvalidRange = errors.New("invalid frame range")

// FrameRange 一个方向的帧索引区间 [Min, Max)
type FrameRange struct {
	Min int
	Max int
}

// Len 返回区间包含的帧数
func (r FrameRange) Len() int {
	return r.Max - r.Min
}

// Contains 判断 index 是否位于 [Min, Max) 内
func (r FrameRange) Contains(index int) bool {
	return r.Min <= index && index < r.Max
}

// Last 返回区间的最后一帧
func (r FrameRange) Last() int {
	return r.Max - 1
}

func (r FrameRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Min, r.Max)
}

// RangeTable 方向 -> 帧区间 的只读映射
//
// 创建后不可修改，按指针传给选择器和系统使用。
type RangeTable struct {
	ranges [directionCount]FrameRange
}

// DefaultRangeTable 返回默认行走图布局的区间表:
// Down=[0,3) Left=[4,7) Right=[8,11) Up=[12,15)
func DefaultRangeTable() *RangeTable {
	return &RangeTable{
		ranges: [directionCount]FrameRange{
			Down:  {Min: DownMin, Max: DownMin + SpritesPerDirection},
			Left:  {Min: LeftMin, Max: LeftMin + SpritesPerDirection},
			Right: {Min: RightMin, Max: RightMin + SpritesPerDirection},
			Up:    {Min: UpMin, Max: UpMin + SpritesPerDirection},
		},
	}
}

// NewRangeTable 根据给定区间创建区间表
//
// 必须为 Down/Left/Right/Up 每个方向都提供区间；区间不能为空、不能为负、两两不相交，
// 且区间内每一帧经 DirectionOf 反推都得到该方向。
func NewRangeTable(ranges map[Direction]FrameRange) (*RangeTable, error) {
	table := &RangeTable{}
	for _, d := range Directions {
		r, ok := ranges[d]
		if !ok {
			return nil, fmt.Errorf("%w: missing range for %s", ErrInvalidRange, d)
		}
		if r.Min < 0 || r.Max <= r.Min {
			return nil, fmt.Errorf("%w: %s range %s", ErrInvalidRange, d, r)
		}
		table.ranges[d] = r
	}
	for d, r := range ranges {
		if !d.IsMoving() {
			return nil, fmt.Errorf("%w: %s cannot own a frame range %s", ErrInvalidRange, d, r)
		}
	}

	for i := 0; i < directionCount; i++ {
		for j := i + 1; j < directionCount; j++ {
			a, b := table.ranges[i], table.ranges[j]
			if a.Min < b.Max && b.Min < a.Max {
				return nil, fmt.Errorf("%w: %s %s overlaps %s %s",
					ErrInvalidRange, Directions[i], a, Directions[j], b)
			}
		}
	}

	// 区间内每一帧都必须反推回自己的方向，否则同方向输入会一直重置到 Min
	for _, d := range Directions {
		r := table.ranges[d]
		for index := r.Min; index < r.Max; index++ {
			if got := table.DirectionOf(index); got != d {
				return nil, fmt.Errorf("%w: frame %d of %s %s is classified as %s",
					ErrInvalidRange, index, d, r, got)
			}
		}
	}
	return table, nil
}

// Range 返回方向对应的帧区间；Stationary 返回零值
func (t *RangeTable) Range(d Direction) FrameRange {
	if !d.IsMoving() {
		return FrameRange{}
	}
	return t.ranges[d]
}

// MaxIndex 返回区间表覆盖的最大帧索引（不含）
func (t *RangeTable) MaxIndex() int {
	maxIndex := 0
	for _, r := range t.ranges {
		if r.Max > maxIndex {
			maxIndex = r.Max
		}
	}
	return maxIndex
}

// DirectionOf 根据帧索引反推当前朝向
//
// 默认 Down，之后依次检查 Left、Right、Up，后命中的覆盖先命中的。
// 判定使用闭区间 [Min, Max]，所以紧跟在区间后的空帧（3/7/11/15）归属前一个方向；
// 不在任何区间内的索引归为 Down。
func (t *RangeTable) DirectionOf(index int) Direction {
	direction := Down
	for _, d := range [...]Direction{Left, Right, Up} {
		r := t.ranges[d]
		if r.Min <= index && index <= r.Max {
			direction = d
		}
	}
	return direction
}
