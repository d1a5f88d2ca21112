package animation

import "fmt"

// 输入轴名称
const (
	AxisHorizontal = "horizontal"
	AxisVertical   = "vertical"
)

// AxisReader 提供按名称读取的输入轴，未绑定或无信号时返回 false
type AxisReader interface {
	AxisValue(name string) (float64, bool)
}

// Axes 单个 tick 的输入轴快照
type Axes struct {
	Horizontal    float64
	Vertical      float64
	HasHorizontal bool
	HasVertical   bool
}

// ReadAxes 从 AxisReader 读取水平/垂直轴
func ReadAxes(r AxisReader) Axes {
	var axes Axes
	if r == nil {
		return axes
	}
	axes.Horizontal, axes.HasHorizontal = r.AxisValue(AxisHorizontal)
	axes.Vertical, axes.HasVertical = r.AxisValue(AxisVertical)
	return axes
}

// AxisPriority 水平与垂直输入同时存在时的优先规则
type AxisPriority int

const (
	// VerticalFirst 垂直轴优先（默认）
	VerticalFirst AxisPriority = iota
	// HorizontalFirst 水平轴优先
	HorizontalFirst
)

// ParseAxisPriority 解析配置中的优先级名称，空字符串视为 "vertical"
func ParseAxisPriority(name string) (AxisPriority, error) {
	switch name {
	case "", "vertical":
		return VerticalFirst, nil
	case "horizontal":
		return HorizontalFirst, nil
	}
	return VerticalFirst, fmt.Errorf("unknown axis priority %q (want \"vertical\" or \"horizontal\")", name)
}

func (p AxisPriority) String() string {
	if p == HorizontalFirst {
		return "horizontal"
	}
	return "vertical"
}

func verticalDirection(axes Axes) Direction {
	switch {
	case !axes.HasVertical:
		return Stationary
	case axes.Vertical > 0:
		return Up
	case axes.Vertical < 0:
		return Down
	}
	return Stationary
}

func horizontalDirection(axes Axes) Direction {
	switch {
	case !axes.HasHorizontal:
		return Stationary
	case axes.Horizontal > 0:
		return Right
	case axes.Horizontal < 0:
		return Left
	}
	return Stationary
}

// RequestedDirection 根据输入轴推导请求方向
//
// 优先轴有非零信号时直接决定方向，否则看另一个轴；两个轴都无信号返回 Stationary。
func RequestedDirection(axes Axes, priority AxisPriority) Direction {
	first, second := verticalDirection, horizontalDirection
	if priority == HorizontalFirst {
		first, second = horizontalDirection, verticalDirection
	}
	if d := first(axes); d != Stationary {
		return d
	}
	return second(axes)
}

// NextFrame 计算下一帧索引
//
//   - requested 为 Stationary: 保持 current
//   - requested 与当前朝向相同且未到区间最后一帧: current+1
//   - requested 与当前朝向相同且已在最后一帧: 停在最后一帧
//   - 其他情况: 切换到 requested 区间的第一帧
func NextFrame(table *RangeTable, current int, requested Direction) int {
	if !requested.IsMoving() {
		return current
	}

	target := table.Range(requested)
	if table.DirectionOf(current) == requested && target.Contains(current) {
		if current < target.Last() {
			return current + 1
		}
		return current
	}
	return target.Min
}

// Selector 绑定区间表与轴优先级的方向/帧选择器
type Selector struct {
	Table    *RangeTable
	Priority AxisPriority
}

// NewSelector 创建选择器，table 为 nil 时使用默认区间表
func NewSelector(table *RangeTable, priority AxisPriority) *Selector {
	if table == nil {
		table = DefaultRangeTable()
	}
	return &Selector{Table: table, Priority: priority}
}

// Next 根据当前帧和输入轴计算下一帧
func (s *Selector) Next(current int, axes Axes) int {
	return NextFrame(s.Table, current, RequestedDirection(axes, s.Priority))
}
