// Package animation 实现训练师行走图的方向/帧选择规则
//
// 行走图（spritesheet）按方向分段：每个方向占用一段连续的帧索引区间，
// 每个 tick 根据输入轴推导出请求方向，再决定是推进当前方向的动画帧，
// 还是切换到新方向的第一帧。
package animation

import (
	"fmt"
	"strings"
)

// Direction 表示移动/朝向方向
type Direction int

const (
	// Down 向下（默认朝向）
	Down Direction = iota
	// Left 向左
	Left
	// Right 向右
	Right
	// Up 向上
	Up
	// Stationary 无移动请求
	Stationary
)

// directionCount 拥有帧区间的方向数量（不含 Stationary）
const directionCount = 4

// Directions 按区间表顺序列出所有拥有帧区间的方向
var Directions = [directionCount]Direction{Down, Left, Right, Up}

// String 返回方向名称
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Stationary:
		return "stationary"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// IsMoving 判断方向是否为移动方向
func (d Direction) IsMoving() bool {
	return d >= Down && d <= Up
}

// ParseDirection 将配置中的方向名解析为 Direction（忽略大小写）
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "stationary", "none":
		return Stationary, nil
	}
	return Stationary, fmt.Errorf("unknown direction %q", name)
}
