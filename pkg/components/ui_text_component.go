package components

import "image/color"

// UITextComponent 屏幕空间文本（不受镜头影响）
type UITextComponent struct {
	Text    string
	X, Y    int // 屏幕坐标，左上角为原点
	Color   color.Color
	Visible bool
}
