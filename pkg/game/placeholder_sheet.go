package game

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/decker502/overworld/pkg/animation"
	"github.com/decker502/overworld/pkg/config"
)

// 占位行走图配色：每个方向一个身体颜色
var placeholderColors = map[animation.Direction]color.RGBA{
	animation.Down:  {R: 220, G: 180, B: 40, A: 255},
	animation.Left:  {R: 60, G: 160, B: 220, A: 255},
	animation.Right: {R: 80, G: 200, B: 110, A: 255},
	animation.Up:    {R: 210, G: 80, B: 80, A: 255},
}

var (
	placeholderMarker = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	placeholderStep   = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// RenderPlaceholderSheet 生成占位行走图
//
// 区间表内的每一帧绘制为带 1 像素边距的纯色矩形，朝向一侧画白色标记，
// 底部的深色方块数量表示该帧在方向动画中的偏移（1~N）。区间外的格子保持透明。
func RenderPlaceholderSheet(cfg *config.SpriteSheetConfig, table *animation.RangeTable) *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, cfg.Columns*cfg.SpriteWidth, cfg.Rows*cfg.SpriteHeight))
	if table == nil {
		table = animation.DefaultRangeTable()
	}

	for _, d := range animation.Directions {
		r := table.Range(d)
		for index := r.Min; index < r.Max && index < cfg.FrameCount(); index++ {
			drawPlaceholderFrame(sheet, FrameRect(cfg, index), d, index-r.Min)
		}
	}
	return sheet
}

func drawPlaceholderFrame(dst draw.Image, cell image.Rectangle, d animation.Direction, offset int) {
	body := cell.Inset(1)
	draw.Draw(dst, body, &image.Uniform{C: placeholderColors[d]}, image.Point{}, draw.Src)

	// 朝向标记
	mw, mh := max(body.Dx()/4, 1), max(body.Dy()/4, 1)
	cx, cy := body.Min.X+body.Dx()/2, body.Min.Y+body.Dy()/2
	var marker image.Rectangle
	switch d {
	case animation.Down:
		marker = image.Rect(cx-mw/2, body.Max.Y-mh, cx+mw/2+1, body.Max.Y)
	case animation.Up:
		marker = image.Rect(cx-mw/2, body.Min.Y, cx+mw/2+1, body.Min.Y+mh)
	case animation.Left:
		marker = image.Rect(body.Min.X, cy-mh/2, body.Min.X+mw, cy+mh/2+1)
	case animation.Right:
		marker = image.Rect(body.Max.X-mw, cy-mh/2, body.Max.X, cy+mh/2+1)
	}
	draw.Draw(dst, marker.Intersect(body), &image.Uniform{C: placeholderMarker}, image.Point{}, draw.Src)

	// 帧偏移计数方块，放在左上角
	const step = 3
	for i := 0; i <= offset; i++ {
		x := body.Min.X + 2 + i*(step+1)
		sq := image.Rect(x, body.Min.Y+2, x+step, body.Min.Y+2+step).Intersect(body)
		draw.Draw(dst, sq, &image.Uniform{C: placeholderStep}, image.Point{}, draw.Src)
	}
}
