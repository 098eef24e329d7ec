package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawText 在基线位置 (x, baselineY) 绘制文本
// align 控制水平对齐：text.AlignStart / AlignCenter / AlignEnd
func drawText(dst *ebiten.Image, s string, face text.Face, x, baselineY float64, align text.Align, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, baselineY-face.Metrics().HAscent)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawRotatedText 以 (cx, cy) 为中心逆时针旋转 90° 绘制文本（Y 轴标题）
func drawRotatedText(dst *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	w, h := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(-math.Pi / 2)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// strokePolyline 用线段近似绘制折线，在拐点补圆形以得到圆角连接
func strokePolyline(dst *ebiten.Image, xs, ys []float64, width float64, clr color.Color) {
	n := len(xs)
	if n == 0 || len(ys) != n {
		return
	}
	w := float32(width)
	for i := 1; i < n; i++ {
		vector.StrokeLine(dst, float32(xs[i-1]), float32(ys[i-1]), float32(xs[i]), float32(ys[i]), w, clr, true)
	}
	for i := 0; i < n; i++ {
		vector.DrawFilledCircle(dst, float32(xs[i]), float32(ys[i]), w/2, clr, true)
	}
}

// strokeDashedLine 绘制虚线，dash 为实线与空白的长度
func strokeDashedLine(dst *ebiten.Image, x1, y1, x2, y2, dash, width float64, clr color.Color) {
	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 || dash <= 0 {
		return
	}
	ux, uy := (x2-x1)/length, (y2-y1)/length
	for pos := 0.0; pos < length; pos += 2 * dash {
		end := math.Min(pos+dash, length)
		vector.StrokeLine(dst,
			float32(x1+ux*pos), float32(y1+uy*pos),
			float32(x1+ux*end), float32(y1+uy*end),
			float32(width), clr, true)
	}
}
