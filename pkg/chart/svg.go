package chart

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

const (
	svgFont        = "Segoe UI, Arial, sans-serif"
	axisColor      = "#334155"
	gridColor      = "#e2e8f0"
	titleColor     = "#2c3e50"
	annotationLine = "#94a3b8"
	annotationText = "#64748b"
	markerRadius   = 3.0
)

// GenerateSVG 生成完整显示状态（描边动画结束、标注已淡入）的静态 SVG
func GenerateSVG(l Layout, style story.ChartStyle) string {
	var svg bytes.Buffer

	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" font-family="%s">`+"\n",
		num(l.OuterWidth), num(l.OuterHeight), num(l.OuterWidth), num(l.OuterHeight), svgFont)
	fmt.Fprintf(&svg, `<rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")
	fmt.Fprintf(&svg, `<g transform="translate(%s,%s)">`+"\n", num(l.Margin.Left), num(l.Margin.Top))

	// 网格
	svg.WriteString(`<g class="grid">` + "\n")
	for _, t := range l.YTicks {
		fmt.Fprintf(&svg, `<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
			num(t.Pos), num(l.Width), num(t.Pos), gridColor)
	}
	svg.WriteString("</g>\n")

	// X 轴
	fmt.Fprintf(&svg, `<g class="x-axis" transform="translate(0,%s)">`+"\n", num(l.Height))
	fmt.Fprintf(&svg, `<line x1="0" y1="0" x2="%s" y2="0" stroke="%s"/>`+"\n", num(l.Width), axisColor)
	for _, t := range l.XTicks {
		fmt.Fprintf(&svg, `<line x1="%s" y1="0" x2="%s" y2="6" stroke="%s"/>`+"\n", num(t.Pos), num(t.Pos), axisColor)
		fmt.Fprintf(&svg, `<text x="%s" y="20" text-anchor="middle" font-size="11" fill="%s">%s</text>`+"\n",
			num(t.Pos), axisColor, html.EscapeString(t.Label))
	}
	svg.WriteString("</g>\n")

	// Y 轴
	svg.WriteString(`<g class="y-axis">` + "\n")
	fmt.Fprintf(&svg, `<line x1="0" y1="0" x2="0" y2="%s" stroke="%s"/>`+"\n", num(l.Height), axisColor)
	for _, t := range l.YTicks {
		fmt.Fprintf(&svg, `<line x1="-6" y1="%s" x2="0" y2="%s" stroke="%s"/>`+"\n", num(t.Pos), num(t.Pos), axisColor)
		fmt.Fprintf(&svg, `<text x="-9" y="%s" dy="0.32em" text-anchor="end" font-size="11" fill="%s">%s</text>`+"\n",
			num(t.Pos), axisColor, html.EscapeString(t.Label))
	}
	svg.WriteString("</g>\n")

	// 轴标题与图表标题
	fmt.Fprintf(&svg, `<text class="x-label" x="%s" y="%s" text-anchor="middle" font-size="14">%s</text>`+"\n",
		num(l.Width/2), num(l.Height+50), html.EscapeString(l.XLabel))
	fmt.Fprintf(&svg, `<text class="y-label" transform="rotate(-90)" x="%s" y="-45" text-anchor="middle" font-size="14">%s</text>`+"\n",
		num(-l.Height/2), html.EscapeString(l.YLabel))
	fmt.Fprintf(&svg, `<text class="chart-title" x="%s" y="-15" text-anchor="middle" font-size="18" font-weight="700" fill="%s">%s</text>`+"\n",
		num(l.Width/2), titleColor, html.EscapeString(l.Title))

	// 曲线
	if d := pathData(l.Segments); d != "" {
		fmt.Fprintf(&svg, `<path class="line" d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			d, style.Color, num(style.Width))
	}

	// 数据点
	for _, m := range l.Markers {
		fmt.Fprintf(&svg, `<circle class="data-point" cx="%s" cy="%s" r="%s" fill="%s"><title>%d: %s</title></circle>`+"\n",
			num(m.X), num(m.Y), num(markerRadius), style.Color, m.Point.Year, html.EscapeString(story.FormatPercent(m.Point.Ratio)))
	}

	// 标注
	if a := l.Annotation; a != nil {
		fmt.Fprintf(&svg, `<line class="annotation-line" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1" stroke-dasharray="5,5" opacity="0.5"/>`+"\n",
			num(a.X), num(a.Y1), num(a.X), num(a.Y2), annotationLine)
		fmt.Fprintf(&svg, `<text class="annotation-text" x="%s" y="%s" text-anchor="start" font-size="12" fill="%s">%s</text>`+"\n",
			num(a.LabelX), num(a.LabelY), annotationText, html.EscapeString(a.Text))
	}

	svg.WriteString("</g>\n</svg>\n")
	return svg.String()
}

// pathData 生成 SVG path 的 d 属性
func pathData(segments []Segment) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", num(segments[0].P0.X), num(segments[0].P0.Y))
	for _, s := range segments {
		fmt.Fprintf(&b, "C%s,%s,%s,%s,%s,%s",
			num(s.C1.X), num(s.C1.Y), num(s.C2.X), num(s.C2.Y), num(s.P1.X), num(s.P1.Y))
	}
	return b.String()
}

// num 格式化坐标，最多保留两位小数
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
