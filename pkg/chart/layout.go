package chart

import (
	"strconv"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

// Margin 绘图区外边距
type Margin struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargin 默认外边距
var DefaultMargin = Margin{Top: 50, Right: 80, Bottom: 60, Left: 70}

// Options 图表布局选项
type Options struct {
	Title  string
	XLabel string
	YLabel string

	XDomain [2]float64 // 年份范围
	YDomain [2]float64 // 比例范围（百分比）
	XTicks  int        // 期望的 X 轴刻度数量
	YTicks  int        // 期望的 Y 轴刻度数量

	// AnnotationYear 需要标注的年份，0 表示不标注
	AnnotationYear int
	// AnnotationRatio 标注文字所在的比例值
	AnnotationRatio float64
	// AnnotationText 标注文字
	AnnotationText string

	Margin Margin

	// CurveSteps 每段贝塞尔曲线的采样次数
	CurveSteps int
}

// DefaultOptions 默认布局选项
func DefaultOptions() Options {
	return Options{
		Title:           "The Stagnant Progress Towards Pay Equity",
		XLabel:          "Year",
		YLabel:          "Women's Earnings as % of Men's",
		XDomain:         [2]float64{1979, 2023},
		YDomain:         [2]float64{55, 90},
		XTicks:          10,
		YTicks:          10,
		AnnotationYear:  2000,
		AnnotationRatio: 85,
		AnnotationText:  "Progress slows after 2000",
		Margin:          DefaultMargin,
		CurveSteps:      16,
	}
}

// Tick 坐标轴刻度
type Tick struct {
	Value float64
	Pos   float64 // 绘图区内的像素位置
	Label string
}

// Marker 数据点标记
type Marker struct {
	Point story.TimePoint
	X, Y  float64 // 绘图区内的像素位置
}

// Annotation 年份标注（虚线 + 文字）
type Annotation struct {
	X              float64 // 虚线的 X 位置
	Y1, Y2         float64 // 虚线的起止 Y
	LabelX, LabelY float64 // 文字左下角位置
	Text           string
}

// Layout 图表布局
//
// 所有坐标均相对绘图区左上角（即已减去 Margin.Left / Margin.Top），
// 绘制时再整体平移。
type Layout struct {
	OuterWidth, OuterHeight float64
	Width, Height           float64 // 绘图区尺寸
	Margin                  Margin

	X LinearScale
	Y LinearScale

	XTicks []Tick
	YTicks []Tick

	Markers  []Marker
	Segments []Segment
	Path     Polyline
	// PathLength 折线总长度，描边动画据此计算显示比例
	PathLength float64

	// Annotation 标注年份存在时非 nil
	Annotation *Annotation

	Title  string
	XLabel string
	YLabel string
}

// Build 根据数据点和外部尺寸计算图表布局
//
// 数据点按给定顺序连线，不做排序。
// 标注年份缺失时 Annotation 为 nil，这是预期的软失败而非错误。
func Build(points []story.TimePoint, outerWidth, outerHeight float64, opts Options) Layout {
	m := opts.Margin
	width := outerWidth - m.Left - m.Right
	height := outerHeight - m.Top - m.Bottom
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	l := Layout{
		OuterWidth:  outerWidth,
		OuterHeight: outerHeight,
		Width:       width,
		Height:      height,
		Margin:      m,
		X:           LinearScale{D0: opts.XDomain[0], D1: opts.XDomain[1], R0: 0, R1: width},
		Y:           LinearScale{D0: opts.YDomain[0], D1: opts.YDomain[1], R0: height, R1: 0},
		Title:       opts.Title,
		XLabel:      opts.XLabel,
		YLabel:      opts.YLabel,
	}

	for _, v := range l.X.Ticks(opts.XTicks) {
		l.XTicks = append(l.XTicks, Tick{Value: v, Pos: l.X.Map(v), Label: strconv.Itoa(int(v))})
	}
	for _, v := range l.Y.Ticks(opts.YTicks) {
		l.YTicks = append(l.YTicks, Tick{Value: v, Pos: l.Y.Map(v), Label: story.FormatPercent(v)})
	}

	pts := make([]Point, 0, len(points))
	for _, p := range points {
		x, y := l.X.Map(float64(p.Year)), l.Y.Map(p.Ratio)
		l.Markers = append(l.Markers, Marker{Point: p, X: x, Y: y})
		pts = append(pts, Point{X: x, Y: y})
	}

	l.Segments = MonotoneX(pts)
	l.Path = Flatten(l.Segments, opts.CurveSteps)
	l.PathLength = l.Path.Length()

	if opts.AnnotationYear != 0 {
		if _, err := story.FindYear(points, opts.AnnotationYear); err == nil {
			x := l.X.Map(float64(opts.AnnotationYear))
			l.Annotation = &Annotation{
				X:      x,
				Y1:     0,
				Y2:     height,
				LabelX: x + 5,
				LabelY: l.Y.Map(opts.AnnotationRatio),
				Text:   opts.AnnotationText,
			}
		}
	}

	return l
}

// MarkerAt 查找距离 (x, y)（绘图区坐标）不超过 radius 的最近数据点
// 返回数据点下标，没有命中时返回 -1
func (l Layout) MarkerAt(x, y, radius float64) int {
	best := -1
	bestDist := radius * radius
	for i, m := range l.Markers {
		dx, dy := m.X-x, m.Y-y
		d := dx*dx + dy*dy
		if d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
