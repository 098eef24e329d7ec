package systems

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/chart"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/utils"
)

// 动画时长（秒）
const (
	chartRevealDuration     = 2.0  // 折线描边
	chartMarkerDelay        = 0.04 // 第 i 个数据点延迟 i*40ms
	chartMarkerDuration     = 0.5  // 数据点半径 0 -> 3
	chartMarkerRadius       = 3.0
	chartHoverRadius        = 6.0
	chartHoverDuration      = 0.2
	chartHitRadius          = 8.0
	chartTooltipFadeIn      = 0.2
	chartTooltipFadeOut     = 0.5
	chartTooltipOpacity     = 0.9
	chartAnnotationDelay    = 2.5
	chartAnnotationDuration = 0.5
	chartAnnotationOpacity  = 0.5
	chartStyleDuration      = 1.0
)

var (
	chartBackground     = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	chartAxisColor      = color.NRGBA{0x33, 0x41, 0x55, 0xff}
	chartGridColor      = color.NRGBA{0xe2, 0xe8, 0xf0, 0xff}
	chartTitleColor     = color.NRGBA{0x2c, 0x3e, 0x50, 0xff}
	chartAnnotationLine = utils.MustParseHexColor("#94a3b8")
	chartAnnotationText = utils.MustParseHexColor("#64748b")
	tooltipBackground   = utils.MustParseHexColor("#1e293b")
)

// TrendChartSystem 折线图渲染系统
//
// 负责描边动画、数据点弹出、悬停提示、年份注释和步骤换色。
// 数据为空（CSV 加载失败）时系统处于不可用状态，只绘制背景。
// 所有动画状态由 Update 推进，Draw 只读。
type TrendChartSystem struct {
	points []story.TimePoint
	opts   chart.Options
	fonts  *utils.Fonts

	layout  chart.Layout
	built   bool
	elapsed float64 // 自上次 Rebuild 起经过的时间

	// 换色过渡
	fromStyle    story.ChartStyle
	toStyle      story.ChartStyle
	styleElapsed float64

	// 悬停
	pointerX, pointerY float64
	pointerInside      bool
	hovered            int       // 当前悬停的数据点，-1 表示没有
	tooltipPoint       int       // 提示框显示的数据点（淡出期间保留）
	tooltipAlpha       float64   // 提示框当前不透明度
	hoverGrowth        []float64 // 每个数据点的悬停放大进度 [0, 1]
}

// NewTrendChartSystem 创建折线图系统
//
// 参数:
//   - points: 时间序列，为空时图表不渲染
//   - opts: 布局选项
//   - style: 初始描边样式（步骤 0 的样式）
//   - fonts: 字体，为 nil 时不绘制文字
func NewTrendChartSystem(points []story.TimePoint, opts chart.Options, style story.ChartStyle, fonts *utils.Fonts) *TrendChartSystem {
	return &TrendChartSystem{
		points:       points,
		opts:         opts,
		fonts:        fonts,
		fromStyle:    style,
		toStyle:      style,
		styleElapsed: chartStyleDuration,
		hovered:      -1,
		tooltipPoint: -1,
		hoverGrowth:  make([]float64, len(points)),
	}
}

// Available 是否有可绘制的数据
func (s *TrendChartSystem) Available() bool {
	return len(s.points) > 0
}

// Rebuild 按新的面板尺寸重新计算布局，并从头播放入场动画
func (s *TrendChartSystem) Rebuild(width, height float64) {
	if !s.Available() {
		return
	}
	s.layout = chart.Build(s.points, width, height, s.opts)
	s.built = true
	s.elapsed = 0
	s.hovered = -1
	s.tooltipPoint = -1
	s.tooltipAlpha = 0
	for i := range s.hoverGrowth {
		s.hoverGrowth[i] = 0
	}
	log.Printf("[TrendChart] rebuilt layout %.0fx%.0f (%d points, annotation=%v)",
		width, height, len(s.points), s.layout.Annotation != nil)
}

// Layout 当前布局
func (s *TrendChartSystem) Layout() chart.Layout {
	return s.layout
}

// SetStyle 切换描边样式，从当前显示的样式过渡 1 秒
// 目标样式与当前目标相同时不重新开始过渡
func (s *TrendChartSystem) SetStyle(style story.ChartStyle) {
	if style == s.toStyle {
		return
	}
	s.fromStyle = s.CurrentStyle()
	s.toStyle = style
	s.styleElapsed = 0
}

// TargetStyle 过渡的目标样式
func (s *TrendChartSystem) TargetStyle() story.ChartStyle {
	return s.toStyle
}

// CurrentStyle 当前显示的样式（过渡中为插值结果）
func (s *TrendChartSystem) CurrentStyle() story.ChartStyle {
	t := utils.EaseInOutCubic(utils.Progress(s.styleElapsed, 0, chartStyleDuration))
	if t >= 1 {
		return s.toStyle
	}
	c := utils.BlendHex(s.fromStyle.Color, s.toStyle.Color, t)
	return story.ChartStyle{
		Color: c.Clamped().Hex(),
		Width: utils.Lerp(s.fromStyle.Width, s.toStyle.Width, t),
	}
}

// SetPointer 更新指针位置（面板坐标），inside 为 false 表示指针不在面板内
func (s *TrendChartSystem) SetPointer(x, y float64, inside bool) {
	s.pointerX, s.pointerY = x, y
	s.pointerInside = inside
}

// Update 推进动画
func (s *TrendChartSystem) Update(dt float64) {
	if !s.built {
		return
	}
	s.elapsed += dt
	s.styleElapsed += dt
	s.updateHover(dt)
}

func (s *TrendChartSystem) updateHover(dt float64) {
	s.hovered = -1
	if s.pointerInside {
		x := s.pointerX - s.layout.Margin.Left
		y := s.pointerY - s.layout.Margin.Top
		if i := s.layout.MarkerAt(x, y, chartHitRadius); i >= 0 && s.markerProgress(i) > 0 {
			s.hovered = i
		}
	}

	for i := range s.hoverGrowth {
		step := dt / chartHoverDuration
		if i == s.hovered {
			s.hoverGrowth[i] = utils.Clamp01(s.hoverGrowth[i] + step)
		} else {
			s.hoverGrowth[i] = utils.Clamp01(s.hoverGrowth[i] - step)
		}
	}

	if s.hovered >= 0 {
		s.tooltipPoint = s.hovered
		s.tooltipAlpha += dt / chartTooltipFadeIn * chartTooltipOpacity
		if s.tooltipAlpha > chartTooltipOpacity {
			s.tooltipAlpha = chartTooltipOpacity
		}
		return
	}
	s.tooltipAlpha -= dt / chartTooltipFadeOut * chartTooltipOpacity
	if s.tooltipAlpha <= 0 {
		s.tooltipAlpha = 0
		s.tooltipPoint = -1
	}
}

// RevealProgress 描边动画进度 [0, 1]（线性）
func (s *TrendChartSystem) RevealProgress() float64 {
	return utils.EaseLinear(utils.Progress(s.elapsed, 0, chartRevealDuration))
}

// markerProgress 第 i 个数据点弹出动画进度
func (s *TrendChartSystem) markerProgress(i int) float64 {
	return utils.Progress(s.elapsed, float64(i)*chartMarkerDelay, chartMarkerDuration)
}

// MarkerRadius 第 i 个数据点当前半径
func (s *TrendChartSystem) MarkerRadius(i int) float64 {
	if i < 0 || i >= len(s.hoverGrowth) {
		return 0
	}
	base := chartMarkerRadius * utils.EaseInOutCubic(s.markerProgress(i))
	grow := utils.EaseInOutCubic(s.hoverGrowth[i])
	return utils.Lerp(base, chartHoverRadius, grow)
}

// AnnotationAlpha 注释的淡入进度 [0, 1]，没有注释时为 0
func (s *TrendChartSystem) AnnotationAlpha() float64 {
	if s.layout.Annotation == nil {
		return 0
	}
	return utils.EaseInOutCubic(utils.Progress(s.elapsed, chartAnnotationDelay, chartAnnotationDuration))
}

// Hovered 当前悬停的数据点，-1 表示没有
func (s *TrendChartSystem) Hovered() int {
	return s.hovered
}

// TooltipAlpha 提示框当前不透明度
func (s *TrendChartSystem) TooltipAlpha() float64 {
	return s.tooltipAlpha
}

// TooltipLines 数据点的提示文字
func TooltipLines(p story.TimePoint) []string {
	return []string{
		strconv.Itoa(p.Year),
		fmt.Sprintf("Women Earn %s", story.FormatPercent(p.Ratio)),
		"of Men's Earnings",
	}
}

// Draw 绘制到面板图像（尺寸与 Rebuild 时一致）
func (s *TrendChartSystem) Draw(panel *ebiten.Image) {
	panel.Fill(chartBackground)
	if !s.built {
		return
	}

	l := s.layout
	ox, oy := l.Margin.Left, l.Margin.Top
	style := s.CurrentStyle()
	lineColor := utils.WithAlpha(utils.MustParseHexColor(style.Color), 1)

	// 网格
	for _, t := range l.YTicks {
		vector.StrokeLine(panel, float32(ox), float32(oy+t.Pos), float32(ox+l.Width), float32(oy+t.Pos), 1, chartGridColor, false)
	}

	s.drawAxes(panel, ox, oy)

	// 折线（按弧长截取已显示部分）
	shown := l.Path.Prefix(l.PathLength * s.RevealProgress())
	xs := make([]float64, len(shown))
	ys := make([]float64, len(shown))
	for i, p := range shown {
		xs[i], ys[i] = ox+p.X, oy+p.Y
	}
	strokePolyline(panel, xs, ys, style.Width, lineColor)

	// 数据点
	for i, m := range l.Markers {
		if r := s.MarkerRadius(i); r > 0 {
			vector.DrawFilledCircle(panel, float32(ox+m.X), float32(oy+m.Y), float32(r), lineColor, true)
		}
	}

	s.drawAnnotation(panel, ox, oy)
	s.drawTooltip(panel)
}

func (s *TrendChartSystem) drawAxes(panel *ebiten.Image, ox, oy float64) {
	l := s.layout
	vector.StrokeLine(panel, float32(ox), float32(oy+l.Height), float32(ox+l.Width), float32(oy+l.Height), 1, chartAxisColor, false)
	vector.StrokeLine(panel, float32(ox), float32(oy), float32(ox), float32(oy+l.Height), 1, chartAxisColor, false)

	for _, t := range l.XTicks {
		vector.StrokeLine(panel, float32(ox+t.Pos), float32(oy+l.Height), float32(ox+t.Pos), float32(oy+l.Height+6), 1, chartAxisColor, false)
	}
	for _, t := range l.YTicks {
		vector.StrokeLine(panel, float32(ox-6), float32(oy+t.Pos), float32(ox), float32(oy+t.Pos), 1, chartAxisColor, false)
	}

	if s.fonts == nil {
		return
	}
	tick := s.fonts.Face(utils.FontRegular, 11)
	for _, t := range l.XTicks {
		drawText(panel, t.Label, tick, ox+t.Pos, oy+l.Height+20, text.AlignCenter, chartAxisColor)
	}
	for _, t := range l.YTicks {
		drawText(panel, t.Label, tick, ox-9, oy+t.Pos+4, text.AlignEnd, chartAxisColor)
	}

	label := s.fonts.Face(utils.FontRegular, 14)
	drawText(panel, l.XLabel, label, ox+l.Width/2, oy+l.Height+50, text.AlignCenter, chartAxisColor)
	drawRotatedText(panel, l.YLabel, label, ox-45-7, oy+l.Height/2, chartAxisColor)
	drawText(panel, l.Title, s.fonts.Face(utils.FontBold, 18), ox+l.Width/2, oy-15, text.AlignCenter, chartTitleColor)
}

func (s *TrendChartSystem) drawAnnotation(panel *ebiten.Image, ox, oy float64) {
	a := s.layout.Annotation
	alpha := s.AnnotationAlpha()
	if a == nil || alpha <= 0 {
		return
	}
	strokeDashedLine(panel, ox+a.X, oy+a.Y1, ox+a.X, oy+a.Y2, 5, 1,
		utils.WithAlpha(chartAnnotationLine, alpha*chartAnnotationOpacity))
	if s.fonts != nil {
		drawText(panel, a.Text, s.fonts.Face(utils.FontRegular, 12), ox+a.LabelX, oy+a.LabelY, text.AlignStart,
			utils.WithAlpha(chartAnnotationText, alpha))
	}
}

func (s *TrendChartSystem) drawTooltip(panel *ebiten.Image) {
	if s.tooltipPoint < 0 || s.tooltipAlpha <= 0 || s.fonts == nil {
		return
	}
	lines := TooltipLines(s.layout.Markers[s.tooltipPoint].Point)
	face := s.fonts.Face(utils.FontRegular, 13)

	width := 0.0
	for _, line := range lines {
		if w := text.Advance(line, face); w > width {
			width = w
		}
	}
	const pad, lineHeight = 8.0, 17.0
	boxW := width + 2*pad
	boxH := float64(len(lines))*lineHeight + 2*pad - 4

	// 指针右上方，超出面板时翻到左侧
	x := s.pointerX + 10
	y := s.pointerY - 28
	if x+boxW > float64(panel.Bounds().Dx()) {
		x = s.pointerX - 10 - boxW
	}
	if y < 0 {
		y = 0
	}

	vector.DrawFilledRect(panel, float32(x), float32(y), float32(boxW), float32(boxH),
		utils.WithAlpha(tooltipBackground, s.tooltipAlpha), true)
	white := utils.WithAlpha(utils.MustParseHexColor("#ffffff"), s.tooltipAlpha/chartTooltipOpacity)
	for i, line := range lines {
		drawText(panel, line, face, x+pad, y+pad+float64(i+1)*lineHeight-5, text.AlignStart, white)
	}
}
