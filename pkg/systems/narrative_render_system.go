package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/utils"
)

var (
	narrativeBackground = color.NRGBA{0xf8, 0xfa, 0xfc, 0xff}
	narrativeTitleColor = color.NRGBA{0x1e, 0x29, 0x3b, 0xff}
	narrativeTextColor  = color.NRGBA{0x47, 0x55, 0x69, 0xff}
	narrativeMutedColor = color.NRGBA{0x94, 0xa3, 0xb8, 0xff}
	cardColor           = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	cardInactiveColor   = color.NRGBA{0xff, 0xff, 0xff, 0x99}
	cardAccentColor     = color.NRGBA{0x66, 0x7e, 0xea, 0xff}
	statValueColor      = color.NRGBA{0xef, 0x44, 0x44, 0xff}
)

// NarrativeRenderSystem 绘制叙事栏
//
// 开头是标题、副标题和引言统计卡片，之后是叙事卡片；
// 触发线所在的卡片高亮显示（相当于网页上的 is-active）。
type NarrativeRenderSystem struct {
	title    string
	subtitle string
	summary  story.Summary
	showStat bool
	labels   [3]string
	fonts    *utils.Fonts
}

// NewNarrativeRenderSystem 创建叙事栏渲染系统
// summary 计算失败（缺少关注组或参照组）时不显示统计卡片
func NewNarrativeRenderSystem(title, subtitle string, summaryCfg story.SummaryConfig, fonts *utils.Fonts) *NarrativeRenderSystem {
	summary, ok := story.ComputeSummary(summaryCfg)
	return &NarrativeRenderSystem{
		title:    title,
		subtitle: subtitle,
		summary:  summary,
		showStat: ok,
		labels: [3]string{
			"pay gap",
			"less per year",
			"per $1 earned by " + summaryCfg.Reference,
		},
		fonts: fonts,
	}
}

// Measures 叙事卡片标题和正文的宽度测量，没有字体时按平均字宽估算
func (s *NarrativeRenderSystem) Measures() (utils.MeasureFunc, utils.MeasureFunc) {
	if s.fonts == nil {
		estimate := func(size float64) utils.MeasureFunc {
			return func(str string) float64 { return float64(len(str)) * size * 0.55 }
		}
		return estimate(config.CardTitleSize), estimate(config.CardBodySize)
	}
	title := s.fonts.Face(utils.FontBold, config.CardTitleSize)
	body := s.fonts.Face(utils.FontRegular, config.CardBodySize)
	return func(str string) float64 { return text.Advance(str, title) },
		func(str string) float64 { return text.Advance(str, body) }
}

// Draw 绘制叙事栏
//
// 参数:
//   - column: 叙事栏图像（宽度为栏宽，高度为视口高度）
//   - layout: 当前布局
//   - scroll: 滚动位置
//   - activeStep: 高亮的步骤，-1 表示没有
func (s *NarrativeRenderSystem) Draw(column *ebiten.Image, layout NarrativeLayout, scroll float64, activeStep int) {
	column.Fill(narrativeBackground)
	if s.fonts == nil {
		return
	}

	s.drawIntro(column, layout, -scroll)

	for _, card := range layout.Cards {
		top := card.Top - scroll
		if top > layout.Viewport || top+card.Height < 0 {
			continue
		}
		s.drawCard(column, layout, card, top, card.Step.ID == activeStep)
	}
}

func (s *NarrativeRenderSystem) drawIntro(column *ebiten.Image, layout NarrativeLayout, offset float64) {
	x := config.NarrativePadding
	width := layout.Width - 2*config.NarrativePadding
	y := offset + layout.IntroHeight*0.25

	titleFace := s.fonts.Face(utils.FontBold, 30)
	for _, line := range utils.WrapText(s.title, titleFace, width) {
		y += 38
		drawText(column, line, titleFace, x, y, text.AlignStart, narrativeTitleColor)
	}

	subtitleFace := s.fonts.Face(utils.FontRegular, 17)
	y += 10
	for _, line := range utils.WrapText(s.subtitle, subtitleFace, width) {
		y += 24
		drawText(column, line, subtitleFace, x, y, text.AlignStart, narrativeTextColor)
	}

	if !s.showStat {
		return
	}

	// 三个统计数字并排
	y += 30
	boxW := (width - 2*config.CardPadding/2) / 3
	values := [3]string{s.summary.Gap, s.summary.Annual, s.summary.Ratio}
	valueFace := s.fonts.Face(utils.FontBold, 26)
	labelFace := s.fonts.Face(utils.FontRegular, 12)
	for i := 0; i < 3; i++ {
		bx := x + float64(i)*(boxW+config.CardPadding/2)
		vector.DrawFilledRect(column, float32(bx), float32(y), float32(boxW), 84, cardColor, true)
		drawText(column, values[i], valueFace, bx+boxW/2, y+38, text.AlignCenter, statValueColor)
		for j, line := range utils.WrapText(s.labels[i], labelFace, boxW-8) {
			drawText(column, line, labelFace, bx+boxW/2, y+58+float64(j)*14, text.AlignCenter, narrativeTextColor)
		}
	}
}

func (s *NarrativeRenderSystem) drawCard(column *ebiten.Image, layout NarrativeLayout, card CardLayout, top float64, active bool) {
	x := config.NarrativePadding
	width := layout.Width - 2*config.NarrativePadding

	fill, titleColor, bodyColor := cardInactiveColor, narrativeMutedColor, narrativeMutedColor
	if active {
		fill, titleColor, bodyColor = cardColor, narrativeTitleColor, narrativeTextColor
	}
	vector.DrawFilledRect(column, float32(x), float32(top), float32(width), float32(card.Height), fill, true)
	if active {
		vector.DrawFilledRect(column, float32(x), float32(top), 4, float32(card.Height), cardAccentColor, true)
	}

	textX := x + config.CardPadding
	y := top + config.CardPadding
	titleFace := s.fonts.Face(utils.FontBold, config.CardTitleSize)
	for _, line := range card.TitleLines {
		y += config.CardTitleSize * config.CardLineHeight
		drawText(column, line, titleFace, textX, y-6, text.AlignStart, titleColor)
	}

	y += config.CardPadding / 2
	bodyFace := s.fonts.Face(utils.FontRegular, config.CardBodySize)
	for _, line := range card.BodyLines {
		y += config.CardBodySize * config.CardLineHeight
		drawText(column, line, bodyFace, textX, y-5, text.AlignStart, bodyColor)
	}
}
