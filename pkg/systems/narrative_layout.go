package systems

import (
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/utils"
)

// CardLayout 叙事卡片在文档坐标中的布局
type CardLayout struct {
	Step       story.Step
	Top        float64
	Height     float64
	TitleLines []string
	BodyLines  []string
}

// NarrativeLayout 叙事栏布局
type NarrativeLayout struct {
	Width          float64 // 叙事栏宽度
	Viewport       float64 // 视口高度
	IntroHeight    float64
	Cards          []CardLayout
	DocumentHeight float64
}

// Markers 触发检测用的卡片位置
func (l NarrativeLayout) Markers() []story.Marker {
	markers := make([]story.Marker, len(l.Cards))
	for i, c := range l.Cards {
		markers[i] = story.Marker{ID: c.Step.ID, Top: c.Top, Height: c.Height}
	}
	return markers
}

// MaxScroll 最大滚动距离
func (l NarrativeLayout) MaxScroll() float64 {
	if l.DocumentHeight <= l.Viewport {
		return 0
	}
	return l.DocumentHeight - l.Viewport
}

// LayoutNarrative 计算叙事栏布局
//
// 参数:
//   - steps: 叙事卡片
//   - width, viewport: 叙事栏宽度和视口高度
//   - measureTitle, measureBody: 标题和正文的文本宽度测量
//
// 卡片之间留出 CardGap 比例的视口高度，触发线每次只落在一张卡片里；
// 结尾留白保证最后一张卡片可以滚动到触发线。
func LayoutNarrative(steps []story.Step, width, viewport float64, measureTitle, measureBody utils.MeasureFunc) NarrativeLayout {
	l := NarrativeLayout{
		Width:       width,
		Viewport:    viewport,
		IntroHeight: viewport * config.IntroHeightRatio,
	}

	textWidth := width - 2*config.NarrativePadding - 2*config.CardPadding
	titleLine := config.CardTitleSize * config.CardLineHeight
	bodyLine := config.CardBodySize * config.CardLineHeight

	cursor := l.IntroHeight
	for _, step := range steps {
		titleLines := utils.WrapWords(step.Title, measureTitle, textWidth)
		bodyLines := utils.WrapWords(step.Body, measureBody, textWidth)
		height := 2*config.CardPadding +
			float64(len(titleLines))*titleLine +
			config.CardPadding/2 +
			float64(len(bodyLines))*bodyLine

		l.Cards = append(l.Cards, CardLayout{
			Step:       step,
			Top:        cursor,
			Height:     height,
			TitleLines: titleLines,
			BodyLines:  bodyLines,
		})
		cursor += height + viewport*config.CardGap
	}

	l.DocumentHeight = cursor + viewport*config.OutroHeightRatio
	return l
}
