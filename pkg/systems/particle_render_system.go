package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/components"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/ecs"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/utils"
)

var (
	labelCardColor   = color.NRGBA{255, 255, 255, 242} // rgba(255,255,255,0.95)
	labelNameColor   = utils.WithAlpha(utils.MustParseHexColor(config.CanvasBackground), 1)
	baselineCaptionC = color.NRGBA{0x66, 0x66, 0x66, 0xff}
)

// ParticleRenderSystem 绘制粒子画布
//
// 绘制顺序:
//  1. 背景色
//  2. 不透明度不低于 MinVisibleAlpha 的粒子（按创建顺序）
//  3. 顶部基线卡片
//  4. 每个激活的下落分组在目标线处的损失标签
type ParticleRenderSystem struct {
	EntityManager *ecs.EntityManager

	groups   []story.Group
	baseline story.Baseline
	physics  config.PhysicsConfig
	source   ActiveGroupsSource
	fonts    *utils.Fonts

	background  color.NRGBA
	groupColors []colorful.Color
}

// NewParticleRenderSystem 创建粒子画布渲染系统
// fonts 为 nil 时只绘制图形，不绘制文字
func NewParticleRenderSystem(em *ecs.EntityManager, groups []story.Group, baseline story.Baseline, physics config.PhysicsConfig, source ActiveGroupsSource, fonts *utils.Fonts) *ParticleRenderSystem {
	colors := make([]colorful.Color, len(groups))
	for i, g := range groups {
		colors[i] = utils.MustParseHexColor(g.Color)
	}
	return &ParticleRenderSystem{
		EntityManager: em,
		groups:        groups,
		baseline:      baseline,
		physics:       physics,
		source:        source,
		fonts:         fonts,
		background:    utils.WithAlpha(utils.MustParseHexColor(config.CanvasBackground), 1),
		groupColors:   colors,
	}
}

// Draw 把粒子场绘制到 canvas（画布尺寸即 canvas 尺寸）
func (s *ParticleRenderSystem) Draw(canvas *ebiten.Image) {
	canvas.Fill(s.background)
	s.drawParticles(canvas)

	width := float64(canvas.Bounds().Dx())
	height := float64(canvas.Bounds().Dy())
	s.drawBaselineCard(canvas, width)

	active := story.ActiveSet(0)
	if s.source != nil {
		active = s.source.ActiveGroups()
	}
	for _, label := range story.LossLabels(s.groups, active) {
		s.drawLossLabel(canvas, label, height*label.TargetY)
	}
}

func (s *ParticleRenderSystem) drawParticles(canvas *ebiten.Image) {
	entities := ecs.GetEntitiesWith1[*components.ParticleComponent](s.EntityManager)
	for _, id := range entities {
		p, ok := ecs.GetComponent[*components.ParticleComponent](s.EntityManager, id)
		if !ok || p.Body.Alpha < s.physics.MinVisibleAlpha {
			continue
		}
		if p.Group < 0 || p.Group >= len(s.groupColors) {
			continue
		}
		clr := utils.WithAlpha(s.groupColors[p.Group], p.Body.Alpha)
		vector.DrawFilledCircle(canvas, float32(p.Body.X), float32(p.Body.Y), float32(p.Radius), clr, true)
	}
}

// drawBaselineCard 顶部居中的基线卡片，如 "Baseline: $3.89M"
func (s *ParticleRenderSystem) drawBaselineCard(canvas *ebiten.Image, width float64) {
	left := width/2 - config.BaselineCardWidth/2
	vector.DrawFilledRect(canvas, float32(left), config.BaselineCardTop,
		config.BaselineCardWidth, config.BaselineCardHeight, labelCardColor, true)

	if s.fonts == nil {
		return
	}
	headline := "Baseline: " + story.FormatMillions(s.baseline.Total)
	drawText(canvas, headline, s.fonts.Face(utils.FontBold, 18), width/2, 40, text.AlignCenter,
		utils.WithAlpha(s.baselineColor(), 1))
	drawText(canvas, s.baseline.Caption, s.fonts.Face(utils.FontRegular, 12), width/2, 58, text.AlignCenter,
		baselineCaptionC)
}

// drawLossLabel 目标线处的分组损失标签
func (s *ParticleRenderSystem) drawLossLabel(canvas *ebiten.Image, label story.LossLabel, y float64) {
	left := config.GroupLabelLeft
	vector.DrawFilledRect(canvas, float32(left), float32(y-35),
		config.GroupLabelWidth, config.GroupLabelHeight, labelCardColor, true)

	groupColor := utils.WithAlpha(s.groupColors[label.Group], 1)
	vector.DrawFilledCircle(canvas, float32(left+15), float32(y-10), 10, groupColor, true)

	if s.fonts == nil {
		return
	}
	drawText(canvas, label.Name, s.fonts.Face(utils.FontBold, 16), left+35, y-15, text.AlignStart, labelNameColor)
	drawText(canvas, label.Text, s.fonts.Face(utils.FontBold, 14), left+35, y+5, text.AlignStart, groupColor)
}

// baselineColor 基线卡片文字使用分组 0 的颜色
func (s *ParticleRenderSystem) baselineColor() colorful.Color {
	if len(s.groupColors) == 0 {
		return colorful.Color{}
	}
	return s.groupColors[0]
}
