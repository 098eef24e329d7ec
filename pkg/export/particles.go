package export

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"math/rand"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/components"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/ecs"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/entities"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/game"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/systems"
)

const svgFont = "Segoe UI, Arial, sans-serif"

// SimulationOptions 离线粒子模拟参数
type SimulationOptions struct {
	Width, Height float64
	// Step 模拟前依次进入的最后一个步骤，-1 表示保持初始状态
	Step int
	// Frames 推进的帧数
	Frames int
	TPS    int
	Rand   *rand.Rand
	// Progress 每帧之后调用，可为 nil
	Progress game.ProgressFunc
}

// Dot 快照中的一个粒子
type Dot struct {
	X, Y, Radius, Alpha float64
	Color               string
}

// ParticleSnapshot 粒子场在某一帧的状态
type ParticleSnapshot struct {
	Width, Height float64
	Background    string
	Baseline      story.Baseline
	BaselineColor string
	Dots          []Dot
	Labels        []story.LossLabel
	Active        story.ActiveSet
	Stats         []systems.GroupStats
	Frames        int
}

// SimulateParticles 在没有窗口的情况下运行粒子场
//
// 与窗口中的行为一致：先按顺序进入步骤 0..Step，然后推进 Frames 帧。
// ctx 取消时返回错误，不生成快照。
func SimulateParticles(ctx context.Context, cfg *config.StoryConfig, opts SimulationOptions) (*ParticleSnapshot, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %.0fx%.0f", opts.Width, opts.Height)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	em := ecs.NewEntityManager()
	coordinator := story.NewCoordinator(cfg.Chart.Styles, len(cfg.Groups), story.InitialActiveSet(cfg.Groups))
	for step := 0; step <= opts.Step; step++ {
		coordinator.HandleStep(step)
	}

	counts, err := entities.CreateParticleField(em, cfg.Groups, cfg.Baseline, cfg.Physics, opts.Width, opts.Height, rng)
	if err != nil {
		return nil, fmt.Errorf("create particle field: %w", err)
	}
	logf("simulating %d particles for %d frames at step %d (active %s)",
		counts.Total(), opts.Frames, opts.Step, coordinator.ActiveGroups())

	ps := systems.NewParticleSystem(em, cfg.Groups, cfg.Physics, coordinator, rng)
	ps.SetCanvasSize(opts.Width, opts.Height)

	runner := game.NewFrameRunner(ps, opts.TPS)
	runner.SetProgress(opts.Progress)
	if err := runner.Run(ctx, opts.Frames); err != nil {
		return nil, fmt.Errorf("simulate particles: %w", err)
	}

	snap := &ParticleSnapshot{
		Width:      opts.Width,
		Height:     opts.Height,
		Background: config.CanvasBackground,
		Baseline:   cfg.Baseline,
		Labels:     story.LossLabels(cfg.Groups, coordinator.ActiveGroups()),
		Active:     coordinator.ActiveGroups(),
		Stats:      ps.Stats(),
		Frames:     runner.Frames(),
	}
	if len(cfg.Groups) > 0 {
		snap.BaselineColor = cfg.Groups[0].Color
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		if p.Body.Alpha < cfg.Physics.MinVisibleAlpha || p.Group < 0 || p.Group >= len(cfg.Groups) {
			continue
		}
		snap.Dots = append(snap.Dots, Dot{
			X: p.Body.X, Y: p.Body.Y, Radius: p.Radius, Alpha: p.Body.Alpha,
			Color: cfg.Groups[p.Group].Color,
		})
	}
	return snap, nil
}

// SVG 快照的 SVG 文档，布局与窗口中的粒子画布相同
func (s *ParticleSnapshot) SVG() string {
	var svg bytes.Buffer
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" font-family="%s">`+"\n",
		s.Width, s.Height, s.Width, s.Height, svgFont)
	fmt.Fprintf(&svg, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.Background)

	svg.WriteString(`<g class="particles">` + "\n")
	for _, d := range s.Dots {
		fmt.Fprintf(&svg, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.3f"/>`+"\n",
			d.X, d.Y, d.Radius, d.Color, d.Alpha)
	}
	svg.WriteString("</g>\n")

	// 基线卡片
	left := s.Width/2 - config.BaselineCardWidth/2
	fmt.Fprintf(&svg, `<rect x="%.2f" y="%.0f" width="%.0f" height="%.0f" fill="#ffffff" fill-opacity="0.95"/>`+"\n",
		left, config.BaselineCardTop, config.BaselineCardWidth, config.BaselineCardHeight)
	fmt.Fprintf(&svg, `<text x="%.2f" y="40" text-anchor="middle" font-size="18" font-weight="bold" fill="%s">%s</text>`+"\n",
		s.Width/2, s.BaselineColor, html.EscapeString("Baseline: "+story.FormatMillions(s.Baseline.Total)))
	fmt.Fprintf(&svg, `<text x="%.2f" y="58" text-anchor="middle" font-size="12" fill="#666666">%s</text>`+"\n",
		s.Width/2, html.EscapeString(s.Baseline.Caption))

	// 损失标签
	for _, l := range s.Labels {
		y := s.Height * l.TargetY
		fmt.Fprintf(&svg, `<g class="loss-label">`+"\n")
		fmt.Fprintf(&svg, `<rect x="%.0f" y="%.2f" width="%.0f" height="%.0f" fill="#ffffff" fill-opacity="0.95"/>`+"\n",
			config.GroupLabelLeft, y-35, config.GroupLabelWidth, config.GroupLabelHeight)
		fmt.Fprintf(&svg, `<circle cx="%.0f" cy="%.2f" r="10" fill="%s"/>`+"\n", config.GroupLabelLeft+15, y-10, l.Color)
		fmt.Fprintf(&svg, `<text x="%.0f" y="%.2f" font-size="16" font-weight="bold" fill="#1a1a2e">%s</text>`+"\n",
			config.GroupLabelLeft+35, y-15, html.EscapeString(l.Name))
		fmt.Fprintf(&svg, `<text x="%.0f" y="%.2f" font-size="14" font-weight="bold" fill="%s">%s</text>`+"\n",
			config.GroupLabelLeft+35, y+5, l.Color, html.EscapeString(l.Text))
		svg.WriteString("</g>\n")
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}
