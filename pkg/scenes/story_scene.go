package scenes

import (
	"image"
	"log"
	"math/rand"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/ecs"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/entities"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/game"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/systems"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorFunc 返回指针在屏幕上的位置
type CursorFunc func() (int, int)

// screenSize 逻辑屏幕尺寸
type screenSize struct {
	w, h int
}

// StoryScene 叙事场景
//
// 左侧为可滚动的叙事栏，右侧为固定的图形面板：
// 折线图部分（步骤 0-2）显示趋势图，粒子部分（步骤 3 之后）显示粒子画布。
//
// 第一次 Resize 立即布局并生成粒子；之后的尺寸变化经过去抖，
// 只有最后一次变化会触发重建。粒子不会因尺寸变化重新生成。
type StoryScene struct {
	assets *StoryAssets
	fonts  *utils.Fonts
	rng    *rand.Rand
	input  systems.InputSource
	cursor CursorFunc

	entityManager *ecs.EntityManager
	coordinator   *story.Coordinator
	tracker       *story.ScrollTracker

	particleSystem *systems.ParticleSystem
	particleRender *systems.ParticleRenderSystem
	chartSystem    *systems.TrendChartSystem
	scrollSystem   *systems.ScrollSystem
	narrative      *systems.NarrativeRenderSystem

	layout   systems.NarrativeLayout
	resize   *utils.Debouncer[screenSize]
	size     screenSize
	columnW  int
	column   *ebiten.Image
	panel    *ebiten.Image
	spawned  bool
	active   int // 高亮的卡片，-1 表示没有
	showInfo bool
}

var (
	_ game.Scene     = (*StoryScene)(nil)
	_ game.Resizable = (*StoryScene)(nil)
)

// StorySceneOptions 场景可选参数
type StorySceneOptions struct {
	// Input 滚动输入，为 nil 时使用 ebiten 输入
	Input systems.InputSource
	// Cursor 指针位置，为 nil 时使用 ebiten.CursorPosition
	Cursor CursorFunc
	// Fonts 为 nil 时不绘制文字
	Fonts *utils.Fonts
}

// NewStoryScene 创建叙事场景
//
// 参数:
//   - assets: LoadStoryAssets 加载的数据
//   - appCfg: 应用配置（触发线位置、去抖时间、随机种子）
//   - opts: 输入和字体
func NewStoryScene(assets *StoryAssets, appCfg *config.AppConfig, opts StorySceneOptions) *StoryScene {
	storyCfg := assets.Story

	s := &StoryScene{
		assets:        assets,
		fonts:         opts.Fonts,
		rng:           NewRand(appCfg.Seed),
		input:         opts.Input,
		cursor:        opts.Cursor,
		entityManager: ecs.NewEntityManager(),
		tracker:       story.NewScrollTracker(appCfg.TriggerOffset),
		resize:        utils.NewDebouncer[screenSize](appCfg.ResizeDebounce()),
		active:        -1,
	}
	if s.input == nil {
		s.input = systems.EbitenInput{}
	}
	if s.cursor == nil {
		s.cursor = ebiten.CursorPosition
	}

	s.coordinator = story.NewCoordinator(storyCfg.Chart.Styles, len(storyCfg.Groups), story.InitialActiveSet(storyCfg.Groups))
	s.particleSystem = systems.NewParticleSystem(s.entityManager, storyCfg.Groups, storyCfg.Physics, s.coordinator, s.rng)
	s.particleRender = systems.NewParticleRenderSystem(s.entityManager, storyCfg.Groups, storyCfg.Baseline, storyCfg.Physics, s.coordinator, s.fonts)
	s.chartSystem = systems.NewTrendChartSystem(assets.Timeline, storyCfg.ChartOptions(), storyCfg.InitialChartStyle(), s.fonts)
	s.scrollSystem = systems.NewScrollSystem(s.input, s.tracker, s.coordinator, s.onStep)
	s.narrative = systems.NewNarrativeRenderSystem(storyCfg.Title, storyCfg.Subtitle, storyCfg.Summary, s.fonts)

	return s
}

// onStep 触发线进入新卡片
func (s *StoryScene) onStep(step int, result story.StepResult) {
	s.active = step
	if result.Kind == story.StepChart {
		s.chartSystem.SetStyle(result.Style)
	}
}

// Resize 实现 game.Resizable
func (s *StoryScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	next := screenSize{width, height}
	if s.size == (screenSize{}) {
		s.applyLayout(next)
		return
	}
	s.resize.Trigger(next)
}

// applyLayout 按屏幕尺寸重建叙事栏、折线图和画布
func (s *StoryScene) applyLayout(size screenSize) {
	s.size = size
	s.columnW = narrativeWidth(size.w)
	panelW := size.w - s.columnW

	measureTitle, measureBody := s.narrative.Measures()
	s.layout = systems.LayoutNarrative(s.assets.Story.Steps, float64(s.columnW), float64(size.h), measureTitle, measureBody)
	s.scrollSystem.SetDocument(s.layout)

	s.chartSystem.Rebuild(float64(panelW), float64(size.h))
	s.particleSystem.SetCanvasSize(float64(panelW), float64(size.h))
	if !s.spawned {
		s.spawnParticles(float64(panelW), float64(size.h))
	}

	s.allocateImages(panelW, size.h)
	log.Printf("[Story] layout %dx%d: narrative %d px, panel %d px", size.w, size.h, s.columnW, panelW)
}

func (s *StoryScene) spawnParticles(width, height float64) {
	storyCfg := s.assets.Story
	counts, err := entities.CreateParticleField(s.entityManager, storyCfg.Groups, storyCfg.Baseline, storyCfg.Physics, width, height, s.rng)
	if err != nil {
		log.Printf("[ParticleSystem] failed to create particle field: %v", err)
		return
	}
	s.spawned = true
	log.Printf("[Story] spawned %d particles (%d falling)", counts.Total(), counts.Falling)
}

func (s *StoryScene) allocateImages(panelW, height int) {
	if s.column != nil {
		s.column.Deallocate()
	}
	if s.panel != nil {
		s.panel.Deallocate()
	}
	s.column = ebiten.NewImage(s.columnW, height)
	s.panel = ebiten.NewImage(panelW, height)
}

// narrativeWidth 叙事栏宽度，两侧都至少保留 MinPanelSize
func narrativeWidth(screenW int) int {
	w := int(float64(screenW) * config.NarrativeWidthRatio)
	if screenW >= 2*config.MinPanelSize {
		w = max(w, config.MinPanelSize)
		w = min(w, screenW-config.MinPanelSize)
	}
	return w
}

// Update 实现 game.Scene
func (s *StoryScene) Update(deltaTime float64) {
	if size, ok := s.resize.Update(deltaTime); ok && size != s.size {
		s.applyLayout(size)
	}
	if s.size == (screenSize{}) {
		return
	}

	if s.input.IsKeyJustPressed(ebiten.KeyF3) {
		s.showInfo = !s.showInfo
	}

	s.scrollSystem.Update(deltaTime)

	x, y := s.cursor()
	inPanel := image.Pt(x, y).In(image.Rect(s.columnW, 0, s.size.w, s.size.h))
	s.chartSystem.SetPointer(float64(x-s.columnW), float64(y), inPanel && s.showsChart())
	s.chartSystem.Update(deltaTime)

	s.particleSystem.Update(deltaTime)
}

// showsChart 面板当前显示折线图还是粒子画布
func (s *StoryScene) showsChart() bool {
	return !s.coordinator.InParticleSection()
}

// Draw 实现 game.Scene
func (s *StoryScene) Draw(screen *ebiten.Image) {
	if s.column == nil {
		return
	}

	s.narrative.Draw(s.column, s.layout, s.scrollSystem.Scroll(), s.active)
	screen.DrawImage(s.column, nil)

	if s.showsChart() {
		s.chartSystem.Draw(s.panel)
	} else {
		s.particleRender.Draw(s.panel)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.columnW), 0)
	screen.DrawImage(s.panel, op)

	if s.showInfo {
		s.drawInfo(screen)
	}
}

// Coordinator 滚动协调器
func (s *StoryScene) Coordinator() *story.Coordinator {
	return s.coordinator
}

// ParticleSystem 粒子系统
func (s *StoryScene) ParticleSystem() *systems.ParticleSystem {
	return s.particleSystem
}

// ChartSystem 折线图系统
func (s *StoryScene) ChartSystem() *systems.TrendChartSystem {
	return s.chartSystem
}

// ScrollSystem 滚动系统
func (s *StoryScene) ScrollSystem() *systems.ScrollSystem {
	return s.scrollSystem
}

// NarrativeLayout 当前叙事栏布局
func (s *StoryScene) NarrativeLayout() systems.NarrativeLayout {
	return s.layout
}

// ActiveCard 高亮的卡片，-1 表示没有
func (s *StoryScene) ActiveCard() int {
	return s.active
}

// ParticleCount 已生成的粒子数量
func (s *StoryScene) ParticleCount() int {
	return s.entityManager.Count()
}
