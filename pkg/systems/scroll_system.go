package systems

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

// InputSource 滚动相关的输入
// 测试中用假实现替换 ebiten 的全局输入状态
type InputSource interface {
	Wheel() (float64, float64)
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenInput 读取 ebiten 的输入状态
type EbitenInput struct{}

func (EbitenInput) Wheel() (float64, float64)            { return ebiten.Wheel() }
func (EbitenInput) IsKeyPressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (EbitenInput) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// StepHandler 进入步骤后的回调
type StepHandler func(step int, result story.StepResult)

// ScrollSystem 叙事栏滚动
//
// 把滚轮和键盘输入转换为滚动位置，平滑趋近目标位置；
// 触发线进入新卡片时调用 Coordinator.HandleStep 并通知 StepHandler。
type ScrollSystem struct {
	input       InputSource
	tracker     *story.ScrollTracker
	coordinator *story.Coordinator
	onStep      StepHandler

	scroll    float64
	target    float64
	maxScroll float64
	viewport  float64
}

// NewScrollSystem 创建滚动系统
// input 为 nil 时不读取输入，只能通过 ScrollTo / ScrollBy 滚动
func NewScrollSystem(input InputSource, tracker *story.ScrollTracker, coordinator *story.Coordinator, onStep StepHandler) *ScrollSystem {
	return &ScrollSystem{
		input:       input,
		tracker:     tracker,
		coordinator: coordinator,
		onStep:      onStep,
	}
}

// SetDocument 更新叙事栏布局（窗口尺寸变化后）
// 保持当前滚动比例，并在新布局下重新检测触发线所在的卡片
func (s *ScrollSystem) SetDocument(layout NarrativeLayout) {
	ratio := 0.0
	if s.maxScroll > 0 {
		ratio = s.scroll / s.maxScroll
	}

	s.viewport = layout.Viewport
	s.maxScroll = layout.MaxScroll()
	s.tracker.SetMarkers(layout.Markers(), layout.Viewport)

	s.scroll = ratio * s.maxScroll
	s.target = s.scroll
	s.apply()
}

// Scroll 当前滚动位置
func (s *ScrollSystem) Scroll() float64 {
	return s.scroll
}

// ScrollBy 相对滚动
func (s *ScrollSystem) ScrollBy(dy float64) {
	s.ScrollTo(s.target + dy)
}

// ScrollTo 滚动到指定位置（平滑过渡）
func (s *ScrollSystem) ScrollTo(y float64) {
	s.target = math.Max(0, math.Min(y, s.maxScroll))
}

// JumpTo 立即滚动到指定位置
func (s *ScrollSystem) JumpTo(y float64) {
	s.ScrollTo(y)
	s.scroll = s.target
	s.apply()
}

// Update 读取输入并推进平滑滚动
func (s *ScrollSystem) Update(dt float64) {
	if s.input != nil {
		s.handleInput()
	}

	diff := s.target - s.scroll
	if math.Abs(diff) < 0.5 {
		s.scroll = s.target
	} else {
		s.scroll += diff * config.ScrollSmoothing
	}
	s.apply()
}

func (s *ScrollSystem) handleInput() {
	if _, dy := s.input.Wheel(); dy != 0 {
		s.ScrollBy(-dy * config.WheelStep)
	}
	if s.input.IsKeyPressed(ebiten.KeyArrowDown) {
		s.ScrollBy(config.ArrowStep)
	}
	if s.input.IsKeyPressed(ebiten.KeyArrowUp) {
		s.ScrollBy(-config.ArrowStep)
	}
	if s.input.IsKeyJustPressed(ebiten.KeyPageDown) || s.input.IsKeyJustPressed(ebiten.KeySpace) {
		s.ScrollBy(s.viewport * config.PageRatio)
	}
	if s.input.IsKeyJustPressed(ebiten.KeyPageUp) {
		s.ScrollBy(-s.viewport * config.PageRatio)
	}
	if s.input.IsKeyJustPressed(ebiten.KeyHome) {
		s.ScrollTo(0)
	}
	if s.input.IsKeyJustPressed(ebiten.KeyEnd) {
		s.ScrollTo(s.maxScroll)
	}
}

// apply 把滚动位置交给触发检测
func (s *ScrollSystem) apply() {
	step, entered := s.tracker.SetScroll(s.scroll)
	if !entered {
		return
	}

	result := s.coordinator.HandleStep(step)
	log.Printf("[Scroll] entered step %d at scroll %.0f (active groups %s)", step, s.scroll, result.Active)
	if s.onStep != nil {
		s.onStep(step, result)
	}
}
