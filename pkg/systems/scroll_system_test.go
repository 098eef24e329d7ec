package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

// fakeInput 可控的输入状态
type fakeInput struct {
	wheel       float64
	pressed     map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: map[ebiten.Key]bool{}, justPressed: map[ebiten.Key]bool{}}
}

func (f *fakeInput) Wheel() (float64, float64)            { return 0, f.wheel }
func (f *fakeInput) IsKeyPressed(key ebiten.Key) bool     { return f.pressed[key] }
func (f *fakeInput) IsKeyJustPressed(key ebiten.Key) bool { return f.justPressed[key] }

// reset 清除单帧输入
func (f *fakeInput) reset() {
	f.wheel = 0
	f.justPressed = map[ebiten.Key]bool{}
}

func setupScroll(t *testing.T, input InputSource) (*ScrollSystem, *story.Coordinator, NarrativeLayout, *[]int) {
	t.Helper()
	styles := []story.ChartStyle{{Color: "#667eea", Width: 3}, {Color: "#ef4444", Width: 5}, {Color: "#f59e0b", Width: 4}}
	coordinator := story.NewCoordinator(styles, 4, story.NewActiveSet(0))

	var entered []int
	s := NewScrollSystem(input, story.NewScrollTracker(0.5), coordinator, func(step int, _ story.StepResult) {
		entered = append(entered, step)
	})

	layout := LayoutNarrative(testSteps(), 480, 720, charMeasure, charMeasure)
	s.SetDocument(layout)
	return s, coordinator, layout, &entered
}

// settle 推进足够多帧让平滑滚动到达目标
func settle(s *ScrollSystem) {
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
}

// TestScrollSystem_EntersStepsInOrder 向下滚动依次进入每个步骤
func TestScrollSystem_EntersStepsInOrder(t *testing.T) {
	s, coordinator, layout, entered := setupScroll(t, nil)

	for y := 0.0; y <= layout.MaxScroll(); y += 20 {
		s.JumpTo(y)
	}

	if len(*entered) != 7 {
		t.Fatalf("进入步骤 = %v, 期望 0..6 各一次", *entered)
	}
	for i, step := range *entered {
		if step != i {
			t.Errorf("第 %d 次进入的步骤 = %d, 期望 %d", i, step, i)
		}
	}
	if got := coordinator.ActiveGroups(); got != story.FirstN(4) {
		t.Errorf("滚动到底后激活快照 = %s, 期望 {0,1,2,3}", got)
	}
}

// TestScrollSystem_ScrollBackUp 向上滚回已离开的卡片会再次进入
func TestScrollSystem_ScrollBackUp(t *testing.T) {
	s, coordinator, layout, entered := setupScroll(t, nil)

	card5 := layout.Cards[5]
	s.JumpTo(card5.Top + card5.Height/2 - 360)
	if coordinator.ActiveGroups() != story.FirstN(3) {
		t.Fatalf("停在步骤 5 时激活快照 = %s, 期望 {0,1,2}", coordinator.ActiveGroups())
	}

	card3 := layout.Cards[3]
	s.JumpTo(card3.Top + card3.Height/2 - 360)
	if last := (*entered)[len(*entered)-1]; last != 3 {
		t.Errorf("向上滚动后进入步骤 %d, 期望 3", last)
	}
	if coordinator.ActiveGroups() != story.NewActiveSet(0) {
		t.Errorf("回到步骤 3 后激活快照 = %s, 期望 {0}", coordinator.ActiveGroups())
	}
}

// TestScrollSystem_KeyboardAndWheel 键盘和滚轮输入
func TestScrollSystem_KeyboardAndWheel(t *testing.T) {
	input := newFakeInput()
	s, _, layout, _ := setupScroll(t, input)

	tests := []struct {
		name   string
		press  func()
		expect func() float64
	}{
		{"滚轮向下两格", func() { input.wheel = -2 }, func() float64 { return 120 }},
		{"PageDown", func() { input.justPressed[ebiten.KeyPageDown] = true }, func() float64 { return 120 + 720*0.9 }},
		{"End", func() { input.justPressed[ebiten.KeyEnd] = true }, func() float64 { return layout.MaxScroll() }},
		{"滚轮不能超过底部", func() { input.wheel = -5 }, func() float64 { return layout.MaxScroll() }},
		{"PageUp", func() { input.justPressed[ebiten.KeyPageUp] = true }, func() float64 { return layout.MaxScroll() - 720*0.9 }},
		{"Home", func() { input.justPressed[ebiten.KeyHome] = true }, func() float64 { return 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.press()
			s.Update(1.0 / 60)
			input.reset()
			settle(s)

			if got, want := s.Scroll(), tt.expect(); got < want-0.01 || got > want+0.01 {
				t.Errorf("Scroll() = %.2f, 期望 %.2f", got, want)
			}
		})
	}
}

// TestScrollSystem_ResizeKeepsPosition 布局变化后保持滚动比例
func TestScrollSystem_ResizeKeepsPosition(t *testing.T) {
	s, _, layout, _ := setupScroll(t, nil)
	s.JumpTo(layout.MaxScroll() / 2)

	bigger := LayoutNarrative(testSteps(), 600, 900, charMeasure, charMeasure)
	s.SetDocument(bigger)

	want := bigger.MaxScroll() / 2
	if got := s.Scroll(); got < want-0.01 || got > want+0.01 {
		t.Errorf("重新布局后 Scroll() = %.2f, 期望 %.2f", got, want)
	}
}

// TestScrollSystem_EndKeyReachesLastStep End 键的平滑滚动跨过多张卡片时仍进入最后一步
func TestScrollSystem_EndKeyReachesLastStep(t *testing.T) {
	input := newFakeInput()
	s, coordinator, _, entered := setupScroll(t, input)

	input.justPressed[ebiten.KeyEnd] = true
	s.Update(1.0 / 60)
	input.reset()
	settle(s)

	if len(*entered) == 0 {
		t.Fatal("End 后没有进入任何步骤")
	}
	if last := (*entered)[len(*entered)-1]; last != 6 {
		t.Errorf("End 后最后进入的步骤 = %d, 期望 6 (全部: %v)", last, *entered)
	}
	if got := coordinator.ActiveGroups(); got != story.FirstN(4) {
		t.Errorf("End 后激活快照 = %s, 期望 {0,1,2,3}", got)
	}

	input.justPressed[ebiten.KeyHome] = true
	s.Update(1.0 / 60)
	input.reset()
	settle(s)

	if last := (*entered)[len(*entered)-1]; last != 0 {
		t.Errorf("Home 后最后进入的步骤 = %d, 期望 0 (全部: %v)", last, *entered)
	}
}
