package scenes

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

// noInput 不产生任何输入
type noInput struct{}

func (noInput) Wheel() (float64, float64)        { return 0, 0 }
func (noInput) IsKeyPressed(ebiten.Key) bool     { return false }
func (noInput) IsKeyJustPressed(ebiten.Key) bool { return false }

func testAppConfig() *config.AppConfig {
	cfg := config.DefaultAppConfig()
	cfg.StoryPath = filepath.Join("..", "..", "data", "story.yaml")
	cfg.TimelinePath = filepath.Join("..", "..", "data", "timeline-data.csv")
	cfg.Seed = 42
	return cfg
}

func newTestScene(t *testing.T, cfg *config.AppConfig) *StoryScene {
	t.Helper()
	assets, err := LoadStoryAssets(cfg)
	if err != nil {
		t.Fatalf("LoadStoryAssets 返回错误: %v", err)
	}
	return NewStoryScene(assets, cfg, StorySceneOptions{
		Input:  noInput{},
		Cursor: func() (int, int) { return -1, -1 },
	})
}

// scrollToCard 让触发线落在卡片中间
func scrollToCard(s *StoryScene, id int) {
	layout := s.NarrativeLayout()
	for _, c := range layout.Cards {
		if c.Step.ID == id {
			s.ScrollSystem().JumpTo(c.Top + c.Height/2 - layout.Viewport*0.5)
			return
		}
	}
}

// TestStoryScene_FirstResizeSpawns 第一次 Resize 立即布局并生成粒子
func TestStoryScene_FirstResizeSpawns(t *testing.T) {
	s := newTestScene(t, testAppConfig())
	if s.ParticleCount() != 0 {
		t.Fatalf("布局前不应生成粒子, 实际 %d", s.ParticleCount())
	}

	s.Resize(1280, 720)

	if got := s.ParticleCount(); got != 1556 {
		t.Errorf("粒子数量 = %d, 期望 1556", got)
	}
	if w, h := s.ParticleSystem().CanvasSize(); w != 1280-486 || h != 720 {
		t.Errorf("画布尺寸 = %.0fx%.0f, 期望 794x720", w, h)
	}
	if !s.ChartSystem().Available() {
		t.Error("折线图数据应加载成功")
	}
	if len(s.NarrativeLayout().Cards) != 7 {
		t.Errorf("卡片数量 = %d, 期望 7", len(s.NarrativeLayout().Cards))
	}
}

// TestStoryScene_ResizeDebounced 之后的尺寸变化去抖，粒子不重新生成
func TestStoryScene_ResizeDebounced(t *testing.T) {
	s := newTestScene(t, testAppConfig())
	s.Resize(1280, 720)

	s.Resize(1000, 700)
	s.Resize(1100, 800)
	s.Update(0.1)
	if w, _ := s.ParticleSystem().CanvasSize(); w != 794 {
		t.Errorf("去抖期间画布宽度 = %.0f, 期望保持 794", w)
	}

	for i := 0; i < 20; i++ {
		s.Update(1.0 / 60)
	}
	w, h := s.ParticleSystem().CanvasSize()
	if w != float64(1100-narrativeWidth(1100)) || h != 800 {
		t.Errorf("去抖后画布尺寸 = %.0fx%.0f, 期望最后一次尺寸 1100x800 的面板", w, h)
	}
	if s.ParticleCount() != 1556 {
		t.Errorf("尺寸变化后粒子数量 = %d, 期望 1556", s.ParticleCount())
	}
}

// TestStoryScene_StepsDriveVisuals 滚动进入卡片驱动折线图和粒子
func TestStoryScene_StepsDriveVisuals(t *testing.T) {
	s := newTestScene(t, testAppConfig())
	s.Resize(1280, 720)

	scrollToCard(s, 1)
	if got := s.ChartSystem().TargetStyle(); got != (story.ChartStyle{Color: "#ef4444", Width: 5}) {
		t.Errorf("步骤 1 折线图样式 = %+v", got)
	}
	if s.ActiveCard() != 1 || !s.showsChart() {
		t.Errorf("步骤 1 应高亮卡片 1 并显示折线图, 实际卡片 %d", s.ActiveCard())
	}

	scrollToCard(s, 5)
	if got := s.Coordinator().ActiveGroups(); got != story.FirstN(3) {
		t.Errorf("步骤 5 激活 = %s, 期望 %s", got, story.FirstN(3))
	}
	if s.showsChart() {
		t.Error("粒子步骤应显示粒子画布")
	}

	// 回到折线图步骤不撤销激活
	scrollToCard(s, 0)
	if got := s.Coordinator().ActiveGroups(); got != story.FirstN(3) {
		t.Errorf("回到步骤 0 后激活 = %s, 期望保持 %s", got, story.FirstN(3))
	}
	if got := s.ChartSystem().TargetStyle().Color; got != "#667eea" {
		t.Errorf("步骤 0 颜色 = %s, 期望 #667eea", got)
	}
}

// TestStoryScene_TimelineSoftFail 折线图数据缺失时其余部分照常工作
func TestStoryScene_TimelineSoftFail(t *testing.T) {
	cfg := testAppConfig()
	cfg.TimelinePath = filepath.Join(t.TempDir(), "missing.csv")

	s := newTestScene(t, cfg)
	if s.assets.TimelineErr == nil {
		t.Fatal("缺失的数据文件应记录错误")
	}
	s.Resize(1280, 720)
	if s.ChartSystem().Available() {
		t.Error("没有数据时折线图不可用")
	}

	scrollToCard(s, 6)
	if got := s.Coordinator().ActiveGroups(); got != story.FirstN(4) {
		t.Errorf("步骤 6 激活 = %s, 期望 %s", got, story.FirstN(4))
	}
	s.Update(1.0 / 60)
	if s.ParticleSystem().Frames() != 1 {
		t.Errorf("粒子帧数 = %d, 期望 1", s.ParticleSystem().Frames())
	}
}

// TestNarrativeWidth 两侧都至少保留最小宽度
func TestNarrativeWidth(t *testing.T) {
	tests := []struct {
		name    string
		screenW int
		want    int
	}{
		{"默认窗口", 1280, 486},
		{"窄窗口按比例", 600, 228},
		{"比例低于最小值", 500, 200},
		{"过窄时按比例", 300, 114},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := narrativeWidth(tt.screenW); got != tt.want {
				t.Errorf("narrativeWidth(%d) = %d, 期望 %d", tt.screenW, got, tt.want)
			}
		})
	}
}
