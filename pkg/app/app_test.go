package app

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/game"
)

// recordingScene 记录 Update 和 Resize 调用
type recordingScene struct {
	updates []float64
	sizes   [][2]int
}

func (r *recordingScene) Update(deltaTime float64)  { r.updates = append(r.updates, deltaTime) }
func (r *recordingScene) Draw(screen *ebiten.Image) {}
func (r *recordingScene) Resize(width, height int)  { r.sizes = append(r.sizes, [2]int{width, height}) }

func newTestApp(ctx context.Context, tps int) (*App, *recordingScene) {
	cfg := config.DefaultAppConfig()
	cfg.TPS = tps
	scene := &recordingScene{}
	sm := game.NewSceneManager()
	sm.SwitchTo(scene)
	return NewAppWithScene(ctx, cfg, sm), scene
}

// TestAppLayoutFollowsWindow 逻辑尺寸跟随窗口并转发给场景
func TestAppLayoutFollowsWindow(t *testing.T) {
	a, scene := newTestApp(context.Background(), 60)

	tests := []struct {
		name         string
		outW, outH   int
		wantW, wantH int
	}{
		{"默认窗口", 1280, 720, 1280, 720},
		{"放大窗口", 1920, 1080, 1920, 1080},
		{"过小窗口限制为最小值", 100, 150, 200, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := a.Layout(tt.outW, tt.outH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Layout(%d, %d) = (%d, %d), 期望 (%d, %d)", tt.outW, tt.outH, w, h, tt.wantW, tt.wantH)
			}
		})
	}

	// 相同尺寸重复调用只转发一次
	a.Layout(200, 200)
	if len(scene.sizes) != 3 {
		t.Errorf("Resize 调用次数 = %d, 期望 3", len(scene.sizes))
	}
}

// TestAppStopsOnCancel ctx 取消后返回 ebiten.Termination
func TestAppStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	a, scene := newTestApp(ctx, 30)

	cancel()
	if err := a.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("取消后 Update 返回 %v, 期望 ebiten.Termination", err)
	}
	if len(scene.updates) != 0 {
		t.Errorf("取消后不应更新场景, 实际 %d 次", len(scene.updates))
	}
}

// TestAppDeltaTime 帧时间由 TPS 决定
func TestAppDeltaTime(t *testing.T) {
	a, _ := newTestApp(context.Background(), 30)
	if a.deltaTime != 1.0/30 {
		t.Errorf("deltaTime = %v, 期望 1/30", a.deltaTime)
	}

	a, _ = newTestApp(context.Background(), 0)
	if a.deltaTime != 1.0/float64(ebiten.DefaultTPS) {
		t.Errorf("TPS 为 0 时 deltaTime = %v, 期望 1/%d", a.deltaTime, ebiten.DefaultTPS)
	}
}
