package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingScene 记录 Update / Draw / Resize 调用
type recordingScene struct {
	updates []float64
	draws   int
	resizes [][2]int
}

func (r *recordingScene) Update(deltaTime float64) { r.updates = append(r.updates, deltaTime) }
func (r *recordingScene) Draw(*ebiten.Image)        { r.draws++ }

// resizableScene 额外实现 Resizable
type resizableScene struct {
	recordingScene
}

func (r *resizableScene) Resize(width, height int) {
	r.resizes = append(r.resizes, [2]int{width, height})
}

// TestSceneManagerNoScene 没有场景时各方法不 panic
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("初始场景应为 nil")
	}
	sm.Update(1.0 / 60)
	sm.Draw(ebiten.NewImage(64, 64))
	sm.Resize(800, 600)
}

// TestSceneManagerForwards 只有当前场景收到 Update 和 Draw
func TestSceneManagerForwards(t *testing.T) {
	sm := NewSceneManager()
	first, second := &recordingScene{}, &recordingScene{}
	screen := ebiten.NewImage(64, 64)

	sm.SwitchTo(first)
	sm.Update(0.5)
	sm.Draw(screen)

	sm.SwitchTo(second)
	if sm.GetCurrentScene() != second {
		t.Fatal("SwitchTo 未切换当前场景")
	}
	sm.Update(0.25)
	sm.Update(0.25)
	sm.Draw(screen)

	if len(first.updates) != 1 || first.updates[0] != 0.5 || first.draws != 1 {
		t.Errorf("旧场景 updates=%v draws=%d, 期望 [0.5] 和 1", first.updates, first.draws)
	}
	if len(second.updates) != 2 || second.draws != 1 {
		t.Errorf("新场景 updates=%v draws=%d, 期望 2 次更新和 1 次绘制", second.updates, second.draws)
	}
}

// TestSceneManagerResize 尺寸变化只在真正变化时转发
func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()
	scene := &resizableScene{}

	// 尺寸未知时切换场景不触发 Resize
	sm.SwitchTo(scene)
	if len(scene.resizes) != 0 {
		t.Fatalf("尺寸未知时不应调用 Resize, 实际 %v", scene.resizes)
	}

	sm.Resize(1280, 720)
	sm.Resize(1280, 720)
	sm.Resize(1024, 768)
	if len(scene.resizes) != 2 {
		t.Errorf("Resize 调用次数 = %d, 期望 2", len(scene.resizes))
	}

	// 切换到新场景时立即收到当前尺寸
	next := &resizableScene{}
	sm.SwitchTo(next)
	if len(next.resizes) != 1 || next.resizes[0] != [2]int{1024, 768} {
		t.Errorf("新场景收到的尺寸 = %v, 期望 [[1024 768]]", next.resizes)
	}

	// 不实现 Resizable 的场景照常工作
	plain := &recordingScene{}
	sm.SwitchTo(plain)
	sm.Resize(640, 480)
	if len(plain.resizes) != 0 {
		t.Errorf("非 Resizable 场景不应收到 Resize")
	}
}
