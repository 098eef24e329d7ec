// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被 CLI 的 run 命令和独立查看器共用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/game"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/scenes"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App 是应用的核心包装器，实现 ebiten.Game 接口
//
// 逻辑屏幕尺寸跟随窗口尺寸（响应式布局），尺寸变化转发给当前场景。
// ctx 取消后下一次 Update 返回 ebiten.Termination，RunGame 正常返回。
type App struct {
	ctx                      context.Context
	cfg                      *config.AppConfig
	sceneManager             *game.SceneManager
	deltaTime                float64
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// ConfigureLogging 按 verbose 配置日志输出
func ConfigureLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(ctx context.Context, cfg *config.AppConfig) (*App, error) {
	ConfigureLogging(cfg.Verbose)

	assets, err := scenes.LoadStoryAssets(cfg)
	if err != nil {
		return nil, fmt.Errorf("数据加载失败: %w", err)
	}

	fonts, err := utils.LoadFonts()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewStoryScene(assets, cfg, scenes.StorySceneOptions{Fonts: fonts}))
	log.Printf("[App] story scene ready")

	return NewAppWithScene(ctx, cfg, sceneManager), nil
}

// NewAppWithScene 使用已创建的场景管理器包装应用
func NewAppWithScene(ctx context.Context, cfg *config.AppConfig, sceneManager *game.SceneManager) *App {
	tps := cfg.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &App{
		ctx:          ctx,
		cfg:          cfg,
		sceneManager: sceneManager,
		deltaTime:    1.0 / float64(tps),
	}
}

// Run 打开窗口并运行主循环，直到窗口关闭或 ctx 取消
func (a *App) Run(title string) error {
	ebiten.SetWindowSize(a.cfg.WindowWidth, a.cfg.WindowHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if a.cfg.TPS > 0 {
		ebiten.SetTPS(a.cfg.TPS)
	}

	log.Printf("[App] starting %dx%d at %d TPS", a.cfg.WindowWidth, a.cfg.WindowHeight, ebiten.TPS())
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	log.Printf("[App] stopped")
	return nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	select {
	case <-a.ctx.Done():
		log.Printf("[App] context cancelled: %v", a.ctx.Err())
		return ebiten.Termination
	default:
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.WindowWidth, a.cfg.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.WindowWidth, a.cfg.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(a.deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸等于窗口尺寸（不小于 MinPanelSize），场景按新尺寸重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth, config.MinPanelSize)
	h := max(outsideHeight, config.MinPanelSize)
	a.sceneManager.Resize(w, h)
	return w, h
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
