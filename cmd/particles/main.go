// Package main provides a particle field viewer for tuning the particle
// physics without scrolling through the story.
//
// Usage:
//
//	go run ./cmd/particles [flags]
//
// Flags:
//
//	--root <dir>      Directory containing data/ (default ".")
//	--story <path>    Story config (default data/story.yaml)
//	--step <n>        Start at step n (default 3)
//	--seed <n>        Random seed, 0 uses the current time
//	--verbose         Enable verbose logging
//
// Controls:
//
//	0-6               - Enter step (3-6 activate 1-4 groups)
//	R                 - Respawn the particle field
//	P                 - Toggle pause
//	Right Arrow       - Advance one frame while paused
//	Q/Escape          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/app"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/ecs"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/embedded"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/entities"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/scenes"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/systems"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	rootFlag    = flag.String("root", ".", "Directory containing data/")
	storyFlag   = flag.String("story", "data/story.yaml", "Story config path")
	stepFlag    = flag.Int("step", 3, "Initial step")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 uses the current time")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var errQuit = errors.New("quit requested")

var stepKeys = []ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// ParticleViewerGame implements ebiten.Game interface for the particle viewer
type ParticleViewerGame struct {
	cfg            *config.StoryConfig
	rng            *rand.Rand
	fonts          *utils.Fonts
	entityManager  *ecs.EntityManager
	coordinator    *story.Coordinator
	particleSystem *systems.ParticleSystem
	renderSystem   *systems.ParticleRenderSystem

	paused        bool
	statusMessage string
}

// NewParticleViewerGame creates a new particle viewer instance
func NewParticleViewerGame(cfg *config.StoryConfig, fonts *utils.Fonts, seed int64) (*ParticleViewerGame, error) {
	g := &ParticleViewerGame{
		cfg:           cfg,
		rng:           scenes.NewRand(seed),
		fonts:         fonts,
		entityManager: ecs.NewEntityManager(),
	}
	if err := g.respawn(); err != nil {
		return nil, err
	}
	return g, nil
}

// respawn 清空并重新生成粒子场，激活状态回到初始值
func (g *ParticleViewerGame) respawn() error {
	g.entityManager.Clear()
	g.coordinator = story.NewCoordinator(g.cfg.Chart.Styles, len(g.cfg.Groups), story.InitialActiveSet(g.cfg.Groups))
	g.particleSystem = systems.NewParticleSystem(g.entityManager, g.cfg.Groups, g.cfg.Physics, g.coordinator, g.rng)
	g.particleSystem.SetCanvasSize(screenWidth, screenHeight)
	g.renderSystem = systems.NewParticleRenderSystem(g.entityManager, g.cfg.Groups, g.cfg.Baseline, g.cfg.Physics, g.coordinator, g.fonts)

	counts, err := entities.CreateParticleField(g.entityManager, g.cfg.Groups, g.cfg.Baseline, g.cfg.Physics, screenWidth, screenHeight, g.rng)
	if err != nil {
		return fmt.Errorf("failed to create particle field: %w", err)
	}
	g.statusMessage = fmt.Sprintf("Spawned %d particles (%d falling)", counts.Total(), counts.Falling)
	log.Print(g.statusMessage)
	return nil
}

// enterStep 模拟滚动进入步骤
func (g *ParticleViewerGame) enterStep(step int) {
	result := g.coordinator.HandleStep(step)
	g.statusMessage = fmt.Sprintf("Step %d: active groups %s", step, result.Active)
}

func (g *ParticleViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	for step, key := range stepKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.enterStep(step)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.respawn(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	dt := 1.0 / float64(ebiten.TPS())
	if !g.paused || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.particleSystem.Update(dt)
	}
	return nil
}

func (g *ParticleViewerGame) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen)
	g.drawUI(screen)
}

// drawUI draws the overlay with group statistics and controls
func (g *ParticleViewerGame) drawUI(screen *ebiten.Image) {
	y := screenHeight - 200
	info := fmt.Sprintf("Frame %d  TPS %.0f  active %s", g.particleSystem.Frames(), ebiten.ActualTPS(), g.coordinator.ActiveGroups())
	ebitenutil.DebugPrintAt(screen, info, screenWidth-360, y)

	for i, st := range g.particleSystem.Stats() {
		line := fmt.Sprintf("%-16s %4d/%4d visible  %3d faded", g.cfg.Groups[i].Name, st.Visible, st.Total, st.Faded)
		ebitenutil.DebugPrintAt(screen, line, screenWidth-360, y+20*(i+1))
	}
	if g.statusMessage != "" {
		ebitenutil.DebugPrintAt(screen, g.statusMessage, screenWidth-360, y+120)
	}

	controls := "0-6 = Step  R = Respawn  P = Pause  -> = Frame  Q = Quit"
	if g.paused {
		controls = "PAUSED  " + controls
	}
	ebitenutil.DebugPrintAt(screen, controls, screenWidth-360, screenHeight-30)
}

// Layout returns the game's logical screen size
func (g *ParticleViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	// 默认静音运行：如需详细调试，传入 --verbose
	app.ConfigureLogging(*verboseFlag)

	embedded.Init(os.DirFS(*rootFlag))

	cfg, err := config.LoadStoryConfig(*storyFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load story:", err)
		os.Exit(1)
	}
	fonts, err := utils.LoadFonts()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load fonts:", err)
		os.Exit(1)
	}

	game, err := NewParticleViewerGame(cfg, fonts, *seedFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize viewer:", err)
		os.Exit(1)
	}
	for step := 0; step <= *stepFlag; step++ {
		game.enterStep(step)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Particle Field Viewer")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Println("Particle viewer closed")
}
