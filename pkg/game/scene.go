package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Updater 按帧推进的对象
type Updater interface {
	// Update updates the logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)
}

// Scene represents a screen of the application (the story view).
// Each scene has its own update and rendering logic.
type Scene interface {
	Updater

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于接收窗口尺寸变化
//
// 实现此接口的场景在逻辑屏幕尺寸变化时被调用 Resize()。
// 调用可能非常频繁（拖动窗口边框时每帧一次），场景应自行去抖。
type Resizable interface {
	Resize(width, height int)
}
