package scenes

import (
	"fmt"
	"strings"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawInfo 调试信息（F3 切换）
func (s *StoryScene) drawInfo(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.infoText(), s.columnW+8, s.size.h-120)
}

// infoText 当前步骤、激活分组和每组粒子状态
func (s *StoryScene) infoText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  scroll %.0f  step %d\n", ebiten.ActualTPS(), s.scrollSystem.Scroll(), s.coordinator.CurrentStep())
	fmt.Fprintf(&b, "active %s\n", s.coordinator.ActiveGroups())

	groups := s.assets.Story.Groups
	for i, st := range s.particleSystem.Stats() {
		if i >= len(groups) {
			break
		}
		fmt.Fprintf(&b, "%-16s %s/%s visible  %d faded\n", groups[i].Name, story.FormatCount(st.Visible), story.FormatCount(st.Total), st.Faded)
	}
	return b.String()
}
