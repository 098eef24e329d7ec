package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/embedded"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

// StoryAssets 场景启动所需的数据
type StoryAssets struct {
	Story *config.StoryConfig

	// Timeline 折线图数据，加载失败时为 nil（折线图不显示）
	Timeline []story.TimePoint

	// TimelineErr 折线图数据加载失败的原因
	TimelineErr error
}

// LoadStoryAssets 加载叙事配置和折线图数据
//
// 叙事配置加载失败返回错误；折线图数据加载失败只记录日志，
// 页面其余部分照常工作。
func LoadStoryAssets(cfg *config.AppConfig) (*StoryAssets, error) {
	storyCfg, err := config.LoadStoryConfig(cfg.StoryPath)
	if err != nil {
		return nil, fmt.Errorf("load story: %w", err)
	}
	log.Printf("[Story] loaded %d groups, %d steps from %s", len(storyCfg.Groups), len(storyCfg.Steps), cfg.StoryPath)

	assets := &StoryAssets{Story: storyCfg}
	assets.Timeline, assets.TimelineErr = loadTimeline(cfg.TimelinePath)
	if assets.TimelineErr != nil {
		log.Printf("[TrendChart] chart disabled: %v", assets.TimelineErr)
	} else {
		log.Printf("[TrendChart] loaded %d rows from %s", len(assets.Timeline), cfg.TimelinePath)
	}
	return assets, nil
}

func loadTimeline(path string) ([]story.TimePoint, error) {
	f, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open timeline %s: %w", path, err)
	}
	defer f.Close()

	points, err := story.ParseTimeline(f)
	if err != nil {
		return nil, fmt.Errorf("parse timeline %s: %w", path, err)
	}
	return points, nil
}

// NewRand 粒子生成用的随机源，seed 为 0 时使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
