package export

import (
	"errors"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/chart"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

// ErrNoTimeline 没有可导出的折线图数据
var ErrNoTimeline = errors.New("timeline has no data points")

// ChartSVG 完全展开状态下的折线图 SVG
func ChartSVG(points []story.TimePoint, opts chart.Options, style story.ChartStyle, width, height float64) (string, error) {
	if len(points) == 0 {
		return "", ErrNoTimeline
	}
	layout := chart.Build(points, width, height, opts)
	logf("chart %.0fx%.0f, %d points, annotation=%v", width, height, len(points), layout.Annotation != nil)
	return chart.GenerateSVG(layout, style), nil
}
