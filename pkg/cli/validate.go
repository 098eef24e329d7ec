package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/scenes"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the story config and timeline data",
	Long: `Loads the story config and the timeline CSV the same way the window does and
reports what was found. Unlike the window, a broken timeline is an error here.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	assets, err := scenes.LoadStoryAssets(cfg)
	if err != nil {
		fmt.Fprintf(out, "❌ %s: %v\n", cfg.StoryPath, err)
		return err
	}
	s := assets.Story
	particles := story.FieldParticles(s.Groups, s.Baseline)
	fmt.Fprintf(out, "✅ %s: %d groups, %s particles, %d steps, %d chart styles\n",
		cfg.StoryPath, len(s.Groups), story.FormatCount(particles), len(s.Steps), len(s.Chart.Styles))

	if assets.TimelineErr != nil {
		fmt.Fprintf(out, "❌ %s: %v\n", cfg.TimelinePath, assets.TimelineErr)
		return assets.TimelineErr
	}
	if len(assets.Timeline) == 0 {
		fmt.Fprintf(out, "⚠️  %s: no rows, chart will be empty\n", cfg.TimelinePath)
		return nil
	}
	first, last := assets.Timeline[0], assets.Timeline[len(assets.Timeline)-1]
	fmt.Fprintf(out, "✅ %s: %d rows, %d %s -> %d %s\n", cfg.TimelinePath, len(assets.Timeline),
		first.Year, story.FormatPercent(first.Ratio), last.Year, story.FormatPercent(last.Ratio))

	if year := s.Chart.Annotation.Year; year != 0 {
		if _, err := story.FindYear(assets.Timeline, year); errors.Is(err, story.ErrYearNotFound) {
			fmt.Fprintf(out, "⚠️  annotation year %d not in timeline, annotation will be hidden\n", year)
		} else {
			fmt.Fprintf(out, "✅ annotation year %d found\n", year)
		}
	}
	return nil
}
