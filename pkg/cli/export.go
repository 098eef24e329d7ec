package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/export"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/scenes"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the visuals to SVG or PNG without opening a window",
	Long: `Renders the trend chart or a particle field snapshot to a file.
PNG output is rasterized with a headless Chrome, which must be installed.`,
}

var exportChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Export the fully revealed trend chart",
	RunE:  runExportChart,
}

var exportParticlesCmd = &cobra.Command{
	Use:   "particles",
	Short: "Simulate the particle field and export a snapshot",
	Long: `Runs the particle simulation headlessly: steps 0..--step are entered in order,
then --frames frames are simulated before the snapshot is taken.`,
	RunE: runExportParticles,
}

func init() {
	for _, c := range []*cobra.Command{exportChartCmd, exportParticlesCmd} {
		c.Flags().String("format", "svg", "output format: svg or png")
		c.Flags().StringP("out", "o", "", "output file, - for stdout (default <name>.<format>)")
	}
	exportChartCmd.Flags().Float64("width", 960, "chart width in pixels")
	exportChartCmd.Flags().Float64("height", 540, "chart height in pixels")
	exportChartCmd.Flags().Int("step", 0, "chart step whose line style is used")

	exportParticlesCmd.Flags().Float64("width", 800, "canvas width in pixels")
	exportParticlesCmd.Flags().Float64("height", 600, "canvas height in pixels")
	exportParticlesCmd.Flags().Int("step", 6, "last step entered before simulating")
	exportParticlesCmd.Flags().Int("frames", 600, "frames to simulate")
	exportParticlesCmd.Flags().Int64("seed", 0, "random seed (overrides config, 0 uses config)")

	exportCmd.AddCommand(exportChartCmd, exportParticlesCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, out, err := outputFlags(cmd, "trend-chart")
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")
	step, _ := cmd.Flags().GetInt("step")

	assets, err := scenes.LoadStoryAssets(cfg)
	if err != nil {
		return err
	}
	if assets.TimelineErr != nil {
		return fmt.Errorf("chart unavailable: %w", assets.TimelineErr)
	}

	svg, err := export.ChartSVG(assets.Timeline, assets.Story.ChartOptions(), chartStyle(assets.Story, step), width, height)
	if err != nil {
		return err
	}
	return writeOutput(cmd, svg, format, out)
}

// chartStyle 步骤对应的折线图样式，超出范围时使用初始样式
func chartStyle(cfg *config.StoryConfig, step int) story.ChartStyle {
	if step >= 0 && step < len(cfg.Chart.Styles) {
		return cfg.Chart.Styles[step]
	}
	return cfg.InitialChartStyle()
}

func runExportParticles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, out, err := outputFlags(cmd, "particles")
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")
	step, _ := cmd.Flags().GetInt("step")
	frames, _ := cmd.Flags().GetInt("frames")
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.Seed = seed
	}

	assets, err := scenes.LoadStoryAssets(cfg)
	if err != nil {
		return err
	}

	reporter := NewReporter(cmd.ErrOrStderr())
	reporter.Start(frames, "Simulating particles")
	snap, err := export.SimulateParticles(cmd.Context(), assets.Story, export.SimulationOptions{
		Width:    width,
		Height:   height,
		Step:     step,
		Frames:   frames,
		TPS:      cfg.TPS,
		Rand:     scenes.NewRand(cfg.Seed),
		Progress: func(done, total int) { reporter.Update(done) },
	})
	reporter.Finish()
	if err != nil {
		return err
	}

	for i, st := range snap.Stats {
		if i < len(assets.Story.Groups) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%-16s %s visible, %s faded\n",
				assets.Story.Groups[i].Name, story.FormatCount(st.Visible), story.FormatCount(st.Faded))
		}
	}
	return writeOutput(cmd, snap.SVG(), format, out)
}

// outputFlags 解析 --format 和 --out
func outputFlags(cmd *cobra.Command, name string) (export.Format, string, error) {
	formatName, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return "", "", err
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = name + "." + string(format)
	}
	return format, out, nil
}

// writeOutput 写出文件或标准输出
func writeOutput(cmd *cobra.Command, svg string, format export.Format, out string) error {
	var buf bytes.Buffer
	if err := export.Write(cmd.Context(), svg, format, &buf); err != nil {
		return err
	}

	if out == "-" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}
	size := buf.Len()
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s)\n", out, humanize.Bytes(uint64(size)))
	return nil
}
