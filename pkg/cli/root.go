// Package cli 命令行入口
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/app"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "paygap",
	Short: "Scrollytelling visualization of the gender and racial pay gap",
	Long: `Pay Gap Scrolly walks through four decades of earnings data: a trend chart
of women's earnings as a share of men's, followed by a particle field where
every dot is ten thousand dollars of lifetime earnings.

Run without a subcommand to open the interactive window.`,
	SilenceUsage: true,
	RunE:         runStory,
}

// Execute 运行命令行，SIGINT / SIGTERM 取消命令的 context
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default $"+config.ConfigPathEnv+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig 加载应用配置，--verbose 覆盖配置文件和环境变量
func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	cfg, err := config.LoadAppConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	app.ConfigureLogging(cfg.Verbose)
	return cfg, nil
}
