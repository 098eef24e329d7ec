package cli

import (
	"github.com/spf13/cobra"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/app"
)

const windowTitle = "The Price of Inequality"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive scrollytelling window",
	Long: `Opens the story window. Scroll with the mouse wheel, arrow keys, PageUp/PageDown,
Space, Home and End. F11 toggles fullscreen, F3 shows particle statistics.`,
	RunE: runStory,
}

func init() {
	runCmd.Flags().Int("width", 0, "initial window width (overrides config)")
	runCmd.Flags().Int("height", 0, "initial window height (overrides config)")
	rootCmd.AddCommand(runCmd)
}

func runStory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("width"); f != nil && f.Changed {
		cfg.WindowWidth, _ = cmd.Flags().GetInt("width")
	}
	if f := cmd.Flags().Lookup("height"); f != nil && f.Changed {
		cfg.WindowHeight, _ = cmd.Flags().GetInt("height")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a, err := app.NewApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return a.Run(windowTitle)
}
