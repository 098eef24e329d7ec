package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestLoadAppConfig(t *testing.T) {
	convey.Convey("Given the layered app config loader", t, func() {
		clearAppEnv()

		convey.Convey("When loading with defaults only", func() {
			cfg, err := config.LoadAppConfig("")

			convey.Convey("Then it should return the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.WindowWidth, convey.ShouldEqual, 1280)
				convey.So(cfg.WindowHeight, convey.ShouldEqual, 720)
				convey.So(cfg.TimelinePath, convey.ShouldEqual, "data/timeline-data.csv")
				convey.So(cfg.StoryPath, convey.ShouldEqual, "data/story.yaml")
				convey.So(cfg.ResizeDebounceMS, convey.ShouldEqual, 250)
				convey.So(cfg.ResizeDebounce(), convey.ShouldAlmostEqual, 0.25)
				convey.So(cfg.TriggerOffset, convey.ShouldEqual, 0.5)
				convey.So(cfg.Verbose, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading from a YAML file", func() {
			path := writeTempConfig(t, `
window_width: 1600
window_height: 900
timeline_path: /tmp/my-timeline.csv
trigger_offset: 0.4
`)
			cfg, err := config.LoadAppConfig(path)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.WindowWidth, convey.ShouldEqual, 1600)
				convey.So(cfg.WindowHeight, convey.ShouldEqual, 900)
				convey.So(cfg.TimelinePath, convey.ShouldEqual, "/tmp/my-timeline.csv")
				convey.So(cfg.TriggerOffset, convey.ShouldEqual, 0.4)
				convey.So(cfg.StoryPath, convey.ShouldEqual, "data/story.yaml")
			})
		})

		convey.Convey("When the file path comes from PAYGAP_CONFIG", func() {
			path := writeTempConfig(t, "resize_debounce_ms: 100\n")
			_ = os.Setenv("PAYGAP_CONFIG", path)
			defer clearAppEnv()

			cfg, err := config.LoadAppConfig("")

			convey.Convey("Then the file is used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.ResizeDebounceMS, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When environment variables are set", func() {
			path := writeTempConfig(t, "window_width: 1600\n")
			_ = os.Setenv("PAYGAP_WINDOW_WIDTH", "1024")
			_ = os.Setenv("PAYGAP_VERBOSE", "true")
			_ = os.Setenv("PAYGAP_SEED", "42")
			defer clearAppEnv()

			cfg, err := config.LoadAppConfig(path)

			convey.Convey("Then env overrides the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.WindowWidth, convey.ShouldEqual, 1024)
				convey.So(cfg.Verbose, convey.ShouldBeTrue)
				convey.So(cfg.Seed, convey.ShouldEqual, 42)
			})
		})

		convey.Convey("When the file does not exist", func() {
			_, err := config.LoadAppConfig(filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then an error is returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When a value is out of range", func() {
			path := writeTempConfig(t, "trigger_offset: 1.5\n")
			_, err := config.LoadAppConfig(path)

			convey.Convey("Then validation fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "trigger_offset")
			})
		})
	})
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paygap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func clearAppEnv() {
	for _, key := range []string{
		"PAYGAP_CONFIG", "PAYGAP_WINDOW_WIDTH", "PAYGAP_WINDOW_HEIGHT", "PAYGAP_VERBOSE",
		"PAYGAP_TIMELINE_PATH", "PAYGAP_STORY_PATH", "PAYGAP_RESIZE_DEBOUNCE_MS",
		"PAYGAP_TRIGGER_OFFSET", "PAYGAP_TPS", "PAYGAP_SEED",
	} {
		_ = os.Unsetenv(key)
	}
}
