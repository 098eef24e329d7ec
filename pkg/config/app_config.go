package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix 环境变量前缀，如 PAYGAP_WINDOW_WIDTH
const EnvPrefix = "PAYGAP_"

// ConfigPathEnv 指定配置文件路径的环境变量
const ConfigPathEnv = "PAYGAP_CONFIG"

// AppConfig 应用启动配置
//
// 加载顺序（后者覆盖前者）:
//  1. 默认值 (DefaultAppConfig)
//  2. YAML 配置文件（--config 或 PAYGAP_CONFIG）
//  3. 环境变量 PAYGAP_*
type AppConfig struct {
	// WindowWidth / WindowHeight 初始窗口尺寸
	WindowWidth  int `koanf:"window_width"`
	WindowHeight int `koanf:"window_height"`

	// Verbose 启用详细日志输出
	Verbose bool `koanf:"verbose"`

	// TimelinePath 折线图数据（CSV），data/ 下的路径从内嵌资源读取
	TimelinePath string `koanf:"timeline_path"`

	// StoryPath 叙事配置（YAML）
	StoryPath string `koanf:"story_path"`

	// ResizeDebounceMS 窗口尺寸变化后重建布局的去抖时间
	ResizeDebounceMS int `koanf:"resize_debounce_ms"`

	// TriggerOffset 触发线在视口中的位置比例
	TriggerOffset float64 `koanf:"trigger_offset"`

	// TPS 每秒更新次数，粒子运动按帧推进
	TPS int `koanf:"tps"`

	// Seed 粒子生成的随机种子，0 表示使用当前时间
	Seed int64 `koanf:"seed"`
}

// DefaultAppConfig 默认配置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		WindowWidth:      DefaultWindowWidth,
		WindowHeight:     DefaultWindowHeight,
		Verbose:          false,
		TimelinePath:     "data/timeline-data.csv",
		StoryPath:        "data/story.yaml",
		ResizeDebounceMS: 250,
		TriggerOffset:    0.5,
		TPS:              60,
		Seed:             0,
	}
}

// LoadAppConfig 加载应用配置
//
// 参数:
//   - path: 配置文件路径，为空时读取 PAYGAP_CONFIG，仍为空则跳过文件层
//
// 返回:
//   - *AppConfig: 合并后的配置
//   - error: 文件读取、解析或校验失败
func LoadAppConfig(path string) (*AppConfig, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load app config %s: %w", path, err)
		}
	}

	// PAYGAP_WINDOW_WIDTH -> window_width，保留下划线以匹配 koanf 标签
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := *DefaultAppConfig()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode app config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置有效性
func (c *AppConfig) Validate() error {
	if c.WindowWidth < MinPanelSize || c.WindowHeight < MinPanelSize {
		return fmt.Errorf("window size %dx%d is smaller than %d", c.WindowWidth, c.WindowHeight, MinPanelSize)
	}
	if c.TimelinePath == "" {
		return errors.New("timeline_path must not be empty")
	}
	if c.StoryPath == "" {
		return errors.New("story_path must not be empty")
	}
	if c.ResizeDebounceMS < 0 {
		return fmt.Errorf("resize_debounce_ms must not be negative, got %d", c.ResizeDebounceMS)
	}
	if c.TriggerOffset < 0 || c.TriggerOffset > 1 {
		return fmt.Errorf("trigger_offset must be within [0, 1], got %.2f", c.TriggerOffset)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// ResizeDebounce 去抖时间（秒）
func (c *AppConfig) ResizeDebounce() float64 {
	return float64(c.ResizeDebounceMS) / 1000
}
