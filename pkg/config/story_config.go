package config

import (
	"errors"
	"fmt"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/chart"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/embedded"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/motion"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/utils"
	"gopkg.in/yaml.v3"
)

// StoryConfig 叙事配置
//
// 包含粒子分组、折线图样式、物理参数、引言统计和叙事卡片。
//
// 配置文件位置: data/story.yaml
type StoryConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`

	// Baseline 基线收入（分组 0 的粒子数量取自这里）
	Baseline story.Baseline `yaml:"baseline"`

	// Groups 粒子分组，顺序即激活顺序
	Groups []story.Group `yaml:"groups"`

	// Chart 折线图配置
	Chart ChartConfig `yaml:"chart"`

	// Physics 粒子运动参数
	Physics PhysicsConfig `yaml:"physics"`

	// Summary 引言统计卡片，rows 为空时不显示
	Summary story.SummaryConfig `yaml:"summary"`

	// Steps 叙事卡片
	Steps []story.Step `yaml:"steps"`
}

// ChartConfig 折线图配置
type ChartConfig struct {
	Title   string     `yaml:"title"`
	XLabel  string     `yaml:"xLabel"`
	YLabel  string     `yaml:"yLabel"`
	XDomain [2]float64 `yaml:"xDomain"`
	YDomain [2]float64 `yaml:"yDomain"`

	// Styles 步骤 0..len-1 的描边样式
	Styles []story.ChartStyle `yaml:"styles"`

	// Annotation 年份注释，year 为 0 时不标注
	Annotation AnnotationConfig `yaml:"annotation"`
}

// AnnotationConfig 年份注释
type AnnotationConfig struct {
	Year       int     `yaml:"year"`
	LabelRatio float64 `yaml:"labelRatio"`
	Text       string  `yaml:"text"`
}

// PhysicsConfig 粒子运动与生成参数
type PhysicsConfig struct {
	Converging motion.ConvergingProfile `yaml:"converging"`
	Falling    motion.FallingProfile    `yaml:"falling"`

	// AnchorY 吸引点和出生点的 Y 位置（画布高度比例）
	AnchorY float64 `yaml:"anchorY"`

	// SpawnSpread 出生位置抖动范围（像素，正方形边长）
	SpawnSpread float64 `yaml:"spawnSpread"`

	// Radius 粒子半径
	Radius float64 `yaml:"radius"`

	// Alpha 初始不透明度
	Alpha float64 `yaml:"alpha"`

	// MinVisibleAlpha 低于该不透明度的粒子不绘制
	MinVisibleAlpha float64 `yaml:"minVisibleAlpha"`
}

// DefaultPhysics 默认粒子参数
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		Converging:      motion.DefaultConverging(),
		Falling:         motion.DefaultFalling(),
		AnchorY:         0.25,
		SpawnSpread:     120,
		Radius:          3,
		Alpha:           0.85,
		MinVisibleAlpha: 0.05,
	}
}

// LoadStoryConfig 加载叙事配置
//
// 参数:
//   - path: 配置文件路径（如 "data/story.yaml"），data/ 下的路径从内嵌资源读取
//
// 返回:
//   - *StoryConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadStoryConfig(path string) (*StoryConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read story config %s: %w", path, err)
	}
	return ParseStoryConfig(data)
}

// ParseStoryConfig 解析 YAML 格式的叙事配置
// 未给出的物理参数使用默认值
func ParseStoryConfig(data []byte) (*StoryConfig, error) {
	config := StoryConfig{Physics: DefaultPhysics()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse story config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid story config: %w", err)
	}
	return &config, nil
}

// Validate 验证配置有效性
//
// 检查:
//   - 至少一个分组，不超过 story.MaxGroups
//   - 分组颜色可以解析，targetY 在 [0, 1] 内，粒子数量非负
//   - 基线粒子数量为正
//   - 折线图样式颜色可以解析，宽度为正，配置了的坐标范围必须递增（省略时使用默认值）
//   - 阻尼和淡出系数在 (0, 1] 内
func (c *StoryConfig) Validate() error {
	if len(c.Groups) == 0 {
		return errors.New("at least one group is required")
	}
	if len(c.Groups) > story.MaxGroups {
		return fmt.Errorf("too many groups: %d > %d", len(c.Groups), story.MaxGroups)
	}
	if c.Baseline.ParticleCount <= 0 {
		return fmt.Errorf("baseline particleCount must be positive, got %d", c.Baseline.ParticleCount)
	}

	for i, g := range c.Groups {
		if g.Name == "" {
			return fmt.Errorf("group %d: name is required", i)
		}
		if _, err := utils.ParseHexColor(g.Color); err != nil {
			return fmt.Errorf("group %q: %w", g.Name, err)
		}
		if g.TargetY < 0 || g.TargetY > 1 {
			return fmt.Errorf("group %q: targetY must be within [0, 1], got %.2f", g.Name, g.TargetY)
		}
		if g.ParticleCount < 0 || g.LossParticles < 0 {
			return fmt.Errorf("group %q: particle counts must not be negative", g.Name)
		}
	}

	for i, s := range c.Chart.Styles {
		if _, err := utils.ParseHexColor(s.Color); err != nil {
			return fmt.Errorf("chart style %d: %w", i, err)
		}
		if s.Width <= 0 {
			return fmt.Errorf("chart style %d: width must be positive, got %.1f", i, s.Width)
		}
	}
	for _, d := range []struct {
		name   string
		domain [2]float64
	}{
		{"xDomain", c.Chart.XDomain},
		{"yDomain", c.Chart.YDomain},
	} {
		if domainSet(d.domain) && d.domain[0] >= d.domain[1] {
			return fmt.Errorf("chart %s must be increasing, got %v", d.name, d.domain)
		}
	}

	p := c.Physics
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"converging.damping", p.Converging.Damping},
		{"falling.verticalDamping", p.Falling.VerticalDamping},
		{"falling.horizontalDamping", p.Falling.HorizontalDamping},
		{"falling.fadeRate", p.Falling.FadeRate},
	} {
		if f.value <= 0 || f.value > 1 {
			return fmt.Errorf("physics %s must be within (0, 1], got %v", f.name, f.value)
		}
	}
	if p.AnchorY < 0 || p.AnchorY > 1 {
		return fmt.Errorf("physics anchorY must be within [0, 1], got %.2f", p.AnchorY)
	}
	return nil
}

// ChartOptions 折线图布局选项，未配置的标题和坐标范围使用默认值
func (c *StoryConfig) ChartOptions() chart.Options {
	opts := chart.DefaultOptions()
	if c.Chart.Title != "" {
		opts.Title = c.Chart.Title
	}
	if c.Chart.XLabel != "" {
		opts.XLabel = c.Chart.XLabel
	}
	if c.Chart.YLabel != "" {
		opts.YLabel = c.Chart.YLabel
	}
	if domainSet(c.Chart.XDomain) {
		opts.XDomain = c.Chart.XDomain
	}
	if domainSet(c.Chart.YDomain) {
		opts.YDomain = c.Chart.YDomain
	}
	opts.AnnotationYear = c.Chart.Annotation.Year
	opts.AnnotationRatio = c.Chart.Annotation.LabelRatio
	opts.AnnotationText = c.Chart.Annotation.Text
	return opts
}

// domainSet 坐标范围是否在配置文件中给出
func domainSet(d [2]float64) bool {
	return d != [2]float64{}
}

// InitialChartStyle 启动时的折线图样式（步骤 0）
func (c *StoryConfig) InitialChartStyle() story.ChartStyle {
	if len(c.Chart.Styles) == 0 {
		return story.ChartStyle{Color: "#667eea", Width: 3}
	}
	return c.Chart.Styles[0]
}
