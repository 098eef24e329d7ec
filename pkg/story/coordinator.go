package story

import "log"

// ChartStyle 折线图在某个步骤的描边样式
type ChartStyle struct {
	Color string  `yaml:"color"`
	Width float64 `yaml:"width"`
}

// StepKind 步骤被映射到的行为
type StepKind int

const (
	// StepIgnored 步骤超出范围，不产生任何变化
	StepIgnored StepKind = iota
	// StepChart 折线图换色（步骤 0 到 len(styles)-1）
	StepChart
	// StepParticles 粒子分组激活（随后的 len(groups) 个步骤）
	StepParticles
)

// StepResult HandleStep 的结果
type StepResult struct {
	Kind   StepKind
	Style  ChartStyle // Kind == StepChart 时有效
	Active ActiveSet  // 处理后的激活快照（任何 Kind 都有效）
}

// Coordinator 滚动协调器
//
// 把单调递增的步骤下标映射为两类互不相交的行为：
//   - 步骤 [0, S)：折线图换色，S = len(styles)
//   - 步骤 [S, S+G)：粒子分组激活，G = 分组数量；
//     步骤 S+k 激活前 k+1 个分组，与之前的状态无关
//
// 默认配置下 S=3、G=4，即步骤 0-2 换色、步骤 3-6 依次激活 1、2、3、4 个分组。
// 回到折线图步骤不会撤销已激活的分组。
//
// 激活状态以不可变快照 ActiveSet 发布，HandleStep 只替换快照，
// 不修改已发布的值。
type Coordinator struct {
	styles     []ChartStyle
	groupCount int

	active ActiveSet
	style  int // 当前样式下标
	step   int // 最近处理的步骤，-1 表示尚未进入任何步骤
}

// NewCoordinator 创建滚动协调器
//
// 参数:
//   - styles: 折线图步骤样式，下标即步骤号
//   - groupCount: 粒子分组数量
//   - initial: 启动时的激活快照
func NewCoordinator(styles []ChartStyle, groupCount int, initial ActiveSet) *Coordinator {
	if groupCount > MaxGroups {
		groupCount = MaxGroups
	}
	return &Coordinator{
		styles:     styles,
		groupCount: groupCount,
		active:     initial,
		step:       -1,
	}
}

// StepCount 有效步骤总数
func (c *Coordinator) StepCount() int {
	return len(c.styles) + c.groupCount
}

// ActivationForStep 步骤对应的激活快照
// 仅对粒子步骤有效，第二个返回值为 false 表示该步骤不影响激活状态
func (c *Coordinator) ActivationForStep(step int) (ActiveSet, bool) {
	k := step - len(c.styles)
	if k < 0 || k >= c.groupCount {
		return 0, false
	}
	return FirstN(k + 1), true
}

// HandleStep 处理进入步骤事件
//
// 重复进入同一步骤会重新应用相同的状态，没有可观察的差异。
// 超出 [0, StepCount()) 的步骤被忽略。
func (c *Coordinator) HandleStep(step int) StepResult {
	switch {
	case step >= 0 && step < len(c.styles):
		c.style = step
		c.step = step
		return StepResult{Kind: StepChart, Style: c.styles[step], Active: c.active}

	case step >= len(c.styles) && step < c.StepCount():
		next, _ := c.ActivationForStep(step)
		if next != c.active {
			log.Printf("[Story] step %d: active groups %s -> %s", step, c.active, next)
		}
		c.active = next
		c.step = step
		return StepResult{Kind: StepParticles, Active: c.active}
	}

	log.Printf("[Story] ignoring out-of-range step %d", step)
	return StepResult{Kind: StepIgnored, Active: c.active}
}

// ActiveGroups 当前激活快照
func (c *Coordinator) ActiveGroups() ActiveSet {
	return c.active
}

// ChartStyle 当前折线图样式
func (c *Coordinator) ChartStyle() ChartStyle {
	if len(c.styles) == 0 {
		return ChartStyle{}
	}
	return c.styles[c.style]
}

// CurrentStep 最近处理的步骤，-1 表示尚未进入任何步骤
func (c *Coordinator) CurrentStep() int {
	return c.step
}

// InParticleSection 最近进入的步骤是否属于粒子部分
func (c *Coordinator) InParticleSection() bool {
	return c.step >= len(c.styles)
}
