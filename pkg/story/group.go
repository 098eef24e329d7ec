package story

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxGroups ActiveSet 能表示的最大分组数
const MaxGroups = 64

// Group 一个人群分组（共享颜色、目标位置和激活标记）
//
// 配置文件位置: data/story.yaml 的 groups 段
type Group struct {
	// Name 分组名称，如 "Black Women"
	Name string `yaml:"name"`

	// Color 十六进制颜色，如 "#ef4444"
	Color string `yaml:"color"`

	// Earnings 40 年职业生涯总收入（美元）
	Earnings float64 `yaml:"earnings"`

	// ParticleCount 收敛粒子数量（每个粒子约代表 1 万美元）
	ParticleCount int `yaml:"particleCount"`

	// Loss 相对基线损失的收入（美元）
	Loss float64 `yaml:"loss"`

	// LossParticles 下落粒子数量，仅 FallAway 分组有效
	LossParticles int `yaml:"lossParticles"`

	// TargetY 目标线位置，画布高度的比例 (0..1)
	TargetY float64 `yaml:"targetY"`

	// FallAway 损失粒子是否向下坠落
	FallAway bool `yaml:"fallAway"`

	// Active 启动时是否处于激活状态
	Active bool `yaml:"active"`
}

// TotalParticles 分组在启动时创建的粒子总数
// 非 FallAway 分组的损失粒子同样会创建，只是按收敛模式运动
func (g Group) TotalParticles() int {
	return g.ParticleCount + g.LossParticles
}

// FieldParticles 整个粒子场在启动时创建的粒子总数
// 分组 0 只创建 baseline.ParticleCount 个粒子
func FieldParticles(groups []Group, baseline Baseline) int {
	total := 0
	for i, g := range groups {
		if i == 0 {
			total += baseline.ParticleCount
			continue
		}
		total += g.TotalParticles()
	}
	return total
}

// Baseline 基线（白人男性本科学历职业生涯收入）
type Baseline struct {
	Total         float64 `yaml:"total"`
	ParticleCount int     `yaml:"particleCount"`
	Caption       string  `yaml:"caption"`
}

// ActiveSet 激活分组的不可变快照
//
// 第 i 位为 1 表示第 i 个分组处于激活状态。
// 由 Coordinator 在进入步骤时重新计算，粒子系统每帧读取一次。
type ActiveSet uint64

// NewActiveSet 用给定的分组下标创建快照
// 超出 [0, MaxGroups) 的下标被忽略
func NewActiveSet(indices ...int) ActiveSet {
	var s ActiveSet
	for _, i := range indices {
		s = s.With(i)
	}
	return s
}

// FirstN 返回前 n 个分组全部激活的快照
func FirstN(n int) ActiveSet {
	if n <= 0 {
		return 0
	}
	if n >= MaxGroups {
		return ^ActiveSet(0)
	}
	return ActiveSet(1)<<uint(n) - 1
}

// InitialActiveSet 根据配置中的 Active 标记构建启动快照
func InitialActiveSet(groups []Group) ActiveSet {
	var s ActiveSet
	for i, g := range groups {
		if g.Active {
			s = s.With(i)
		}
	}
	return s
}

// Has 第 i 个分组是否激活
func (s ActiveSet) Has(i int) bool {
	if i < 0 || i >= MaxGroups {
		return false
	}
	return s&(1<<uint(i)) != 0
}

// With 返回额外激活第 i 个分组后的新快照
func (s ActiveSet) With(i int) ActiveSet {
	if i < 0 || i >= MaxGroups {
		return s
	}
	return s | 1<<uint(i)
}

// Len 激活分组数量
func (s ActiveSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// SubsetOf s 中的每个分组是否都在 o 中激活
func (s ActiveSet) SubsetOf(o ActiveSet) bool {
	return s&^o == 0
}

// Indices 按升序返回激活分组的下标
func (s ActiveSet) Indices() []int {
	indices := make([]int, 0, s.Len())
	for i := 0; i < MaxGroups; i++ {
		if s.Has(i) {
			indices = append(indices, i)
		}
	}
	return indices
}

// String 形如 "{0,1,2}"
func (s ActiveSet) String() string {
	parts := make([]string, 0, s.Len())
	for _, i := range s.Indices() {
		parts = append(parts, strconv.Itoa(i))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// LossLabel 下落分组的损失标签
type LossLabel struct {
	Group   int
	Name    string
	Color   string
	Text    string  // 如 "-$0.90M Lost"
	TargetY float64 // 目标线位置（画布高度比例）
}

// LossLabels 当前应显示的损失标签
// 只有激活且 FallAway 的分组才有标签，按分组顺序返回
func LossLabels(groups []Group, active ActiveSet) []LossLabel {
	var labels []LossLabel
	for i, g := range groups {
		if !active.Has(i) || !g.FallAway {
			continue
		}
		labels = append(labels, LossLabel{
			Group:   i,
			Name:    g.Name,
			Color:   g.Color,
			Text:    FormatLoss(g.Loss),
			TargetY: g.TargetY,
		})
	}
	return labels
}
