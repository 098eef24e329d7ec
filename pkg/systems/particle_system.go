package systems

import (
	"math/rand"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/components"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/ecs"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/motion"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

// ActiveGroupsSource 提供当前的分组激活快照
// story.Coordinator 实现了该接口
type ActiveGroupsSource interface {
	ActiveGroups() story.ActiveSet
}

// ParticleSystem 推进粒子场的运动
//
// 每帧开始时读取一次激活快照，同一帧内所有粒子看到的激活状态一致。
// 不激活分组的粒子完全冻结（位置、速度、不透明度都不变）。
// 运动按"帧"推进，与显示刷新同步，dt 不参与积分。
//
// Follows ECS zero-coupling principle: communicates only through EntityManager.
type ParticleSystem struct {
	EntityManager *ecs.EntityManager

	groups  []story.Group
	physics config.PhysicsConfig
	source  ActiveGroupsSource
	rng     *rand.Rand

	width, height float64
	frames        int
}

// NewParticleSystem creates a new ParticleSystem instance.
//
// 参数:
//   - em: 粒子实体所在的 EntityManager
//   - groups: 分组配置（与 CreateParticleField 使用同一份）
//   - physics: 运动参数
//   - source: 激活快照来源
//   - rng: 水平抖动的随机源
func NewParticleSystem(em *ecs.EntityManager, groups []story.Group, physics config.PhysicsConfig, source ActiveGroupsSource, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		EntityManager: em,
		groups:        groups,
		physics:       physics,
		source:        source,
		rng:           rng,
	}
}

// SetCanvasSize 更新画布尺寸
// 吸引点、目标线和水平边界都随画布尺寸变化，粒子本身不重新生成
func (ps *ParticleSystem) SetCanvasSize(width, height float64) {
	ps.width = width
	ps.height = height
}

// CanvasSize 当前画布尺寸
func (ps *ParticleSystem) CanvasSize() (float64, float64) {
	return ps.width, ps.height
}

// Frames 已推进的帧数
func (ps *ParticleSystem) Frames() int {
	return ps.frames
}

// Update 推进一帧
func (ps *ParticleSystem) Update(dt float64) {
	if ps.width <= 0 || ps.height <= 0 {
		return
	}

	active := story.ActiveSet(0)
	if ps.source != nil {
		active = ps.source.ActiveGroups()
	}

	ps.updateConverging(active)
	ps.updateFalling(active)
	ps.frames++
}

// updateConverging 收敛粒子趋向吸引点
func (ps *ParticleSystem) updateConverging(active story.ActiveSet) {
	targetX := ps.width / 2
	targetY := ps.height * ps.physics.AnchorY

	entities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.ConvergingComponent,
	](ps.EntityManager)

	for _, id := range entities {
		p, ok := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)
		if !ok || !active.Has(p.Group) {
			continue
		}

		b := motion.StepConverging(p.Body, targetX, targetY, ps.physics.Converging)
		p.Body = motion.ClampX(b, ps.width)
	}
}

// updateFalling 损失粒子下落并在越过目标线后淡出
func (ps *ParticleSystem) updateFalling(active story.ActiveSet) {
	entities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.FallingComponent,
	](ps.EntityManager)

	for _, id := range entities {
		p, ok := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)
		if !ok || !active.Has(p.Group) {
			continue
		}
		falling, ok := ecs.GetComponent[*components.FallingComponent](ps.EntityManager, id)
		if !ok {
			continue
		}

		line := ps.height * falling.Line
		b := motion.StepFalling(p.Body, line, ps.physics.Falling, ps.rng.Float64())
		p.Body = motion.ClampX(b, ps.width)
	}
}

// GroupStats 分组内粒子统计，用于日志和快照导出
type GroupStats struct {
	Total   int
	Visible int // 不透明度不低于 MinVisibleAlpha 的粒子
	Faded   int // 已淡出到不可见的下落粒子
}

// Stats 按分组统计粒子
func (ps *ParticleSystem) Stats() []GroupStats {
	stats := make([]GroupStats, len(ps.groups))
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](ps.EntityManager) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)
		if p.Group < 0 || p.Group >= len(stats) {
			continue
		}
		s := &stats[p.Group]
		s.Total++
		if p.Body.Alpha >= ps.physics.MinVisibleAlpha {
			s.Visible++
		} else if ecs.HasComponent[*components.FallingComponent](ps.EntityManager, id) {
			s.Faded++
		}
	}
	return stats
}
