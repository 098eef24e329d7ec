package entities

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/components"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/ecs"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/motion"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

// FieldCounts 粒子场创建结果统计
type FieldCounts struct {
	Converging int
	Falling    int
}

// Total 粒子总数
func (c FieldCounts) Total() int {
	return c.Converging + c.Falling
}

// CreateParticleField 为所有分组创建粒子实体
//
// Parameters:
//   - em: EntityManager instance for creating entities
//   - groups: 分组配置，下标即分组编号
//   - baseline: 基线配置，分组 0 按 baseline.ParticleCount 创建粒子
//   - physics: 生成位置、半径、初始不透明度
//   - width, height: 画布尺寸（像素）
//   - rng: 随机源，导出快照时使用固定种子
//
// 每个粒子出生在 (width/2, height·anchorY) 附近 ±spawnSpread/2 的正方形内，初速度为 0。
// 分组 0 只有收敛粒子；其他分组创建 particleCount 个收敛粒子和 lossParticles 个损失粒子，
// 损失粒子只有在 fallAway 分组中才下落，否则与收敛粒子行为相同。
// 粒子数量在创建后不再变化。
//
// Example:
//
//	counts, err := CreateParticleField(em, cfg.Groups, cfg.Baseline, cfg.Physics, 1280, 720, rng)
func CreateParticleField(em *ecs.EntityManager, groups []story.Group, baseline story.Baseline, physics config.PhysicsConfig, width, height float64, rng *rand.Rand) (FieldCounts, error) {
	var counts FieldCounts
	if len(groups) == 0 {
		return counts, fmt.Errorf("particle field needs at least one group")
	}
	if width <= 0 || height <= 0 {
		return counts, fmt.Errorf("invalid canvas size %.0fx%.0f", width, height)
	}

	startX := width / 2
	startY := height * physics.AnchorY

	for i, group := range groups {
		converging := group.ParticleCount
		falling := group.LossParticles
		if i == 0 {
			converging = baseline.ParticleCount
			falling = 0
		}

		for n := 0; n < converging; n++ {
			spawnParticle(em, i, physics, startX, startY, rng, nil)
			counts.Converging++
		}
		for n := 0; n < falling; n++ {
			if group.FallAway {
				spawnParticle(em, i, physics, startX, startY, rng, &components.FallingComponent{Line: group.TargetY})
				counts.Falling++
			} else {
				spawnParticle(em, i, physics, startX, startY, rng, nil)
				counts.Converging++
			}
		}
	}

	log.Printf("[ParticleSystem] created %d particles (%d converging, %d falling) for %d groups",
		counts.Total(), counts.Converging, counts.Falling, len(groups))
	return counts, nil
}

// spawnParticle 创建单个粒子
// falling 为 nil 时粒子处于收敛模式
func spawnParticle(em *ecs.EntityManager, group int, physics config.PhysicsConfig, startX, startY float64, rng *rand.Rand, falling *components.FallingComponent) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ParticleComponent{
		Body: motion.Body{
			X:     startX + (rng.Float64()-0.5)*physics.SpawnSpread,
			Y:     startY + (rng.Float64()-0.5)*physics.SpawnSpread,
			Alpha: physics.Alpha,
		},
		Radius: physics.Radius,
		Group:  group,
	})

	if falling != nil {
		em.AddComponent(id, falling)
	} else {
		em.AddComponent(id, &components.ConvergingComponent{})
	}
	return id
}
