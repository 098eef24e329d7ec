package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/components"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/ecs"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
)

func testGroups() []story.Group {
	return []story.Group{
		{Name: "White Men BA", Color: "#10b981", ParticleCount: 389, TargetY: 0.25, Active: true},
		{Name: "White Women BA", Color: "#f59e0b", ParticleCount: 299, LossParticles: 90, TargetY: 0.65, FallAway: true},
		{Name: "Black Women", Color: "#ef4444", ParticleCount: 185, LossParticles: 204, TargetY: 0.75, FallAway: true},
		{Name: "Hispanic Women", Color: "#ec4899", ParticleCount: 166, LossParticles: 223, TargetY: 0.85, FallAway: true},
	}
}

// TestCreateParticleFieldCounts 粒子数量与分组配置一致
func TestCreateParticleFieldCounts(t *testing.T) {
	em := ecs.NewEntityManager()
	baseline := story.Baseline{Total: 3889600, ParticleCount: 389}
	rng := rand.New(rand.NewSource(1))

	counts, err := CreateParticleField(em, testGroups(), baseline, config.DefaultPhysics(), 800, 600, rng)
	if err != nil {
		t.Fatalf("CreateParticleField 返回错误: %v", err)
	}

	// 389 + (299+90) + (185+204) + (166+223)
	if counts.Total() != 1556 {
		t.Errorf("粒子总数 = %d, 期望 1556", counts.Total())
	}
	if counts.Falling != 517 {
		t.Errorf("下落粒子数 = %d, 期望 517", counts.Falling)
	}
	if em.Count() != counts.Total() {
		t.Errorf("实体数量 = %d, 期望 %d", em.Count(), counts.Total())
	}

	perGroup := map[int]int{}
	falling := map[int]int{}
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		perGroup[p.Group]++
		if ecs.HasComponent[*components.FallingComponent](em, id) {
			falling[p.Group]++
			if ecs.HasComponent[*components.ConvergingComponent](em, id) {
				t.Fatal("粒子不能同时处于两种运动模式")
			}
		}
	}

	expected := map[int]int{0: 389, 1: 389, 2: 389, 3: 389}
	for g, n := range expected {
		if perGroup[g] != n {
			t.Errorf("分组 %d 粒子数 = %d, 期望 %d", g, perGroup[g], n)
		}
	}
	if falling[0] != 0 || falling[1] != 90 || falling[2] != 204 || falling[3] != 223 {
		t.Errorf("各分组下落粒子 = %v", falling)
	}
}

// TestCreateParticleFieldSpawn 出生位置、速度、半径、不透明度
func TestCreateParticleFieldSpawn(t *testing.T) {
	em := ecs.NewEntityManager()
	physics := config.DefaultPhysics()
	rng := rand.New(rand.NewSource(7))

	if _, err := CreateParticleField(em, testGroups(), story.Baseline{ParticleCount: 389}, physics, 1000, 800, rng); err != nil {
		t.Fatalf("CreateParticleField 返回错误: %v", err)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		if math.Abs(p.Body.X-500) > 60 || math.Abs(p.Body.Y-200) > 60 {
			t.Fatalf("粒子 %d 出生位置 (%.1f, %.1f) 超出 (500, 200) ± 60", id, p.Body.X, p.Body.Y)
		}
		if p.Body.VX != 0 || p.Body.VY != 0 {
			t.Fatalf("粒子 %d 初速度应为 0", id)
		}
		if p.Radius != 3 || p.Body.Alpha != 0.85 {
			t.Fatalf("粒子 %d 半径/不透明度 = %v/%v, 期望 3/0.85", id, p.Radius, p.Body.Alpha)
		}
	}
}

// TestCreateParticleFieldNonFallingLoss 非 fallAway 分组的损失粒子按收敛模式创建
func TestCreateParticleFieldNonFallingLoss(t *testing.T) {
	em := ecs.NewEntityManager()
	groups := []story.Group{
		{Name: "Base", Color: "#10b981", ParticleCount: 2},
		{Name: "Steady", Color: "#f59e0b", ParticleCount: 3, LossParticles: 4},
	}

	counts, err := CreateParticleField(em, groups, story.Baseline{ParticleCount: 2}, config.DefaultPhysics(), 100, 100, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("CreateParticleField 返回错误: %v", err)
	}
	if counts.Converging != 9 || counts.Falling != 0 {
		t.Errorf("counts = %+v, 期望 9 个收敛粒子", counts)
	}
	if want := story.FieldParticles(groups, story.Baseline{ParticleCount: 2}); counts.Total() != want {
		t.Errorf("counts.Total() = %d, FieldParticles = %d", counts.Total(), want)
	}
}

// TestCreateParticleFieldErrors 参数错误
func TestCreateParticleFieldErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name          string
		groups        []story.Group
		width, height float64
	}{
		{"没有分组", nil, 800, 600},
		{"画布宽度为 0", testGroups(), 0, 600},
		{"画布高度为负", testGroups(), 800, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			if _, err := CreateParticleField(em, tt.groups, story.Baseline{ParticleCount: 1}, config.DefaultPhysics(), tt.width, tt.height, rng); err == nil {
				t.Error("期望返回错误")
			}
			if em.Count() != 0 {
				t.Errorf("出错时不应创建实体，实际 %d 个", em.Count())
			}
		})
	}
}
