package main

import (
	"path/filepath"
	"testing"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/config"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/story"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/utils"
)

// TestRespawnReusesEntityManager 重新生成粒子场时清空原有实体而不是叠加
func TestRespawnReusesEntityManager(t *testing.T) {
	cfg, err := config.LoadStoryConfig(filepath.Join("..", "..", "data", "story.yaml"))
	if err != nil {
		t.Fatalf("LoadStoryConfig 返回错误: %v", err)
	}
	fonts, err := utils.LoadFonts()
	if err != nil {
		t.Fatalf("LoadFonts 返回错误: %v", err)
	}

	g, err := NewParticleViewerGame(cfg, fonts, 1)
	if err != nil {
		t.Fatalf("NewParticleViewerGame 返回错误: %v", err)
	}
	em := g.entityManager
	want := story.FieldParticles(cfg.Groups, cfg.Baseline)
	if em.Count() != want {
		t.Fatalf("初始实体数量 = %d, 期望 %d", em.Count(), want)
	}

	g.enterStep(6)
	if err := g.respawn(); err != nil {
		t.Fatalf("respawn 返回错误: %v", err)
	}

	if g.entityManager != em {
		t.Error("respawn 应复用同一个 EntityManager")
	}
	if em.Count() != want {
		t.Errorf("respawn 后实体数量 = %d, 期望 %d", em.Count(), want)
	}
	if got := g.coordinator.ActiveGroups(); got != story.InitialActiveSet(cfg.Groups) {
		t.Errorf("respawn 后激活快照 = %s, 期望初始值", got)
	}
}
