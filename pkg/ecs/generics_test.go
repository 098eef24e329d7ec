package ecs

import (
	"reflect"
	"testing"
)

// TestGenericGetComponent 测试泛型组件获取
func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("应能获取 Position 组件")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("组件数据 = (%v, %v), 期望 (3, 4)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("未添加的组件不应被获取到")
	}
	if _, ok := GetComponent[*testPositionComponent](em, 999); ok {
		t.Error("不存在的实体不应返回组件")
	}

	if !HasComponent[*testPositionComponent](em, id) || HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent 泛型版本结果错误")
	}
}

// TestGenericQueries 测试泛型查询与结果顺序
func TestGenericQueries(t *testing.T) {
	em := NewEntityManager()

	var both []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testVelocityComponent{})
			both = append(both, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if !reflect.DeepEqual(got, both) {
		t.Errorf("GetEntitiesWith2 = %v, 期望按创建顺序 %v", got, both)
	}

	if n := len(GetEntitiesWith1[*testPositionComponent](em)); n != 50 {
		t.Errorf("GetEntitiesWith1 数量 = %d, 期望 50", n)
	}
}

// TestCountAndClear 测试实体计数与清空
func TestCountAndClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.CreateEntity()

	if em.Count() != 2 {
		t.Errorf("Count() = %d, 期望 2", em.Count())
	}

	em.Clear()
	if em.Count() != 0 {
		t.Errorf("Clear 后 Count() = %d, 期望 0", em.Count())
	}

	// ID 不会复用
	if id := em.CreateEntity(); id != 3 {
		t.Errorf("Clear 后新实体 ID = %d, 期望 3", id)
	}
}

// BenchmarkParticleQuery 粒子场规模下的查询开销
func BenchmarkParticleQuery(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 1400; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		if i%3 == 0 {
			em.AddComponent(id, &testVelocityComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	}
}
