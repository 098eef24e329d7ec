// Package ecs 最小化的实体-组件存储
//
// 粒子场中的每个粒子都是一个实体，运动模式由挂载的组件类型区分。
// 系统通过 GetEntitiesWith / 泛型查询函数按组件组合遍历实体。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 组件按类型分表存储：查询时从最小的表开始遍历，
// 粒子场中"所有粒子"和"下落粒子"两类查询都只扫描相关的实体。
type EntityManager struct {
	nextID EntityID
	// 存活实体集合
	entities map[EntityID]struct{}
	// 组件表: ComponentType -> EntityID -> Component实例
	stores map[reflect.Type]map[EntityID]any
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:   1,
		entities: make(map[EntityID]struct{}),
		stores:   make(map[reflect.Type]map[EntityID]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID，ID 不会复用
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.entities[id] = struct{}{}
	return id
}

// AddComponent 为实体添加组件，同类型的组件会被替换
// 实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if _, ok := em.entities[id]; !ok {
		return
	}
	componentType := reflect.TypeOf(component)
	store, ok := em.stores[componentType]
	if !ok {
		store = make(map[EntityID]any)
		em.stores[componentType] = store
	}
	store[id] = component
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, found := em.stores[componentType][id]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.stores[componentType][id]
	return found
}

// Count 当前实体数量
func (em *EntityManager) Count() int {
	return len(em.entities)
}

// Clear 删除所有实体，ID 计数继续递增
// 粒子场只整体重建，不单独删除粒子
func (em *EntityManager) Clear() {
	clear(em.entities)
	clear(em.stores)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表，为空时返回全部实体
// 返回: []EntityID - 满足条件的实体ID列表，按 ID 升序（即创建顺序）
//
// 结果有序，绘制时粒子的叠放顺序每帧保持一致。
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	var result []EntityID
	if len(componentTypes) == 0 {
		result = make([]EntityID, 0, len(em.entities))
		for id := range em.entities {
			result = append(result, id)
		}
		slices.Sort(result)
		return result
	}

	// 从最小的组件表开始
	smallest := em.stores[componentTypes[0]]
	for _, ct := range componentTypes[1:] {
		if len(em.stores[ct]) < len(smallest) {
			smallest = em.stores[ct]
		}
	}

	result = make([]EntityID, 0, len(smallest))
	for id := range smallest {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := em.stores[ct][id]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	slices.Sort(result)
	return result
}
