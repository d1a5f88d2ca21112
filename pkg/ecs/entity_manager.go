package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 组件按类型分表存储（ComponentType -> EntityID -> Component），
// 查询时从最小的组件表开始过滤，结果按 EntityID 升序返回，保证每个 tick 的遍历顺序稳定。
type EntityManager struct {
	nextID uint64
	// 存活实体集合
	alive map[EntityID]struct{}
	// 组件表: ComponentType -> EntityID -> Component实例
	stores map[reflect.Type]map[EntityID]any
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1, // ID从1开始,0保留为无效ID
		alive:  make(map[EntityID]struct{}),
		stores: make(map[reflect.Type]map[EntityID]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.alive[id] = struct{}{}
	return id
}

// IsAlive 检查实体是否存在
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, ok := em.alive[id]
	return ok
}

// EntityCount 返回当前存活实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.alive)
}

// AddComponent 为实体添加组件，同类型组件会被覆盖
// 对不存在的实体调用时静默忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if !em.IsAlive(id) {
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

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if store, ok := em.stores[componentType]; ok {
		delete(store, id)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	store, ok := em.stores[componentType]
	if !ok {
		return nil, false
	}
	comp, found := store[id]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponent(id, componentType)
	return found
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（升序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	if len(componentTypes) == 0 {
		return []EntityID{}
	}

	// 从最小的组件表开始遍历
	stores := make([]map[EntityID]any, 0, len(componentTypes))
	for _, ct := range componentTypes {
		store, ok := em.stores[ct]
		if !ok || len(store) == 0 {
			return []EntityID{}
		}
		stores = append(stores, store)
	}
	slices.SortFunc(stores, func(a, b map[EntityID]any) int {
		return len(a) - len(b)
	})

	result := make([]EntityID, 0, len(stores[0]))
	for id := range stores[0] {
		hasAll := true
		for _, store := range stores[1:] {
			if _, found := store[id]; !found {
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
