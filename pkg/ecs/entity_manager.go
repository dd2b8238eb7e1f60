// Package ecs 提供一个基于反射的轻量实体-组件管理器
package ecs

import "reflect"

// EntityID 是实体的唯一标识符
// ID 单调递增且永不复用，实体销毁后其 ID 不会再指向任何实体
type EntityID uint64

// DestroyHook 在实体被真正删除时调用（RemoveMarkedEntities 阶段）
// 用于让外部索引（如碰撞注册表）及时清理对已销毁实体的引用
type DestroyHook func(id EntityID)

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	// 实体删除回调
	destroyHooks []DestroyHook
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除
// 实际删除发生在帧末的 RemoveMarkedEntities，删除时触发销毁回调
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddDestroyHook 注册实体删除回调
// 回调在实体被真正删除时按注册顺序调用
func (em *EntityManager) AddDestroyHook(hook DestroyHook) {
	em.destroyHooks = append(em.destroyHooks, hook)
}

// Exists 检查实体是否仍然存在（未被删除）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体，并触发销毁回调
// 回调中可以继续标记其他实体（级联销毁），同一次清理内一并处理
func (em *EntityManager) RemoveMarkedEntities() {
	for i := 0; i < len(em.entitiesToDestroy); i++ {
		id := em.entitiesToDestroy[i]
		if _, exists := em.components[id]; !exists {
			continue // 重复标记
		}
		delete(em.components, id)
		for _, hook := range em.destroyHooks {
			hook(id)
		}
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}
