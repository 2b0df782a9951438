// Package ecs 实现游戏使用的实体-组件存储
//
// 实体只是一个 ID，数据全部保存在组件里，逻辑放在 systems 包中。
// 查询结果按 ID 升序返回，创建顺序即绘制和碰撞检测的顺序。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 表示无效实体
type EntityID uint64

// componentSet 一个实体拥有的组件，按组件的动态类型索引
type componentSet map[reflect.Type]any

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID   EntityID
	entities map[EntityID]componentSet
	doomed   []EntityID // 等待 RemoveMarkedEntities 清理的实体
}

// NewEntityManager 创建一个空的 EntityManager
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:   1,
		entities: make(map[EntityID]componentSet),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.entities[id] = make(componentSet)
	return id
}

// DestroyEntity 标记实体待删除
// 同一帧内的查询仍能看到该实体，直到 RemoveMarkedEntities 被调用
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.doomed = append(em.doomed, id)
}

// IsAlive 检查实体是否存在（未被清理）
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, ok := em.entities[id]
	return ok
}

// AddComponent 为实体添加组件，同类型组件会被替换
// 实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if set, ok := em.entities[id]; ok {
		set[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
// 用于让实体在被清理之前就退出某类查询
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if set, ok := em.entities[id]; ok {
		delete(set, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	set, ok := em.entities[id]
	if !ok {
		return nil, false
	}
	comp, ok := set[componentType]
	return comp, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.GetComponent(id, componentType)
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.doomed {
		delete(em.entities, id)
	}
	em.doomed = em.doomed[:0]
}

// Clear 立即移除所有实体
// ID 计数器不回退，之后创建的实体不会与旧ID冲突
func (em *EntityManager) Clear() {
	em.entities = make(map[EntityID]componentSet)
	em.doomed = em.doomed[:0]
}

// EntityCount 返回当前存活的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.entities)
}

// GetEntitiesWith 查询拥有全部指定组件类型的实体，按 ID 升序返回
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	var result []EntityID
	for id, set := range em.entities {
		if set.hasAll(componentTypes) {
			result = append(result, id)
		}
	}
	// map 遍历顺序随机
	slices.Sort(result)
	return result
}

func (s componentSet) hasAll(types []reflect.Type) bool {
	for _, t := range types {
		if _, ok := s[t]; !ok {
			return false
		}
	}
	return true
}
