package collision

import (
	"sort"

	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// Entry 是注册表中一个碰撞体的当前帧快照
// 种类和策略随包围盒一起缓存，解算时无需回查实体组件
type Entry struct {
	Volume ecs.EntityID   // 碰撞体自身的实体ID（全局唯一、生命周期内稳定）
	Owner  ecs.EntityID   // 所有者实体ID（位移解算作用的对象）
	Bounds Bounds         // 世界空间包围盒
	Kind   VolumeKind     // 实心 / 传感器
	Policy MovementPolicy // 所有者的移动策略
}

// Registry 是当前帧的碰撞体快照表：碰撞体ID → (所有者, 包围盒, 分类)
//
// 每帧由 HitboxSystem 对变脏的所有者增量刷新，CollisionSystem 只读。
// 两个步骤在单线程帧管线中严格先后执行，不存在并发访问。
// 实体销毁时通过 EntityManager 的销毁回调移除对应条目，
// 注册表不会引用已销毁的实体。
type Registry struct {
	entries map[ecs.EntityID]Entry
}

// NewRegistry 创建一个空的碰撞体注册表
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[ecs.EntityID]Entry),
	}
}

// Set 写入或覆盖一个碰撞体的当前帧快照
func (r *Registry) Set(e Entry) {
	r.entries[e.Volume] = e
}

// Get 返回指定碰撞体的快照
func (r *Registry) Get(volume ecs.EntityID) (Entry, bool) {
	e, ok := r.entries[volume]
	return e, ok
}

// Remove 移除指定碰撞体的快照（碰撞体实体销毁时调用）
func (r *Registry) Remove(volume ecs.EntityID) {
	delete(r.entries, volume)
}

// RemoveOwner 移除属于指定所有者的全部快照（所有者实体销毁时调用）
func (r *Registry) RemoveOwner(owner ecs.EntityID) {
	for id, e := range r.entries {
		if e.Owner == owner {
			delete(r.entries, id)
		}
	}
}

// Len 返回注册表中的碰撞体数量
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries 按碰撞体ID升序返回全部快照
// 固定的遍历顺序保证逐帧解算结果确定（map 遍历顺序是随机的）
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Volume < out[j].Volume
	})
	return out
}
