package systems

import (
	"log"
	"reflect"

	"github.com/mdenchev/mini-exp-1/pkg/collision"
	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// HitboxSystem 负责包围盒重算和碰撞注册表刷新
//
// 每帧对所有碰撞体检查其所有者位置的脏标记：
// 位置变化过（或碰撞体还没有快照）才重算包围盒并写入注册表。
// 必须在 CollisionSystem 之前运行——解算只读取本帧刷新后的注册表快照。
type HitboxSystem struct {
	entityManager *ecs.EntityManager
	registry      *collision.Registry
}

// NewHitboxSystem 创建包围盒系统
func NewHitboxSystem(em *ecs.EntityManager, registry *collision.Registry) *HitboxSystem {
	return &HitboxSystem{
		entityManager: em,
		registry:      registry,
	}
}

// Update 重算脏实体的包围盒并刷新注册表
func (s *HitboxSystem) Update() {
	hitboxType := reflect.TypeOf(&components.HitboxComponent{})
	posType := reflect.TypeOf(&components.PositionComponent{})
	scaleType := reflect.TypeOf(&components.ScaleComponent{})

	volumes := s.entityManager.GetEntitiesWith(hitboxType)

	// 同一所有者可能携带多个碰撞体，全部刷新完毕后再统一清脏标记
	dirtyOwners := make(map[ecs.EntityID]*components.PositionComponent)

	for _, volumeID := range volumes {
		hbComp, _ := s.entityManager.GetComponent(volumeID, hitboxType)
		hb := hbComp.(*components.HitboxComponent)

		posComp, ok := s.entityManager.GetComponent(hb.Owner, posType)
		if !ok {
			// 所有者失去了位置组件（或正在销毁）：快照作废
			s.registry.Remove(volumeID)
			log.Printf("[HitboxSystem] 碰撞体 %d 的所有者 %d 缺少位置组件，移除快照", volumeID, hb.Owner)
			continue
		}
		pos := posComp.(*components.PositionComponent)

		if _, inRegistry := s.registry.Get(volumeID); inRegistry && !pos.Dirty {
			continue // 位置没变，保留上一帧快照
		}

		scaleX, scaleY := 1.0, 1.0
		if scComp, ok := s.entityManager.GetComponent(hb.Owner, scaleType); ok {
			sc := scComp.(*components.ScaleComponent)
			scaleX, scaleY = sc.ScaleX, sc.ScaleY
		}

		s.registry.Set(collision.Entry{
			Volume: volumeID,
			Owner:  hb.Owner,
			Bounds: collision.ComputeBounds(pos.X, pos.Y, hb.HalfWidth, hb.HalfHeight, scaleX, scaleY),
			Kind:   hb.Kind,
			Policy: hb.Policy,
		})
		dirtyOwners[hb.Owner] = pos
	}

	for _, pos := range dirtyOwners {
		pos.Dirty = false
	}
}
