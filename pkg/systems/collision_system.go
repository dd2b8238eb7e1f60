package systems

import (
	"log"
	"reflect"

	"github.com/mdenchev/mini-exp-1/pkg/collision"
	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// CollisionSystem 消费碰撞注册表，对实心-实心重叠应用位移解算
//
// 必须在 HitboxSystem 之后运行。一帧内先收集全部位移再统一应用：
// 前一对的位移不会影响同帧后续对的重叠判定（跨帧收敛是预期行为）。
// 被移动的实体重新置脏，下一帧 HitboxSystem 会重算其包围盒。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	registry      *collision.Registry

	// OnSensorOverlap 传感器类重叠的外部回调（可为 nil）
	// 核心不定义传感器事件契约，任务触发等胶水逻辑由场景层实现
	OnSensorOverlap func(overlap collision.Overlap)

	// 已经警告过的未定义策略组合，避免重叠持续期间每帧刷日志
	warnedPairs map[[2]ecs.EntityID]bool
}

// NewCollisionSystem 创建碰撞解算系统
func NewCollisionSystem(em *ecs.EntityManager, registry *collision.Registry) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		registry:      registry,
		warnedPairs:   make(map[[2]ecs.EntityID]bool),
	}
}

// Update 扫描注册表、应用位移、上报传感器重叠
// 任何异常情况（未定义策略组合、所有者缺少位置组件）都只记录日志并跳过，
// 绝不中断帧循环
func (s *CollisionSystem) Update() {
	posType := reflect.TypeOf(&components.PositionComponent{})

	result := collision.Resolve(s.registry)

	for _, mv := range result.Moves {
		posComp, ok := s.entityManager.GetComponent(mv.Entity, posType)
		if !ok {
			// 所有者在重算和解算之间被销毁：跳过这次位移
			log.Printf("[CollisionSystem] 实体 %d 缺少位置组件，跳过位移", mv.Entity)
			continue
		}
		pos := posComp.(*components.PositionComponent)
		pos.X += mv.Disp.X
		pos.Y += mv.Disp.Y
		pos.Dirty = true
	}

	for _, u := range result.Unresolved {
		key := [2]ecs.EntityID{u.OwnerA, u.OwnerB}
		if s.warnedPairs[key] {
			continue
		}
		s.warnedPairs[key] = true
		log.Printf("[CollisionSystem] 未定义的碰撞策略组合: %v × %v (实体 %d × %d)，不做位移",
			u.PolicyA, u.PolicyB, u.OwnerA, u.OwnerB)
	}

	if s.OnSensorOverlap != nil {
		for _, ov := range result.Overlaps {
			if ov.Kind == collision.OverlapColliderCollider {
				continue
			}
			s.OnSensorOverlap(ov)
		}
	}
}
