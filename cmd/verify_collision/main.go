// verify_collision 无头验证工具
//
// 不启动渲染，直接驱动 包围盒重算 → 碰撞解算 管线若干帧，
// 打印玩家位置逐帧收敛的过程，以及未定义策略组合的诊断行为。
//
// 运行: go run ./cmd/verify_collision
package main

import (
	"fmt"
	"reflect"

	"github.com/mdenchev/mini-exp-1/pkg/collision"
	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
	"github.com/mdenchev/mini-exp-1/pkg/systems"
)

// spawnBody 创建一个带单碰撞体的实体（无精灵，纯数据）
func spawnBody(em *ecs.EntityManager, x, y, halfW, halfH float64, kind collision.VolumeKind, policy collision.MovementPolicy) (owner, volume ecs.EntityID) {
	owner = em.CreateEntity()
	em.AddComponent(owner, &components.PositionComponent{X: x, Y: y, Dirty: true})
	em.AddComponent(owner, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})

	hb, err := components.NewHitboxComponent(owner, halfW, halfH, kind, policy)
	if err != nil {
		panic(err)
	}
	volume = em.CreateEntity()
	em.AddComponent(volume, hb)
	return owner, volume
}

func main() {
	em := ecs.NewEntityManager()
	registry := collision.NewRegistry()
	hitboxType := reflect.TypeOf(&components.HitboxComponent{})
	em.AddDestroyHook(func(id ecs.EntityID) {
		registry.Remove(id)
		registry.RemoveOwner(id)
		for _, volumeID := range em.GetEntitiesWith(hitboxType) {
			hbComp, _ := em.GetComponent(volumeID, hitboxType)
			if hbComp.(*components.HitboxComponent).Owner == id {
				em.DestroyEntity(volumeID)
			}
		}
	})

	hitboxSystem := systems.NewHitboxSystem(em, registry)
	collisionSystem := systems.NewCollisionSystem(em, registry)

	// 玩家与静止障碍物初始穿透 8 像素，位移应逐帧减半收敛
	playerID, _ := spawnBody(em, 24, 16, 16, 16, collision.KindCollider, collision.PolicyPlayer)
	spawnBody(em, 48, 16, 16, 16, collision.KindCollider, collision.PolicyStatic)

	// 未定义的策略组合：检测到但不位移，只产生一条诊断日志
	spawnBody(em, 200, 16, 16, 16, collision.KindCollider, collision.PolicyNpc)
	npcBlockerID, _ := spawnBody(em, 216, 16, 16, 16, collision.KindCollider, collision.PolicyMovable)

	posType := reflect.TypeOf(&components.PositionComponent{})
	posOf := func(id ecs.EntityID) *components.PositionComponent {
		comp, _ := em.GetComponent(id, posType)
		return comp.(*components.PositionComponent)
	}

	fmt.Println("帧   玩家X      Npc侧X")
	for frame := 0; frame < 8; frame++ {
		hitboxSystem.Update()
		collisionSystem.Update()
		fmt.Printf("%2d  %8.4f  %8.4f\n", frame, posOf(playerID).X, posOf(npcBlockerID).X)
	}
}
