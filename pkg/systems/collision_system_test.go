package systems

import (
	"testing"

	"github.com/mdenchev/mini-exp-1/pkg/collision"
	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// spawnBody 创建一个带位置和单个碰撞体的所有者实体
func spawnBody(em *ecs.EntityManager, x, y, halfW, halfH float64, kind collision.VolumeKind, policy collision.MovementPolicy) (ecs.EntityID, *components.PositionComponent) {
	owner := em.CreateEntity()
	pos := &components.PositionComponent{X: x, Y: y, Dirty: true}
	em.AddComponent(owner, pos)
	spawnVolume(em, owner, halfW, halfH, kind, policy)
	return owner, pos
}

// TestCollisionSystemPlayerPushedOut 测试玩家被静态障碍物推出并重新置脏
func TestCollisionSystemPlayerPushedOut(t *testing.T) {
	em := ecs.NewEntityManager()
	reg := collision.NewRegistry()
	hitboxSys := NewHitboxSystem(em, reg)
	collisionSys := NewCollisionSystem(em, reg)

	// 玩家中心 (16,16)，障碍物中心 (32,16)：水平穿透 16 像素
	_, playerPos := spawnBody(em, 16, 16, 16, 16, collision.KindCollider, collision.PolicyPlayer)
	_, staticPos := spawnBody(em, 32, 16, 16, 16, collision.KindCollider, collision.PolicyStatic)

	hitboxSys.Update()
	collisionSys.Update()

	if playerPos.X != 8 {
		t.Errorf("玩家 X = %v, want 8 (被推出穿透深度的一半)", playerPos.X)
	}
	if playerPos.Y != 16 {
		t.Errorf("玩家 Y = %v, want 16 (位移只在一条轴上)", playerPos.Y)
	}
	if !playerPos.Dirty {
		t.Error("被移动的玩家应重新置脏")
	}
	if staticPos.X != 32 || staticPos.Y != 16 {
		t.Errorf("静态障碍物被移动: (%v, %v)", staticPos.X, staticPos.Y)
	}
	if staticPos.Dirty {
		t.Error("未被移动的静态障碍物不应置脏")
	}
}

// TestCollisionSystemConvergeOverFrames 测试跨帧半位移收敛
func TestCollisionSystemConvergeOverFrames(t *testing.T) {
	em := ecs.NewEntityManager()
	reg := collision.NewRegistry()
	hitboxSys := NewHitboxSystem(em, reg)
	collisionSys := NewCollisionSystem(em, reg)

	_, playerPos := spawnBody(em, 16, 16, 16, 16, collision.KindCollider, collision.PolicyPlayer)
	spawnBody(em, 32, 16, 16, 16, collision.KindCollider, collision.PolicyStatic)

	for frame := 0; frame < 12; frame++ {
		hitboxSys.Update()
		collisionSys.Update()
	}

	// 穿透深度 16 每帧减半：12 帧后玩家中心应逼近 0
	if playerPos.X > 0.01 {
		t.Errorf("12 帧后玩家 X = %v, 应逼近 0", playerPos.X)
	}
}

// TestCollisionSystemUnsupportedPairNoMove 测试未定义策略组合不产生位移也不崩溃
func TestCollisionSystemUnsupportedPairNoMove(t *testing.T) {
	em := ecs.NewEntityManager()
	reg := collision.NewRegistry()
	hitboxSys := NewHitboxSystem(em, reg)
	collisionSys := NewCollisionSystem(em, reg)

	npcID, npcPos := spawnBody(em, 16, 16, 16, 16, collision.KindCollider, collision.PolicyNpc)
	movableID, movablePos := spawnBody(em, 32, 16, 16, 16, collision.KindCollider, collision.PolicyMovable)

	hitboxSys.Update()
	collisionSys.Update()

	if npcPos.X != 16 || movablePos.X != 32 {
		t.Errorf("未定义组合不应移动任何一方: npc=%v movable=%v", npcPos.X, movablePos.X)
	}

	// 同一对重叠持续存在时只警告一次
	key := [2]ecs.EntityID{npcID, movableID}
	if !collisionSys.warnedPairs[key] {
		t.Fatal("未定义组合应被记入警告表")
	}
	hitboxSys.Update()
	collisionSys.Update()
	if len(collisionSys.warnedPairs) != 1 {
		t.Errorf("警告表大小 = %d, want 1", len(collisionSys.warnedPairs))
	}
}

// TestCollisionSystemSensorCallback 测试传感器重叠上报给外部回调
func TestCollisionSystemSensorCallback(t *testing.T) {
	em := ecs.NewEntityManager()
	reg := collision.NewRegistry()
	hitboxSys := NewHitboxSystem(em, reg)
	collisionSys := NewCollisionSystem(em, reg)

	playerID, playerPos := spawnBody(em, 16, 16, 16, 16, collision.KindSensor, collision.PolicyPlayer)
	npcID, _ := spawnBody(em, 32, 16, 16, 16, collision.KindCollider, collision.PolicyStatic)

	var got []collision.Overlap
	collisionSys.OnSensorOverlap = func(ov collision.Overlap) {
		got = append(got, ov)
	}

	hitboxSys.Update()
	collisionSys.Update()

	if len(got) != 1 {
		t.Fatalf("回调次数 = %d, want 1", len(got))
	}
	ov := got[0]
	if ov.Kind != collision.OverlapSensorCollider {
		t.Errorf("重叠分类 = %v, want SensorCollider", ov.Kind)
	}
	owners := map[ecs.EntityID]bool{ov.A.Owner: true, ov.B.Owner: true}
	if !owners[playerID] || !owners[npcID] {
		t.Errorf("重叠双方所有者 = %d, %d", ov.A.Owner, ov.B.Owner)
	}
	// 传感器重叠不产生位移
	if playerPos.X != 16 {
		t.Errorf("传感器重叠移动了玩家: X = %v", playerPos.X)
	}
}

// TestCollisionSystemNilCallback 测试未设置回调时传感器重叠被静默忽略
func TestCollisionSystemNilCallback(t *testing.T) {
	em := ecs.NewEntityManager()
	reg := collision.NewRegistry()
	hitboxSys := NewHitboxSystem(em, reg)
	collisionSys := NewCollisionSystem(em, reg)

	spawnBody(em, 16, 16, 16, 16, collision.KindSensor, collision.PolicyNone)
	spawnBody(em, 32, 16, 16, 16, collision.KindSensor, collision.PolicyNone)

	hitboxSys.Update()
	collisionSys.Update() // 不应 panic
}

// TestCollisionSystemDestroyedOwnerSkipped 测试解算期间所有者失效时跳过位移
func TestCollisionSystemDestroyedOwnerSkipped(t *testing.T) {
	em := ecs.NewEntityManager()
	reg := collision.NewRegistry()
	hitboxSys := NewHitboxSystem(em, reg)
	collisionSys := NewCollisionSystem(em, reg)

	playerID, _ := spawnBody(em, 16, 16, 16, 16, collision.KindCollider, collision.PolicyPlayer)
	spawnBody(em, 32, 16, 16, 16, collision.KindCollider, collision.PolicyStatic)

	hitboxSys.Update()
	// 快照已写入后移除玩家位置组件，模拟帧中途销毁
	em.RemoveComponent(playerID, testPositionType)
	collisionSys.Update() // 只记日志，不 panic
}
