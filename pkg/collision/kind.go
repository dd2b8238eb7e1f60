// Package collision 实现碰撞子系统的核心：
// 世界空间包围盒（AABB）计算、当前帧碰撞体快照注册表、
// 重叠检测与分类、以及实心-实心重叠的最浅轴位移解算。
//
// 本包不依赖渲染层，所有输入输出都是纯数据，
// 由 pkg/systems 中的 HitboxSystem / CollisionSystem 接入每帧管线。
package collision

// VolumeKind 区分碰撞体的种类
type VolumeKind int

const (
	// KindCollider 实心碰撞体：参与实心-实心重叠的位移解算
	KindCollider VolumeKind = iota
	// KindSensor 传感器：只检测重叠，不产生任何位移
	KindSensor
)

// String 返回种类的可读名称（用于日志输出）
func (k VolumeKind) String() string {
	switch k {
	case KindCollider:
		return "Collider"
	case KindSensor:
		return "Sensor"
	default:
		return "Unknown"
	}
}

// MovementPolicy 定义碰撞体所有者对实心碰撞的反应方式
type MovementPolicy int

const (
	// PolicyNone 不参与位移解算（如纯触发区域的载体）
	PolicyNone MovementPolicy = iota
	// PolicyStatic 静止障碍物：永远不会被推动
	PolicyStatic
	// PolicyNpc NPC：解算方式尚未定义
	PolicyNpc
	// PolicyPlayer 玩家：与静止障碍物碰撞时被推出
	PolicyPlayer
	// PolicyMovable 可推动物体：解算方式尚未定义
	PolicyMovable
)

// String 返回策略的可读名称（用于日志输出）
func (p MovementPolicy) String() string {
	switch p {
	case PolicyNone:
		return "None"
	case PolicyStatic:
		return "Static"
	case PolicyNpc:
		return "Npc"
	case PolicyPlayer:
		return "Player"
	case PolicyMovable:
		return "Movable"
	default:
		return "Unknown"
	}
}

// OverlapKind 按参与双方的种类对一次重叠进行分类
type OverlapKind int

const (
	// OverlapColliderCollider 实心×实心：需要位移解算
	OverlapColliderCollider OverlapKind = iota
	// OverlapSensorCollider 传感器×实心（任意顺序）：只检测，不位移
	OverlapSensorCollider
	// OverlapSensorSensor 传感器×传感器：只检测，不位移
	OverlapSensorSensor
)
