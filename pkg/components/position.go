package components

// PositionComponent 存储实体的世界坐标（实体中心点）
//
// Dirty 标记位置自上次包围盒重算以来是否发生过变化：
//   - 移动实体的一方（输入系统、碰撞解算）置位
//   - HitboxSystem 重算该实体全部碰撞体的包围盒后清除
//
// 这是脏标记优化：位置没变的帧不重算包围盒，不影响正确性
type PositionComponent struct {
	X     float64 // 世界坐标X（像素）
	Y     float64 // 世界坐标Y（像素），向下为正
	Dirty bool    // 位置是否发生变化（未重算包围盒）
}
