package components

// PlayerComponent 标记玩家控制的实体
type PlayerComponent struct {
	Speed float64 // 水平移动速度（像素/秒）
}
