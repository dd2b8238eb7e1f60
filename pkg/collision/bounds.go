package collision

// Bounds 是一个碰撞体在世界空间中的轴对齐包围盒
// 不变量：MinX <= MaxX 且 MinY <= MaxY（由 ComputeBounds 保证）
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// ComputeBounds 根据所有者的世界坐标和碰撞体的本地半边长计算世界空间包围盒
//
// 半边长先乘以所有者的缩放因子（渲染缩放同样作用于碰撞盒），
// 再以所有者位置为中心向两侧展开：
//
//	min = pos - half*scale, max = pos + half*scale
//
// 参数:
//   - x, y: 所有者的世界坐标（碰撞盒中心）
//   - halfW, halfH: 本地半边长（非负，由 HitboxComponent 构造时校验）
//   - scaleX, scaleY: 所有者的缩放因子
func ComputeBounds(x, y, halfW, halfH, scaleX, scaleY float64) Bounds {
	w := halfW * scaleX
	h := halfH * scaleY
	return Bounds{
		MinX: x - w,
		MinY: y - h,
		MaxX: x + w,
		MaxY: y + h,
	}
}

// Overlaps 检查两个包围盒是否在两条轴上都重叠
// 边界刚好接触（如 a.MaxX == b.MinX）也算作重叠
func (b Bounds) Overlaps(o Bounds) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Width 返回包围盒的宽度
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height 返回包围盒的高度
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}
