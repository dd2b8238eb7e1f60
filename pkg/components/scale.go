package components

// ScaleComponent 存储实体的渲染缩放因子
// 缩放同时作用于精灵绘制和碰撞盒半边长：
// 像素画角色以小尺寸绘制，统一用场景配置的 renderScale 放大
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小）
	ScaleY float64
}
