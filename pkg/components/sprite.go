package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 图像以实体位置为中心、按实体缩放因子绘制
type SpriteComponent struct {
	Image *ebiten.Image
}
