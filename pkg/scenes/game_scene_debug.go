package scenes

import (
	"image/color"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/mdenchev/mini-exp-1/pkg/collision"
	"github.com/mdenchev/mini-exp-1/pkg/components"
)

// drawHitboxDebug 绘制碰撞盒调试轮廓（F1 切换）
//
// 轮廓直接取自注册表的当前帧快照，画的就是解算实际使用的包围盒。
// 实心碰撞体画红色，传感器画绿色。
func (s *GameScene) drawHitboxDebug(screen *ebiten.Image) {
	hitboxType := reflect.TypeOf(&components.HitboxComponent{})

	colliderColor := color.RGBA{R: 255, G: 64, B: 64, A: 200}
	sensorColor := color.RGBA{R: 64, G: 255, B: 64, A: 200}

	for _, id := range s.entityManager.GetEntitiesWith(hitboxType) {
		hbComp, _ := s.entityManager.GetComponent(id, hitboxType)
		hb := hbComp.(*components.HitboxComponent)
		if !hb.DebugVisible {
			continue
		}
		entry, ok := s.registry.Get(id)
		if !ok {
			continue // 还没有快照（如所有者缺少位置组件）
		}

		c := colliderColor
		if hb.Kind == collision.KindSensor {
			c = sensorColor
		}
		b := entry.Bounds
		ebitenutil.DrawLine(screen, b.MinX, b.MinY, b.MaxX, b.MinY, c)
		ebitenutil.DrawLine(screen, b.MaxX, b.MinY, b.MaxX, b.MaxY, c)
		ebitenutil.DrawLine(screen, b.MaxX, b.MaxY, b.MinX, b.MaxY, c)
		ebitenutil.DrawLine(screen, b.MinX, b.MaxY, b.MinX, b.MinY, c)
	}
}
