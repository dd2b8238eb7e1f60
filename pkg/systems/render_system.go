package systems

import (
	"reflect"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// RenderSystem 绘制所有带精灵的实体
//
// 精灵以实体位置为中心、按实体缩放因子绘制。
// 碰撞盒调试轮廓不在这里绘制，由场景的调试绘制层处理。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有拥有精灵和位置组件的实体
// 按实体ID升序绘制，保证逐帧绘制顺序稳定
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	spriteType := reflect.TypeOf(&components.SpriteComponent{})
	posType := reflect.TypeOf(&components.PositionComponent{})
	scaleType := reflect.TypeOf(&components.ScaleComponent{})

	entities := s.entityManager.GetEntitiesWith(spriteType, posType)
	sort.Slice(entities, func(i, j int) bool { return entities[i] < entities[j] })

	for _, id := range entities {
		spriteComp, _ := s.entityManager.GetComponent(id, spriteType)
		sprite := spriteComp.(*components.SpriteComponent)
		if sprite.Image == nil {
			continue
		}
		posComp, _ := s.entityManager.GetComponent(id, posType)
		pos := posComp.(*components.PositionComponent)

		scaleX, scaleY := 1.0, 1.0
		if scComp, ok := s.entityManager.GetComponent(id, scaleType); ok {
			sc := scComp.(*components.ScaleComponent)
			scaleX, scaleY = sc.ScaleX, sc.ScaleY
		}

		w := sprite.Image.Bounds().Dx()
		h := sprite.Image.Bounds().Dy()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(sprite.Image, op)
	}
}
