package entities

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/config"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// NewPlayer 创建玩家实体
//
// 玩家携带位置、缩放、精灵、行走动画和移动标记组件，
// 并按配置附加碰撞体实体。
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 场景中的玩家实体配置
//   - renderScale: 全局渲染缩放因子
//   - speed: 移动速度（像素/秒）
//   - debugVisible: 碰撞盒调试轮廓初始可见性
//
// 返回: 玩家实体ID
func NewPlayer(em *ecs.EntityManager, cfg config.EntityConfig, renderScale, speed float64, debugVisible bool) (ecs.EntityID, error) {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X:     cfg.X,
		Y:     cfg.Y,
		Dirty: true, // 首帧必须计算包围盒
	})
	em.AddComponent(id, &components.ScaleComponent{
		ScaleX: renderScale,
		ScaleY: renderScale,
	})
	em.AddComponent(id, &components.PlayerComponent{
		Speed: speed,
	})

	w, h := int(cfg.Width), int(cfg.Height)
	frames := newWalkFrames(w, h, color.RGBA{R: 80, G: 120, B: 220, A: 255})
	em.AddComponent(id, &components.SpriteComponent{
		Image: frames[0],
	})
	em.AddComponent(id, &components.AnimationComponent{
		Clips: map[string][]*ebiten.Image{
			"left_walk":  frames,
			"right_walk": frames,
		},
		Current:    "left_walk",
		FrameSpeed: 0.15,
	})

	if _, err := attachHitboxes(em, id, cfg.Hitboxes, debugVisible); err != nil {
		return 0, fmt.Errorf("玩家 %q: %w", cfg.Name, err)
	}
	return id, nil
}
