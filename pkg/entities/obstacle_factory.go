package entities

import (
	"fmt"
	"image/color"

	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/config"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// NewWall 创建静止障碍物实体（墙、地板、箱子）
//
// 障碍物的尺寸直接以屏幕像素配置，不参与全局渲染缩放（缩放因子 1）。
func NewWall(em *ecs.EntityManager, cfg config.EntityConfig, debugVisible bool) (ecs.EntityID, error) {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X:     cfg.X,
		Y:     cfg.Y,
		Dirty: true,
	})
	em.AddComponent(id, &components.ScaleComponent{
		ScaleX: 1,
		ScaleY: 1,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Image: newPlaceholderImage(int(cfg.Width), int(cfg.Height), color.RGBA{R: 110, G: 90, B: 70, A: 255}),
	})

	if _, err := attachHitboxes(em, id, cfg.Hitboxes, debugVisible); err != nil {
		return 0, fmt.Errorf("障碍物 %q: %w", cfg.Name, err)
	}
	return id, nil
}

// NewTriggerZone 创建纯触发区域实体
//
// 区域没有精灵，只携带传感器碰撞体；重叠通过
// CollisionSystem 的传感器回调上报给场景层。
func NewTriggerZone(em *ecs.EntityManager, cfg config.EntityConfig, debugVisible bool) (ecs.EntityID, error) {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X:     cfg.X,
		Y:     cfg.Y,
		Dirty: true,
	})
	em.AddComponent(id, &components.ScaleComponent{
		ScaleX: 1,
		ScaleY: 1,
	})

	if _, err := attachHitboxes(em, id, cfg.Hitboxes, debugVisible); err != nil {
		return 0, fmt.Errorf("触发区域 %q: %w", cfg.Name, err)
	}
	return id, nil
}
