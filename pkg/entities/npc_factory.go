package entities

import (
	"fmt"
	"image/color"

	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/config"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// NewNpc 创建NPC实体
//
// NPC 静止不动，通常携带两个碰撞体：实心身体（static）
// 和更大的对话触发范围（sensor）。
//
// 返回: NPC实体ID
func NewNpc(em *ecs.EntityManager, cfg config.EntityConfig, renderScale float64, debugVisible bool) (ecs.EntityID, error) {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X:     cfg.X,
		Y:     cfg.Y,
		Dirty: true,
	})
	em.AddComponent(id, &components.ScaleComponent{
		ScaleX: renderScale,
		ScaleY: renderScale,
	})
	em.AddComponent(id, &components.NpcComponent{
		Name: cfg.Name,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Image: newPlaceholderImage(int(cfg.Width), int(cfg.Height), color.RGBA{R: 90, G: 200, B: 120, A: 255}),
	})

	if _, err := attachHitboxes(em, id, cfg.Hitboxes, debugVisible); err != nil {
		return 0, fmt.Errorf("NPC %q: %w", cfg.Name, err)
	}
	return id, nil
}
