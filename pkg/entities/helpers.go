package entities

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/config"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// newPlaceholderImage 生成纯色占位图
// 项目不携带美术资源，所有精灵都是程序生成的色块
func newPlaceholderImage(w, h int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

// newWalkFrames 生成两帧行走循环的占位帧
// 第二帧底部加深一条，模拟迈步变化
func newWalkFrames(w, h int, body color.RGBA) []*ebiten.Image {
	frameA := newPlaceholderImage(w, h, body)

	frameB := newPlaceholderImage(w, h, body)
	darker := color.RGBA{R: body.R / 2, G: body.G / 2, B: body.B / 2, A: body.A}
	legs := image.Rect(0, h-h/4, w, h)
	frameB.SubImage(legs).(*ebiten.Image).Fill(darker)

	return []*ebiten.Image{frameA, frameB}
}

// attachHitboxes 按配置为所有者实体创建碰撞体实体
//
// 每个碰撞体是独立实体，其 EntityID 就是注册表中的唯一标识。
// 配置在加载时已做过种类/策略校验，这里的错误属于防御性兜底。
//
// 返回创建的碰撞体实体ID列表
func attachHitboxes(em *ecs.EntityManager, owner ecs.EntityID, cfgs []config.HitboxConfig, debugVisible bool) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, len(cfgs))
	for i, hc := range cfgs {
		kind, err := config.ParseVolumeKind(hc.Kind)
		if err != nil {
			return nil, fmt.Errorf("碰撞体 #%d: %w", i, err)
		}
		policy, err := config.ParseMovementPolicy(hc.Policy)
		if err != nil {
			return nil, fmt.Errorf("碰撞体 #%d: %w", i, err)
		}
		hb, err := components.NewHitboxComponent(owner, hc.HalfWidth, hc.HalfHeight, kind, policy)
		if err != nil {
			return nil, fmt.Errorf("碰撞体 #%d: %w", i, err)
		}
		hb.DebugVisible = debugVisible

		id := em.CreateEntity()
		em.AddComponent(id, hb)
		ids = append(ids, id)
	}
	return ids, nil
}
