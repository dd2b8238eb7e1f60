package systems

import (
	"reflect"

	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// AnimationSystem 管理所有实体的帧动画
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 更新所有动画实体的帧，并把当前帧同步到精灵组件
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := s.entityManager.GetEntitiesWith(
		reflect.TypeOf(&components.AnimationComponent{}),
		reflect.TypeOf(&components.SpriteComponent{}),
	)

	for _, id := range entities {
		animComp, _ := s.entityManager.GetComponent(id, reflect.TypeOf(&components.AnimationComponent{}))
		spriteComp, _ := s.entityManager.GetComponent(id, reflect.TypeOf(&components.SpriteComponent{}))

		anim := animComp.(*components.AnimationComponent)
		sprite := spriteComp.(*components.SpriteComponent)

		frames := anim.Clips[anim.Current]
		if len(frames) == 0 {
			continue
		}

		if anim.Playing {
			anim.FrameCounter += deltaTime
			if anim.FrameCounter >= anim.FrameSpeed {
				anim.FrameCounter = 0
				anim.CurrentFrame = (anim.CurrentFrame + 1) % len(frames)
			}
		}

		// 暂停时也同步精灵：停在当前帧而不是黑屏
		sprite.Image = frames[anim.CurrentFrame]
	}
}
