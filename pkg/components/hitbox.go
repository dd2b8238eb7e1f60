package components

import (
	"fmt"

	"github.com/mdenchev/mini-exp-1/pkg/collision"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// HitboxComponent 定义一个附着在所有者实体上的碰撞体
//
// 碰撞体本身是独立实体（一个所有者可以携带多个碰撞体），
// 碰撞体实体的 EntityID 就是它在注册表中的唯一标识。
// 种类和策略在创建后不再变化。
type HitboxComponent struct {
	Owner        ecs.EntityID             // 所有者实体（包围盒以其位置为中心）
	HalfWidth    float64                  // 本地半宽（像素，未缩放）
	HalfHeight   float64                  // 本地半高（像素，未缩放）
	Kind         collision.VolumeKind     // 实心 / 传感器
	Policy       collision.MovementPolicy // 所有者的移动策略
	DebugVisible bool                     // 调试轮廓是否可见（F1 切换）
}

// NewHitboxComponent 创建碰撞体组件，并校验半边长
//
// 半边长必须非负：负值会产生翻转的包围盒（min > max），
// 在构造时拒绝，绝不静默生成非法碰撞盒。
func NewHitboxComponent(owner ecs.EntityID, halfW, halfH float64, kind collision.VolumeKind, policy collision.MovementPolicy) (*HitboxComponent, error) {
	if halfW < 0 || halfH < 0 {
		return nil, fmt.Errorf("碰撞盒半边长不能为负: halfWidth=%v halfHeight=%v", halfW, halfH)
	}
	return &HitboxComponent{
		Owner:      owner,
		HalfWidth:  halfW,
		HalfHeight: halfH,
		Kind:       kind,
		Policy:     policy,
	}, nil
}
