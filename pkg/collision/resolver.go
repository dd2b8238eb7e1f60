package collision

import (
	"math"

	"github.com/mdenchev/mini-exp-1/pkg/ecs"
)

// Classify 对两个碰撞体快照做重叠测试并按种类分类
//
// 返回 false 的情况：
//   - 两个碰撞体属于同一个所有者（碰撞体不与自身或同所有者的兄弟碰撞体碰撞）
//   - 两个包围盒在任意一条轴上没有重叠（边界接触算作重叠）
//
// 分类与参数顺序无关：Classify(a, b) 与 Classify(b, a) 结果相同
func Classify(a, b Entry) (OverlapKind, bool) {
	if a.Owner == b.Owner {
		return 0, false
	}
	if !a.Bounds.Overlaps(b.Bounds) {
		return 0, false
	}
	switch {
	case a.Kind == KindCollider && b.Kind == KindCollider:
		return OverlapColliderCollider, true
	case a.Kind == KindSensor && b.Kind == KindSensor:
		return OverlapSensorSensor, true
	default:
		return OverlapSensorCollider, true
	}
}

// Displacement 是一次解算要应用的位移修正量
// 每次解算只沿一条轴移动，另一条轴的分量恒为 0
type Displacement struct {
	X float64
	Y float64
}

// ShallowAxisDisplace 计算把 self 推出 other 的最浅轴位移
//
// 沿四个面分别计算候选分离量，水平、垂直各取绝对值较小的一侧，
// 再在两条轴之间取绝对值较小的一条；两轴相等时选垂直轴。
// 返回的位移是所选分离量的一半：每帧只推出一半穿透深度，
// 剩余穿透在后续帧继续收敛，避免单帧瞬间大幅校正。
func ShallowAxisDisplace(self, other Bounds) Displacement {
	left := other.MinX - self.MaxX
	right := other.MaxX - self.MinX
	down := other.MinY - self.MaxY
	up := other.MaxY - self.MinY

	horizontal := right
	if math.Abs(left) < math.Abs(right) {
		horizontal = left
	}
	vertical := down
	if math.Abs(up) < math.Abs(down) {
		vertical = up
	}

	if math.Abs(horizontal) < math.Abs(vertical) {
		return Displacement{X: horizontal / 2}
	}
	// 两轴相等时落到这里：垂直轴优先
	return Displacement{Y: vertical / 2}
}

// Rule 说明一对移动策略中哪一方的所有者需要被移动
type Rule struct {
	MoveA bool
	MoveB bool
}

// resolutionRules 实心碰撞的策略组合解算规则表
//
// 只登记了有明确定义的组合；未登记的组合（Npc、Movable、玩家对玩家等）
// 没有定义的解算方式，查表失败由调用方记录诊断日志后跳过，
// 绝不中断帧循环。
var resolutionRules = map[[2]MovementPolicy]Rule{
	{PolicyPlayer, PolicyStatic}: {MoveA: true},
	{PolicyStatic, PolicyPlayer}: {MoveB: true},
	{PolicyNone, PolicyNone}:     {},
}

// LookupRule 查询一对移动策略的解算规则
// 第二个返回值为 false 表示该组合没有定义的解算方式
func LookupRule(a, b MovementPolicy) (Rule, bool) {
	r, ok := resolutionRules[[2]MovementPolicy{a, b}]
	return r, ok
}

// Move 描述解算后要应用到某个所有者实体上的位移
type Move struct {
	Entity  ecs.EntityID // 要移动的所有者实体
	Against ecs.EntityID // 作为障碍物的另一方所有者（用于日志）
	Disp    Displacement // 单轴位移修正量
}

// Unresolved 记录一对没有解算规则的实心碰撞（诊断用）
type Unresolved struct {
	PolicyA MovementPolicy
	PolicyB MovementPolicy
	OwnerA  ecs.EntityID
	OwnerB  ecs.EntityID
}

// Overlap 是一次被检测到的重叠，含分类和双方快照
// 传感器类重叠由外部胶水层消费（如任务触发），核心不定义事件契约
type Overlap struct {
	Kind OverlapKind
	A    Entry
	B    Entry
}

// Result 是一帧解算的全部输出
type Result struct {
	Moves      []Move
	Overlaps   []Overlap
	Unresolved []Unresolved
}

// Resolve 扫描注册表中所有无序碰撞体对，分类重叠并为实心-实心重叠计算位移
//
// 每个无序对只处理一次（不重复处理 (B,A)），位移量因此每帧只应用一次。
// 解算只读取本帧快照：先收集全部位移再由调用方统一应用，
// 前一对的位移不会影响同帧后续对的重叠判定。
func Resolve(reg *Registry) Result {
	entries := reg.Entries()
	var res Result
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			kind, ok := Classify(a, b)
			if !ok {
				continue
			}
			res.Overlaps = append(res.Overlaps, Overlap{Kind: kind, A: a, B: b})
			if kind != OverlapColliderCollider {
				continue
			}
			rule, ok := LookupRule(a.Policy, b.Policy)
			if !ok {
				res.Unresolved = append(res.Unresolved, Unresolved{
					PolicyA: a.Policy,
					PolicyB: b.Policy,
					OwnerA:  a.Owner,
					OwnerB:  b.Owner,
				})
				continue
			}
			if rule.MoveA {
				res.Moves = append(res.Moves, Move{
					Entity:  a.Owner,
					Against: b.Owner,
					Disp:    ShallowAxisDisplace(a.Bounds, b.Bounds),
				})
			}
			if rule.MoveB {
				res.Moves = append(res.Moves, Move{
					Entity:  b.Owner,
					Against: a.Owner,
					Disp:    ShallowAxisDisplace(b.Bounds, a.Bounds),
				})
			}
		}
	}
	return res
}
