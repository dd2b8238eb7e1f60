package systems

import (
	"log"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
	"github.com/mdenchev/mini-exp-1/pkg/game"
)

// InputSystem 处理键盘输入：玩家移动、暂停切换和调试轮廓切换
type InputSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState) *InputSystem {
	return &InputSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 处理当前帧的键盘输入
// 参数:
//   - deltaTime: 时间增量（秒）
func (s *InputSystem) Update(deltaTime float64) {
	// ESC 键切换暂停/恢复
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.gameState.TogglePause()
		if s.gameState.IsPaused {
			log.Printf("[InputSystem] 游戏暂停 (ESC)")
		} else {
			log.Printf("[InputSystem] 游戏恢复 (ESC)")
		}
		return
	}

	// F1 键切换碰撞盒调试轮廓
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.gameState.ToggleDebugOverlay()
		s.applyDebugVisibility(s.gameState.DebugOverlay)
		log.Printf("[InputSystem] 调试轮廓: %v (F1)", s.gameState.DebugOverlay)
	}

	// 暂停时屏蔽游戏世界交互
	if s.gameState.IsPaused {
		return
	}

	s.movePlayers(deltaTime)
}

// applyDebugVisibility 把调试可见性应用到所有碰撞体
func (s *InputSystem) applyDebugVisibility(visible bool) {
	hitboxType := reflect.TypeOf(&components.HitboxComponent{})
	for _, id := range s.entityManager.GetEntitiesWith(hitboxType) {
		hbComp, _ := s.entityManager.GetComponent(id, hitboxType)
		hbComp.(*components.HitboxComponent).DebugVisible = visible
	}
}

// movePlayers 处理 A/D 键的玩家水平移动和行走动画切换
func (s *InputSystem) movePlayers(deltaTime float64) {
	playerType := reflect.TypeOf(&components.PlayerComponent{})
	posType := reflect.TypeOf(&components.PositionComponent{})
	animType := reflect.TypeOf(&components.AnimationComponent{})

	left := ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyD)

	for _, id := range s.entityManager.GetEntitiesWith(playerType, posType) {
		playerComp, _ := s.entityManager.GetComponent(id, playerType)
		player := playerComp.(*components.PlayerComponent)
		posComp, _ := s.entityManager.GetComponent(id, posType)
		pos := posComp.(*components.PositionComponent)

		var anim *components.AnimationComponent
		if animComp, ok := s.entityManager.GetComponent(id, animType); ok {
			anim = animComp.(*components.AnimationComponent)
		}

		switch {
		case left && !right:
			pos.X -= player.Speed * deltaTime
			pos.Dirty = true
			if anim != nil {
				anim.SetClip("left_walk")
				anim.Playing = true
			}
		case right && !left:
			pos.X += player.Speed * deltaTime
			pos.Dirty = true
			if anim != nil {
				anim.SetClip("right_walk")
				anim.Playing = true
			}
		default:
			// 静止：停在当前帧
			if anim != nil {
				anim.Playing = false
			}
		}
	}
}
