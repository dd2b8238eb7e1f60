// Package scenes 实现具体的游戏场景
package scenes

import (
	"fmt"
	"image/color"
	"log"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/mdenchev/mini-exp-1/pkg/collision"
	"github.com/mdenchev/mini-exp-1/pkg/components"
	"github.com/mdenchev/mini-exp-1/pkg/config"
	"github.com/mdenchev/mini-exp-1/pkg/ecs"
	"github.com/mdenchev/mini-exp-1/pkg/entities"
	"github.com/mdenchev/mini-exp-1/pkg/game"
	"github.com/mdenchev/mini-exp-1/pkg/systems"
)

// GameScene 游戏主场景
// 按配置生成实体，持有碰撞注册表和全部系统，驱动每帧管线
type GameScene struct {
	entityManager *ecs.EntityManager
	registry      *collision.Registry
	gameState     *game.GameState
	cfg           *config.SceneConfig

	inputSystem     *systems.InputSystem
	animationSystem *systems.AnimationSystem
	hitboxSystem    *systems.HitboxSystem
	collisionSystem *systems.CollisionSystem
	renderSystem    *systems.RenderSystem

	playerID    ecs.EntityID
	npcNames    map[ecs.EntityID]string // NPC所有者实体ID → 名字
	questTarget string                  // 任务目标NPC名字（场景中第一个NPC）
	questDone   bool
}

// NewGameScene 按场景配置构建游戏场景
func NewGameScene(cfg *config.SceneConfig) (*GameScene, error) {
	em := ecs.NewEntityManager()
	registry := collision.NewRegistry()
	// 实体销毁时同步清理注册表，快照绝不引用已销毁的实体；
	// 碰撞体实体随所有者一起销毁（级联标记在同一次清理内处理）
	hitboxType := reflect.TypeOf(&components.HitboxComponent{})
	em.AddDestroyHook(func(id ecs.EntityID) {
		registry.Remove(id)
		registry.RemoveOwner(id)
		for _, volumeID := range em.GetEntitiesWith(hitboxType) {
			hbComp, _ := em.GetComponent(volumeID, hitboxType)
			if hbComp.(*components.HitboxComponent).Owner == id {
				em.DestroyEntity(volumeID)
			}
		}
	})

	gs := game.GetGameState()

	s := &GameScene{
		entityManager: em,
		registry:      registry,
		gameState:     gs,
		cfg:           cfg,
		npcNames:      make(map[ecs.EntityID]string),
	}

	if err := s.spawnEntities(); err != nil {
		return nil, err
	}

	s.inputSystem = systems.NewInputSystem(em, gs)
	s.animationSystem = systems.NewAnimationSystem(em)
	s.hitboxSystem = systems.NewHitboxSystem(em, registry)
	s.collisionSystem = systems.NewCollisionSystem(em, registry)
	s.collisionSystem.OnSensorOverlap = s.handleSensorOverlap
	s.renderSystem = systems.NewRenderSystem(em)

	log.Printf("[GameScene] 场景构建完成: %d 个实体配置, 任务目标: %s", len(cfg.Entities), s.questTarget)
	return s, nil
}

// spawnEntities 按配置生成全部场景实体
func (s *GameScene) spawnEntities() error {
	debugVisible := s.gameState.DebugOverlay

	for _, ec := range s.cfg.Entities {
		switch ec.Type {
		case "player":
			id, err := entities.NewPlayer(s.entityManager, ec, s.cfg.RenderScale, s.cfg.PlayerSpeed, debugVisible)
			if err != nil {
				return fmt.Errorf("场景实体生成失败: %w", err)
			}
			s.playerID = id
		case "npc":
			id, err := entities.NewNpc(s.entityManager, ec, s.cfg.RenderScale, debugVisible)
			if err != nil {
				return fmt.Errorf("场景实体生成失败: %w", err)
			}
			s.npcNames[id] = ec.Name
			if s.questTarget == "" {
				s.questTarget = ec.Name
			}
		case "wall":
			if _, err := entities.NewWall(s.entityManager, ec, debugVisible); err != nil {
				return fmt.Errorf("场景实体生成失败: %w", err)
			}
		case "zone":
			if _, err := entities.NewTriggerZone(s.entityManager, ec, debugVisible); err != nil {
				return fmt.Errorf("场景实体生成失败: %w", err)
			}
		default:
			// 配置加载时已校验，到这里属于程序错误
			return fmt.Errorf("未知的实体类型: %q", ec.Type)
		}
	}
	return nil
}

// Update 驱动每帧管线
//
// 顺序固定：输入 → 动画 → 包围盒重算 → 碰撞解算 → 清理销毁实体。
// 解算只能读取本帧刷新后的注册表快照，顺序不可交换。
func (s *GameScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	if s.gameState.IsPaused {
		return
	}
	s.animationSystem.Update(deltaTime)
	s.hitboxSystem.Update()
	s.collisionSystem.Update()
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景：实体精灵、碰撞盒调试轮廓、任务文本
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})
	s.renderSystem.Draw(screen)
	s.drawHitboxDebug(screen)
	s.drawQuestText(screen)

	if s.gameState.IsPaused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (ESC)", s.cfg.Window.Width/2-40, s.cfg.Window.Height/2)
	}
}

// handleSensorOverlap 传感器重叠回调：玩家进入任务目标NPC的对话范围时完成任务
func (s *GameScene) handleSensorOverlap(ov collision.Overlap) {
	if s.questDone {
		return
	}
	var other ecs.EntityID
	switch {
	case ov.A.Owner == s.playerID:
		other = ov.B.Owner
	case ov.B.Owner == s.playerID:
		other = ov.A.Owner
	default:
		return
	}
	if name, ok := s.npcNames[other]; ok && name == s.questTarget {
		s.questDone = true
		log.Printf("[GameScene] 任务完成: 与 %s 相遇", name)
	}
}
