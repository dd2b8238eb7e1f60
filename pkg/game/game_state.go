package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// GameState 存储全局游戏状态
// 这是一个单例，用于管理跨场景和跨系统的全局状态数据
type GameState struct {
	IsPaused     bool // 游戏是否暂停（ESC 切换）
	DebugOverlay bool // 碰撞盒调试轮廓是否可见（F1 切换）

	settingsManager *SettingsManager
}

// 全局单例实例
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个游戏生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
		globalGameState.DebugOverlay = globalGameState.GetSettingsManager().GetSettings().DebugOverlay
	}
	return globalGameState
}

// ResetGameStateForTest 重置全局单例（仅测试使用）
func ResetGameStateForTest() {
	globalGameState = nil
}

// TogglePause 切换暂停状态
func (gs *GameState) TogglePause() {
	gs.IsPaused = !gs.IsPaused
}

// ToggleDebugOverlay 切换调试轮廓可见性，并把默认值持久化到设置
func (gs *GameState) ToggleDebugOverlay() {
	gs.DebugOverlay = !gs.DebugOverlay
	sm := gs.GetSettingsManager()
	sm.SetDebugOverlay(gs.DebugOverlay)
	if err := sm.Save(); err != nil {
		log.Printf("[GameState] Warning: Failed to save settings: %v", err)
	}
}

// GetSettingsManager 返回设置管理器（延迟初始化）
// gdata 打开失败时进入降级模式（仅内存设置，不持久化）
func (gs *GameState) GetSettingsManager() *SettingsManager {
	if gs.settingsManager == nil {
		gdataManager, err := gdata.Open(gdata.Config{
			AppName: "mini_exp_1",
		})
		if err != nil {
			log.Printf("[GameState] Warning: Failed to open gdata storage: %v (settings will not persist)", err)
			gdataManager = nil
		}
		sm, err := NewSettingsManager(gdataManager)
		if err != nil {
			log.Printf("[GameState] Warning: %v", err)
		}
		gs.settingsManager = sm
	}
	return gs.settingsManager
}
