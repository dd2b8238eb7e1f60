package game

import (
	"os"
	"testing"
)

// withTempHome 把 HOME 指向临时目录，避免测试污染真实设置文件
func withTempHome(t *testing.T) {
	t.Helper()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })
}

// TestGetGameStateSingleton 测试 GetGameState 返回同一个实例
func TestGetGameStateSingleton(t *testing.T) {
	withTempHome(t)
	ResetGameStateForTest()
	t.Cleanup(ResetGameStateForTest)

	gs1 := GetGameState()
	gs2 := GetGameState()
	if gs1 != gs2 {
		t.Error("GetGameState() 两次调用返回了不同实例")
	}
}

// TestTogglePause 测试暂停状态切换
func TestTogglePause(t *testing.T) {
	withTempHome(t)
	ResetGameStateForTest()
	t.Cleanup(ResetGameStateForTest)

	gs := GetGameState()
	if gs.IsPaused {
		t.Fatal("初始状态不应是暂停")
	}
	gs.TogglePause()
	if !gs.IsPaused {
		t.Error("第一次切换后应为暂停")
	}
	gs.TogglePause()
	if gs.IsPaused {
		t.Error("第二次切换后应恢复运行")
	}
}

// TestToggleDebugOverlayPersists 测试调试轮廓开关持久化到设置
func TestToggleDebugOverlayPersists(t *testing.T) {
	withTempHome(t)
	ResetGameStateForTest()
	t.Cleanup(ResetGameStateForTest)

	gs := GetGameState()
	if gs.DebugOverlay {
		t.Fatal("调试轮廓初始应关闭")
	}

	gs.ToggleDebugOverlay()
	if !gs.DebugOverlay {
		t.Fatal("切换后调试轮廓应开启")
	}

	// 模拟重启：重建单例后应从设置中恢复开启状态
	ResetGameStateForTest()
	gs2 := GetGameState()
	if !gs2.DebugOverlay {
		t.Error("重建单例后调试轮廓设置未恢复")
	}
}
