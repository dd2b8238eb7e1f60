// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mdenchev/mini-exp-1/pkg/config"
	"github.com/mdenchev/mini-exp-1/pkg/embedded"
	"github.com/mdenchev/mini-exp-1/pkg/game"
	"github.com/mdenchev/mini-exp-1/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ScenePath 指定磁盘上的场景配置文件，为空则使用嵌入的默认场景
	ScenePath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	sceneConfig              *config.SceneConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := loadSceneConfig(cfg.ScenePath)
	if err != nil {
		return nil, err
	}

	// 按已保存的设置决定是否全屏启动
	gameState := game.GetGameState()
	if gameState.GetSettingsManager().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	sceneManager := game.NewSceneManager()
	gameScene, err := scenes.NewGameScene(sceneConfig)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(gameScene)

	return &App{
		sceneManager: sceneManager,
		sceneConfig:  sceneConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadSceneConfig 按优先级加载场景配置：
// 命令行指定的文件 → 嵌入的 data/scene.yaml → 内置默认场景
func loadSceneConfig(scenePath string) (*config.SceneConfig, error) {
	if scenePath != "" {
		sceneConfig, err := config.LoadSceneConfig(scenePath)
		if err != nil {
			return nil, err
		}
		log.Printf("[App] 加载场景配置: %s", scenePath)
		return sceneConfig, nil
	}

	if data, err := embedded.ReadFile("data/scene.yaml"); err == nil {
		sceneConfig, err := config.ParseSceneConfig(data)
		if err != nil {
			return nil, fmt.Errorf("嵌入场景配置无效: %w", err)
		}
		log.Printf("[App] 加载嵌入场景配置")
		return sceneConfig, nil
	}

	// 嵌入数据不可用（如移动端构建），使用内置默认场景
	log.Printf("[App] 嵌入数据不可用，使用内置默认场景")
	return config.DefaultSceneConfig(), nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.sceneConfig.Window.Width, a.sceneConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.sceneConfig.Window.Width, a.sceneConfig.Window.Height
}

// GetSceneConfig 返回已加载的场景配置（main 用于设置窗口参数）
func (a *App) GetSceneConfig() *config.SceneConfig {
	return a.sceneConfig
}
