//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 移动端不携带嵌入数据，应用会使用内置默认场景。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -javapkg com.mdenchev.miniexp -o build/android/miniexp.aar ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/MiniExp.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/mdenchev/mini-exp-1/pkg/app"
)

func init() {
	a, err := app.NewApp(app.Config{})
	if err != nil {
		log.Fatalf("[Mobile] 应用初始化失败: %v", err)
	}
	mobile.SetGame(a)
}

// Dummy 是 ebitenmobile 要求的导出符号占位
func Dummy() {}
