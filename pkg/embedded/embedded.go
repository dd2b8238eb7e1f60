// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 未调用 Init() 时处于降级模式：ReadFile 返回错误，
// 调用方应退回到内置默认配置（移动端构建走这条路径）。
package embedded

import (
	"embed"
	"fmt"
)

var (
	dataFS      embed.FS
	initialized bool
)

// Init 初始化 embed.FS 变量
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data embed.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// ReadFile 读取嵌入的数据文件（路径以 "data/" 开头）
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded 包未初始化，无法读取 %s", path)
	}
	return dataFS.ReadFile(path)
}
