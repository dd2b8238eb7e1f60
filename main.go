package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mdenchev/mini-exp-1/pkg/app"
	"github.com/mdenchev/mini-exp-1/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	scenePath := flag.String("scene", "", "从磁盘加载场景配置文件（默认使用嵌入场景）")
	flag.Parse()

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		ScenePath: *scenePath,
	})
	if err != nil {
		log.Fatal(err)
	}

	sceneConfig := a.GetSceneConfig()
	ebiten.SetWindowSize(sceneConfig.Window.Width, sceneConfig.Window.Height)
	ebiten.SetWindowTitle(sceneConfig.Window.Title)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
