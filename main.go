package main

import (
	"flag"
	"log"

	"github.com/decker502/overworld/pkg/app"
	"github.com/decker502/overworld/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configDir := flag.String("config-dir", "", "从磁盘目录读取配置（覆盖嵌入的 data/）")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		ConfigDir: *configDir,
	})
	if err != nil {
		log.Fatalf("启动失败: %v", err)
	}

	display := game.Display()
	ebiten.SetWindowSize(display.Width, display.Height)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.TicksPerSecond)
	ebiten.SetFullscreen(display.Fullscreen)

	// Start the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
