package main

import (
	"errors"
	"flag"
	"log"

	"github.com/decker502/barnacles/pkg/app"
	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	configPath  = flag.String("config", "", "藤壶配置文件路径（默认使用内置配置）")
	startInMenu = flag.Bool("menu", false, "从主菜单启动")
	seed        = flag.Int64("seed", 0, "随机种子（0 表示使用配置文件或时间种子）")
	historyPath = flag.String("history", "", "会话历史数据库路径")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ConfigPath:  *configPath,
		StartInMenu: *startInMenu,
		Seed:        *seed,
		HistoryPath: *historyPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Barnacles")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		gameApp.Shutdown()
		log.Fatal(err)
	}
	gameApp.Shutdown()
}
