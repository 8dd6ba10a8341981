// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"

	"github.com/decker502/barnacles/pkg/config"
	"github.com/decker502/barnacles/pkg/embedded"
	"github.com/decker502/barnacles/pkg/game"
	"github.com/decker502/barnacles/pkg/scenes"
	"github.com/decker502/barnacles/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "barnacles"

// embeddedConfigPath 打包进二进制的默认藤壶配置
const embeddedConfigPath = "data/barnacle.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 藤壶配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// StartInMenu 从菜单启动，默认直接进入游戏
	StartInMenu bool
	// Seed 随机种子，非 0 时覆盖配置文件中的值
	Seed int64
	// HistoryPath 会话历史数据库路径，为空则使用存储目录下的 history.db
	HistoryPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	history                  *game.HistoryStore
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	barnacleConfig, err := loadBarnacleConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("藤壶配置加载失败: %w", err)
	}
	if cfg.Seed != 0 {
		barnacleConfig.Seed = cfg.Seed
	}
	log.Printf("[Config] Barnacle config: interval=%.2fs attaching=%.2fs attached=%.2fs cycle=%d seed=%d",
		barnacleConfig.SpawnInterval, barnacleConfig.AttachingPeriod, barnacleConfig.AttachedDuration,
		barnacleConfig.MaterialCycle, barnacleConfig.Seed)

	// 设置存储：gdata 不可用时降级为内存设置
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
	} else {
		gdataManager = m
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	history, err := game.OpenHistoryStore(historyPath(cfg.HistoryPath))
	if err != nil {
		return nil, fmt.Errorf("会话历史打开失败: %w", err)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(sceneManager, settingsManager, history, barnacleConfig))

	if cfg.StartInMenu {
		sceneManager.SwitchMode(game.ModeMenu)
	} else {
		sceneManager.SwitchMode(game.ModeGame)
	}
	if sceneManager.GetCurrentScene() == nil {
		history.Close()
		return nil, errors.New("failed to create initial scene")
	}
	log.Printf("[App] Starting in %s", sceneManager.GetCurrentMode())

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		history:         history,
		verbose:         cfg.Verbose,
	}, nil
}

// loadBarnacleConfig 优先读取指定文件，否则使用嵌入的默认配置
func loadBarnacleConfig(path string) (*config.BarnacleConfig, error) {
	if path != "" {
		return config.LoadBarnacleConfig(path)
	}
	if !embedded.Exists(embeddedConfigPath) {
		log.Printf("[Config] Embedded config unavailable, using defaults")
		return config.DefaultBarnacleConfig(), nil
	}
	data, err := embedded.ReadFile(embeddedConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseBarnacleConfig(data)
}

// historyPath 返回会话历史数据库路径
func historyPath(path string) string {
	if path != "" {
		return path
	}
	if dir := utils.GetStoragePath(); dir != "" {
		return filepath.Join(dir, "history.db")
	}
	return filepath.Join("saves", "history.db")
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.sceneManager.QuitRequested() {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	wasFullscreen := ebiten.IsFullscreen()
	if wasFullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(!wasFullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save fullscreen setting: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 程序退出时调用：当前场景保存会话，关闭历史数据库
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
	if err := a.history.Close(); err != nil {
		log.Printf("[App] Warning: failed to close history: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
