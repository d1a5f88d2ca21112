// Package app 提供游戏应用的核心包装器
//
// 该包负责加载配置、创建输入处理器和资源管理器，并启动大地图场景。
// 桌面端通过 main.go 调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/overworld/pkg/animation"
	"github.com/decker502/overworld/pkg/config"
	"github.com/decker502/overworld/pkg/embedded"
	"github.com/decker502/overworld/pkg/game"
	"github.com/decker502/overworld/pkg/input"
	"github.com/decker502/overworld/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 配置文件路径（相对于 data 根目录）
const (
	DisplayConfigPath     = "data/display.yaml"
	BindingsConfigPath    = "data/bindings.yaml"
	SpriteSheetConfigPath = "data/trainer_spritesheet.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigDir 从磁盘目录读取 data/ 下的文件，为空则使用嵌入资源
	ConfigDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	display      *config.DisplayConfig
	sceneManager *game.SceneManager
	overworld    *scenes.OverworldScene

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入资源时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	readFile := newReadFileFunc(cfg.ConfigDir)

	display, err := loadConfig(readFile, DisplayConfigPath, config.ParseDisplayConfig)
	if err != nil {
		return nil, fmt.Errorf("显示配置加载失败: %w", err)
	}
	bindings, err := loadConfig(readFile, BindingsConfigPath, config.ParseBindingsConfig)
	if err != nil {
		return nil, fmt.Errorf("输入绑定加载失败: %w", err)
	}
	sheet, err := loadConfig(readFile, SpriteSheetConfigPath, config.ParseSpriteSheetConfig)
	if err != nil {
		return nil, fmt.Errorf("行走图配置加载失败: %w", err)
	}
	log.Printf("[Config] 显示 %dx%d @ %d TPS, 行走图 %dx%d 网格",
		display.Width, display.Height, display.TicksPerSecond, sheet.Columns, sheet.Rows)

	// 区间表只在启动时构建一次，之后只读
	table, err := sheet.RangeTable()
	if err != nil {
		return nil, fmt.Errorf("行走图区间无效: %w", err)
	}
	priority, err := bindings.Priority()
	if err != nil {
		return nil, fmt.Errorf("输入绑定无效: %w", err)
	}
	for _, d := range animation.Directions {
		log.Printf("[Config] %-5s 帧区间 %s", d, table.Range(d))
	}
	log.Printf("[Config] 轴优先级: %s", priority)

	inputHandler, err := input.NewInputHandler(bindings, nil)
	if err != nil {
		return nil, fmt.Errorf("输入处理器创建失败: %w", err)
	}

	resourceManager := game.NewResourceManager(readFile, sheet, table)

	overworld := scenes.NewOverworldScene(scenes.OverworldDeps{
		Display:   display,
		Resources: resourceManager,
		Input:     inputHandler,
		Selector:  animation.NewSelector(table, priority),
	})

	sceneManager := game.NewSceneManager()
	if err := sceneManager.SwitchTo(overworld); err != nil {
		return nil, fmt.Errorf("场景启动失败: %w", err)
	}

	log.Printf("[App] Overworld started")
	return &App{
		display:      display,
		sceneManager: sceneManager,
		overworld:    overworld,
	}, nil
}

// newReadFileFunc 返回资源读取函数：ConfigDir 非空时读磁盘，否则读嵌入资源
func newReadFileFunc(configDir string) game.ReadFileFunc {
	if configDir == "" {
		return embedded.ReadFile
	}
	return func(path string) ([]byte, error) {
		path = strings.TrimPrefix(filepath.ToSlash(path), "data/")
		return os.ReadFile(filepath.Join(configDir, filepath.FromSlash(path)))
	}
}

// loadConfig 读取并解析一个配置文件
func loadConfig[T any](readFile game.ReadFileFunc, path string, parse func([]byte) (T, error)) (T, error) {
	var zero T
	data, err := readFile(path)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parse(data)
}

// Display 返回显示配置
func (a *App) Display() *config.DisplayConfig {
	return a.display
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.display.Width, a.display.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.display.Width, a.display.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// F3 切换 FPS 显示
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.overworld.ToggleFPS()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时使用背景色填充 letterbox，并用最近邻滤波保持像素风格
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.display.Width, a.display.Height
}
