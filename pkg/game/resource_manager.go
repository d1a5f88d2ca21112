package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"log"

	"github.com/decker502/overworld/pkg/animation"
	"github.com/decker502/overworld/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// ReadFileFunc reads a resource by path (e.g. embedded.ReadFile or os.ReadFile).
type ReadFileFunc func(path string) ([]byte, error)

// ResourceManager owns the trainer sprite sheet and the UI font.
//
// The sprite sheet is either decoded from the PNG named by SpriteSheetConfig.Texture
// or generated as a placeholder when no texture is configured. Frame sub-images are
// cached by frame index, so each cell is sliced only once.
//
// Thread Safety Note:
// Not thread-safe. All access happens on the ebiten game loop goroutine.
type ResourceManager struct {
	readFile    ReadFileFunc
	sheetConfig *config.SpriteSheetConfig
	rangeTable  *animation.RangeTable

	sheet      *ebiten.Image
	frameCache map[int]*ebiten.Image
	fontCache  map[float64]*text.GoTextFace
}

// NewResourceManager creates a ResourceManager for the given sprite sheet layout.
//
// Parameters:
//   - readFile: used to read the texture PNG; may be nil when no texture is configured.
//   - sheetConfig: sprite sheet layout (must already be validated).
//   - table: direction range table used to paint placeholder frames.
func NewResourceManager(readFile ReadFileFunc, sheetConfig *config.SpriteSheetConfig, table *animation.RangeTable) *ResourceManager {
	return &ResourceManager{
		readFile:    readFile,
		sheetConfig: sheetConfig,
		rangeTable:  table,
		frameCache:  make(map[int]*ebiten.Image),
		fontCache:   make(map[float64]*text.GoTextFace),
	}
}

// LoadSpriteSheet loads (or generates) the trainer sprite sheet.
// Calling it again replaces the sheet and clears the frame cache.
//
// Returns:
//   - An error if the texture cannot be read or decoded, or is smaller than the grid.
func (rm *ResourceManager) LoadSpriteSheet() error {
	cfg := rm.sheetConfig
	if cfg.Texture == "" {
		rm.sheet = ebiten.NewImageFromImage(RenderPlaceholderSheet(cfg, rm.rangeTable))
		rm.frameCache = make(map[int]*ebiten.Image)
		log.Printf("[ResourceManager] 使用程序生成的占位行走图 (%dx%d, %d 帧)",
			cfg.Columns*cfg.SpriteWidth, cfg.Rows*cfg.SpriteHeight, cfg.FrameCount())
		return nil
	}

	if rm.readFile == nil {
		return fmt.Errorf("no file reader configured for texture %s", cfg.Texture)
	}
	data, err := rm.readFile(cfg.Texture)
	if err != nil {
		return fmt.Errorf("failed to read sprite sheet %s: %w", cfg.Texture, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode sprite sheet %s: %w", cfg.Texture, err)
	}

	if err := checkSheetBounds(cfg, img.Bounds()); err != nil {
		return fmt.Errorf("sprite sheet %s: %w", cfg.Texture, err)
	}

	rm.sheet = ebiten.NewImageFromImage(img)
	rm.frameCache = make(map[int]*ebiten.Image)
	log.Printf("[ResourceManager] 加载行走图: %s", cfg.Texture)
	return nil
}

// SpriteFrame returns the sub-image for a frame index, or nil when the sheet is not
// loaded or the index is outside the grid.
func (rm *ResourceManager) SpriteFrame(index int) *ebiten.Image {
	if rm.sheet == nil || index < 0 || index >= rm.sheetConfig.FrameCount() {
		return nil
	}
	if frame, ok := rm.frameCache[index]; ok {
		return frame
	}
	frame := rm.sheet.SubImage(FrameRect(rm.sheetConfig, index)).(*ebiten.Image)
	rm.frameCache[index] = frame
	return frame
}

// SpriteSheetConfig returns the sheet layout.
func (rm *ResourceManager) SpriteSheetConfig() *config.SpriteSheetConfig {
	return rm.sheetConfig
}

// LoadFont returns a monospace UI font face of the given size, cached per size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if face, ok := rm.fontCache[size]; ok {
		return face, nil
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontCache[size] = face
	return face, nil
}

// FrameRect returns the pixel rectangle of a frame index in a row-major grid.
func FrameRect(cfg *config.SpriteSheetConfig, index int) image.Rectangle {
	col := index % cfg.Columns
	row := index / cfg.Columns
	x := col * cfg.SpriteWidth
	y := row * cfg.SpriteHeight
	return image.Rect(x, y, x+cfg.SpriteWidth, y+cfg.SpriteHeight)
}

// checkSheetBounds verifies the decoded texture covers the whole grid.
func checkSheetBounds(cfg *config.SpriteSheetConfig, bounds image.Rectangle) error {
	wantW := cfg.Columns * cfg.SpriteWidth
	wantH := cfg.Rows * cfg.SpriteHeight
	if bounds.Dx() < wantW || bounds.Dy() < wantH {
		return fmt.Errorf("texture is %dx%d, grid needs %dx%d", bounds.Dx(), bounds.Dy(), wantW, wantH)
	}
	return nil
}
