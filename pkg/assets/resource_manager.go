// Package assets loads game images and fonts and builds the sprite set.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/kokaton/pkg/types"
)

// ResourceManager is responsible for loading and caching game resources.
// Images and fonts are read from a single file system (the asset directory on
// desktop, the embedded asset tree on mobile) and loaded only once.
//
// It also owns the sprite registry: every transformed image the game draws is
// registered under an ImageID, and the renderer resolves sprites through Image.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens during startup
// on the main goroutine, before the game loop starts.
type ResourceManager struct {
	fsys fs.FS

	imageCache      map[string]*ebiten.Image          // path -> Image
	fontSourceCache map[string]*text.GoTextFaceSource // path -> face source
	fontFaceCache   map[string]*text.GoTextFace       // "path:size" -> face
	registry        map[types.ImageID]*ebiten.Image   // sprite ID -> Image
}

// NewResourceManager creates a ResourceManager reading from fsys.
//
// Example:
//
//	rm := NewResourceManager(os.DirFS("fig"))
//	img, err := rm.LoadImage("3.png")
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:            fsys,
		imageCache:      make(map[string]*ebiten.Image),
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
		registry:        make(map[types.ImageID]*ebiten.Image),
	}
}

// LoadImage loads an image file and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG, JPEG and GIF (first frame).
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or the file is corrupted.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	p = path.Clean(p)
	if cachedImage, exists := rm.imageCache[p]; exists {
		return cachedImage, nil
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg

	log.Printf("[ResourceManager] 加载图片: %s (%s, %dx%d)", p, format, img.Bounds().Dx(), img.Bounds().Dy())
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	return rm.imageCache[path.Clean(p)]
}

// LoadFont loads a TrueType/OpenType font face of the given size.
// An empty path selects the bundled Go Regular font.
// Faces are cached per (path, size); the parsed source is shared between sizes.
func (rm *ResourceManager) LoadFont(p string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", p, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.loadFontSource(p)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

func (rm *ResourceManager) loadFontSource(p string) (*text.GoTextFaceSource, error) {
	if source, exists := rm.fontSourceCache[p]; exists {
		return source, nil
	}

	fontData := goregular.TTF
	if p != "" {
		data, err := fs.ReadFile(rm.fsys, path.Clean(p))
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", p, err)
		}
		fontData = data
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %q: %w", p, err)
	}
	rm.fontSourceCache[p] = source
	return source, nil
}

// GetFont retrieves a previously loaded font face from the cache, or nil.
func (rm *ResourceManager) GetFont(p string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fmt.Sprintf("%s:%.1f", p, size)]
}

// Register stores img under id and returns the matching sprite.
func (rm *ResourceManager) Register(id types.ImageID, img *ebiten.Image) types.Sprite {
	rm.registry[id] = img
	b := img.Bounds()
	return types.Sprite{ID: id, W: b.Dx(), H: b.Dy()}
}

// Image resolves a registered sprite image, or nil if id is unknown.
func (rm *ResourceManager) Image(id types.ImageID) *ebiten.Image {
	return rm.registry[id]
}
