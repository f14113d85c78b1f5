package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Layer and object group names read from level maps.
const (
	LayerSolid       = "solid"
	LayerPlatform    = "platform"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupItems       = "Items"
)

// ErrNoPlayerSpawn is returned for maps without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("level has no player spawn")

type PlayerSpawn struct {
	X, Y float64
}

// ItemSpawn places an item of Kind, a key into config.ItemDefs.
type ItemSpawn struct {
	X, Y float64
	Kind string
}

// SolidTile represents a solid collision tile
type SolidTile struct {
	X, Y, Width, Height float64
}

type Level struct {
	Background   *ebiten.Image
	SolidTiles   []SolidTile // blocks from every side
	Platforms    []SolidTile // one-way, only landed on from above
	PlayerSpawns []PlayerSpawn
	ItemSpawns   []ItemSpawn
	Name         string
	Width        int
	Height       int
	TileSize     int
}

type LevelLoader struct {
	fsys fs.FS
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: levelFS}
}

// ParseLevel reads geometry and spawns. It does not create any images, so it is safe to call
// before the game loop starts.
func (l *LevelLoader) ParseLevel(levelPath string) (Level, *tiled.Map, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, nil, fmt.Errorf("load %s: %w", levelPath, err)
	}

	level := Level{
		Name:     levelPath,
		Width:    levelMap.Width * levelMap.TileWidth,
		Height:   levelMap.Height * levelMap.TileHeight,
		TileSize: levelMap.TileWidth,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y})
			}
			sort.Slice(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
			})
		case GroupItems:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("item")
				if kind == "" {
					log.Warn("item object without an item property", "level", levelPath, "object", o.ID)
					continue
				}
				level.ItemSpawns = append(level.ItemSpawns, ItemSpawn{X: o.X, Y: o.Y, Kind: kind})
			}
		}
	}
	if len(level.PlayerSpawns) == 0 {
		return Level{}, nil, fmt.Errorf("%s: %w", levelPath, ErrNoPlayerSpawn)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		var dst *[]SolidTile
		switch layer.Name {
		case LayerSolid:
			dst = &level.SolidTiles
		case LayerPlatform:
			dst = &level.Platforms
		default:
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				*dst = append(*dst, SolidTile{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					Width:  tileW,
					Height: tileH,
				})
			}
		}
	}

	return level, levelMap, nil
}

// MustLoadLevel parses a level and renders its visible layers into Background.
func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, levelMap, err := l.ParseLevel(levelPath)
	if err != nil {
		panic(err)
	}

	level.Background = ebiten.NewImage(level.Width, level.Height)

	renderer, err := render.NewRendererWithFileSystem(levelMap, l.fsys)
	if err != nil {
		panic(fmt.Sprintf("Failed to create renderer: %v", err))
	}

	// Use "render" custom property to determine visibility
	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Warn("failed to render layer", "level", levelPath, "layer", layer.Name, "err", err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		level.Background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return level
}

// ImageLoader decodes embedded PNGs once and hands out the same *ebiten.Image for a path
// afterwards, so callers can compare handles.
type ImageLoader struct {
	mu    sync.Mutex
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		fsys:  imageFS,
		cache: make(map[string]*ebiten.Image),
	}
}

// Load returns the image at path, decoding it on first use.
func (l *ImageLoader) Load(path string) (*ebiten.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	img, err := l.Load(path)
	if err != nil {
		panic(err)
	}
	return img
}

var imageLoader = NewImageLoader()

// LoadImage loads an embedded image through the shared cache.
func LoadImage(path string) (*ebiten.Image, error) {
	return imageLoader.Load(path)
}

// GetImage is LoadImage for startup code, where a missing image is fatal.
func GetImage(path string) *ebiten.Image {
	return imageLoader.MustLoadImage(path)
}

// HasImage reports whether path is embedded, without decoding it.
func HasImage(path string) bool {
	_, err := fs.Stat(imageFS, path)
	return err == nil
}
