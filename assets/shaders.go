package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// HighlightShader brightens items a player can pick up.
	HighlightShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/highlight.kage")
	if err != nil {
		return err
	}
	HighlightShader, err = ebiten.NewShader(src)
	return err
}
