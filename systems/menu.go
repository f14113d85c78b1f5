package systems

import (
	"image/color"
	"os"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based API matches the fonts package
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// exitGame ends the process when Exit is chosen from a menu.
var exitGame = func() { os.Exit(0) }

const numMainMenuOptions = int(components.MainMenuExit) + 1

// NewUpdateMenu creates the main menu system. startGame builds the world scene for a mode.
func NewUpdateMenu(sceneChanger SceneChanger, startGame func(animation.Mode) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numMainMenuOptions) % numMainMenuOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numMainMenuOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch components.MainMenuOption(menu.SelectedIndex) {
			case components.MainMenuPlatformer:
				sceneChanger.ChangeScene(startGame(animation.ModePlatformer))
			case components.MainMenuTopDown:
				sceneChanger.ChangeScene(startGame(animation.ModeTopDown))
			case components.MainMenuExit:
				exitGame()
			}
			return
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			exitGame()
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), width, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, label := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, label, menuFont, width, int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(e)
	drawCentered(screen, getMenuHint(input.LastInputMethod), fonts.Small.Get(), width, int(height)-12, cfg.Menu.TextColorNormal)
}

// drawCentered draws s horizontally centered with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, width float64, y int, c color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int(width)/2-w/2, y, c)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Quit"
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
