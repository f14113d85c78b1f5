// popcorn-guy is a small 2D game where a character walks, jumps and carries items around a
// level, in either a side-on platformer mode or a top-down mode.
//
// Usage:
//
//	popcorn-guy                  - Start at the main menu
//	popcorn-guy --skip-menu      - Start straight in the level for --mode
//	popcorn-guy clips            - List the clip table and what the selector is missing
//
// Global flags:
//
//	--config <path>      - YAML settings layered over the defaults
//	--mode <mode>        - platformer or topdown
//	--epsilon <speed>    - Velocity below which an actor counts as still
//	--debug              - Start with the debug overlay visible
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/fonts"
	"github.com/automoto/popcorn-guy/scenes"
	"github.com/automoto/popcorn-guy/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagMode     string
	flagEpsilon  float64
	flagDebug    bool
	flagLogLevel string
	flagSkipMenu bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "popcorn-guy",
	Short:        "Walk, jump and carry snacks around a level",
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML settings file")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Game mode: platformer or topdown (default from settings)")
	rootCmd.PersistentFlags().Float64Var(&flagEpsilon, "epsilon", 0, "Velocity epsilon for clip selection (default from settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay visible")
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Skip the menu and start in the level")

	rootCmd.AddCommand(clipsCmd)
}

// prepare sets up logging and applies settings from the config file and flags. It returns the
// mode the game starts in.
func prepare(cmd *cobra.Command) (animation.Mode, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "popcorn",
		Level:           level,
	})
	log.SetDefault(logger)

	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return 0, err
	}
	if cmd.Flags().Changed("mode") {
		settings.Animation.Mode = flagMode
	}
	if cmd.Flags().Changed("epsilon") {
		settings.Animation.VelocityEpsilon = flagEpsilon
	}
	if err := settings.Validate(); err != nil {
		return 0, err
	}
	config.Apply(settings)
	log.Debug("settings loaded", "source", source)

	return animation.ParseMode(config.Animation.Mode)
}

func runGame(cmd *cobra.Command, args []string) error {
	mode, err := prepare(cmd)
	if err != nil {
		return err
	}
	config.Debug = config.DebugConfig{
		SkipMenu: flagSkipMenu,
		Overlay:  flagDebug,
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	if saved, err := systems.LoadSettings(); err != nil {
		log.Warn("could not load saved settings", "err", err)
	} else if saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	return ebiten.RunGame(NewGame(mode))
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(mode animation.Mode) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, mode)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}
