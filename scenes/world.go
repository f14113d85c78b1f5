package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/assets"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/systems"
	"github.com/automoto/popcorn-guy/systems/factory"
	"github.com/automoto/popcorn-guy/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one level in either the platformer or the top-down mode.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	mode         animation.Mode
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, mode animation.Mode) *WorldScene {
	return &WorldScene{sceneChanger: sc, mode: mode}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// levelPath returns the map configured for the scene's mode.
func (ws *WorldScene) levelPath() string {
	if ws.mode == animation.ModeTopDown {
		return cfg.Levels.TopDown
	}
	return cfg.Levels.Platformer
}

func (ws *WorldScene) configure() {
	logger := log.With("scene", "world", "mode", ws.mode.String())
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	systems.PreloadAllSFX()
	if err := assets.LoadShaders(); err != nil {
		logger.Warn("shaders unavailable, items in reach are drawn plain", "err", err)
	}

	level := assets.NewLevelLoader().MustLoadLevel(ws.levelPath())
	factory.CreateLevel(ws.ecs, &level, assets.LoadImage)

	spawn := assets.PlayerSpawn{X: float64(level.Width) / 2, Y: float64(level.Height) / 2}
	if len(level.PlayerSpawns) > 0 {
		spawn = level.PlayerSpawns[0]
	} else {
		logger.Warn("level has no player spawn, starting at its center", "level", level.Name)
	}
	factory.CreatePlayer(ws.ecs, spawn.X, spawn.Y, ws.mode)
	factory.CreateCamera(ws.ecs)
	systems.SnapCamera(ws.ecs)

	cursorSheet, err := assets.LoadImage(cfg.Cursor.Sheet)
	if err != nil {
		logger.Warn("cursor sheet unavailable", "sheet", cfg.Cursor.Sheet, "err", err)
	}
	factory.CreateCursor(ws.ecs, cursorSheet)

	animator, err := factory.NewAnimator(ws.mode, logger)
	if err != nil {
		logger.Fatal("failed to build clip registry", "err", err)
	}

	hud, err := ui.NewInventoryHUD()
	if err != nil {
		logger.Fatal("failed to build HUD", "err", err)
	}

	createMenuScene := func() interface{} {
		return NewMenuScene(ws.sceneChanger)
	}

	ws.ecs.AddSystem(systems.UpdateAudio)
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdatePlayerInput)
	ws.ecs.AddSystem(systems.NewUpdatePause(ws.sceneChanger, createMenuScene))
	ws.ecs.AddSystem(systems.UpdateSettings)

	// Gameplay stops while paused
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateItems))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.NewAnimationSystem(animator, assets.LoadImage)))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	ws.ecs.AddSystem(systems.UpdateCursor)
	ws.ecs.AddSystem(systems.NewUpdateHUD(hud))

	ws.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawItems)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ws.ecs.AddRenderer(cfg.LayerUI, systems.NewDrawHUD(hud))
	ws.ecs.AddRenderer(cfg.LayerUI, systems.DrawPause)
	ws.ecs.AddRenderer(cfg.LayerUI, systems.DrawCursor)

	logger.Info("level loaded", "level", level.Name, "items", len(level.ItemSpawns))
}
