package systems

import (
	"testing"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

// pressGlobal starts a new tick of the shared input with exactly the given actions held.
func pressGlobal(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func stubExit(t *testing.T) *int {
	t.Helper()
	calls := 0
	saved := exitGame
	exitGame = func() { calls++ }
	t.Cleanup(func() { exitGame = saved })
	return &calls
}

func TestMainMenu(t *testing.T) {
	exits := stubExit(t)
	changer := &recordingChanger{}
	var started []animation.Mode
	system := NewUpdateMenu(changer, func(m animation.Mode) interface{} {
		started = append(started, m)
		return m
	})

	e := ecs.NewECS(donburi.NewWorld())
	menu := GetOrCreateMenu(e)

	pressGlobal(e, cfg.ActionMenuUp)
	system(e)
	if menu.SelectedIndex != int(components.MainMenuExit) {
		t.Errorf("up from the top selected %d, expected wrap to Exit", menu.SelectedIndex)
	}

	pressGlobal(e, cfg.ActionMenuDown)
	system(e)
	pressGlobal(e, cfg.ActionMenuDown)
	system(e)
	if menu.SelectedIndex != int(components.MainMenuTopDown) {
		t.Fatalf("selected %d, expected Top-Down", menu.SelectedIndex)
	}

	pressGlobal(e, cfg.ActionMenuSelect)
	system(e)
	if len(started) != 1 || started[0] != animation.ModeTopDown {
		t.Errorf("started %v, expected one top-down game", started)
	}
	if len(changer.scenes) != 1 {
		t.Errorf("scene changes = %d, expected 1", len(changer.scenes))
	}
	if *exits != 0 {
		t.Error("selecting a mode exited")
	}

	pressGlobal(e, cfg.ActionMenuBack)
	system(e)
	if *exits != 1 {
		t.Error("back did not exit")
	}
	if len(GetOrCreateAudio(e).PendingSFX) == 0 {
		t.Error("menu navigation queued no sounds")
	}
}

func TestPauseMenu(t *testing.T) {
	exits := stubExit(t)
	changer := &recordingChanger{}
	system := NewUpdatePause(changer, func() interface{} { return "menu" })

	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)

	ticks := 0
	gameplay := WithPauseCheck(func(*ecs.ECS) { ticks++ })

	pressGlobal(e, cfg.ActionPause)
	system(e)
	gameplay(e)
	if !pause.IsPaused || ticks != 0 {
		t.Fatalf("paused = %v, gameplay ticks = %d", pause.IsPaused, ticks)
	}

	pressGlobal(e, cfg.ActionMenuDown)
	system(e)
	if pause.SelectedOption != components.MenuMainMenu {
		t.Errorf("selected %v, expected Main Menu", pause.SelectedOption)
	}
	pressGlobal(e, cfg.ActionMenuSelect)
	system(e)
	if len(changer.scenes) != 1 || changer.scenes[0] != "menu" {
		t.Errorf("scenes = %v, expected the menu", changer.scenes)
	}

	pressGlobal(e, cfg.ActionMenuUp)
	system(e)
	pressGlobal(e, cfg.ActionMenuSelect)
	system(e)
	gameplay(e)
	if pause.IsPaused || ticks != 1 {
		t.Errorf("Resume left paused = %v, gameplay ticks = %d", pause.IsPaused, ticks)
	}

	// Menu input is ignored while not paused.
	pressGlobal(e, cfg.ActionMenuSelect)
	system(e)
	if *exits != 0 || len(changer.scenes) != 1 {
		t.Error("menu input acted while unpaused")
	}

	pressGlobal(e, cfg.ActionPause)
	system(e)
	pressGlobal(e, cfg.ActionMenuUp)
	system(e)
	pressGlobal(e, cfg.ActionMenuSelect)
	system(e)
	if *exits != 1 {
		t.Error("Exit did not exit")
	}
}
