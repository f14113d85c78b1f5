package factory

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/assets"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func countTagged(w donburi.World, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w)
}

func TestBuildRegistryDefaults(t *testing.T) {
	registry, err := BuildRegistry(cfg.Defaults().Clips)
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}

	for _, mode := range []animation.Mode{animation.ModePlatformer, animation.ModeTopDown} {
		sel := animation.NewSelector(animation.Policy{Mode: mode, ItemAffectsClip: true})
		if missing := registry.Missing(sel.Candidates()...); len(missing) > 0 {
			t.Errorf("%s: missing clips %v", mode, missing)
		}
	}

	walk, ok := registry.Lookup(animation.Walk(animation.East))
	if !ok {
		t.Fatal("walk_east not registered")
	}
	if walk.Asset != cfg.TopDownSheet || walk.StartingIndex != 2*cfg.TopDownColumns+4 {
		t.Errorf("walk_east = %+v", walk)
	}
}

func TestBuildRegistryRejects(t *testing.T) {
	tests := []struct {
		name  string
		table cfg.ClipTable
	}{
		{"unknown name", cfg.ClipTable{"dance": {Frames: 1}}},
		{"unknown direction", cfg.ClipTable{"walk_up": {Frames: 1}}},
		{"duplicate id", cfg.ClipTable{"idle": {Frames: 1}, "IDLE": {Frames: 2}}},
		{"zero frames", cfg.ClipTable{"idle": {Frames: 0}}},
		{"negative start", cfg.ClipTable{"idle": {Frames: 1, Start: -1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildRegistry(tc.table); err == nil {
				t.Error("expected an error")
			}
		})
	}

	_, err := BuildRegistry(cfg.ClipTable{"run": {Frames: 2, Duration: -1}})
	if !errors.Is(err, animation.ErrInvalidClip) {
		t.Errorf("err = %v, want ErrInvalidClip", err)
	}
}

func TestNewAnimatorWarnsAboutMissingClips(t *testing.T) {
	saved := cfg.Clips
	t.Cleanup(func() { cfg.Clips = saved })

	cfg.Clips = cfg.Defaults().Clips
	delete(cfg.Clips, "run_carry")
	delete(cfg.Clips, "fall")

	var buf bytes.Buffer
	a, err := NewAnimator(animation.ModePlatformer, log.New(&buf))
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	if a.Selector().Policy().Mode != animation.ModePlatformer {
		t.Errorf("mode = %v", a.Selector().Policy().Mode)
	}
	out := buf.String()
	if !strings.Contains(out, "fall") || !strings.Contains(out, "run_carry") {
		t.Errorf("warning %q does not name the missing clips", out)
	}

	buf.Reset()
	if _, err := NewAnimator(animation.ModeTopDown, log.New(&buf)); err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("top-down table is complete but logged %q", buf.String())
	}
}

func TestCreatePlayer(t *testing.T) {
	tests := []struct {
		mode    animation.Mode
		start   animation.ClipID
		facing  animation.Direction
		gravity float64
	}{
		{animation.ModePlatformer, animation.Idle, animation.East, cfg.Player.Gravity},
		{animation.ModeTopDown, animation.IdleFacing(animation.South), animation.South, 0},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			e := newTestECS()
			CreateSpace(e, 320, 320, 16, 16)
			player := CreatePlayer(e, 100, 200, tc.mode)

			obj := components.Object.Get(player)
			if obj.X+obj.W/2 != 100 || obj.Y+obj.H != 200 {
				t.Errorf("feet at (%v, %v), want (100, 200)", obj.X+obj.W/2, obj.Y+obj.H)
			}
			if obj.Space == nil {
				t.Error("player object was not added to the space")
			}
			if got := components.Animation.Get(player).State.Current; got != tc.start {
				t.Errorf("start clip = %s, want %s", got, tc.start)
			}
			p := components.Player.Get(player)
			if p.Mode != tc.mode || p.Facing != tc.facing {
				t.Errorf("player = %+v", p)
			}
			if g := components.Physics.Get(player).Gravity; g != tc.gravity {
				t.Errorf("gravity = %v, want %v", g, tc.gravity)
			}
		})
	}
}

func TestCreateItem(t *testing.T) {
	e := newTestECS()
	CreateSpace(e, 320, 320, 16, 16)
	icon := new(ebiten.Image)

	item, err := CreateItem(e, assets.ItemSpawn{X: 32, Y: 48, Kind: "soda"}, icon)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	data := components.Item.Get(item)
	if data.Name != "Soda" || data.RestY != 48 || data.Held {
		t.Errorf("item = %+v", data)
	}
	if components.Sprite.Get(item).Image != icon {
		t.Error("sprite does not use the icon")
	}
	if !components.Object.Get(item).HasTags(tags.ResolvItem) {
		t.Error("item object is not tagged")
	}
	if !components.Tween.Get(item).Rising {
		t.Error("bob should start rising")
	}

	if _, err := CreateItem(e, assets.ItemSpawn{Kind: "anvil"}, nil); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestCreateLevel(t *testing.T) {
	level, _, err := assets.NewLevelLoader().ParseLevel(cfg.Levels.Platformer)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}

	var requested []string
	icons := func(path string) (*ebiten.Image, error) {
		requested = append(requested, path)
		return new(ebiten.Image), nil
	}

	e := newTestECS()
	entry := CreateLevel(e, &level, icons)
	if components.Level.Get(entry).CurrentLevel != &level {
		t.Error("level entity does not point at the level")
	}

	if n := countTagged(e.World, tags.Wall); n != len(level.SolidTiles) {
		t.Errorf("walls = %d, want %d", n, len(level.SolidTiles))
	}
	if n := countTagged(e.World, tags.Platform); n != len(level.Platforms) {
		t.Errorf("platforms = %d, want %d", n, len(level.Platforms))
	}
	if n := countTagged(e.World, tags.Item); n != len(level.ItemSpawns) {
		t.Errorf("items = %d, want %d", n, len(level.ItemSpawns))
	}
	if len(requested) != len(level.ItemSpawns) {
		t.Errorf("icons requested = %v", requested)
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		t.Fatal("no space")
	}
	space := components.Space.Get(spaceEntry)
	want := len(level.SolidTiles) + len(level.Platforms) + len(level.ItemSpawns)
	if got := len(space.Objects()); got != want {
		t.Errorf("space objects = %d, want %d", got, want)
	}
}

func TestCreateCursor(t *testing.T) {
	e := newTestECS()
	cursor := CreateCursor(e, nil)
	data := components.Cursor.Get(cursor)
	if data.Clip.FrameCount != cfg.Cursor.FrameCount || data.Size != cfg.Cursor.FrameSize {
		t.Errorf("cursor = %+v", data)
	}
	if data.Clip.Static() {
		t.Error("cursor clip should animate")
	}
}
