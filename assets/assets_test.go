package assets

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		path      string
		width     int
		height    int
		solids    int
		platforms int
		spawn     PlayerSpawn
		itemKinds []string
	}{
		{
			path: "levels/platformer.tmx", width: 960, height: 480,
			solids: 304, platforms: 25,
			spawn:     PlayerSpawn{X: 48, Y: 380},
			itemKinds: []string{"ice_cream", "soda"},
		},
		{
			path: "levels/meadow.tmx", width: 800, height: 640,
			solids: 207, platforms: 0,
			spawn:     PlayerSpawn{X: 400, Y: 400},
			itemKinds: []string{"ice_cream", "soda"},
		},
	}

	loader := NewLevelLoader()
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			level, _, err := loader.ParseLevel(tc.path)
			if err != nil {
				t.Fatalf("ParseLevel: %v", err)
			}
			if level.Width != tc.width || level.Height != tc.height {
				t.Errorf("size = %dx%d, want %dx%d", level.Width, level.Height, tc.width, tc.height)
			}
			if level.TileSize != 16 {
				t.Errorf("TileSize = %d, want 16", level.TileSize)
			}
			if len(level.SolidTiles) != tc.solids {
				t.Errorf("solid tiles = %d, want %d", len(level.SolidTiles), tc.solids)
			}
			if len(level.Platforms) != tc.platforms {
				t.Errorf("platforms = %d, want %d", len(level.Platforms), tc.platforms)
			}
			if len(level.PlayerSpawns) != 1 || level.PlayerSpawns[0] != tc.spawn {
				t.Errorf("spawns = %+v, want [%+v]", level.PlayerSpawns, tc.spawn)
			}
			if len(level.ItemSpawns) != len(tc.itemKinds) {
				t.Fatalf("item spawns = %+v", level.ItemSpawns)
			}
			for i, kind := range tc.itemKinds {
				if level.ItemSpawns[i].Kind != kind {
					t.Errorf("item %d kind = %q, want %q", i, level.ItemSpawns[i].Kind, kind)
				}
			}
			if level.Background != nil {
				t.Error("ParseLevel created a background image")
			}
		})
	}
}

const spawnlessMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="8" columns="4">
  <image source="tiles.png" width="64" height="32"/>
 </tileset>
 <layer id="1" name="solid" width="2" height="2">
  <data encoding="csv">
1,0,
0,1</data>
 </layer>
 <objectgroup id="2" name="Items">
  <object id="1" x="0" y="0" width="16" height="16"/>
 </objectgroup>
</map>
`

func TestParseLevelWithoutSpawn(t *testing.T) {
	loader := &LevelLoader{fsys: fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(spawnlessMap)},
	}}

	_, _, err := loader.ParseLevel("levels/empty.tmx")
	if !errors.Is(err, ErrNoPlayerSpawn) {
		t.Errorf("err = %v, want ErrNoPlayerSpawn", err)
	}
}

func TestParseLevelMissingFile(t *testing.T) {
	if _, _, err := NewLevelLoader().ParseLevel("levels/nope.tmx"); err == nil {
		t.Error("want error for a missing map")
	}
}

func TestEmbeddedImages(t *testing.T) {
	for _, path := range []string{
		"images/player/idle.png",
		"images/player/run_carry.png",
		"images/player/topdown.png",
		"images/items/ice_cream.png",
		"images/items/soda.png",
		"images/ui/mouse.png",
	} {
		if !HasImage(path) {
			t.Errorf("%s is not embedded", path)
		}
	}
	if HasImage("images/player/swim.png") {
		t.Error("HasImage reported a file that does not exist")
	}
}
