package config

import "fmt"

// ClipDef is one row of the clip table. Duration is seconds per frame; 0 holds a static frame.
type ClipDef struct {
	Frames   int     `yaml:"frames"`
	Duration float64 `yaml:"duration"`
	Start    int     `yaml:"start"`
	Sheet    string  `yaml:"sheet"`
}

// ClipTable maps clip names such as "run_carry" or "walk_north_east" to their definitions.
// A YAML entry replaces the default row of the same name as a whole.
type ClipTable map[string]ClipDef

// TopDownSheet is the shared sheet holding every top-down clip. Each row is one facing,
// idle frames first, then walk frames.
const TopDownSheet = "images/player/topdown.png"

// TopDownColumns is the number of frames per facing row in TopDownSheet.
const TopDownColumns = 8

// topDownRows lists the facings in sheet row order.
var topDownRows = []string{
	"north", "north_east", "east", "south_east",
	"south", "south_west", "west", "north_west",
}

// Clips is the active clip table.
var Clips ClipTable

func defaultClips() ClipTable {
	t := ClipTable{
		"idle": {Frames: 4, Duration: 0.25, Sheet: "images/player/idle.png"},
		"run":  {Frames: 5, Duration: 0.12, Sheet: "images/player/run.png"},
		"jump": {Frames: 1, Sheet: "images/player/jump.png"},
		"fall": {Frames: 1, Sheet: "images/player/fall.png"},

		"idle_carry": {Frames: 4, Duration: 0.25, Sheet: "images/player/idle_carry.png"},
		"run_carry":  {Frames: 5, Duration: 0.12, Sheet: "images/player/run_carry.png"},
		"jump_carry": {Frames: 1, Sheet: "images/player/jump_carry.png"},
		"fall_carry": {Frames: 1, Sheet: "images/player/fall_carry.png"},
	}

	for row, dir := range topDownRows {
		base := row * TopDownColumns
		t[fmt.Sprintf("idle_%s", dir)] = ClipDef{Frames: 4, Duration: 0.2, Start: base, Sheet: TopDownSheet}
		t[fmt.Sprintf("walk_%s", dir)] = ClipDef{Frames: 4, Duration: 0.1, Start: base + 4, Sheet: TopDownSheet}
	}
	return t
}

// Clone returns a copy that can be modified without touching t.
func (t ClipTable) Clone() ClipTable {
	out := make(ClipTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
