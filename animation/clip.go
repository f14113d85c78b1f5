// Package animation implements the sprite animation clock and the clip selector that decides
// which clip an actor should be playing each tick.
package animation

import (
	"fmt"
	"strings"
)

// ClipKind is the base animation an actor can play.
type ClipKind int

const (
	KindIdle ClipKind = iota
	KindRun
	KindJump
	KindFall
	KindWalk
)

var kindNames = map[ClipKind]string{
	KindIdle: "idle",
	KindRun:  "run",
	KindJump: "jump",
	KindFall: "fall",
	KindWalk: "walk",
}

func (k ClipKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Direction is a compass facing. DirNone is used by clips that do not depend on facing.
type Direction int

const (
	DirNone Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = map[Direction]string{
	DirNone:   "none",
	North:     "north",
	NorthEast: "north_east",
	East:      "east",
	SouthEast: "south_east",
	South:     "south",
	SouthWest: "south_west",
	West:      "west",
	NorthWest: "north_west",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection converts a name produced by Direction.String back to a Direction.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return DirNone, fmt.Errorf("unknown direction %q", s)
}

// ClipID names a distinct animation. It is comparable and used as a map key.
type ClipID struct {
	Kind  ClipKind
	Dir   Direction
	Carry bool // variant played while the actor holds an item
}

var (
	Idle = ClipID{Kind: KindIdle}
	Run  = ClipID{Kind: KindRun}
	Jump = ClipID{Kind: KindJump}
	Fall = ClipID{Kind: KindFall}
)

// Walk returns the top-down walk clip for a facing.
func Walk(d Direction) ClipID {
	return ClipID{Kind: KindWalk, Dir: d}
}

// IdleFacing returns the top-down idle clip for a facing.
func IdleFacing(d Direction) ClipID {
	return ClipID{Kind: KindIdle, Dir: d}
}

// Carrying returns the item-holding variant of id.
func (id ClipID) Carrying() ClipID {
	id.Carry = true
	return id
}

// String renders ids as "idle", "run_carry" or "walk_north_east".
func (id ClipID) String() string {
	var b strings.Builder
	b.WriteString(id.Kind.String())
	if id.Dir != DirNone {
		b.WriteByte('_')
		b.WriteString(id.Dir.String())
	}
	if id.Carry {
		b.WriteString("_carry")
	}
	return b.String()
}

// ParseClipID is the inverse of ClipID.String.
func ParseClipID(s string) (ClipID, error) {
	var id ClipID
	rest := strings.TrimSpace(strings.ToLower(s))
	if trimmed, ok := strings.CutSuffix(rest, "_carry"); ok {
		id.Carry = true
		rest = trimmed
	}

	kindName, dirName, _ := strings.Cut(rest, "_")
	found := false
	for k, name := range kindNames {
		if name == kindName {
			id.Kind = k
			found = true
			break
		}
	}
	if !found {
		return ClipID{}, fmt.Errorf("unknown clip %q", s)
	}

	if dirName != "" {
		d, err := ParseDirection(dirName)
		if err != nil {
			return ClipID{}, fmt.Errorf("clip %q: %w", s, err)
		}
		id.Dir = d
	}
	return id, nil
}

// Clip is the immutable definition of an animation.
type Clip struct {
	FrameCount    int
	FrameDuration float64 // seconds per frame; 0 holds a single static frame
	StartingIndex int     // offset of frame 0 inside a shared sheet
	Asset         string  // sheet path handed to the renderer
}

// Static reports whether the clip never advances.
func (c Clip) Static() bool {
	return c.FrameDuration == 0
}
