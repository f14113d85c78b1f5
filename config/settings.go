package config

import (
	"errors"
	"fmt"
)

// Settings is the part of the configuration that a YAML file may override. Keys left out of
// the file keep their default values.
type Settings struct {
	Window    Config          `yaml:"window"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Items     ItemConfig      `yaml:"items"`
	Cursor    CursorConfig    `yaml:"cursor"`
	Levels    LevelConfig     `yaml:"levels"`
	UI        UIConfig        `yaml:"ui"`
	Clips     ClipTable       `yaml:"clips"`
}

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Defaults returns the built-in settings. Each call returns a fresh clip table.
func Defaults() Settings {
	return Settings{
		Window: Config{
			Width:  640,
			Height: 480,
			Title:  "Popcorn Guy",
		},
		Player: PlayerConfig{
			JumpSpeed:    7.5,
			Acceleration: 0.5,
			MaxSpeed:     3.0,

			WalkSpeed: 100,

			Gravity:  0.4,
			Friction: 0.25,

			FrameWidth:      32,
			FrameHeight:     32,
			CollisionWidth:  14,
			CollisionHeight: 28,
		},
		Physics: PhysicsConfig{
			MaxFallSpeed:          8.0,
			VerticalSpeedClamp:    10.0,
			PlatformDropThreshold: 4.0,
		},
		Animation: AnimationConfig{
			Mode:            "platformer",
			VelocityEpsilon: 0.1,
			TrackGrounded:   true,
			ItemAffectsClip: true,
			FourWay:         false,
			TicksPerSecond:  60,
		},
		Camera: CameraConfig{
			FollowSmoothing: 0.15,
		},
		Items: ItemConfig{
			Size:       16,
			BobHeight:  3,
			BobSeconds: 0.6,
			Highlight:  true,
		},
		Cursor: CursorConfig{
			Sheet:         "images/ui/mouse.png",
			FrameSize:     16,
			FrameCount:    4,
			FrameDuration: 0.15,
			Scale:         2,
		},
		Levels: LevelConfig{
			Platformer: "levels/platformer.tmx",
			TopDown:    "levels/meadow.tmx",
		},
		UI: UIConfig{
			ItemBoxSize:   30,
			ItemBoxMargin: 30,
			ItemBorder:    2,
			ItemIconScale: 1.5,
			HUDFontSize:   14,
			DebugFontSize: 10,
		},
		Clips: defaultClips(),
	}
}

// Validate rejects settings the game cannot start with. Clip rows are checked later, when the
// registry is built from them.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	case s.Animation.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ticks_per_second %d", ErrInvalidSettings, s.Animation.TicksPerSecond)
	case s.Animation.VelocityEpsilon < 0:
		return fmt.Errorf("%w: velocity_epsilon %v", ErrInvalidSettings, s.Animation.VelocityEpsilon)
	case s.Animation.Mode != "platformer" && s.Animation.Mode != "topdown":
		return fmt.Errorf("%w: mode %q", ErrInvalidSettings, s.Animation.Mode)
	case s.Player.FrameWidth <= 0 || s.Player.FrameHeight <= 0:
		return fmt.Errorf("%w: player frame %dx%d", ErrInvalidSettings, s.Player.FrameWidth, s.Player.FrameHeight)
	case s.Cursor.FrameCount <= 0 || s.Cursor.FrameSize <= 0:
		return fmt.Errorf("%w: cursor frames %d of %dpx", ErrInvalidSettings, s.Cursor.FrameCount, s.Cursor.FrameSize)
	case s.Camera.FollowSmoothing <= 0 || s.Camera.FollowSmoothing > 1:
		return fmt.Errorf("%w: follow_smoothing %v", ErrInvalidSettings, s.Camera.FollowSmoothing)
	case len(s.Clips) == 0:
		return fmt.Errorf("%w: empty clip table", ErrInvalidSettings)
	}
	return nil
}

// Apply copies s into the package globals.
func Apply(s Settings) {
	w := s.Window
	C = &w
	Player = s.Player
	Physics = s.Physics
	Animation = s.Animation
	Camera = s.Camera
	Items = s.Items
	Cursor = s.Cursor
	Levels = s.Levels
	UI = s.UI
	Clips = s.Clips.Clone()
}

// Current snapshots the package globals back into a Settings value.
func Current() Settings {
	return Settings{
		Window:    *C,
		Player:    Player,
		Physics:   Physics,
		Animation: Animation,
		Camera:    Camera,
		Items:     Items,
		Cursor:    Cursor,
		Levels:    Levels,
		UI:        UI,
		Clips:     Clips.Clone(),
	}
}
