package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Platformer movement, in pixels per tick
	JumpSpeed    float64 `yaml:"jump_speed"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`

	// Top-down movement, in pixels per second
	WalkSpeed float64 `yaml:"walk_speed"`

	// Physics
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"`

	// Dimensions
	FrameWidth      int `yaml:"frame_width"`
	FrameHeight     int `yaml:"frame_height"`
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed          float64 `yaml:"max_fall_speed"`
	VerticalSpeedClamp    float64 `yaml:"vertical_speed_clamp"`
	PlatformDropThreshold float64 `yaml:"platform_drop_threshold"` // pixels above a platform that still count as landing on it
}

// AnimationConfig holds the clip selector tunables.
type AnimationConfig struct {
	Mode            string  `yaml:"mode"` // "platformer" or "topdown"
	VelocityEpsilon float64 `yaml:"velocity_epsilon"`
	TrackGrounded   bool    `yaml:"track_grounded"`
	ItemAffectsClip bool    `yaml:"item_affects_clip"`
	FourWay         bool    `yaml:"four_way"`
	TicksPerSecond  int     `yaml:"ticks_per_second"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // 1.0 centers on the player every tick
}

// ItemConfig tunes pickup and the hover bob of items lying on the ground.
type ItemConfig struct {
	Size       int     `yaml:"size"`
	BobHeight  float64 `yaml:"bob_height"`
	BobSeconds float64 `yaml:"bob_seconds"` // one leg of the bob, up or down
	Highlight  bool    `yaml:"highlight"`   // tint items in reach with the highlight shader
}

// CursorConfig describes the animated mouse cursor.
type CursorConfig struct {
	Sheet         string  `yaml:"sheet"`
	FrameSize     int     `yaml:"frame_size"`
	FrameCount    int     `yaml:"frame_count"`
	FrameDuration float64 `yaml:"frame_duration"`
	Scale         float64 `yaml:"scale"`
}

// LevelConfig names the map loaded for each mode.
type LevelConfig struct {
	Platformer string `yaml:"platformer"`
	TopDown    string `yaml:"topdown"`
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	ItemBoxSize   int     `yaml:"item_box_size"`
	ItemBoxMargin int     `yaml:"item_box_margin"`
	ItemBorder    int     `yaml:"item_border"`
	ItemIconScale float64 `yaml:"item_icon_scale"`

	HUDFontSize   float64 `yaml:"hud_font_size"`
	DebugFontSize float64 `yaml:"debug_font_size"`
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title             string
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Start with the debug overlay visible
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Animation AnimationConfig
var Camera CameraConfig
var Items ItemConfig
var Cursor CursorConfig
var Levels LevelConfig
var UI UIConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	PanelDark    = color.RGBA{R: 20, G: 20, B: 28, A: 220}
	SkyBlue      = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	Grass        = color.RGBA{R: 84, G: 140, B: 60, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Apply(Defaults())

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Main Menu", "Exit"},
	}

	Menu = MenuConfig{
		Title:             "POPCORN GUY",
		BackgroundColor:   color.RGBA{R: 40, G: 24, B: 16, A: 255},
		TitleColor:        Yellow,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            80,
		MenuStartY:        170,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Platformer", "Top-Down", "Exit"},
	}
}
