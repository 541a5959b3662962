// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/Faultbox/partview/internal/engine/lighting"
	"github.com/Faultbox/partview/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Camera      CameraConfig      `yaml:"camera"`
	Interaction InteractionConfig `yaml:"interaction"`
	Lighting    LightingConfig    `yaml:"lighting"`
	Orientation OrientationConfig `yaml:"orientation"`
	Undo        UndoConfig        `yaml:"undo"`
	Debug       DebugConfig       `yaml:"debug"`
	Logging     LoggingConfig     `yaml:"logging"`

	path string // file the config was loaded from
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Fullscreen   bool   `yaml:"fullscreen"`
	VSync        bool   `yaml:"vsync"`
	RememberSize bool   `yaml:"remember_size"` // save the last window size on exit
}

// CameraConfig holds projection and orbit settings.
type CameraConfig struct {
	FOV             float32 `yaml:"fov"` // degrees
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	Distance        float32 `yaml:"distance"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
}

// InteractionConfig holds edit tool settings.
type InteractionConfig struct {
	SnapGridDistance float32 `yaml:"snap_grid_distance"` // 0 disables snapping
	HandleSize       float32 `yaml:"handle_size"`
}

// LightConfig describes one directional light.
type LightConfig struct {
	Diffuse   float32    `yaml:"diffuse"`
	Specular  float32    `yaml:"specular"`
	Direction [3]float32 `yaml:"direction"`
}

// LightingConfig holds the overlay light rig.
type LightingConfig struct {
	Ambient float32     `yaml:"ambient"`
	Key     LightConfig `yaml:"key"`
	Fill    LightConfig `yaml:"fill"`
}

// OrientationConfig holds orientation cube settings.
type OrientationConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Size     int     `yaml:"size"` // pixels
	Distance float32 `yaml:"distance"`
}

// UndoConfig holds undo history settings.
type UndoConfig struct {
	Capacity int `yaml:"capacity"`
}

// DebugConfig holds developer switches.
type DebugConfig struct {
	TraceGL          bool `yaml:"trace_gl"`
	ShowVolumeBounds bool `yaml:"show_volume_bounds"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "partview",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOV:             45,
			Near:            0.1,
			Far:             1000,
			Distance:        30,
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		Interaction: InteractionConfig{
			SnapGridDistance: 0,
			HandleSize:       1,
		},
		Lighting: LightingConfig{
			Ambient: 0.2,
			Key:     LightConfig{Diffuse: 0.7, Specular: 0.5, Direction: [3]float32{-1, -1, 1}},
			Fill:    LightConfig{Diffuse: 0.5, Specular: 0.3, Direction: [3]float32{1, 1, 1}},
		},
		Orientation: OrientationConfig{
			Enabled:  true,
			Size:     200,
			Distance: 3,
		},
		Undo: UndoConfig{
			Capacity: 50,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Rig converts the lighting section into a light rig.
func (l LightingConfig) Rig() lighting.Rig {
	return lighting.NewRig(lighting.Gray(l.Ambient), l.Key.light(), l.Fill.light())
}

func (l LightConfig) light() lighting.Light {
	return lighting.Light{
		Diffuse:   lighting.Gray(l.Diffuse),
		Specular:  lighting.Gray(l.Specular),
		Direction: math.Vec3{X: l.Direction[0], Y: l.Direction[1], Z: l.Direction[2]},
	}
}
