package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when CRITTERS_CONFIG is not set.
const DefaultPath = "critters.yaml"

// Presentation modes.
const (
	ModeWindow     = "window"
	ModeFloating   = "floating"
	ModeFullscreen = "fullscreen"
)

type Config struct {
	Mode     string         `yaml:"mode"`
	AssetDir string         `yaml:"asset_dir"`
	Seed     int64          `yaml:"seed"`
	DarkMode bool           `yaml:"dark_mode"`
	Sound    bool           `yaml:"sound"`
	World    WorldConfig    `yaml:"world"`
	Critter  CritterConfig  `yaml:"critter"`
	Viewport ViewportConfig `yaml:"viewport"`
	Bubble   BubbleConfig   `yaml:"bubble"`
	Sidebar  SidebarConfig  `yaml:"sidebar"`
	Lighting LightingConfig `yaml:"lighting"`
	Scenery  SceneryConfig  `yaml:"scenery"`
}

type WorldConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	WindowScale int `yaml:"window_scale"`
}

type CritterConfig struct {
	BoundaryLeft      float64 `yaml:"boundary_left"`
	BoundaryRight     float64 `yaml:"boundary_right"`
	Speed             float64 `yaml:"speed"`
	RestMin           float64 `yaml:"rest_min"`
	RestMax           float64 `yaml:"rest_max"`
	IdleFrameInterval float64 `yaml:"idle_frame_interval"`
	WalkFrameInterval float64 `yaml:"walk_frame_interval"`
	SpriteScale       float64 `yaml:"sprite_scale"`
}

type ViewportConfig struct {
	MinZoom   float64 `yaml:"min_zoom"`
	MaxZoom   float64 `yaml:"max_zoom"`
	WheelStep float64 `yaml:"wheel_step"`
}

type BubbleConfig struct {
	FadeIn  float64 `yaml:"fade_in"`
	Visible float64 `yaml:"visible"`
	FadeOut float64 `yaml:"fade_out"`
}

type SidebarConfig struct {
	Width    float64 `yaml:"width"`
	Slide    float64 `yaml:"slide"`
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	TileSize float64 `yaml:"tile_size"`
}

type LightingConfig struct {
	DarknessFade float64 `yaml:"darkness_fade"`
	LampRadius   float64 `yaml:"lamp_radius"`
}

type SceneryConfig struct {
	GrassHeight   float64   `yaml:"grass_height"`
	CloudCount    int       `yaml:"cloud_count"`
	CloudPeriod   float64   `yaml:"cloud_period"`
	TreePositions []float64 `yaml:"tree_positions"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		Mode:  ModeWindow,
		Sound: true,
		World: WorldConfig{
			Width:       320,
			Height:      200,
			WindowScale: 3,
		},
		Critter: CritterConfig{
			BoundaryLeft:      50,
			BoundaryRight:     250,
			Speed:             50,
			RestMin:           2,
			RestMax:           4,
			IdleFrameInterval: 0.5,
			WalkFrameInterval: 0.2,
			SpriteScale:       2,
		},
		Viewport: ViewportConfig{
			MinZoom:   1,
			MaxZoom:   2,
			WheelStep: 0.1,
		},
		Bubble: BubbleConfig{
			FadeIn:  0.2,
			Visible: 2,
			FadeOut: 0.2,
		},
		Sidebar: SidebarConfig{
			Width:    160,
			Slide:    0.3,
			Columns:  3,
			Rows:     4,
			TileSize: 40,
		},
		Lighting: LightingConfig{
			DarknessFade: 1,
			LampRadius:   48,
		},
		Scenery: SceneryConfig{
			GrassHeight:   40,
			CloudCount:    3,
			CloudPeriod:   50,
			TreePositions: []float64{30, 110, 280},
		},
	}
}

// Load reads the YAML file at path on top of Default. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeFloating, ModeFullscreen:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.World.WindowScale <= 0 {
		return fmt.Errorf("window_scale must be positive, got %d", c.World.WindowScale)
	}
	if c.Critter.BoundaryLeft > c.Critter.BoundaryRight {
		return fmt.Errorf("critter boundary_left %.1f exceeds boundary_right %.1f",
			c.Critter.BoundaryLeft, c.Critter.BoundaryRight)
	}
	if c.Critter.Speed <= 0 {
		return fmt.Errorf("critter speed must be positive, got %.2f", c.Critter.Speed)
	}
	if c.Critter.RestMin < 0 || c.Critter.RestMin > c.Critter.RestMax {
		return fmt.Errorf("critter rest range [%.2f, %.2f] is invalid", c.Critter.RestMin, c.Critter.RestMax)
	}
	if c.Critter.IdleFrameInterval <= 0 || c.Critter.WalkFrameInterval <= 0 {
		return errors.New("critter frame intervals must be positive")
	}
	if c.Viewport.MinZoom <= 0 || c.Viewport.MinZoom > c.Viewport.MaxZoom {
		return fmt.Errorf("zoom range [%.2f, %.2f] is invalid", c.Viewport.MinZoom, c.Viewport.MaxZoom)
	}
	if c.Sidebar.Columns <= 0 || c.Sidebar.Rows <= 0 {
		return fmt.Errorf("sidebar grid %dx%d is invalid", c.Sidebar.Columns, c.Sidebar.Rows)
	}
	return nil
}
