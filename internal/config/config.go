package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/stagehand/internal/geom"
	"github.com/1broseidon/stagehand/internal/panel"
)

// Minimum panel dimensions used when the config does not override them.
const (
	DefaultMinPanelWidth  = 320
	DefaultMinPanelHeight = 240
)

// DefaultFrameIntervalMS approximates 60 frames per second.
const DefaultFrameIntervalMS = 16

// PanelDefaults describes one panel's startup geometry and visibility.
type PanelDefaults struct {
	X      int  `yaml:"x"`
	Y      int  `yaml:"y"`
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Open   bool `yaml:"open"`
}

// SizeConfig is a width/height pair in config form.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StageConfig optionally pins the stage to a fixed rectangle instead of the
// active display's work area. Useful for headless daemons and tests.
type StageConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the effective stagehand configuration.
type Config struct {
	MinPanelSize    SizeConfig               `yaml:"min_panel_size"`
	StagePadding    geom.Padding             `yaml:"stage_padding"`
	FixedStage      *StageConfig             `yaml:"fixed_stage,omitempty"`
	FrameIntervalMS int                      `yaml:"frame_interval_ms"`
	Panels          map[string]PanelDefaults `yaml:"panels"`
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "stagehand", "config.yaml"), nil
}

// Default returns the built-in configuration. Panel geometries stagger the
// three panels so none fully covers another at startup.
func Default() *Config {
	return &Config{
		MinPanelSize:    SizeConfig{Width: DefaultMinPanelWidth, Height: DefaultMinPanelHeight},
		FrameIntervalMS: DefaultFrameIntervalMS,
		Panels: map[string]PanelDefaults{
			string(panel.KindChat):        {X: 40, Y: 40, Width: 520, Height: 520, Open: true},
			string(panel.KindJobs):        {X: 600, Y: 60, Width: 420, Height: 360, Open: false},
			string(panel.KindAgentConfig): {X: 320, Y: 220, Width: 480, Height: 400, Open: false},
		},
	}
}

// Load reads the config from the standard location, falling back to built-in
// defaults when no file exists.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates a config file. A missing file is not an
// error: the built-in defaults apply.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills zero-valued fields a sparse user file left out.
func applyDefaults(cfg *Config) {
	if cfg.MinPanelSize.Width <= 0 {
		cfg.MinPanelSize.Width = DefaultMinPanelWidth
	}
	if cfg.MinPanelSize.Height <= 0 {
		cfg.MinPanelSize.Height = DefaultMinPanelHeight
	}
	if cfg.FrameIntervalMS <= 0 {
		cfg.FrameIntervalMS = DefaultFrameIntervalMS
	}
	if cfg.Panels == nil {
		cfg.Panels = Default().Panels
	}
	for name, d := range Default().Panels {
		if _, ok := cfg.Panels[name]; !ok {
			cfg.Panels[name] = d
		}
	}
}

// Validate checks the effective config for values the registry cannot work with.
func Validate(cfg *Config) error {
	if cfg.MinPanelSize.Width <= 0 || cfg.MinPanelSize.Height <= 0 {
		return fmt.Errorf("min_panel_size must be positive, got %dx%d",
			cfg.MinPanelSize.Width, cfg.MinPanelSize.Height)
	}
	if p := cfg.StagePadding; p.Top < 0 || p.Bottom < 0 || p.Left < 0 || p.Right < 0 {
		return fmt.Errorf("stage_padding values must be non-negative")
	}
	if cfg.FixedStage != nil && (cfg.FixedStage.Width <= 0 || cfg.FixedStage.Height <= 0) {
		return fmt.Errorf("fixed_stage must have positive dimensions, got %dx%d",
			cfg.FixedStage.Width, cfg.FixedStage.Height)
	}
	for name, d := range cfg.Panels {
		if _, err := panel.ParseKind(name); err != nil {
			return fmt.Errorf("panels: %w", err)
		}
		if d.Width < 0 || d.Height < 0 {
			return fmt.Errorf("panels.%s: negative size %dx%d", name, d.Width, d.Height)
		}
	}
	return nil
}

// MinSize returns the minimum panel size as a geometry value.
func (c *Config) MinSize() geom.Size {
	return geom.Size{Width: c.MinPanelSize.Width, Height: c.MinPanelSize.Height}
}

// PanelDefaultsByKind converts the config's panel table into registry
// defaults. Geometry is left unclamped; the registry clamps on construction.
func (c *Config) PanelDefaultsByKind() map[panel.Kind]panel.Default {
	out := make(map[panel.Kind]panel.Default, len(c.Panels))
	for name, d := range c.Panels {
		k, err := panel.ParseKind(name)
		if err != nil {
			continue // Validate rejects unknown names on load
		}
		out[k] = panel.Default{
			Rect: geom.Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height},
			Open: d.Open,
		}
	}
	return out
}

// FixedStageRect returns the configured fixed stage, if any.
func (c *Config) FixedStageRect() (geom.Rect, bool) {
	if c.FixedStage == nil {
		return geom.Rect{}, false
	}
	return geom.Rect{Width: c.FixedStage.Width, Height: c.FixedStage.Height}, true
}
