package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"shapes-demo/internal/commands"
)

// EngineConfigPath is the default config file, relative to the process working directory.
const EngineConfigPath = "config/demo.yaml"

var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds every startup setting. YAML and TOML files share the same keys.
type Config struct {
	Window    Window    `yaml:"window" toml:"window"`
	Camera    Camera    `yaml:"camera" toml:"camera"`
	Controls  Controls  `yaml:"controls" toml:"controls"`
	Animation Animation `yaml:"animation" toml:"animation"`
	Scene     Scene     `yaml:"scene" toml:"scene"`
	Overlay   Overlay   `yaml:"overlay" toml:"overlay"`
	Remote    Remote    `yaml:"remote" toml:"remote"`
	Log       Log       `yaml:"log" toml:"log"`
}

type Window struct {
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	Title     string `yaml:"title" toml:"title"`
	TargetFPS int    `yaml:"target_fps" toml:"target_fps"`
	MSAA      bool   `yaml:"msaa" toml:"msaa"`
}

// Camera is the home camera that reset_camera restores.
type Camera struct {
	Position [3]float64 `yaml:"position" toml:"position"`
	Fovy     float64    `yaml:"fovy" toml:"fovy"`
}

type Controls struct {
	// Keymap binds key codes ("Space", "KeyC") to command names ("toggle_animation").
	Keymap map[string]string `yaml:"keymap" toml:"keymap"`
	// Touch enables touch-point polling; leave off on desktops where the mouse already drives the camera.
	Touch bool `yaml:"touch" toml:"touch"`
}

type Animation struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
}

type Scene struct {
	// Particles is the particle count; 0 uses the default, negative disables them.
	Particles      int     `yaml:"particles" toml:"particles"`
	ParticleSpread float64 `yaml:"particle_spread" toml:"particle_spread"`
	// Seed drives particle placement and change_colors; 0 picks a time-based seed.
	Seed int64 `yaml:"seed" toml:"seed"`
}

type Overlay struct {
	ShowControls bool   `yaml:"show_controls" toml:"show_controls"`
	ShowFPS      bool   `yaml:"show_fps" toml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc" toml:"show_memalloc"`
	ShowCamera   bool   `yaml:"show_camera" toml:"show_camera"`
	GridVisible  bool   `yaml:"grid_visible" toml:"grid_visible"`
	ShowLight    bool   `yaml:"show_light" toml:"show_light"`
	Stylesheet   string `yaml:"stylesheet" toml:"stylesheet"`
	// Font is a family name or partial path searched under assets/fonts; empty uses raylib's font.
	Font string `yaml:"font" toml:"font"`
}

// Remote configures the websocket control endpoint.
type Remote struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Addr    string `yaml:"addr" toml:"addr"`
}

type Log struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// Default returns the demo defaults: 1280x720 at 60 FPS, camera at (8,5,8), Space/C/R bindings,
// animation on, control panel on, remote endpoint off.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "3D Shapes Demo",
			TargetFPS: 60,
			MSAA:      true,
		},
		Camera: Camera{
			Position: [3]float64{8, 5, 8},
			Fovy:     75,
		},
		Controls: Controls{
			Keymap: commands.DefaultKeymap().Bindings(),
		},
		Animation: Animation{Enabled: true},
		Scene: Scene{
			Particles:      100,
			ParticleSpread: 50,
		},
		Overlay: Overlay{
			ShowControls: true,
			Stylesheet:   "assets/ui/controls.css",
		},
		Remote: Remote{
			Enabled: false,
			Addr:    "127.0.0.1:8089",
		},
		Log: Log{
			Level: "info",
			File:  "logs/demo.log",
		},
	}
}

// Load reads the config at path on top of Default(). The format follows the extension
// (.yaml, .yml or .toml). A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(path, data, &cfg); err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg using the format implied by path's extension.
// Keys absent from data keep their current values in cfg. A keymap present in data replaces
// the current one instead of merging into it.
func Decode(path string, data []byte, cfg *Config) error {
	keymap := cfg.Controls.Keymap
	cfg.Controls.Keymap = nil
	defer func() {
		if cfg.Controls.Keymap == nil {
			cfg.Controls.Keymap = keymap
		}
	}()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse yaml %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse toml %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// Validate checks settings that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if _, err := c.Keymap(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		return fmt.Errorf("camera fovy %v must be in (0, 180)", c.Camera.Fovy)
	}
	return nil
}

// Keymap builds the validated key bindings.
func (c Config) Keymap() (commands.Keymap, error) {
	return commands.NewKeymap(c.Controls.Keymap)
}

// Save writes cfg to path in the format implied by its extension, creating the directory if needed.
func Save(path string, cfg Config) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	case ".toml":
		data, err = toml.Marshal(cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
