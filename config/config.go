// Package config loads the gatherer configuration: built-in defaults, an
// optional YAML file checked against an embedded JSON schema, then
// GATHERER_* environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gatherer/audio"
	"github.com/lixenwraith/gatherer/constants"
	"github.com/lixenwraith/gatherer/engine"
	"github.com/lixenwraith/gatherer/entity"
	"github.com/lixenwraith/gatherer/render"
	"github.com/lixenwraith/gatherer/vmath"
)

// Config holds all configuration for the gatherer binary.
type Config struct {
	LogLevel string            `yaml:"log_level"`
	World    WorldConfig       `yaml:"world"`
	Worker   WorkerConfig      `yaml:"worker"`
	Display  DisplayConfig     `yaml:"display"`
	Audio    AudioConfig       `yaml:"audio"`
	Keys     map[string]string `yaml:"keys"`
}

// WorldConfig describes the initial layout.
type WorldConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Seed           uint64  `yaml:"seed"` // 0 = random
	TreeCount      int     `yaml:"tree_count"`
	TreeAmount     int     `yaml:"tree_amount"`
	TreeKind       string  `yaml:"tree_kind"`
	EntitySize     float64 `yaml:"entity_size"`
	RemoveDepleted bool    `yaml:"remove_depleted"`
	Stockpiles     []Point `yaml:"stockpiles"`
	Workers        []Point `yaml:"workers"`
}

// Point is a world position in pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WorkerConfig holds worker tunables.
type WorkerConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"` // px/s
	HarvestMs     int     `yaml:"harvest_ms"`
	DropMs        int     `yaml:"drop_ms"`
	Capacity      int     `yaml:"capacity"`
	HarvestAmount int     `yaml:"harvest_amount"`
}

// DisplayConfig maps the world onto terminal cells.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	FPS        int     `yaml:"fps"`
}

// AudioConfig toggles the sound cues.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	Volume  int  `yaml:"volume"` // 0-100
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		World: WorldConfig{
			Width:      constants.WorldWidth,
			Height:     constants.WorldHeight,
			TreeCount:  constants.TreeCount,
			TreeAmount: constants.TreeInitialAmount,
			TreeKind:   constants.ResourceWood,
			EntitySize: constants.EntitySize,
			Stockpiles: []Point{{X: 400, Y: 400}},
			Workers:    []Point{{X: 100, Y: 100}, {X: 200, Y: 200}, {X: 300, Y: 300}},
		},
		Worker: WorkerConfig{
			MoveSpeed:     constants.WorkerMoveSpeed,
			HarvestMs:     int(constants.WorkerHarvestDuration / time.Millisecond),
			DropMs:        int(constants.WorkerDropDuration / time.Millisecond),
			Capacity:      constants.WorkerCapacity,
			HarvestAmount: constants.HarvestIncrement,
		},
		Display: DisplayConfig{
			CellWidth:  constants.CellWidth,
			CellHeight: constants.CellHeight,
			FPS:        int(time.Second / constants.FrameUpdateInterval),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  50,
		},
	}
}

// Load reads the YAML file at path over the defaults.
// A missing file yields defaults. Environment overrides apply last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decode validates raw YAML against the schema, then merges it into cfg
func decode(data []byte, cfg *Config) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing: %w", err)
	}
	if raw == nil {
		return nil
	}
	if err := validateSchema(raw); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	return nil
}

// Validate checks the merged configuration, including environment values
func (c Config) Validate() error {
	var problems []string
	if c.World.Width <= 0 || c.World.Height <= 0 {
		problems = append(problems, "world size must be positive")
	}
	if c.World.TreeCount < 0 {
		problems = append(problems, "world.tree_count must be >= 0")
	}
	if c.Worker.MoveSpeed <= 0 {
		problems = append(problems, "worker.move_speed must be positive")
	}
	if c.Worker.Capacity <= 0 {
		problems = append(problems, "worker.capacity must be positive")
	}
	if c.Display.FPS <= 0 {
		problems = append(problems, "display.fps must be positive")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Scenario converts the world section for engine.World.Populate
func (c Config) Scenario() engine.Scenario {
	return engine.Scenario{
		Width:      c.World.Width,
		Height:     c.World.Height,
		EntitySize: c.World.EntitySize,
		Seed:       c.World.Seed,
		TreeCount:  c.World.TreeCount,
		TreeAmount: c.World.TreeAmount,
		TreeKind:   c.World.TreeKind,
		Stockpiles: points(c.World.Stockpiles),
		Workers:    points(c.World.Workers),
		Worker:     c.WorkerSettings(),
	}
}

func points(ps []Point) []vmath.Vec2F {
	out := make([]vmath.Vec2F, len(ps))
	for i, p := range ps {
		out[i] = vmath.V2F(p.X, p.Y)
	}
	return out
}

func (c Config) WorkerSettings() entity.WorkerConfig {
	return entity.WorkerConfig{
		MoveSpeed:       c.Worker.MoveSpeed,
		HarvestDuration: time.Duration(c.Worker.HarvestMs) * time.Millisecond,
		DropDuration:    time.Duration(c.Worker.DropMs) * time.Millisecond,
		Capacity:        c.Worker.Capacity,
		HarvestAmount:   c.Worker.HarvestAmount,
	}
}

func (c Config) Viewport() render.Viewport {
	return render.NewViewport(c.Display.CellWidth, c.Display.CellHeight)
}

// FrameInterval is the ticker period for the configured frame rate
func (c Config) FrameInterval() time.Duration {
	if c.Display.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Display.FPS)
}

// AudioSettings builds the sound manager config
// The audio package's own GATHERER_* variables still apply on top
func (c Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = float64(c.Audio.Volume) / 100.0
	audio.ApplyEnv(ac)
	return ac
}

// SlogLevel returns the parsed log level, info if unset
func (c Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s, err)
	}
	return level, nil
}
