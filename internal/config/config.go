package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/rpsarena/internal/core/arena"
	"github.com/zeusync/rpsarena/internal/core/observability/log"
	"github.com/zeusync/rpsarena/internal/core/systems/physics"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full process configuration. Every field has a default, so an
// empty file is valid.
type Config struct {
	Counts           arena.Counts   `yaml:"counts"`
	Canvas           physics.Size   `yaml:"canvas"`
	AgentBox         physics.Size   `yaml:"agent_box"`
	Velocity         float64        `yaml:"velocity"`
	TickInterval     time.Duration  `yaml:"tick_interval"`
	Seed             uint64         `yaml:"seed"`
	MaxSpawnAttempts int            `yaml:"max_spawn_attempts"`
	StrictInvariants bool           `yaml:"strict_invariants"`
	Regions          *arena.Regions `yaml:"regions,omitempty"`

	Server   ServerConfig   `yaml:"server"`
	Terminal TerminalConfig `yaml:"terminal"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Enabled      bool          `yaml:"enabled"`
	ListenAddr   string        `yaml:"listen_addr"`
	SendBuffer   int           `yaml:"send_buffer"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type TerminalConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default mirrors the stock arena: ten of each kind on a 1200x1200 canvas.
func Default() *Config {
	return &Config{
		Counts:           arena.Counts{Rock: 10, Paper: 10, Scissors: 10},
		Canvas:           physics.Size{Width: 1200, Height: 1200},
		AgentBox:         physics.Size{Width: 40, Height: 40},
		Velocity:         5,
		TickInterval:     20 * time.Millisecond,
		Seed:             1,
		MaxSpawnAttempts: arena.DefaultMaxSpawnAttempts,
		Server: ServerConfig{
			Enabled:      true,
			ListenAddr:   ":8080",
			SendBuffer:   16,
			WriteTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load decodes YAML from r over the defaults and validates the result.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile is Load for a path. An empty path yields the validated defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		c := Default()
		return c, c.Validate()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	for _, k := range arena.Kinds {
		check(c.Counts.Of(k) >= 0, "counts.%s must not be negative", k)
	}
	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas must be positive, got %+v", c.Canvas)
	check(c.AgentBox.Width > 0 && c.AgentBox.Height > 0, "agent_box must be positive, got %+v", c.AgentBox)
	check(c.AgentBox.Width <= c.Canvas.Width && c.AgentBox.Height <= c.Canvas.Height, "agent_box larger than canvas")
	check(c.Velocity > 0, "velocity must be positive")
	check(c.TickInterval > 0, "tick_interval must be positive")
	check(c.MaxSpawnAttempts > 0, "max_spawn_attempts must be positive")
	regions := c.SpawnRegions()
	for _, k := range arena.Kinds {
		check(!regions.For(k).Empty(), "regions.%s is empty: %+v", k, regions.For(k))
	}
	if c.Server.Enabled {
		check(c.Server.ListenAddr != "", "server.listen_addr is required")
		check(c.Server.SendBuffer > 0, "server.send_buffer must be positive")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// SpawnRegions returns the configured regions or the ones derived from the canvas.
func (c *Config) SpawnRegions() arena.Regions {
	if c.Regions != nil {
		return *c.Regions
	}
	return arena.DefaultRegions(c.Canvas)
}

// Arena converts the config into engine settings.
func (c *Config) Arena() arena.Settings {
	return arena.Settings{
		Counts:           c.Counts,
		Canvas:           c.Canvas,
		Box:              c.AgentBox,
		Speed:            c.Velocity,
		Regions:          c.SpawnRegions(),
		Seed:             c.Seed,
		MaxSpawnAttempts: c.MaxSpawnAttempts,
		StrictInvariants: c.StrictInvariants,
	}
}

// LogLevel returns the configured level. Validate has already rejected bad values.
func (c *Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}
