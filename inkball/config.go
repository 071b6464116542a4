package inkball

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
)

var (
	ErrNoLevels   = errors.New("config defines no levels")
	ErrLevelIndex = errors.New("level index out of range")
)

// Config is the game configuration file.
type Config struct {
	Levels        []LevelConfig `toml:"levels"`
	ScoreIncrease ScoreTable    `toml:"score_increase_from_hole_capture"`
	ScoreDecrease ScoreTable    `toml:"score_decrease_from_wrong_hole"`

	// Undecoded lists keys present in the file that no field consumed.
	Undecoded []string `toml:"-"`

	// dir is the directory of the config file inside its file system.
	// Layout paths are resolved against it.
	dir string
}

// LevelConfig describes one level. Omitted keys take their defaults.
type LevelConfig struct {
	Layout           string   `toml:"layout"`
	Time             *int     `toml:"time"`
	SpawnInterval    *float64 `toml:"spawn_interval"`
	IncreaseModifier *float64 `toml:"score_increase_from_hole_capture_modifier"`
	DecreaseModifier *float64 `toml:"score_decrease_from_wrong_hole_modifier"`
	Balls            []string `toml:"balls"`
}

// LoadConfig reads and validates the config file name from fsys.
func LoadConfig(fsys fs.FS, name string) (*Config, error) {
	cfg := &Config{}
	md, err := toml.DecodeFS(fsys, name, cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", name, err)
	}

	cfg.dir = path.Dir(name)
	cfg.recordUndecoded(md)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// DecodeConfig parses a config from r. Layout paths resolve from the root of
// the file system later handed to the session.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := &Config{}
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.dir = "."
	cfg.recordUndecoded(md)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) recordUndecoded(md toml.MetaData) {
	for _, key := range md.Undecoded() {
		c.Undecoded = append(c.Undecoded, key.String())
	}
}

func (c *Config) Validate() error {
	if len(c.Levels) == 0 {
		return ErrNoLevels
	}
	for i, lvl := range c.Levels {
		if lvl.Layout == "" {
			return fmt.Errorf("level %d: missing layout", i)
		}
	}
	return nil
}

// Encode writes the config back out as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// LayoutPath returns the path of a level's layout within the config's file system.
func (c *Config) LayoutPath(index int) (string, error) {
	if index < 0 || index >= len(c.Levels) {
		return "", fmt.Errorf("level %d: %w", index, ErrLevelIndex)
	}
	dir := c.dir
	if dir == "" {
		dir = "."
	}
	return path.Join(dir, c.Levels[index].Layout), nil
}

// Settings resolves the tunables of one level, applying defaults for omitted keys.
func (c *Config) Settings(index int) (LevelSettings, error) {
	if index < 0 || index >= len(c.Levels) {
		return LevelSettings{}, fmt.Errorf("level %d: %w", index, ErrLevelIndex)
	}
	lvl := c.Levels[index]

	settings := DefaultLevelSettings()
	if lvl.Time != nil {
		settings.Time = *lvl.Time
	}
	if lvl.SpawnInterval != nil {
		settings.SpawnInterval = *lvl.SpawnInterval
	}
	if lvl.IncreaseModifier != nil {
		settings.Scoring.IncreaseMultiplier = *lvl.IncreaseModifier
	}
	if lvl.DecreaseModifier != nil {
		settings.Scoring.DecreaseMultiplier = *lvl.DecreaseModifier
	}
	if c.ScoreIncrease != nil {
		settings.Scoring.Increase = c.ScoreIncrease
	}
	if c.ScoreDecrease != nil {
		settings.Scoring.Decrease = c.ScoreDecrease
	}

	settings.Balls = make([]Color, len(lvl.Balls))
	for i, name := range lvl.Balls {
		settings.Balls[i] = ParseColor(name)
	}
	return settings, nil
}

// LoadLayout opens and parses the layout of one level.
func (c *Config) LoadLayout(fsys fs.FS, index int) (*Layout, error) {
	name, err := c.LayoutPath(index)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening layout: %w", err)
	}
	defer f.Close()

	layout, err := ParseLayout(f)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", name, err)
	}
	return layout, nil
}
