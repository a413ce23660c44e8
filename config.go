package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const defaultConfigName = ".pixelboard.yaml"

type Config struct {
	SaveDirectory   string       `yaml:"save-directory"`
	StartMenu       bool         `yaml:"start-menu" default:"true"`
	Confirmations   bool         `yaml:"confirmations" default:"true"`
	DefaultMood     string       `yaml:"default-mood" default:"cozy" validate:"oneof=happy cozy chill sad"`
	DefaultTheme    string       `yaml:"default-theme" default:"autumn" validate:"required"`
	AssetsDirectory string       `yaml:"assets-directory"`
	Board           BoardConfig  `yaml:"board"`
	Lookup          LookupConfig `yaml:"lookup"`
	Log             LogConfig    `yaml:"log"`
}

type BoardConfig struct {
	// Clamp keeps note positions inside Width x Height. Off means the
	// board is unbounded.
	Clamp  bool    `yaml:"clamp" default:"true"`
	Width  float64 `yaml:"width" default:"300" validate:"gt=0"`
	Height float64 `yaml:"height" default:"500" validate:"gt=0"`
}

type LookupConfig struct {
	BaseURL       string        `yaml:"base-url" default:"https://itunes.apple.com" validate:"url"`
	Country       string        `yaml:"country" default:"US"`
	Limit         int           `yaml:"limit" default:"10" validate:"min=1,max=200"`
	Timeout       time.Duration `yaml:"timeout" default:"10s" validate:"gt=0"`
	RatePerMinute int           `yaml:"rate-per-minute" default:"20" validate:"min=0"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
}

// Bounds returns the board rectangle, or nil when clamping is off.
func (c *Config) Bounds() *Bounds {
	if !c.Board.Clamp {
		return nil
	}
	return &Bounds{MaxX: c.Board.Width, MaxY: c.Board.Height}
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) SearchDirectory() string {
	if c.SaveDirectory != "" {
		return c.SaveDirectory
	}
	if dir, err := os.Getwd(); err == nil {
		return dir
	}
	return "."
}

func defaultConfigPath() string {
	if p := os.Getenv("PIXELBOARD_CONFIG"); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, defaultConfigName)
}

// LoadConfig reads the YAML config at path. An empty path means the
// default location; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := new(Config)
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "set default config failed")
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config file %s failed", path)
			}
		case os.IsNotExist(err) && !explicit:
		default:
			return nil, errors.Wrapf(err, "read config file %s failed", path)
		}
	}

	applyEnv(cfg)
	cfg.SaveDirectory = expandHome(cfg.SaveDirectory)
	cfg.AssetsDirectory = expandHome(cfg.AssetsDirectory)
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(os.TempDir(), "pixelboard.log")
	}
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if !DefaultPalette().HasTheme(ThemeKey(c.DefaultTheme)) {
		return errors.Errorf("invalid configuration: unknown default-theme %q", c.DefaultTheme)
	}
	return nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("PIXELBOARD_SAVE_DIRECTORY"); v != "" {
		c.SaveDirectory = v
	}
	if v := os.Getenv("PIXELBOARD_LOOKUP_URL"); v != "" {
		c.Lookup.BaseURL = v
	}
	if v := os.Getenv("PIXELBOARD_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("PIXELBOARD_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
