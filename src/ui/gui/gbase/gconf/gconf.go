package gconf

import (
	"errors"
	"fmt"
	"io/fs"
	"septic/src/engine"
	"septic/src/ui/gui/gbase"
	"strings"

	"github.com/spf13/viper"
)

const (
	FileName  = "septic.json"
	EnvPrefix = "SEPTIC"
)

type Config struct {
	Theme       string   `mapstructure:"theme"`       // light/dark
	Lang        string   `mapstructure:"language"`    // en/ru
	EnginePath  string   `mapstructure:"engine_path"` // GBP engine executable
	EngineArgs  []string `mapstructure:"engine_args"`
	SearchDepth int      `mapstructure:"search_depth"`
	Workers     int      `mapstructure:"workers"` // 0 evaluates on the UI goroutine
	WindowW     int      `mapstructure:"window_w"`
	WindowH     int      `mapstructure:"window_h"`
	ShowAlgo    bool     `mapstructure:"show_algo"` // algorithm panel open when Gob is entered
	Debug       bool     `mapstructure:"debug"`

	v *viper.Viper
}

func defaultConfig() Config {
	return Config{
		Theme:       "light",
		Lang:        "en",
		EnginePath:  "",
		EngineArgs:  []string{},
		SearchDepth: engine.DefaultDepth,
		Workers:     2,
		WindowW:     gbase.WindowW,
		WindowH:     gbase.WindowH,
		ShowAlgo:    false,
		Debug:       false,
	}
}

func setDefaults(v *viper.Viper) {
	def := defaultConfig()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("language", def.Lang)
	v.SetDefault("engine_path", def.EnginePath)
	v.SetDefault("engine_args", def.EngineArgs)
	v.SetDefault("search_depth", def.SearchDepth)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("window_w", def.WindowW)
	v.SetDefault("window_h", def.WindowH)
	v.SetDefault("show_algo", def.ShowAlgo)
	v.SetDefault("debug", def.Debug)
}

// NewGUIConfig reads FileName from the working directory.
func NewGUIConfig() (*Config, error) {
	return Load(FileName)
}

// Load reads path if it exists, applies SEPTIC_* environment overrides and
// fixes values that are out of range. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	c.v = v
	correctableConfig(&c)
	return &c, nil
}

// Save writes the current values back to the file they were loaded from.
func (c *Config) Save() error {
	v := c.v
	if v == nil {
		v = viper.New()
		v.SetConfigFile(FileName)
		v.SetConfigType("json")
		c.v = v
	}
	v.Set("theme", c.Theme)
	v.Set("language", c.Lang)
	v.Set("engine_path", c.EnginePath)
	v.Set("engine_args", c.EngineArgs)
	v.Set("search_depth", c.SearchDepth)
	v.Set("workers", c.Workers)
	v.Set("window_w", c.WindowW)
	v.Set("window_h", c.WindowH)
	v.Set("show_algo", c.ShowAlgo)
	v.Set("debug", c.Debug)
	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("error write config: %w", err)
	}
	return nil
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if c.SearchDepth <= 0 {
		c.SearchDepth = def.SearchDepth
	}
	if c.Workers < 0 {
		c.Workers = def.Workers
	}
	if c.WindowW < 800 || c.WindowH < 600 {
		c.WindowW = def.WindowW
		c.WindowH = def.WindowH
	}
	if c.EngineArgs == nil {
		c.EngineArgs = []string{}
	}
}
