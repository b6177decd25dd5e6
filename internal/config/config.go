package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/3-lines-studio/bottletags/internal/core"
)

const (
	DefaultConfigName = "bottletags"
	DefaultNamesFile  = "names.txt"
	EnvPrefix         = "BOTTLETAGS"
)

type Config struct {
	Names   string        `mapstructure:"names" yaml:"names"`
	Out     string        `mapstructure:"out" yaml:"out"`
	Model   string        `mapstructure:"model" yaml:"model"`
	Binary  string        `mapstructure:"binary" yaml:"binary"`
	Workers int           `mapstructure:"workers" yaml:"workers"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Verbose bool          `mapstructure:"verbose" yaml:"verbose"`
	Offset  core.Offset   `mapstructure:"offset" yaml:"offset"`
	Watch   WatchConfig   `mapstructure:"watch" yaml:"watch"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

func Default() Config {
	settings := core.DefaultRenderSettings()
	return Config{
		Names:   DefaultNamesFile,
		Out:     settings.OutDir,
		Model:   settings.Model,
		Binary:  settings.Binary,
		Workers: 1,
		Offset:  settings.Offset,
		Watch:   WatchConfig{Debounce: 300 * time.Millisecond},
	}
}

var CustomHooks = []viper.DecoderConfigOption{
	viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		ExpandHomeHookFunc(),
	)),
}

// ExpandHomeHookFunc expands a leading ~ in every string value.
func ExpandHomeHookFunc() mapstructure.DecodeHookFuncType {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.String {
			return data, nil
		}
		s := data.(string)
		if !strings.HasPrefix(s, "~") {
			return data, nil
		}
		return homedir.Expand(s)
	}
}

// Load layers defaults, the config file, BOTTLETAGS_* env vars and flags,
// later sources winning. A missing default config file is not an error;
// a missing explicit one is.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, CustomHooks...); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("names", cfg.Names)
	v.SetDefault("out", cfg.Out)
	v.SetDefault("model", cfg.Model)
	v.SetDefault("binary", cfg.Binary)
	v.SetDefault("workers", cfg.Workers)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("offset.logo_offset", cfg.Offset.LogoOffset)
	v.SetDefault("offset.logo_size", cfg.Offset.LogoSize)
	v.SetDefault("offset.offset_text", cfg.Offset.TextOffset)
	v.SetDefault("watch.debounce", cfg.Watch.Debounce)
}

func (c Config) Validate() error {
	switch {
	case c.Names == "":
		return errors.New("invalid config: names must not be empty")
	case c.Out == "":
		return errors.New("invalid config: out must not be empty")
	case c.Model == "":
		return errors.New("invalid config: model must not be empty")
	case c.Binary == "":
		return errors.New("invalid config: binary must not be empty")
	case c.Workers < 1:
		return fmt.Errorf("invalid config: workers must be at least 1, got %d", c.Workers)
	case c.Timeout < 0:
		return fmt.Errorf("invalid config: timeout must not be negative, got %s", c.Timeout)
	case c.Offset.LogoSize <= 0:
		return fmt.Errorf("invalid config: offset.logo_size must be positive, got %v", c.Offset.LogoSize)
	}
	return nil
}

func (c Config) RenderSettings() core.RenderSettings {
	return core.RenderSettings{
		Binary: c.Binary,
		Model:  c.Model,
		OutDir: c.Out,
		Offset: c.Offset,
	}
}
