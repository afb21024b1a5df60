// Package config resolves CLI settings from defaults, an optional sitegen.yaml,
// SITEGEN_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SITEGEN_OUTPUT_DIR.
const EnvPrefix = "SITEGEN"

// Config holds the resolved settings.
type Config struct {
	Template     string `mapstructure:"template"`
	Palette      string `mapstructure:"palette"`
	OutputDir    string `mapstructure:"output_dir"`
	Escape       string `mapstructure:"escape"`
	BlankFeature bool   `mapstructure:"blank_feature"`
	Log          Log    `mapstructure:"log"`
	Serve        Serve  `mapstructure:"serve"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// Log configures internal/logging.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Serve configures the preview server.
type Serve struct {
	Addr string `mapstructure:"addr"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"template":      "template",
	"palette":       "palette",
	"output-dir":    "output_dir",
	"escape":        "escape",
	"blank-feature": "blank_feature",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"addr":          "serve.addr",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("template", "Business")
	v.SetDefault("palette", "")
	v.SetDefault("output_dir", ".")
	v.SetDefault("escape", "none")
	v.SetDefault("blank_feature", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("serve.addr", "127.0.0.1:8080")
}

// Load resolves the configuration. path names an explicit config file;
// when empty, sitegen.yaml is looked up in the working directory and the
// user config dir and silently skipped when absent. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sitegen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/sitegen")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	return &cfg, nil
}
