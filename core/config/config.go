package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"json-diff/core/database"
	"json-diff/core/logger"
	"json-diff/core/server"
	"json-diff/core/source"
	"json-diff/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting of json-diff, one section per concern.
type Config struct {
	// Source selects where the compared collections come from.
	Source source.Config `mapstructure:"source"`
	// Log configures the application logger and the run log file.
	Log logger.Config `mapstructure:"log"`
	// Server configures the HTTP API started by "json-diff start".
	Server server.Config `mapstructure:"server"`
	// Storage is used by the bucket source.
	Storage storage.Config `mapstructure:"storage"`
	// Database is used by the table source.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig reads settings from the environment, after loading the .env
// file found in dir if there is one. Keys map to variables by upper-casing
// and replacing dots, so source.directory is read from SOURCE_DIRECTORY.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case source.KindDirectory, source.KindBucket, source.KindTable:
	default:
		return fmt.Errorf("invalid source kind %q", c.Source.Kind)
	}
	if c.Source.CacheTTLSeconds < 0 {
		return fmt.Errorf("source cache TTL must not be negative")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}

// bindValues registers every mapstructure key of iface with its default tag
// value. Registration is what lets AutomaticEnv resolve nested keys.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
