package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"product-alternatives/core/database"
	"product-alternatives/core/logger"
	"product-alternatives/core/reference"
	"product-alternatives/core/server"
	"product-alternatives/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration, one section per package.
type Config struct {
	Server    server.Config    `mapstructure:"server"`
	Storage   storage.Config   `mapstructure:"storage"`
	Reference reference.Config `mapstructure:"reference"`
	Log       logger.Config    `mapstructure:"log"`
	Database  database.Config  `mapstructure:"database"`
}

// LoadConfig reads the .env file in path, when present, and then the
// environment. Keys map to sections by underscore: REFERENCE_KIND sets
// reference.kind.
func LoadConfig(path string) (*Config, error) {
	envFile := ".env"
	if path != "." {
		envFile = filepath.Join(path, ".env")
	}
	_ = godotenv.Overload(envFile)

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if !cfg.Reference.IsValidKind() {
		return nil, fmt.Errorf("invalid reference kind %q", cfg.Reference.Kind)
	}
	return &cfg, nil
}

// registerDefaults walks the section structs and registers every
// mapstructure key with its default tag. AutomaticEnv only resolves
// keys viper already knows, so empty defaults are registered too.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}
