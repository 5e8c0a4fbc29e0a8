package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	appErrors "github.com/mira-academy/catalog/pkg/errors"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string `validate:"oneof=development production"`

	Source SourceConfig
	Log    LogConfig
	Export ExportConfig
}

// SourceConfig points the catalog at its course endpoint. Timeout is the
// transport-level timeout; the loader itself imposes none.
type SourceConfig struct {
	URL     string        `validate:"required,url"`
	Timeout time.Duration `validate:"min=0"`
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportConfig names the directory schedule exports default to.
type ExportConfig struct {
	Dir string `validate:"required"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Source = SourceConfig{
		URL:     v.GetString("COURSES_URL"),
		Timeout: parseDuration(v.GetString("SOURCE_TIMEOUT"), 15*time.Second),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Export = ExportConfig{
		Dir: v.GetString("EXPORT_DIR"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid configuration")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("COURSES_URL", "http://localhost:8080/api/courses.json")
	v.SetDefault("SOURCE_TIMEOUT", "15s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("EXPORT_DIR", "./exports")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
