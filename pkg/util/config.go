package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	defaultLogLevel         = "warn"
	defaultBufferSize       = 1 << 20
	defaultProgressInterval = 100000
)

type Config struct {
	LogLevel         string
	BufferSize       int
	ProgressInterval int
}

// ReadConfig loads the optional "config" file from the given directories,
// falling back to ./data/ and the working directory. A missing file leaves the
// defaults in place.
func ReadConfig(paths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	if len(paths) == 0 {
		paths = []string{"./data/", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("writer.buffer_size", defaultBufferSize)
	v.SetDefault("writer.progress_interval", defaultProgressInterval)

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return Config{}, fmt.Errorf("fatal error config file: %w", err)
	}

	cfg := Config{
		LogLevel:         v.GetString("log.level"),
		BufferSize:       v.GetInt("writer.buffer_size"),
		ProgressInterval: v.GetInt("writer.progress_interval"),
	}
	if cfg.BufferSize <= 0 {
		return Config{}, fmt.Errorf("writer.buffer_size must be positive, got %d", cfg.BufferSize)
	}
	return cfg, nil
}

// DefaultConfig is the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		LogLevel:         defaultLogLevel,
		BufferSize:       defaultBufferSize,
		ProgressInterval: defaultProgressInterval,
	}
}
