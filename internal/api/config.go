package api

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/slidekit/slidekit/pkg/errors"
)

// Config holds the HTTP facade settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`
	// ReadTimeout bounds request reads. TOML duration string, e.g. "10s".
	ReadTimeout duration `toml:"read_timeout"`
	// WriteTimeout bounds response writes.
	WriteTimeout duration `toml:"write_timeout"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		ReadTimeout:  duration{10 * time.Second},
		WriteTimeout: duration{10 * time.Second},
	}
}

// LoadConfig reads a TOML config file, filling unset fields from defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config %s", path)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	return cfg, nil
}

// duration wraps time.Duration for TOML decoding from strings like "10s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}
