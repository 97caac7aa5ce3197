package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env-default:"warn"`
	LogPath  string   `yaml:"log-path"  env-default:""`
	Renderer Renderer `yaml:"renderer"`
	Redis    Redis    `yaml:"redis"`
}

type Renderer struct {
	CellWidth   int  `yaml:"cell-width"   env-default:"10"`
	CellHeight  int  `yaml:"cell-height"  env-default:"6"`
	ClearScreen bool `yaml:"clear-screen"`
}

// Redis holds the optional live match snapshot store.
type Redis struct {
	Enabled     bool          `yaml:"enabled"      env-default:"false"`
	Host        string        `yaml:"host"         env-default:"localhost"`
	Port        string        `yaml:"port"         env-default:"6379"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env-default:"1h"`
}

// MustLoad - loads config.yml at path. A missing file yields the defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		// no env tags are declared, so this only fills in env-default values
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to apply defaults: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
