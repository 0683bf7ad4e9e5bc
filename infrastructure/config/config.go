package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const APIKeyVar = "YOUTUBE_API_KEY"

var ErrMissingAPIKey = errors.New(APIKeyVar + " not found in .env file")

// DefaultChannels is used when YOUTUBE_CHANNELS is unset.
var DefaultChannels = []string{
	"https://www.youtube.com/@IndianFootball/videos",
	"https://www.youtube.com/@IndianSuperLeague/videos",
	"https://www.youtube.com/@playmakerindia/videos",
}

type Config struct {
	APIKey        string   `envconfig:"YOUTUBE_API_KEY"`
	Channels      []string `envconfig:"YOUTUBE_CHANNELS"`
	MaxResults    int64    `envconfig:"YOUTUBE_MAX_RESULTS" default:"10"`
	WithDurations bool     `envconfig:"YOUTUBE_WITH_DURATIONS" default:"false"`
	LogDir        string   `envconfig:"LOG_DIR" default:"logs"`
	LogPrefix     string   `envconfig:"LOG_PREFIX" default:"channel_uploads"`
}

// Load reads the given .env files into the process environment (a missing
// file is ignored) and decodes the environment into a Config.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error while loading %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("error while reading environment: %w", err)
	}

	err := cfg.normalize()

	return cfg, err
}

func (c *Config) normalize() error {
	c.APIKey = strings.TrimSpace(c.APIKey)

	channels := make([]string, 0, len(c.Channels))
	for _, ch := range c.Channels {
		if ch = strings.TrimSpace(ch); ch != "" {
			channels = append(channels, ch)
		}
	}
	if len(channels) == 0 {
		channels = append(channels, DefaultChannels...)
	}
	c.Channels = channels

	if c.MaxResults <= 0 || c.MaxResults > 50 {
		return fmt.Errorf("YOUTUBE_MAX_RESULTS must be between 1 and 50, got %d", c.MaxResults)
	}

	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	return nil
}
