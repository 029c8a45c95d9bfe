package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"deckofcards/internal/util"
	"deckofcards/pkg/deck"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// encodings
const (
	EncodingBinary = "binary"
	EncodingYAML   = "yaml"
)

// Config provides configuration for the deck programs
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Deal struct {
		HandSize int    `yaml:"handSize" envconfig:"hand_size"`
		SaveFile string `yaml:"saveFile" envconfig:"save_file"`
		Encoding string `yaml:"encoding"`
	} `yaml:"deal"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	c := Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Deal.HandSize = 5
	c.Deal.Encoding = EncodingBinary

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration from the file named by DECK_CONFIG_FILE, then apply
// any DECK_* environment overrides. A missing file is not an error.
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("DECK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	} else {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return fmt.Errorf("could not parse %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("deck", &c); err != nil {
		return err
	}

	if err := c.Validate(); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}

// Validate checks the configuration for invalid values
func (c Config) Validate() error {
	if c.Deal.HandSize < 0 {
		return fmt.Errorf("deal.handSize must be >= 0, got %d", c.Deal.HandSize)
	}

	if _, err := c.Codec(); err != nil {
		return err
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}

	return nil
}

// Codec returns the deck encoding for the configured name
func (c Config) Codec() (deck.Codec, error) {
	switch c.Deal.Encoding {
	case "", EncodingBinary:
		return deck.BinaryCodec{}, nil
	case EncodingYAML:
		return deck.YAMLCodec{}, nil
	}

	return nil, fmt.Errorf("unknown encoding: %s", c.Deal.Encoding)
}
