// Package config loads wordsplit settings from defaults, a YAML file and
// the environment, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/lnashier/wordsplit"
	"gopkg.in/yaml.v3"
)

const (
	ModeParallel   = "parallel"
	ModeSequential = "sequential"
)

type Config struct {
	// Parallelism is the desired number of concurrent leaves, 0 means GOMAXPROCS.
	Parallelism int `yaml:"parallelism" env:"PARALLELISM"`
	// MinLeafSize bounds the derived leaf length from below.
	MinLeafSize int `yaml:"min_leaf_size" env:"MIN_LEAF_SIZE"`
	// LeafSize fixes the leaf length, 0 derives it from input length.
	LeafSize int    `yaml:"leaf_size" env:"LEAF_SIZE"`
	Mode     string `yaml:"mode" env:"MODE"`
	Verbose  bool   `yaml:"verbose" env:"VERBOSE"`
	Log      Log    `yaml:"log" env:"LOG"`
}

type Log struct {
	Level string `yaml:"level" env:"LEVEL"`
}

func Defaults() *Config {
	return &Config{
		MinLeafSize: wordsplit.DefaultMinLeafSize,
		Mode:        ModeParallel,
		Log: Log{
			Level: "info",
		},
	}
}

// Validate reports the first setting that can not be used.
func (c *Config) Validate() error {
	switch {
	case c.Parallelism < 0:
		return fmt.Errorf("%w: parallelism %d < 0", wordsplit.ErrInvalidConfig, c.Parallelism)
	case c.MinLeafSize < 1:
		return fmt.Errorf("%w: min_leaf_size %d < 1", wordsplit.ErrInvalidConfig, c.MinLeafSize)
	case c.LeafSize < 0:
		return fmt.Errorf("%w: leaf_size %d < 0", wordsplit.ErrInvalidConfig, c.LeafSize)
	}
	switch c.Mode {
	case ModeParallel, ModeSequential:
	default:
		return fmt.Errorf("%w: %q", wordsplit.ErrUnknownMode, c.Mode)
	}
	return nil
}

// Opts translates the settings into splitter options.
func (c *Config) Opts() []wordsplit.Opt {
	opt := []wordsplit.Opt{
		wordsplit.Parallelism(c.Parallelism),
		wordsplit.MinLeafSize(c.MinLeafSize),
		wordsplit.LeafSize(c.LeafSize),
	}
	if c.Verbose {
		opt = append(opt, wordsplit.Verbose())
	}
	return opt
}

type Loader struct {
	path      string
	envPrefix string
}

func NewLoader() *Loader {
	return &Loader{
		envPrefix: "WORDSPLIT",
	}
}

func (l *Loader) WithConfigPath(path string) *Loader {
	l.path = path
	return l
}

func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// Load applies defaults, then the YAML file if one is set, then the environment,
// and validates the result. A missing file is not an error.
func (l *Loader) Load() (*Config, error) {
	cfg := Defaults()

	if l.path != "" {
		if err := l.loadFromFile(cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := setFieldsFromEnv(reflect.ValueOf(cfg).Elem(), l.envPrefix); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func setFieldsFromEnv(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := range v.NumField() {
		field := v.Field(i)

		tag := t.Field(i).Tag.Get("env")
		if tag == "" || tag == "-" {
			continue
		}
		key := prefix + "_" + tag

		if field.Kind() == reflect.Struct {
			if err := setFieldsFromEnv(field, key); err != nil {
				return err
			}
			continue
		}

		value := os.Getenv(key)
		if value == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(value)
		case reflect.Int:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			field.SetInt(int64(n))
		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			field.SetBool(b)
		default:
			return fmt.Errorf("%s: unsupported kind %s", key, field.Kind())
		}
	}

	return nil
}
