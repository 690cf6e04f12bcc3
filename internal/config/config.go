package config

import (
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LogConfig mirrors logging.Config in the YAML file.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Config drives one pricegen run.
type Config struct {
	Instrument         string        `yaml:"instrument"`
	InitialPrice       float64       `yaml:"initial_price"`
	Volatility         float64       `yaml:"volatility"`
	MeanReversionSpeed float64       `yaml:"mean_reversion_speed"`
	Steps              int           `yaml:"steps"`
	Seed               int64         `yaml:"seed"` // 0 means wall clock
	Pace               time.Duration `yaml:"pace"`
	Log                LogConfig     `yaml:"log"`
}

func Default() Config {
	return Config{
		Instrument:         "SIM",
		InitialPrice:       100.0,
		Volatility:         0.01,
		MeanReversionSpeed: 0.01,
		Steps:              100,
		Pace:               500 * time.Millisecond,
		Log: LogConfig{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {

	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// Validate checks the run parameters. Price and volatility are passed through as given.
func (c Config) Validate() error {

	if c.Steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", c.Steps)
	}

	if c.Pace <= 0 {
		return errors.Errorf("pace must be positive, got %s", c.Pace)
	}

	return nil
}
