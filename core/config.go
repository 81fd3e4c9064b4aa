package core

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"go-simpler.org/env"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "webspark.config.yml"

type SeedRange struct {
	Start int `yaml:"start" json:"start"`
	Stop  int `yaml:"stop" json:"stop"`
	Step  int `yaml:"step" json:"step"`
}

type Config struct {
	RelayAddr      string        `yaml:"relayAddr" json:"relayAddr" env:"WEBSPARK_RELAY_ADDR"`
	ServiceName    string        `yaml:"serviceName" json:"serviceName" env:"WEBSPARK_SERVICE_NAME"`
	TemplatePath   string        `yaml:"templatePath" json:"templatePath" env:"WEBSPARK_TEMPLATE"`
	RetryDelay     time.Duration `yaml:"retryDelay" json:"retryDelay" env:"WEBSPARK_RETRY_DELAY"`
	RequestTimeout time.Duration `yaml:"requestTimeout" json:"requestTimeout" env:"WEBSPARK_REQUEST_TIMEOUT"`
	PollRate       float64       `yaml:"pollRate" json:"pollRate" env:"WEBSPARK_POLL_RATE"`
	Workers        int           `yaml:"workers" json:"workers" env:"WEBSPARK_WORKERS"`
	Minify         bool          `yaml:"minify" json:"minify" env:"WEBSPARK_MINIFY"`
	OutputDir      string        `yaml:"outputDir" json:"outputDir" env:"WEBSPARK_OUTPUT_DIR"`
	MetricsAddr    string        `yaml:"metricsAddr" json:"metricsAddr" env:"WEBSPARK_METRICS_ADDR"`
	LogLevel       string        `yaml:"logLevel" json:"logLevel" env:"WEBSPARK_LOG_LEVEL"`
	LogFormat      string        `yaml:"logFormat" json:"logFormat" env:"WEBSPARK_LOG_FORMAT"`
	Seeds          SeedRange     `yaml:"seeds" json:"seeds"`
}

func DefaultConfig() Config {
	return Config{
		RelayAddr:    "http://localhost:8001",
		ServiceName:  "demo",
		TemplatePath: "template.html",
		RetryDelay:   3 * time.Second,
		Workers:      runtime.NumCPU(),
		OutputDir:    "./out",
		LogLevel:     "info",
		LogFormat:    "text",
		Seeds:        SeedRange{Start: 1000, Stop: 20000, Step: 1100},
	}
}

// LoadConfig reads path (defaults when missing), then applies WEBSPARK_*
// environment overrides.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.Load(&cfg, nil); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.RelayAddr == "" {
		c.RelayAddr = def.RelayAddr
	}
	if c.ServiceName == "" {
		c.ServiceName = def.ServiceName
	}
	if c.TemplatePath == "" {
		c.TemplatePath = def.TemplatePath
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = def.RetryDelay
	}
	if c.Workers == 0 {
		c.Workers = def.Workers
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
	if c.Seeds == (SeedRange{}) {
		c.Seeds = def.Seeds
	}
}

func (c Config) Validate() error {
	if c.RelayAddr == "" {
		return errors.New("relayAddr is required")
	}
	if strings.TrimSpace(c.ServiceName) == "" {
		return errors.New("serviceName is required")
	}
	if c.RetryDelay <= 0 {
		return fmt.Errorf("retryDelay must be positive, got %s", c.RetryDelay)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.PollRate < 0 {
		return fmt.Errorf("pollRate must not be negative, got %g", c.PollRate)
	}
	if c.Seeds.Step <= 0 || c.Seeds.Start >= c.Seeds.Stop {
		return fmt.Errorf("invalid seed range %d..%d step %d", c.Seeds.Start, c.Seeds.Stop, c.Seeds.Step)
	}
	return nil
}

func (c Config) SeedList() []int {
	return Seeds(c.Seeds.Start, c.Seeds.Stop, c.Seeds.Step)
}
