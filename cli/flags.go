package cli

import (
	"github.com/go-barry/webspark/core"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var loadConfig = core.LoadConfig

var loadDotEnv = func() { _ = godotenv.Load() }

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: core.DefaultConfigPath, Usage: "path to the YAML config file"},
		&cli.StringFlag{Name: "relay", Usage: "WebSpark relay base address, e.g. http://10.0.0.2:8001"},
		&cli.StringFlag{Name: "name", Usage: "service name to register with the relay"},
		&cli.StringFlag{Name: "template", Usage: "HTML template with a single %s placeholder"},
		&cli.IntFlag{Name: "workers", Usage: "parallel map worker count"},
		&cli.DurationFlag{Name: "retry-delay", Usage: "sleep after a failed cycle"},
		&cli.Float64Flag{Name: "poll-rate", Usage: "maximum relay polls per second (0 = unlimited)"},
		&cli.BoolFlag{Name: "minify", Usage: "minify rendered HTML"},
		&cli.StringFlag{Name: "metrics-addr", Usage: "serve Prometheus metrics on this address"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		&cli.StringFlag{Name: "log-format", Usage: "text or json"},
	}
}

// resolveConfig layers .env, the config file, WEBSPARK_* variables and
// finally any flags set on the command line.
func resolveConfig(c *cli.Context) (core.Config, error) {
	loadDotEnv()

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}

	if c.IsSet("relay") {
		cfg.RelayAddr = c.String("relay")
	}
	if c.IsSet("name") {
		cfg.ServiceName = c.String("name")
	}
	if c.IsSet("template") {
		cfg.TemplatePath = c.String("template")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("retry-delay") {
		cfg.RetryDelay = c.Duration("retry-delay")
	}
	if c.IsSet("poll-rate") {
		cfg.PollRate = c.Float64("poll-rate")
	}
	if c.IsSet("minify") {
		cfg.Minify = c.Bool("minify")
	}
	if c.IsSet("metrics-addr") {
		cfg.MetricsAddr = c.String("metrics-addr")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}

	return cfg, nil
}
