package cli

import (
	"github.com/go-barry/webspark"

	"github.com/urfave/cli/v2"
)

var RunCommand = &cli.Command{
	Name:  "run",
	Usage: "Register with the relay and serve the primes demo until interrupted",
	Flags: configFlags(),
	Action: func(c *cli.Context) error {
		cfg, err := resolveConfig(c)
		if err != nil {
			return err
		}
		return webspark.Start(c.Context, cfg)
	},
}
