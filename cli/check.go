package cli

import (
	"fmt"

	"github.com/go-barry/webspark/core"
	"github.com/urfave/cli/v2"
)

var sampleRecords = []core.PrimeRecord{{Seed: 1000, Prime: 1009}, {Seed: 2100, Prime: 2111}}

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate the configuration and the response template",
	Flags: configFlags(),
	Action: func(c *cli.Context) error {
		var failed bool

		cfg, err := resolveConfig(c)
		if err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			failed = true
			fmt.Printf("❌ config → %v\n", err)
		} else {
			fmt.Printf("✅ config (%d seeds)\n", len(cfg.SeedList()))
		}

		tmpl, err := core.LoadTemplate(cfg.TemplatePath)
		if err != nil {
			failed = true
			fmt.Printf("❌ %s → %v\n", cfg.TemplatePath, err)
		} else {
			r := &core.Renderer{Template: tmpl, Minify: cfg.Minify}
			if _, err := r.Render(sampleRecords); err != nil {
				failed = true
				fmt.Printf("❌ %s → render error: %v\n", cfg.TemplatePath, err)
			} else {
				fmt.Printf("✅ %s\n", cfg.TemplatePath)
			}
		}

		if failed {
			return cli.Exit("configuration check failed", 1)
		}

		fmt.Println("✅ Ready to publish", cfg.ServiceName)
		return nil
	},
}
