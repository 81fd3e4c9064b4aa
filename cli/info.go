package cli

import (
	"fmt"

	"github.com/go-barry/webspark/core"
	"github.com/segmentio/encoding/json"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print the resolved configuration and saved render summary",
	Flags: append(configFlags(),
		&cli.BoolFlag{Name: "json", Usage: "print the configuration as JSON"},
	),
	Action: func(c *cli.Context) error {
		config, err := resolveConfig(c)
		if err != nil {
			return err
		}

		if c.Bool("json") {
			out, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println("📡 Relay:", config.RelayAddr)
		fmt.Println("🏷️  Service Name:", config.ServiceName)
		fmt.Println("📄 Template:", config.TemplatePath)
		fmt.Println("⏱️  Retry Delay:", config.RetryDelay)
		fmt.Println("🧵 Workers:", config.Workers)
		fmt.Println("🔢 Seeds:", len(config.SeedList()))
		fmt.Println("🔁 Minify Enabled:", config.Minify)
		fmt.Println()

		_, saved := core.GetSavedRender(config, config.ServiceName)
		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("💾 Saved Render:", saved)

		return nil
	},
}
