package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
)

var CleanCommand = &cli.Command{
	Name:      "clean",
	Usage:     "Delete saved renders from the output directory (default: outputDir in webspark.config.yml)",
	ArgsUsage: "[service (optional)]",
	Flags:     configFlags(),
	Action: func(c *cli.Context) error {
		config, err := resolveConfig(c)
		if err != nil {
			return err
		}
		target := config.OutputDir

		if c.Args().Len() > 0 {
			name := strings.Trim(c.Args().Get(0), "/")
			target = filepath.Join(config.OutputDir, name)
		}

		info, err := os.Stat(target)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("🧼 Nothing to clean:", target)
				return nil
			}
			return fmt.Errorf("failed to access path: %w", err)
		}

		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", target)
		}

		fmt.Println("🧹 Cleaning:", target)
		err = os.RemoveAll(target)
		if err != nil {
			return fmt.Errorf("failed to clean output: %w", err)
		}

		fmt.Println("✅ Done.")
		return nil
	},
}
