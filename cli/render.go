package cli

import (
	"fmt"

	"github.com/go-barry/webspark"
	"github.com/go-barry/webspark/core"
	"github.com/urfave/cli/v2"
)

var RenderCommand = &cli.Command{
	Name:  "render",
	Usage: "Compute the demo page once without a relay and print or save it",
	Flags: append(configFlags(),
		&cli.BoolFlag{Name: "save", Usage: "write index.html and index.html.gz under outputDir instead of printing"},
	),
	Action: func(c *cli.Context) error {
		cfg, err := resolveConfig(c)
		if err != nil {
			return err
		}

		handler, err := webspark.NewHandler(cfg)
		if err != nil {
			return fmt.Errorf("failed to load handler: %w", err)
		}

		page, err := handler.Handle(c.Context, core.Request{Name: "local", URL: "/" + cfg.ServiceName})
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}

		if !c.Bool("save") {
			fmt.Fprint(c.App.Writer, page)
			return nil
		}

		path, err := core.SaveRender(cfg, cfg.ServiceName, []byte(page))
		if err != nil {
			return fmt.Errorf("failed to save render: %w", err)
		}
		fmt.Println("💾 Saved:", path)
		return nil
	},
}
