package main

import (
	"log"
	"os"

	sparkcli "github.com/go-barry/webspark/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "webspark",
		Usage: "Publish the parallel primes demo as a web API through a WebSpark relay",
		Commands: []*clilib.Command{
			sparkcli.RunCommand,
			sparkcli.RenderCommand,
			sparkcli.CheckCommand,
			sparkcli.InfoCommand,
			sparkcli.CleanCommand,
		},
	}
	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
