package main

import (
	"context"
	"os"

	"compatscan/internal/cli"
	"compatscan/internal/config"
	"compatscan/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command. Split from main
// so tests can drive the full command tree.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}
	return cli.New(cfg).Run(context.Background(), args)
}
