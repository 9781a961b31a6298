package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "symbol-descriptors",
		Usage: "Symbol transaction descriptor tooling",
		Description: `Prints the mosaic descriptors used by the SDK documentation and the
identifiers they are derived from. Nothing is signed or sent to a node.`,
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Commands: []*cli.Command{
			mosaicCommand(),
			mosaicIDCommand(),
			namespaceIDCommand(),
			addressCommand(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "network",
				Aliases: []string{"n"},
				Usage:   "Symbol network checked by the address command (mainnet or testnet)",
				EnvVars: []string{"SYMBOL_NETWORK"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log diagnostics to stderr",
			},
		},
	}
}
