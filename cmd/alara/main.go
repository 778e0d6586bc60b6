// Command alara drives the activation engine from the command line: it
// reads a problem description (nuclear data, fluxes, irradiation schedule,
// mixtures) from a JSON file, solves it, prints the resulting inventories,
// and optionally writes the binary dump.
//
// The app is defined through github.com/urfave/cli/v2; main is split from
// run to keep the entry point testable.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	run(os.Args)
}

func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "alara",
		Usage: "activation and transmutation inventory calculations",
		Commands: []*cli.Command{
			{
				Name:  "solve",
				Usage: "solve a problem file and report inventories",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "problem description (JSON)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "dump",
						Aliases: []string{"d"},
						Usage:   "write the binary result dump to `FILE`",
					},
				},
				Action: solveCommand,
			},
			{
				Name:      "inspect",
				Usage:     "print the records of a binary result dump",
				ArgsUsage: "DUMPFILE",
				Action:    inspectCommand,
			},
		},
	}
}
