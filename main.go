package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/fraction/config"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaultRPC := os.Getenv("FRACTION_RPC")
	if defaultRPC == "" {
		defaultRPC = fmt.Sprintf("http://127.0.0.1:%d", config.DefaultRPCPort)
	}

	app := cli.NewApp()
	app.Name = "fraction"
	app.Usage = "Exact rational arithmetic on the command line."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Usage:   "the log level, overrides the configuration",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
	}
	app.EnableBashCompletion = true
	app.Before = setupCmd
	app.Commands = []*cli.Command{
		{
			Name:            "parse",
			Aliases:         []string{"p"},
			Usage:           "Parse a fraction and print its canonical form",
			ArgsUsage:       "<fraction>",
			Action:          parseCmd,
			SkipFlagParsing: true,
		},
		{
			Name:            "add",
			Usage:           "Add two fractions",
			ArgsUsage:       "<x> <y>",
			Action:          arithmeticCmd,
			SkipFlagParsing: true,
		},
		{
			Name:            "sub",
			Usage:           "Subtract y from x",
			ArgsUsage:       "<x> <y>",
			Action:          arithmeticCmd,
			SkipFlagParsing: true,
		},
		{
			Name:            "mul",
			Usage:           "Multiply two fractions",
			ArgsUsage:       "<x> <y>",
			Action:          arithmeticCmd,
			SkipFlagParsing: true,
		},
		{
			Name:            "div",
			Usage:           "Divide x by y",
			ArgsUsage:       "<x> <y>",
			Action:          arithmeticCmd,
			SkipFlagParsing: true,
		},
		{
			Name:            "cmp",
			Usage:           "Compare two fractions, prints -1, 0 or 1",
			ArgsUsage:       "<x> <y>",
			Action:          arithmeticCmd,
			SkipFlagParsing: true,
		},
		{
			Name:            "abs",
			Usage:           "Print the absolute value",
			ArgsUsage:       "<fraction>",
			Action:          absCmd,
			SkipFlagParsing: true,
		},
		{
			Name:      "decimal",
			Usage:     "Round a fraction to a decimal, put -- before a negative value",
			ArgsUsage: "[--places N] [--] <fraction>",
			Action:    decimalCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "places",
					Aliases: []string{"p"},
					Usage:   "the decimal places, the configured value by default",
				},
			},
		},
		{
			Name:            "fromdecimal",
			Usage:           "Convert a finite decimal to an exact fraction",
			ArgsUsage:       "<decimal>",
			Action:          fromDecimalCmd,
			SkipFlagParsing: true,
		},
		{
			Name:   "rpc",
			Usage:  "Start the fraction RPC server",
			Action: rpcCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "port",
					Aliases: []string{"p"},
					Usage:   "the port to listen, the configured value by default",
				},
			},
		},
		{
			Name:   "call",
			Usage:  "Call a method on a running RPC server",
			Action: callCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "node",
					Aliases: []string{"n"},
					Value:   defaultRPC,
					Usage:   "the RPC endpoint, and the default value is read from environment variable FRACTION_RPC",
				},
				&cli.StringFlag{
					Name:    "method",
					Aliases: []string{"m"},
					Usage:   "the RPC method, e.g. add",
				},
				&cli.StringFlag{
					Name:  "params",
					Value: "[]",
					Usage: "the JSON array of params, e.g. [\"1/3\",\"1/4\"]",
				},
			},
		},
	}
	return app
}
