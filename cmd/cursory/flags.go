// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Global flags precede the subcommand: cursory [flags] [demo|size|cursor|keys|config|help] [args]

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
)

type cliArgs struct {
	configPath    string
	json          bool
	vt100         bool
	verbose       bool
	version       bool
	escapeTimeout int
	command       string
	rest          []string
}

// commands lists the subcommands in help order.
var commands = []string{"demo", "size", "cursor", "keys", "config", "help"}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("cursory", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/cursory/config.yaml)")
	fs.BoolVar(&args.json, "json", false, "Emit JSON instead of text")
	fs.BoolVar(&args.vt100, "vt100", false, "Draw boxes with DEC special graphics letters")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging on stderr")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.IntVar(&args.escapeTimeout, "escape-timeout", 0, "Escape sequence timeout in milliseconds (overrides settings)")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}

	args.command = "demo"
	if rest := fs.Args(); len(rest) > 0 {
		args.command, args.rest = rest[0], rest[1:]
	}
	if !slices.Contains(commands, args.command) {
		return cliArgs{}, fmt.Errorf("unknown command %q (try \"cursory help\")", args.command)
	}
	if args.escapeTimeout < 0 {
		return cliArgs{}, errors.New("-escape-timeout must not be negative")
	}
	return args, nil
}
