// ABOUTME: CLI entry point for cursory: loads settings, configures logging, dispatches the subcommand
// ABOUTME: The default command is the interactive raw-mode demo on the controlling terminal

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/cursory/internal/config"
	"github.com/mauromedda/cursory/internal/log"
	"github.com/mauromedda/cursory/pkg/term"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("cursory %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings and dispatches to the selected command.
func run(args cliArgs, stdout io.Writer) error {
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	cfg, err := loadSettings(args)
	if err != nil {
		return err
	}

	in, out := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	switch args.command {
	case "size":
		return runSize(term.System(), out, args.json, stdout)
	case "cursor":
		return runCursor(term.System(), in, out, cfg, args.json, stdout)
	case "keys":
		return runKeys(args.rest, args.json, stdout)
	case "config":
		return runConfig(cfg, args.configPath, stdout)
	case "help":
		return runHelp(stdout, term.IsTerminal(out))
	default:
		d := demo{
			sys:      term.System(),
			in:       in,
			out:      out,
			settings: cfg,
			json:     args.json,
			stdout:   stdout,
			watch:    watchResize,
			openTTY:  term.OpenTTY,
		}
		return d.run()
	}
}

// loadSettings reads the settings file and applies command-line overrides.
func loadSettings(args cliArgs) (*config.Settings, error) {
	cfg, err := config.Load(args.configPath)
	if err != nil {
		return nil, err
	}
	if args.vt100 {
		cfg.Glyphs = config.GlyphsVT100
	}
	if args.escapeTimeout > 0 {
		cfg.EscapeTimeoutMS = args.escapeTimeout
	}
	if !args.verbose {
		// Validate has already accepted the name.
		lvl, _ := log.ParseLevel(cfg.LogLevel)
		log.SetLevel(lvl)
	}
	return cfg, nil
}
