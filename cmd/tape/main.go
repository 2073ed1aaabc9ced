// SPDX-License-Identifier: MIT

// Command tape runs programs for the eight-instruction tape language.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tape"
)

const appName = "tape"

// Exit codes.
const (
	exitOK = iota
	exitFailure
	exitUsage
)

type options struct {
	evaluate string
	stdin    string
	maxDepth int

	debug   bool
	wide    bool
	shared  bool
	dump    bool
	format  bool
	noColor bool
	repl    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags] [INPUT_FILE]\n  %s -e <source> [flags]\n  %s -repl [flags]\n\nFlags:\n",
			appName, appName, appName)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.evaluate, "e", "", "shorthand for -evaluate")
	fs.StringVar(&opts.evaluate, "evaluate", "", "source to execute instead of INPUT_FILE")
	fs.StringVar(&opts.stdin, "i", "", "shorthand for -stdin")
	fs.StringVar(&opts.stdin, "stdin", "", "bytes consumed by the ',' instruction")
	fs.IntVar(&opts.maxDepth, "max-depth", tape.DefaultMaxDepth, "maximum loop nesting depth")
	fs.BoolVar(&opts.debug, "debug", false, "log debug traces to stderr")
	fs.BoolVar(&opts.wide, "wide", false, "wrap the pointer over the whole tape instead of cells 0-255")
	fs.BoolVar(&opts.shared, "shared-input", false, "share one input queue across loop iterations")
	fs.BoolVar(&opts.dump, "dump", false, "print the parsed tree and exit")
	fs.BoolVar(&opts.format, "fmt", false, "print the canonical source and exit")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")
	fs.BoolVar(&opts.repl, "repl", false, "start an interactive session")

	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if opts.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	reporter := tape.NewConsoleReporter(stderr, !opts.noColor)
	cfg := &tape.Config{
		Logger:         logger,
		Reporter:       reporter,
		Debug:          opts.debug,
		MaxDepth:       opts.maxDepth,
		WideAddressing: opts.wide,
		SharedInput:    opts.shared,
	}

	if opts.repl {
		return cmdRepl(cfg, []byte(opts.stdin), stdout, stderr)
	}

	var source string
	switch {
	case fs.NArg() > 0:
		var err error
		if source, err = tape.LoadSource(fs.Arg(0), reporter); err != nil {
			logger.Debug(err)
			return exitFailure
		}
	case opts.evaluate != "":
		source = opts.evaluate
	default:
		fs.Usage()
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tree, err := tape.Parse(ctx, cfg, source)
	if err != nil {
		var structural *tape.StructuralError
		if !errors.As(err, &structural) {
			fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		}
		return exitFailure
	}

	switch {
	case opts.dump:
		tape.Dump(stdout, tree)
		return exitOK
	case opts.format:
		output, err := tape.Serialize(ctx, tree)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", appName, err)
			return exitFailure
		}
		fmt.Fprintln(stdout, output)
		return exitOK
	}

	m := tape.NewMachine(cfg, tape.WithInput([]byte(opts.stdin)), tape.WithOutput(stdout))
	if err = m.Run(ctx, tree); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitFailure
	}

	return exitOK
}
