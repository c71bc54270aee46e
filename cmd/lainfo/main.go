// Command lainfo reports the active kernel backend and checks that kernel
// evaluation agrees with the generic element walk for every specialized
// expression pattern.
//
// Usage:
//
//	lainfo [flags] [pattern ...]
//
// Without arguments it checks all patterns.
//
// Examples:
//
//	lainfo
//	lainfo -n 256 -type float32
//	lainfo -backend generic Ax 'α*Aᵗ*x'
//	lainfo -list
//
// Environment:
//
//	LINALG_BACKEND     kernel backend to pin (overridden by -backend)
//	LINALG_LOG_LEVEL   debug, info, warn or error (default warn)
//	LINALG_LOG_DEV     console logging instead of JSON
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-linalg/internal/hostcpu"
	"github.com/cwbudde/algo-linalg/linalg"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lainfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 64, "vector length and matrix dimension")
	typ := fs.String("type", "float64", "element type: float32 or float64")
	backend := fs.String("backend", "", "kernel backend to use (see -list)")
	list := fs.Bool("list", false, "list patterns and backends")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lainfo [flags] [pattern ...]\n\n")
		fmt.Fprintf(stderr, "Compares kernel and generic evaluation of linalg expressions.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n <= 0 {
		return fmt.Errorf("invalid size %d", *n)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	linalg.SetLogger(logger)
	defer linalg.SetLogger(nil)

	if *backend == "" {
		*backend = cfg.Backend
	}
	if *backend != "" {
		if err := linalg.UseBackend(*backend); err != nil {
			return fmt.Errorf("select backend: %w", err)
		}
		defer linalg.ResetBackend()
	}

	host := hostcpu.Detect()
	logger.Info("host cpu",
		zap.String("arch", host.Architecture),
		zap.Strings("flags", host.Present()),
	)

	fmt.Fprintf(stdout, "host:     %s\n", host)
	fmt.Fprintf(stdout, "backend:  %s (registered: %s)\n", linalg.Backend(), strings.Join(linalg.Backends(), ", "))

	if *list {
		fmt.Fprintln(stdout)
		for _, name := range patternNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	var rows []row
	switch *typ {
	case "float64":
		rows, err = analyze[float64](*n, fs.Args())
	case "float32":
		rows, err = analyze[float32](*n, fs.Args())
	default:
		return fmt.Errorf("unknown element type %q", *typ)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "type:     %s, n=%d\n\n", *typ, *n)
	return printRows(stdout, rows)
}
