// Package main implements the tinyc command, a driver for the Tiny front end.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/tiny/internal/config"
	"github.com/you-not-fish/tiny/internal/driver"
)

// Version information
const Version = "0.1.0-dev"

// errDiagnostics is returned by a command after its diagnostics have been
// printed; it only selects the exit status.
var errDiagnostics = errors.New("diagnostics reported")

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs tinyc with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(stderr, "tinyc: %v\n", err)
		}
		return 1
	}
	return 0
}

// app holds the state shared by all subcommands.
type app struct {
	stdout, stderr io.Writer

	// Flag values
	cfgFile       string
	format        string
	color         string
	logLevel      string
	lenient       bool
	trace         bool
	verify        bool
	firstLocation int

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	log    *slog.Logger
	styles *styles
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "tinyc",
		Short: "Front end for the Tiny teaching language",
		Long: `tinyc scans, parses and type-checks programs written in Tiny.

Commands:
  tokens   - print the token stream
  ast      - print the syntax tree
  symtab   - print the symbol table
  check    - run the whole front end over one or more files`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.StringVarP(&a.format, "format", "f", "text", "output format: text, json or yaml")
	flags.StringVar(&a.color, "color", "auto", "colored diagnostics: auto, always or never")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&a.lenient, "lenient", false, "report token mismatches and keep parsing")
	flags.BoolVar(&a.trace, "trace", false, "log every pass with its duration")
	flags.BoolVar(&a.verify, "verify", false, "verify the syntax tree around every pass")
	flags.IntVar(&a.firstLocation, "first-location", 0, "first storage location in the symbol table")

	root.AddCommand(
		newTokensCmd(a),
		newASTCmd(a),
		newSymtabCmd(a),
		newCheckCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the configuration file, applies flags given on the command
// line on top of it and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		var err error
		if cfg, err = config.Load(a.cfgFile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = a.color
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("lenient") {
		cfg.Parse.Strict = !a.lenient
	}
	if flags.Changed("trace") {
		cfg.Trace = a.trace
	}
	if flags.Changed("verify") {
		cfg.Verify = a.verify
	}
	if flags.Changed("first-location") {
		cfg.Symtab.FirstLocation = a.firstLocation
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.styles = newStyles(a.stderr, cfg.Output.Color)
	return nil
}

// options returns the driver options selected by the configuration.
func (a *app) options() driver.Options {
	return driver.Options{
		Strict:        a.cfg.Parse.Strict,
		FirstLocation: a.cfg.Symtab.FirstLocation,
		Verify:        a.cfg.Verify,
		Trace:         a.cfg.Trace,
		Logger:        a.log,
	}
}

// passConfig returns the pass runner configuration for partial pipelines.
func (a *app) passConfig() driver.Config {
	return driver.Config{
		Verify: a.cfg.Verify,
		Trace:  a.cfg.Trace,
		Dump:   a.stderr,
		Logger: a.log,
	}
}
