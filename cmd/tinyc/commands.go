package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/tiny/internal/driver"
	"github.com/you-not-fish/tiny/internal/symtab"
	"github.com/you-not-fish/tiny/internal/syntax"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(args[0])
		},
	}
}

func newASTCmd(a *app) *cobra.Command {
	var typed bool
	cmd := &cobra.Command{
		Use:   "ast FILE",
		Short: "Print the syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAST(args[0], typed)
		},
	}
	cmd.Flags().BoolVar(&typed, "typed", false, "type-check first and show expression types")
	return cmd
}

func newSymtabCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symtab FILE",
		Short: "Print the symbol table of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSymtab(args[0])
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Scan, parse, build the symbol table and type-check files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(args)
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "tinyc version %s\n", Version)
			fmt.Fprintf(a.stdout, "go version %s\n", runtime.Version())
		},
	}
}

// runTokens scans the input file and prints all tokens.
func (a *app) runTokens(filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	toks, errs := driver.Scan(filename, src)
	if err := a.emit(toks, func() { driver.FprintTokens(a.stdout, toks) }); err != nil {
		return err
	}
	return a.report(errs)
}

// runAST parses the input file and prints the syntax tree.
func (a *app) runAST(filename string, typed bool) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	u := driver.NewUnit(filename, src)
	passes := []driver.Pass{driver.ParsePass(a.cfg.Parse.Strict)}
	if typed {
		passes = append(passes, driver.CheckPass())
	}
	runErr := driver.Run(u, passes, a.passConfig())

	// A lenient parse still has a tree worth showing.
	if u.Program != nil {
		err := a.emitDoc(
			func() { syntax.Fprint(a.stdout, u.Program) },
			func() error { return syntax.FprintJSON(a.stdout, u.Program) },
			func() error { return syntax.FprintYAML(a.stdout, u.Program) },
		)
		if err != nil {
			return err
		}
	}
	return a.finish(u, runErr)
}

// runSymtab parses the input file and prints its symbol table.
func (a *app) runSymtab(filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	u := driver.NewUnit(filename, src)
	passes := []driver.Pass{
		driver.ParsePass(a.cfg.Parse.Strict),
		driver.SymtabPass(a.cfg.Symtab.FirstLocation),
	}
	runErr := driver.Run(u, passes, a.passConfig())

	if u.Symbols != nil {
		err := a.emitDoc(
			func() { symtab.Fprint(a.stdout, u.Symbols) },
			func() error { return symtab.FprintJSON(a.stdout, u.Symbols) },
			func() error { return symtab.FprintYAML(a.stdout, u.Symbols) },
		)
		if err != nil {
			return err
		}
	}
	return a.finish(u, runErr)
}

// checkResult is the per-file record of the check command.
type checkResult struct {
	File        string   `json:"file" yaml:"file"`
	Unit        string   `json:"unit" yaml:"unit"`
	OK          bool     `json:"ok" yaml:"ok"`
	Symbols     int      `json:"symbols" yaml:"symbols"`
	Diagnostics []string `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// runCheck compiles every file independently and reports the outcome of each.
func (a *app) runCheck(files []string) error {
	var results []checkResult
	failed := false

	for _, filename := range files {
		src, err := os.ReadFile(filename)
		if err != nil {
			return err
		}

		u, err := driver.Compile(filename, src, a.options())
		res := checkResult{File: filename, Unit: u.ID.String(), OK: err == nil}
		if u.Symbols != nil {
			res.Symbols = u.Symbols.Len()
		}
		for _, d := range u.Diagnostics {
			res.Diagnostics = append(res.Diagnostics, d.Error())
		}
		results = append(results, res)

		if err != nil {
			failed = true
			a.printDiagnostics(u, err)
		} else if a.cfg.Output.Format == "text" {
			fmt.Fprintln(a.stdout, a.styles.ok.Render(filename+": ok"))
		}
	}

	if a.cfg.Output.Format != "text" {
		if err := a.emit(results, nil); err != nil {
			return err
		}
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

// emit writes v in the configured format; text output is produced by text.
func (a *app) emit(v interface{}, text func()) error {
	return a.emitDoc(text,
		func() error {
			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
		func() error {
			enc := yaml.NewEncoder(a.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		})
}

func (a *app) emitDoc(text func(), asJSON, asYAML func() error) error {
	switch a.cfg.Output.Format {
	case "json":
		return asJSON()
	case "yaml":
		return asYAML()
	}
	if text != nil {
		text()
	}
	return nil
}

// finish prints the diagnostics of u and turns a pipeline failure into
// the command's result.
func (a *app) finish(u *driver.Unit, runErr error) error {
	if runErr == nil {
		return nil
	}
	a.printDiagnostics(u, runErr)
	return errDiagnostics
}

// report prints errs and fails if there are any.
func (a *app) report(errs []error) error {
	for _, err := range errs {
		fmt.Fprintln(a.stderr, a.styles.diagnostic(err))
	}
	if len(errs) > 0 {
		return errDiagnostics
	}
	return nil
}

// printDiagnostics prints every diagnostic of u, or runErr itself when the
// pipeline stopped without recording one (a verifier failure).
func (a *app) printDiagnostics(u *driver.Unit, runErr error) {
	for _, d := range u.Diagnostics {
		fmt.Fprintln(a.stderr, a.styles.diagnostic(d))
	}
	if len(u.Diagnostics) == 0 {
		fmt.Fprintln(a.stderr, a.styles.diagnostic(runErr))
	}
}
