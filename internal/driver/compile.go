package driver

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/you-not-fish/tiny/internal/symtab"
	"github.com/you-not-fish/tiny/internal/syntax"
	"github.com/you-not-fish/tiny/internal/types2"
)

// Options configures Compile.
type Options struct {
	Strict        bool   // stop parsing at the first syntax error
	FirstLocation int    // first storage location handed out by the symbol table
	Verify        bool   // verify the AST around every pass
	Trace         bool   // log every pass with its duration
	DumpBefore    string // see Config
	DumpAfter     string // see Config
	Logger        *slog.Logger
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Strict: true}
}

// ScanPass records the token stream of the unit. Lexical errors are left
// for the parse pass to report.
func ScanPass() Pass {
	return Pass{Name: "scan", Fn: func(u *Unit) error {
		u.Tokens, _ = Scan(u.Filename, u.Src)
		return nil
	}}
}

// ParsePass parses the unit. Every lexical and syntax error is recorded in
// the unit's diagnostics; the pass fails if there was any syntax error.
func ParsePass(strict bool) Pass {
	return Pass{Name: "parse", Fn: func(u *Unit) error {
		p := syntax.NewParser(u.Filename, bytes.NewReader(u.Src), u.report)
		p.SetStrict(strict)
		prog, err := p.Parse()
		u.Program = prog
		if err != nil {
			return err
		}
		if n := p.Errors(); n > 0 {
			return fmt.Errorf("%d syntax errors, first: %w", n, p.FirstError())
		}
		return nil
	}}
}

// SymtabPass builds the symbol table with locations starting at first.
func SymtabPass(first int) Pass {
	return Pass{Name: "symtab", Fn: func(u *Unit) error {
		if u.Program == nil {
			return errors.New("symtab: no program")
		}
		u.Symbols = symtab.NewBuilder(first).Build(u.Program)
		return nil
	}}
}

// CheckPass type-checks the program.
func CheckPass() Pass {
	return Pass{Name: "check", Fn: func(u *Unit) error {
		if err := types2.Check(u.Program, nil); err != nil {
			u.report(err)
			return err
		}
		u.typed = true
		return nil
	}}
}

// StandardPasses returns the full front end pipeline.
func StandardPasses(opts Options) []Pass {
	return []Pass{
		ScanPass(),
		ParsePass(opts.Strict),
		SymtabPass(opts.FirstLocation),
		CheckPass(),
	}
}

// Compile runs the standard pipeline over src. The returned unit holds
// whatever the passes produced before an error stopped the pipeline.
func Compile(filename string, src []byte, opts Options) (*Unit, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	u := NewUnit(filename, src)
	log.Debug("compile start", "unit", u.ID, "file", filename, "bytes", len(src))

	err := Run(u, StandardPasses(opts), Config{
		DumpBefore: opts.DumpBefore,
		DumpAfter:  opts.DumpAfter,
		Verify:     opts.Verify,
		Trace:      opts.Trace,
		Logger:     log,
	})
	if err != nil {
		log.Debug("compile failed", "unit", u.ID, "file", filename, "diagnostics", len(u.Diagnostics), "err", err)
		return u, err
	}

	log.Debug("compile done", "unit", u.ID, "file", filename, "symbols", u.Symbols.Len())
	return u, nil
}
