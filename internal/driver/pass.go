package driver

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/you-not-fish/tiny/internal/syntax"
)

// Pass describes a single step of the front end.
type Pass struct {
	Name string
	Fn   func(u *Unit) error
}

// Config controls pass execution behavior.
type Config struct {
	DumpBefore string       // dump the AST before this pass ("*" for all)
	DumpAfter  string       // dump the AST after this pass ("*" for all)
	Verify     bool         // verify the AST before/after each pass
	Trace      bool         // log every pass with its duration
	Dump       io.Writer    // destination of dumps; os.Stderr if nil
	Logger     *slog.Logger // slog.Default() if nil
}

// Run executes the given passes on u in order and stops at the first
// pass that fails.
func Run(u *Unit, passes []Pass, cfg Config) error {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	dump := cfg.Dump
	if dump == nil {
		dump = os.Stderr
	}

	for _, p := range passes {
		if shouldDump(cfg.DumpBefore, p.Name) && u.Program != nil {
			fmt.Fprintf(dump, "--- before %s (%s) ---\n", p.Name, u.Filename)
			syntax.Fprint(dump, u.Program)
			fmt.Fprintln(dump)
		}

		if cfg.Verify && u.Program != nil {
			if err := syntax.Verify(u.Program, u.typed); err != nil {
				return fmt.Errorf("verify before %s: %w", p.Name, err)
			}
		}

		start := time.Now()
		err := p.Fn(u)
		if cfg.Trace {
			log.Debug("pass",
				"unit", u.ID,
				"name", p.Name,
				"elapsed", time.Since(start),
				"ok", err == nil)
		}
		if err != nil {
			return err
		}

		if cfg.Verify && u.Program != nil {
			if err := syntax.Verify(u.Program, u.typed); err != nil {
				return fmt.Errorf("verify after %s: %w", p.Name, err)
			}
		}

		if shouldDump(cfg.DumpAfter, p.Name) && u.Program != nil {
			fmt.Fprintf(dump, "--- after %s (%s) ---\n", p.Name, u.Filename)
			syntax.Fprint(dump, u.Program)
			fmt.Fprintln(dump)
		}
	}
	return nil
}

func shouldDump(pattern, name string) bool {
	return pattern == "*" || pattern == name
}
