package types2

import (
	"errors"

	"github.com/you-not-fish/tiny/internal/syntax"
)

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called with the type error that stops the check.
	// If nil, the error is only returned.
	Error ErrorHandler
}

// Check type-checks a parsed program, setting the type of every
// expression it visits. The program is walked children first, then the
// node itself, then the following statement. Checking stops at the first
// violation, which is returned as a *TypeError.
func Check(prog *syntax.Program, conf *Config) error {
	if prog == nil {
		return errors.New("types2: nil program")
	}
	if conf == nil {
		conf = &Config{}
	}

	c := &Checker{conf: conf}
	c.stmts(prog.Stmts)

	if c.first != nil {
		return c.first
	}
	return nil
}
