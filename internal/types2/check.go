package types2

import "github.com/you-not-fish/tiny/internal/syntax"

// Checker is the type checker.
type Checker struct {
	conf *Config

	// Error tracking
	first *TypeError // first error; checking stops once set
}

// failed reports whether checking has stopped.
func (c *Checker) failed() bool {
	return c.first != nil
}

// require checks that x is present and has type want. what names the
// child in diagnostics reported at n.
func (c *Checker) require(n syntax.Node, x syntax.Expr, what string, want syntax.Type) {
	if c.failed() {
		return
	}
	if x == nil {
		c.missing(n, what)
		return
	}
	if got := x.Type(); got != want {
		c.mistyped(n, what, got, want)
	}
}
