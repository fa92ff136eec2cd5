// Package types2 implements type checking for the Tiny programming language.
package types2

import (
	"fmt"

	"github.com/you-not-fish/tiny/internal/syntax"
)

// TypeError represents a type checking error.
type TypeError struct {
	Pos  syntax.Pos
	Node syntax.Node // offending node
	Kind string      // its kind, as reported by syntax.KindOf
	Msg  string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is a function called for each type error.
type ErrorHandler func(pos syntax.Pos, msg string)

// errorf reports a type error at n. Only the first report is kept;
// once it is set the checker stops visiting nodes.
func (c *Checker) errorf(n syntax.Node, format string, args ...interface{}) {
	if c.first != nil {
		return
	}
	err := &TypeError{
		Pos:  n.Pos(),
		Node: n,
		Kind: syntax.KindOf(n),
		Msg:  syntax.KindOf(n) + ": " + fmt.Sprintf(format, args...),
	}
	c.first = err

	if c.conf.Error != nil {
		c.conf.Error(err.Pos, err.Msg)
	}
}

// missing reports a required child of n that is absent.
func (c *Checker) missing(n syntax.Node, what string) {
	c.errorf(n, "missing %s", what)
}

// mistyped reports a child of n whose type is not want.
func (c *Checker) mistyped(n syntax.Node, what string, got, want syntax.Type) {
	c.errorf(n, "%s has type %s, want %s", what, got, want)
}
