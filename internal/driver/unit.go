// Package driver runs the Tiny front end over a source file: scanning,
// parsing, symbol table construction and type checking, each as a named
// pass over a compilation unit.
package driver

import (
	"github.com/google/uuid"

	"github.com/you-not-fish/tiny/internal/symtab"
	"github.com/you-not-fish/tiny/internal/syntax"
)

// Unit is one source file moving through the pipeline.
// Each pass fills in the fields it owns.
type Unit struct {
	ID       uuid.UUID
	Filename string
	Src      []byte

	Tokens      []TokenInfo     // scan
	Program     *syntax.Program // parse
	Symbols     *symtab.Table   // symtab
	Diagnostics []error         // lexical, syntax and type errors, in report order

	typed bool // set once the type checker has succeeded
}

// NewUnit returns a unit for src with a fresh ID.
func NewUnit(filename string, src []byte) *Unit {
	return &Unit{
		ID:       uuid.New(),
		Filename: filename,
		Src:      src,
	}
}

// Typed reports whether the program has been type-checked successfully.
func (u *Unit) Typed() bool {
	return u.typed
}

func (u *Unit) report(err error) {
	u.Diagnostics = append(u.Diagnostics, err)
}
