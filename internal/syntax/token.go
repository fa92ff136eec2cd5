// Package syntax implements lexical analysis for the Tiny programming language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of file
	_Error              // lexical error

	// Literals
	_Name   // identifier: x, fact
	_Number // decimal literal: 0, 42

	// Operators
	_Assign // :=
	_Eql    // =
	_Lss    // <
	_Add    // +
	_Sub    // -
	_Mul    // *
	_Div    // /

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Semi   // ;

	// Keywords
	_If
	_Then
	_Else
	_End
	_Repeat
	_Until
	_Read
	_Write

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:   "ID",
	_Number: "NUM",

	_Assign: ":=",
	_Eql:    "=",
	_Lss:    "<",
	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",

	_Lparen: "(",
	_Rparen: ")",
	_Semi:   ";",

	_If:     "if",
	_Then:   "then",
	_Else:   "else",
	_End:    "end",
	_Repeat: "repeat",
	_Until:  "until",
	_Read:   "read",
	_Write:  "write",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Describe returns the listing form of a token with literal lit,
// as printed by the token trace:
//
//	reserved word: if
//	ID, name= fact
//	NUM, val= 1
//	ERROR: :
func (t Token) Describe(lit string) string {
	switch {
	case t.IsKeyword():
		return "reserved word: " + t.String()
	case t == _Name:
		return "ID, name= " + lit
	case t == _Number:
		return "NUM, val= " + lit
	case t == _Error:
		return "ERROR: " + lit
	}
	return t.String()
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _If && t <= _Write
}

// IsOperator reports whether t is a binary operator token.
func (t Token) IsOperator() bool {
	return t >= _Eql && t <= _Div
}

// IsComparison reports whether t is one of the comparison operators = and <.
// Comparisons produce Boolean values.
func (t Token) IsComparison() bool {
	return t == _Eql || t == _Lss
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsError reports whether t is the lexical error token.
func (t Token) IsError() bool {
	return t == _Error
}

// Exported operator tokens for type checker and test access
const (
	Eql Token = _Eql // =
	Lss Token = _Lss // <
	Add Token = _Add // +
	Sub Token = _Sub // -
	Mul Token = _Mul // *
	Div Token = _Div // /
)

// keywords maps reserved words to their token type.
// Lookup is case-sensitive: "IF" is an identifier.
var keywords = map[string]Token{
	"if":     _If,
	"then":   _Then,
	"else":   _Else,
	"end":    _End,
	"repeat": _Repeat,
	"until":  _Until,
	"read":   _Read,
	"write":  _Write,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a reserved word, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// Type is the static type of an expression node.
type Type uint8

const (
	Void    Type = iota // not yet typed
	Integer             // integer value
	Boolean             // result of = and <
)

var typeNames = [...]string{
	Void:    "void",
	Integer: "integer",
	Boolean: "boolean",
}

// String returns the string representation of the type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}
