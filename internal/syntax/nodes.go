// Package syntax implements lexical and syntactic analysis for the Tiny programming language.
package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 classes of nodes below the Program root: Statements and
// Expressions. All nodes implement the Node interface. Expression nodes also
// carry a type, filled in by the type checker.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	Type() Type     // Void until the type checker runs
	SetType(t Type) // used by the type checker only
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct {
	node
	typ Type
}

func (x *expr) Type() Type     { return x.typ }
func (x *expr) SetType(t Type) { x.typ = t }
func (*expr) aExpr()           {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program

// Program is the root of a parsed source file: a statement sequence.
type Program struct {
	node
	Stmts []Stmt // statements in source order
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier used as an operand.
type Name struct {
	expr
	Value string // identifier string
}

// BasicLit represents a number literal.
type BasicLit struct {
	expr
	Value string // literal text as scanned
	Int   int64  // decoded value
}

// Operation represents a binary operation: X Op Y.
// Op is one of = < + - * /.
type Operation struct {
	expr
	Op Token // operator token
	X  Expr  // left operand
	Y  Expr  // right operand
}

// ----------------------------------------------------------------------------
// Statements

// IfStmt represents: if Cond then Then [else Else] end
type IfStmt struct {
	stmt
	Cond Expr   // condition expression
	Then []Stmt // then branch
	Else []Stmt // else branch (nil if absent)
}

// RepeatStmt represents: repeat Body until Cond
type RepeatStmt struct {
	stmt
	Body []Stmt // loop body
	Cond Expr   // until-condition
}

// AssignStmt represents: Name := Value
type AssignStmt struct {
	stmt
	Name  string // assignment target
	Value Expr   // assigned expression
}

// ReadStmt represents: read Name
type ReadStmt struct {
	stmt
	Name string // read target
}

// WriteStmt represents: write Value
type WriteStmt struct {
	stmt
	Value Expr // written expression
}

// ----------------------------------------------------------------------------
// Kinds

// KindOf returns the kind name of n as used in diagnostics
// ("if", "repeat", "assign", "read", "write", "op", "const", "id").
func KindOf(n Node) string {
	switch n.(type) {
	case *Program:
		return "program"
	case *IfStmt:
		return "if"
	case *RepeatStmt:
		return "repeat"
	case *AssignStmt:
		return "assign"
	case *ReadStmt:
		return "read"
	case *WriteStmt:
		return "write"
	case *Operation:
		return "op"
	case *BasicLit:
		return "const"
	case *Name:
		return "id"
	}
	return "unknown"
}
