package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
// Expression types are shown once the type checker has assigned them.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// section prints a labelled, indented statement list.
func (p *printer) section(label string, list []Stmt) {
	p.printf("%s:\n", label)
	p.indent++
	for _, s := range list {
		p.print(s)
	}
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.printf("Cond:\n")
		p.indent++
		p.print(n.Cond)
		p.indent--
		p.section("Then", n.Then)
		if n.Else != nil {
			p.section("Else", n.Else)
		}
		p.indent--

	case *RepeatStmt:
		p.printf("RepeatStmt %s\n", n.pos)
		p.indent++
		p.section("Body", n.Body)
		p.printf("Until:\n")
		p.indent++
		p.print(n.Cond)
		p.indent--
		p.indent--

	case *AssignStmt:
		p.printf("AssignStmt %s %s\n", n.pos, n.Name)
		p.indent++
		p.print(n.Value)
		p.indent--

	case *ReadStmt:
		p.printf("ReadStmt %s %s\n", n.pos, n.Name)

	case *WriteStmt:
		p.printf("WriteStmt %s\n", n.pos)
		p.indent++
		p.print(n.Value)
		p.indent--

	case *Operation:
		p.printf("Operation %s %s%s\n", n.Op, n.pos, typeSuffix(n))
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *BasicLit:
		p.printf("BasicLit %s %s%s\n", n.Value, n.pos, typeSuffix(n))

	case *Name:
		p.printf("Name %s %s%s\n", n.Value, n.pos, typeSuffix(n))

	default:
		p.printf("<unknown node %T>\n", n)
	}
}

// typeSuffix returns " (type)" for a typed expression and "" otherwise.
func typeSuffix(x Expr) string {
	if x.Type() == Void {
		return ""
	}
	return " (" + x.Type().String() + ")"
}

// ExprString returns the source form of x, fully parenthesized for
// nested operations: (a + (b * c)).
func ExprString(x Expr) string {
	switch x := x.(type) {
	case nil:
		return "<nil>"
	case *Name:
		return x.Value
	case *BasicLit:
		return x.Value
	case *Operation:
		return "(" + ExprString(x.X) + " " + x.Op.String() + " " + ExprString(x.Y) + ")"
	}
	return fmt.Sprintf("<%T>", x)
}
