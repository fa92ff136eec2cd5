package syntax

import (
	"fmt"
	"strings"
)

// Verify checks the structural integrity of a parsed program.
// It returns an error describing all violations found, or nil if valid.
// When typed is set, every expression must also carry a non-Void type
// consistent with its operator.
func Verify(prog *Program, typed bool) error {
	if prog == nil {
		return fmt.Errorf("verify: nil program")
	}

	var errs []string
	add := func(n Node, format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf("%s %s: %s", KindOf(n), n.Pos(), fmt.Sprintf(format, args...)))
	}

	Inspect(prog, func(n Node) bool {
		// 1. Every node carries a valid line
		if !n.Pos().IsValid() {
			add(n, "missing position")
		}

		switch n := n.(type) {
		case *IfStmt:
			// 2. Required children are present
			if n.Cond == nil {
				add(n, "missing condition")
			}
			if len(n.Then) == 0 {
				add(n, "empty then branch")
			}
			if n.Else != nil && len(n.Else) == 0 {
				add(n, "empty else branch")
			}

		case *RepeatStmt:
			if len(n.Body) == 0 {
				add(n, "empty body")
			}
			if n.Cond == nil {
				add(n, "missing until-condition")
			}

		case *AssignStmt:
			if n.Name == "" {
				add(n, "missing target name")
			}
			if n.Value == nil {
				add(n, "missing value")
			}

		case *ReadStmt:
			if n.Name == "" {
				add(n, "missing target name")
			}

		case *WriteStmt:
			if n.Value == nil {
				add(n, "missing value")
			}

		case *Operation:
			// 3. Operator is a binary operator and both operands exist
			if !n.Op.IsOperator() {
				add(n, "invalid operator %s", n.Op)
			}
			if n.X == nil || n.Y == nil {
				add(n, "missing operand")
			}
			// 4. Operation positions start at the left operand
			if n.X != nil && n.X.Pos() != n.pos {
				add(n, "position %s differs from left operand %s", n.pos, n.X.Pos())
			}
			if typed {
				want := Integer
				if n.Op.IsComparison() {
					want = Boolean
				}
				if n.Type() != want {
					add(n, "type %s, want %s", n.Type(), want)
				}
			}

		case *BasicLit, *Name:
			if typed && n.(Expr).Type() != Integer {
				add(n, "type %s, want integer", n.(Expr).Type())
			}
		}
		return true
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("verify: %d problem(s):\n  %s", len(errs), strings.Join(errs, "\n  "))
}
