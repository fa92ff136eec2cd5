package types2

import "github.com/you-not-fish/tiny/internal/syntax"

// expr checks x and its operands and records the resulting type on x.
// A nil x is left to the enclosing node to report.
func (c *Checker) expr(x syntax.Expr) {
	if x == nil || c.failed() {
		return
	}

	switch x := x.(type) {
	case *syntax.BasicLit, *syntax.Name:
		x.SetType(syntax.Integer)

	case *syntax.Operation:
		c.binary(x)

	default:
		c.errorf(x, "unexpected expression %T", x)
	}
}

// binary checks an operation. Both operands must be integers; the result
// is boolean for = and <, integer otherwise.
func (c *Checker) binary(x *syntax.Operation) {
	c.expr(x.X)
	c.expr(x.Y)
	c.require(x, x.X, "left operand of "+x.Op.String(), syntax.Integer)
	c.require(x, x.Y, "right operand of "+x.Op.String(), syntax.Integer)
	if c.failed() {
		return
	}

	if x.Op.IsComparison() {
		x.SetType(syntax.Boolean)
	} else {
		x.SetType(syntax.Integer)
	}
}
