package types2

import "github.com/you-not-fish/tiny/internal/syntax"

// stmts checks a statement sequence in source order.
func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		if c.failed() {
			return
		}
		c.stmt(s)
	}
}

// stmt checks a single statement after its children.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.IfStmt:
		c.ifStmt(s)

	case *syntax.RepeatStmt:
		c.repeatStmt(s)

	case *syntax.AssignStmt:
		c.expr(s.Value)
		c.require(s, s.Value, "assigned value", syntax.Integer)

	case *syntax.ReadStmt:
		// Nothing to check

	case *syntax.WriteStmt:
		c.expr(s.Value)
		c.require(s, s.Value, "written value", syntax.Integer)

	default:
		c.errorf(s, "unexpected statement %T", s)
	}
}

// ifStmt checks an if statement.
// The condition must be a comparison.
func (c *Checker) ifStmt(s *syntax.IfStmt) {
	c.expr(s.Cond)
	c.stmts(s.Then)
	c.stmts(s.Else)
	c.require(s, s.Cond, "condition", syntax.Boolean)
}

// repeatStmt checks a repeat statement.
func (c *Checker) repeatStmt(s *syntax.RepeatStmt) {
	c.stmts(s.Body)
	c.expr(s.Cond)
	c.require(s, s.Cond, "until-condition", syntax.Boolean)
}
