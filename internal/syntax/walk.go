package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first pre-order: the node itself, then
// its children left to right, then (for sequences) the following statement.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkList(n.Stmts, v)

	case *IfStmt:
		Walk(n.Cond, v)
		walkList(n.Then, v)
		walkList(n.Else, v)

	case *RepeatStmt:
		walkList(n.Body, v)
		Walk(n.Cond, v)

	case *AssignStmt:
		Walk(n.Value, v)

	case *WriteStmt:
		Walk(n.Value, v)

	case *Operation:
		Walk(n.X, v)
		Walk(n.Y, v)

	// Leaf nodes: ReadStmt, Name, BasicLit
	// No children to visit
	}
}

func walkList(list []Stmt, v Visitor) {
	for _, s := range list {
		Walk(s, v)
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
