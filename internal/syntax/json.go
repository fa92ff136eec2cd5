package syntax

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTree(node))
}

// FprintYAML writes a YAML representation of the AST to w.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toTree(node)); err != nil {
		return err
	}
	return enc.Close()
}

// toTree converts node into nested maps and slices shared by the JSON
// and YAML encoders.
func toTree(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"kind":  "Program",
			"pos":   n.pos.String(),
			"stmts": stmtsTree(n.Stmts),
		}

	case *IfStmt:
		m := map[string]interface{}{
			"kind": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toTree(n.Cond),
			"then": stmtsTree(n.Then),
		}
		if n.Else != nil {
			m["else"] = stmtsTree(n.Else)
		}
		return m

	case *RepeatStmt:
		return map[string]interface{}{
			"kind":  "RepeatStmt",
			"pos":   n.pos.String(),
			"body":  stmtsTree(n.Body),
			"until": toTree(n.Cond),
		}

	case *AssignStmt:
		return map[string]interface{}{
			"kind":  "AssignStmt",
			"pos":   n.pos.String(),
			"name":  n.Name,
			"value": toTree(n.Value),
		}

	case *ReadStmt:
		return map[string]interface{}{
			"kind": "ReadStmt",
			"pos":  n.pos.String(),
			"name": n.Name,
		}

	case *WriteStmt:
		return map[string]interface{}{
			"kind":  "WriteStmt",
			"pos":   n.pos.String(),
			"value": toTree(n.Value),
		}

	case *Operation:
		return exprTree(n, map[string]interface{}{
			"kind": "Operation",
			"op":   n.Op.String(),
			"x":    toTree(n.X),
			"y":    toTree(n.Y),
		})

	case *BasicLit:
		return exprTree(n, map[string]interface{}{
			"kind":  "BasicLit",
			"value": n.Int,
		})

	case *Name:
		return exprTree(n, map[string]interface{}{
			"kind":  "Name",
			"value": n.Value,
		})
	}

	return nil
}

// exprTree adds the position and, once assigned, the type of x to m.
func exprTree(x Expr, m map[string]interface{}) map[string]interface{} {
	m["pos"] = x.Pos().String()
	if x.Type() != Void {
		m["type"] = x.Type().String()
	}
	return m
}

func stmtsTree(list []Stmt) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, s := range list {
		out = append(out, toTree(s))
	}
	return out
}
