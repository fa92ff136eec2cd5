package syntax

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFprint(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "simple",
			src:  "read x; write x + 1",
			want: `Program test.tny:1:1
  ReadStmt test.tny:1:1 x
  WriteStmt test.tny:1:9
    Operation + test.tny:1:15
      Name x test.tny:1:15
      BasicLit 1 test.tny:1:19
`,
		},
		{
			name: "nested",
			src:  "if a < 1 then\nrepeat read a until a = 0\nelse write a end",
			want: `Program test.tny:1:1
  IfStmt test.tny:1:1
    Cond:
      Operation < test.tny:1:4
        Name a test.tny:1:4
        BasicLit 1 test.tny:1:8
    Then:
      RepeatStmt test.tny:2:1
        Body:
          ReadStmt test.tny:2:8 a
        Until:
          Operation = test.tny:2:21
            Name a test.tny:2:21
            BasicLit 0 test.tny:2:25
    Else:
      WriteStmt test.tny:3:6
        Name a test.tny:3:12
`,
		},
		{
			name: "assign",
			src:  "fact := fact * x",
			want: `Program test.tny:1:1
  AssignStmt test.tny:1:1 fact
    Operation * test.tny:1:9
      Name fact test.tny:1:9
      Name x test.tny:1:16
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseProgram(t, tt.src)
			var buf bytes.Buffer
			Fprint(&buf, prog)
			if got := buf.String(); got != tt.want {
				t.Errorf("Fprint output mismatch\ngot:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestFprintTyped(t *testing.T) {
	prog := parseProgram(t, "write 1 < x")
	op := prog.Stmts[0].(*WriteStmt).Value.(*Operation)
	op.SetType(Boolean)
	op.X.SetType(Integer)
	op.Y.SetType(Integer)

	var buf bytes.Buffer
	Fprint(&buf, prog)
	want := `Program test.tny:1:1
  WriteStmt test.tny:1:1
    Operation < test.tny:1:7 (boolean)
      BasicLit 1 test.tny:1:7 (integer)
      Name x test.tny:1:11 (integer)
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		x    Expr
		want string
	}{
		{nil, "<nil>"},
		{id("x"), "x"},
		{num("42", 42), "42"},
		{binop(_Add, id("a"), binop(_Mul, id("b"), num("2", 2))), "(a + (b * 2))"},
		{binop(_Lss, binop(_Sub, id("a"), id("b")), num("0", 0)), "((a - b) < 0)"},
	}
	for _, tt := range tests {
		if got := ExprString(tt.x); got != tt.want {
			t.Errorf("ExprString = %q, want %q", got, tt.want)
		}
	}
}

func TestFprintJSON(t *testing.T) {
	prog := parseProgram(t, "read x")

	var buf bytes.Buffer
	if err := FprintJSON(&buf, prog); err != nil {
		t.Fatalf("FprintJSON: %v", err)
	}
	want := `{
  "kind": "Program",
  "pos": "test.tny:1:1",
  "stmts": [
    {
      "kind": "ReadStmt",
      "name": "x",
      "pos": "test.tny:1:1"
    }
  ]
}
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintJSONTree(t *testing.T) {
	prog := parseProgram(t, "if x = 1 then write x else write 0 end")
	cond := prog.Stmts[0].(*IfStmt).Cond
	cond.SetType(Boolean)

	var buf bytes.Buffer
	if err := FprintJSON(&buf, prog); err != nil {
		t.Fatalf("FprintJSON: %v", err)
	}

	var tree struct {
		Kind  string `json:"kind"`
		Stmts []struct {
			Kind string `json:"kind"`
			Cond struct {
				Kind string `json:"kind"`
				Op   string `json:"op"`
				Type string `json:"type"`
				X    struct {
					Value string `json:"value"`
					Type  string `json:"type"`
				} `json:"x"`
				Y struct {
					Value int64 `json:"value"`
				} `json:"y"`
			} `json:"cond"`
			Then []json.RawMessage `json:"then"`
			Else []json.RawMessage `json:"else"`
		} `json:"stmts"`
	}
	if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if tree.Kind != "Program" || len(tree.Stmts) != 1 {
		t.Fatalf("unexpected root: %+v", tree)
	}
	s := tree.Stmts[0]
	if s.Kind != "IfStmt" {
		t.Errorf("kind = %q, want IfStmt", s.Kind)
	}
	if s.Cond.Kind != "Operation" || s.Cond.Op != "=" || s.Cond.Type != "boolean" {
		t.Errorf("cond = %+v", s.Cond)
	}
	if s.Cond.X.Value != "x" || s.Cond.X.Type != "" {
		t.Errorf("cond.x = %+v, want untyped x", s.Cond.X)
	}
	if s.Cond.Y.Value != 1 {
		t.Errorf("cond.y = %d, want 1", s.Cond.Y.Value)
	}
	if len(s.Then) != 1 || len(s.Else) != 1 {
		t.Errorf("then/else = %d/%d, want 1/1", len(s.Then), len(s.Else))
	}
}

func TestFprintYAML(t *testing.T) {
	prog := parseProgram(t, "repeat x := x - 1 until x < 1")

	var buf bytes.Buffer
	if err := FprintYAML(&buf, prog); err != nil {
		t.Fatalf("FprintYAML: %v", err)
	}

	var tree map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	if tree["kind"] != "Program" {
		t.Errorf("kind = %v, want Program", tree["kind"])
	}
	stmts, ok := tree["stmts"].([]interface{})
	if !ok || len(stmts) != 1 {
		t.Fatalf("stmts = %v", tree["stmts"])
	}
	rep := stmts[0].(map[string]interface{})
	if rep["kind"] != "RepeatStmt" || rep["pos"] != "test.tny:1:1" {
		t.Errorf("repeat = %v", rep)
	}
	until := rep["until"].(map[string]interface{})
	if until["op"] != "<" {
		t.Errorf("until.op = %v, want <", until["op"])
	}
	body := rep["body"].([]interface{})
	assign := body[0].(map[string]interface{})
	if assign["name"] != "x" {
		t.Errorf("body[0].name = %v, want x", assign["name"])
	}
}
