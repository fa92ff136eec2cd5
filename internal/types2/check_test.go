package types2

import (
	"strings"
	"testing"

	"github.com/you-not-fish/tiny/internal/syntax"
)

// parse parses src, failing the test on any syntax error.
func parse(t *testing.T, src string) *syntax.Program {
	t.Helper()
	p := syntax.NewParser("test.tny", strings.NewReader(src), nil)
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

// parseAndCheck parses src and runs the type checker.
// Returns the program, the returned error and every reported message.
func parseAndCheck(t *testing.T, src string) (*syntax.Program, error, []string) {
	t.Helper()
	prog := parse(t, src)

	var msgs []string
	conf := &Config{
		Error: func(pos syntax.Pos, msg string) {
			msgs = append(msgs, pos.String()+": "+msg)
		},
	}
	err := Check(prog, conf)
	return prog, err, msgs
}

// expectNoErrors checks that the source code type-checks without errors.
func expectNoErrors(t *testing.T, src string) *syntax.Program {
	t.Helper()
	prog, err, msgs := parseAndCheck(t, src)
	if err != nil || len(msgs) > 0 {
		t.Errorf("unexpected errors: %v\n%s", err, strings.Join(msgs, "\n"))
	}
	return prog
}

// expectError checks that type-checking stops with exactly one error.
func expectError(t *testing.T, src, wantPos, wantMsg string) *TypeError {
	t.Helper()
	_, err, msgs := parseAndCheck(t, src)
	if err == nil {
		t.Fatalf("expected error %q, got none", wantMsg)
	}
	te, ok := err.(*TypeError)
	if !ok {
		t.Fatalf("error type = %T, want *TypeError", err)
	}
	if te.Pos.String() != wantPos {
		t.Errorf("pos = %s, want %s", te.Pos, wantPos)
	}
	if te.Msg != wantMsg {
		t.Errorf("msg = %q, want %q", te.Msg, wantMsg)
	}
	if len(msgs) != 1 {
		t.Errorf("reported %d errors, want 1:\n%s", len(msgs), strings.Join(msgs, "\n"))
	}
	return te
}

func TestScenarioA(t *testing.T) {
	prog := expectNoErrors(t, "read x; if 0<x then fact:=1; repeat fact:=fact*x; x:=x-1 until x=0; write fact end")

	cond := prog.Stmts[1].(*syntax.IfStmt).Cond
	if cond.Type() != syntax.Boolean {
		t.Errorf("if condition type = %s, want boolean", cond.Type())
	}
}

func TestScenarioB(t *testing.T) {
	prog := expectNoErrors(t, "write 1 + x")

	op := prog.Stmts[0].(*syntax.WriteStmt).Value.(*syntax.Operation)
	if op.Type() != syntax.Integer {
		t.Errorf("+ type = %s, want integer", op.Type())
	}
	if op.X.Type() != syntax.Integer || op.Y.Type() != syntax.Integer {
		t.Errorf("operand types = %s, %s", op.X.Type(), op.Y.Type())
	}
}

func TestScenarioD(t *testing.T) {
	te := expectError(t, "repeat x:=1 until x", "test.tny:1:1", "repeat: until-condition has type integer, want boolean")
	if te.Kind != "repeat" {
		t.Errorf("kind = %s, want repeat", te.Kind)
	}
	if _, ok := te.Node.(*syntax.RepeatStmt); !ok {
		t.Errorf("node = %T, want *syntax.RepeatStmt", te.Node)
	}
}

func TestOperatorTypes(t *testing.T) {
	tests := []struct {
		src  string
		want syntax.Type
	}{
		{"1 + 2", syntax.Integer},
		{"a - b", syntax.Integer},
		{"a * 2", syntax.Integer},
		{"8 / a", syntax.Integer},
		{"a < b", syntax.Boolean},
		{"a = 1", syntax.Boolean},
		{"(a + 1) < (b * 2)", syntax.Boolean},
		{"((1))", syntax.Integer},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			// Boolean results are only legal as conditions.
			src := "write " + tt.src
			if tt.want == syntax.Boolean {
				src = "if " + tt.src + " then read a end"
			}
			prog := expectNoErrors(t, src)

			var x syntax.Expr
			switch s := prog.Stmts[0].(type) {
			case *syntax.WriteStmt:
				x = s.Value
			case *syntax.IfStmt:
				x = s.Cond
			}
			if x.Type() != tt.want {
				t.Errorf("type = %s, want %s", x.Type(), tt.want)
			}
		})
	}
}

func TestAllExprsTyped(t *testing.T) {
	prog := expectNoErrors(t, `read n;
if 0 < n then
  s := 0;
  repeat
    s := s + n * n;
    n := n - 1
  until n = 0;
  write s
else
  write 0 - n
end`)

	if err := syntax.Verify(prog, true); err != nil {
		t.Errorf("Verify after check: %v", err)
	}
}

func TestTypeErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantPos string
		wantMsg string
	}{
		{"if_integer_cond", "if 1 then read x end", "test.tny:1:1", "if: condition has type integer, want boolean"},
		{"repeat_integer_cond", "repeat read x until x + 1", "test.tny:1:1", "repeat: until-condition has type integer, want boolean"},
		{"assign_boolean", "read y;\nx := y < 2", "test.tny:2:1", "assign: assigned value has type boolean, want integer"},
		{"write_boolean", "write 1 = 1", "test.tny:1:1", "write: written value has type boolean, want integer"},
		{"boolean_left_operand", "write (1 < 2) + 1", "test.tny:1:8", "op: left operand of + has type boolean, want integer"},
		{"boolean_right_operand", "if 1 < (2 < 3) then read x end", "test.tny:1:4", "op: right operand of < has type boolean, want integer"},
		{"compare_booleans", "if (a < b) = (b < a) then read a end", "test.tny:1:5", "op: left operand of = has type boolean, want integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, tt.src, tt.wantPos, tt.wantMsg)
		})
	}
}

func TestFirstErrorAborts(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{
			name:    "source_order",
			src:     "write 1 < 2;\nx := 1 = 1",
			wantMsg: "test.tny:1:1: write: written value has type boolean, want integer",
		},
		{
			name:    "children_first",
			src:     "if 1 then\nx := 1 < 2\nend",
			wantMsg: "test.tny:2:1: assign: assigned value has type boolean, want integer",
		},
		{
			name:    "body_before_until",
			src:     "repeat\nwrite 1 < 2\nuntil 1",
			wantMsg: "test.tny:2:1: write: written value has type boolean, want integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err, msgs := parseAndCheck(t, tt.src)
			if err == nil {
				t.Fatal("expected an error")
			}
			if len(msgs) != 1 {
				t.Fatalf("reported %d errors, want 1:\n%s", len(msgs), strings.Join(msgs, "\n"))
			}
			if msgs[0] != tt.wantMsg {
				t.Errorf("got %q, want %q", msgs[0], tt.wantMsg)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestStopsAfterError(t *testing.T) {
	prog, err, _ := parseAndCheck(t, "write 1 < 2; write a + b")
	if err == nil {
		t.Fatal("expected an error")
	}
	// The second statement is never visited.
	op := prog.Stmts[1].(*syntax.WriteStmt).Value
	if op.Type() != syntax.Void {
		t.Errorf("statement after the error was typed %s", op.Type())
	}
}

func TestMissingChildren(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		mutate  func(*syntax.Program)
		wantMsg string
	}{
		{
			name:    "if_cond",
			src:     "if a < b then read a end",
			mutate:  func(p *syntax.Program) { p.Stmts[0].(*syntax.IfStmt).Cond = nil },
			wantMsg: "if: missing condition",
		},
		{
			name:    "repeat_cond",
			src:     "repeat read a until a = 1",
			mutate:  func(p *syntax.Program) { p.Stmts[0].(*syntax.RepeatStmt).Cond = nil },
			wantMsg: "repeat: missing until-condition",
		},
		{
			name:    "assign_value",
			src:     "a := 1",
			mutate:  func(p *syntax.Program) { p.Stmts[0].(*syntax.AssignStmt).Value = nil },
			wantMsg: "assign: missing assigned value",
		},
		{
			name:    "write_value",
			src:     "write 1",
			mutate:  func(p *syntax.Program) { p.Stmts[0].(*syntax.WriteStmt).Value = nil },
			wantMsg: "write: missing written value",
		},
		{
			name:    "operand",
			src:     "write a + b",
			mutate:  func(p *syntax.Program) { p.Stmts[0].(*syntax.WriteStmt).Value.(*syntax.Operation).Y = nil },
			wantMsg: "op: missing right operand of +",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parse(t, tt.src)
			tt.mutate(prog)
			err := Check(prog, nil)
			te, ok := err.(*TypeError)
			if !ok {
				t.Fatalf("error = %v (%T), want *TypeError", err, err)
			}
			if te.Msg != tt.wantMsg {
				t.Errorf("msg = %q, want %q", te.Msg, tt.wantMsg)
			}
		})
	}
}

func TestCheckNil(t *testing.T) {
	if err := Check(nil, nil); err == nil {
		t.Error("Check(nil) = nil, want error")
	}
}

func TestCheckTwice(t *testing.T) {
	prog := parse(t, "read x; write x * 2")
	for i := 0; i < 2; i++ {
		if err := Check(prog, nil); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
}
