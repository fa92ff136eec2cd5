package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// Maximum number of errors before aborting parse.
const maxErrors = 10

// Parser performs syntax analysis on Tiny source code.
//
// Grammar:
//
//	program       -> stmt-sequence
//	stmt-sequence -> statement { ';' statement }
//	statement     -> if-stmt | repeat-stmt | assign-stmt | read-stmt | write-stmt
//	if-stmt       -> 'if' exp 'then' stmt-sequence [ 'else' stmt-sequence ] 'end'
//	repeat-stmt   -> 'repeat' stmt-sequence 'until' exp
//	assign-stmt   -> id ':=' exp
//	read-stmt     -> 'read' id
//	write-stmt    -> 'write' exp
//	exp           -> simple-exp [ ('<' | '=') simple-exp ]
//	simple-exp    -> term { ('+' | '-') term }
//	term          -> factor { ('*' | '/') factor }
//	factor        -> number | id | '(' exp ')'
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok Token
	lit string
	pos Pos

	// Error handling
	errh   ErrorHandler
	errcnt int   // syntax errors reported
	first  error // first syntax error encountered
	abort  bool  // set on a hard failure or when the error limit is reached
	strict bool  // treat every token mismatch as a hard failure
}

// NewParser creates a new Parser for the given source.
// Lexical and syntax errors are passed to errh as *LexError and *SyntaxError.
// The parser starts in strict mode.
func NewParser(filename string, src io.Reader, errh ErrorHandler) *Parser {
	p := &Parser{
		errh:   errh,
		strict: true,
	}
	scanErrh := func(line, col uint32, msg string) {
		if p.errh != nil {
			p.errh(&LexError{Pos: NewPos(filename, line, col), Msg: msg})
		}
	}
	p.scanner = NewScanner(filename, src, scanErrh)
	p.next() // prime the parser with first token
	return p
}

// SetStrict selects how a token mismatch is handled. In strict mode the
// mismatch ends the parse. Otherwise it is reported and parsing continues
// without consuming the unexpected token. A token that cannot start a
// statement or an expression always ends the parse.
func (p *Parser) SetStrict(strict bool) {
	p.strict = strict
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	if p.abort {
		p.tok = _EOF
		return
	}
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports a mismatch.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.mismatch(tok)
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current position.
func (p *Parser) syntaxError(msg string) {
	if p.abort {
		return
	}
	err := &SyntaxError{Pos: p.pos, Msg: msg, Got: p.tok, Lit: p.lit}
	if p.errcnt == 0 {
		p.first = err
	}
	p.errcnt++

	if p.errh != nil {
		p.errh(err)
	}

	p.errorLimitCheck()
}

// unexpected reports the current token as unexpected where what was expected.
func (p *Parser) unexpected(what string) {
	p.syntaxError(fmt.Sprintf("unexpected %s, expected %s", p.tokDesc(), what))
}

// mismatch reports that the current token is not tok. It is a hard
// failure only in strict mode.
func (p *Parser) mismatch(tok Token) {
	p.unexpected(tok.String())
	if p.strict {
		p.bail()
	}
}

// fatal reports an unexpected token and ends the parse.
func (p *Parser) fatal(what string) {
	p.unexpected(what)
	p.bail()
}

// bail stops parsing: every rule sees EOF from now on and unwinds.
func (p *Parser) bail() {
	p.abort = true
	p.tok = _EOF
}

// errorLimitCheck aborts parsing if too many errors have occurred.
func (p *Parser) errorLimitCheck() {
	if p.errcnt >= maxErrors {
		if p.errh != nil {
			p.errh(&SyntaxError{Pos: p.pos, Msg: "too many errors; aborting parse", Got: p.tok, Lit: p.lit})
		}
		p.bail()
	}
}

// tokDesc describes the current token for diagnostics.
func (p *Parser) tokDesc() string {
	switch {
	case p.tok == _EOF:
		return "EOF"
	case p.tok == _Name:
		return "name " + p.lit
	case p.tok == _Number:
		return "number " + p.lit
	case p.tok == _Error:
		return "invalid token " + strconv.Quote(p.lit)
	case p.tok.IsKeyword():
		return "keyword " + p.tok.String()
	}
	return p.tok.String()
}

// Errors returns the number of syntax errors encountered during parsing.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first syntax error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program and returns the AST.
// On a hard failure it returns nil and the first syntax error. In lenient
// mode, recovered mismatches are only reported through the error handler.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	prog.pos = p.pos
	prog.Stmts = p.stmtList()

	// The sequence may stop early at end, else or until.
	if !p.abort && p.tok != _EOF {
		p.mismatch(_EOF)
	}

	if p.abort {
		return nil, p.first
	}
	return prog, nil
}

// ----------------------------------------------------------------------------
// Statements

// atSeqEnd reports whether the current token ends a statement sequence.
func (p *Parser) atSeqEnd() bool {
	switch p.tok {
	case _EOF, _End, _Else, _Until:
		return true
	}
	return false
}

// stmtList parses: statement { ; statement }
func (p *Parser) stmtList() []Stmt {
	var list []Stmt
	if s := p.stmt(); s != nil {
		list = append(list, s)
	}
	for !p.abort && !p.atSeqEnd() {
		p.want(_Semi)
		if s := p.stmt(); s != nil {
			list = append(list, s)
		}
	}
	return list
}

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _If:
		return p.ifStmt()
	case _Repeat:
		return p.repeatStmt()
	case _Name:
		return p.assignStmt()
	case _Read:
		return p.readStmt()
	case _Write:
		return p.writeStmt()
	default:
		p.fatal("statement")
		return nil
	}
}

// ifStmt parses: if exp then stmt-sequence [else stmt-sequence] end
func (p *Parser) ifStmt() *IfStmt {
	s := &IfStmt{}
	s.pos = p.pos

	p.want(_If)
	s.Cond = p.expr()
	p.want(_Then)
	s.Then = p.stmtList()
	if p.got(_Else) {
		s.Else = p.stmtList()
	}
	p.want(_End)

	return s
}

// repeatStmt parses: repeat stmt-sequence until exp
func (p *Parser) repeatStmt() *RepeatStmt {
	s := &RepeatStmt{}
	s.pos = p.pos

	p.want(_Repeat)
	s.Body = p.stmtList()
	p.want(_Until)
	s.Cond = p.expr()

	return s
}

// assignStmt parses: id := exp
func (p *Parser) assignStmt() *AssignStmt {
	s := &AssignStmt{}
	s.pos = p.pos

	s.Name = p.name()
	p.want(_Assign)
	s.Value = p.expr()

	return s
}

// readStmt parses: read id
func (p *Parser) readStmt() *ReadStmt {
	s := &ReadStmt{}
	s.pos = p.pos

	p.want(_Read)
	s.Name = p.name()

	return s
}

// writeStmt parses: write exp
func (p *Parser) writeStmt() *WriteStmt {
	s := &WriteStmt{}
	s.pos = p.pos

	p.want(_Write)
	s.Value = p.expr()

	return s
}

// name consumes an identifier and returns its text.
// On a mismatch it returns "".
func (p *Parser) name() string {
	if p.tok != _Name {
		p.mismatch(_Name)
		return ""
	}
	name := p.lit
	p.next()
	return name
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses: simple-exp [ (< | =) simple-exp ]
// At most one comparison is accepted; a < b < c is a syntax error.
func (p *Parser) expr() Expr {
	x := p.simpleExpr()
	if p.tok == _Lss || p.tok == _Eql {
		op := p.operation(x)
		op.Y = p.simpleExpr()
		x = op
	}
	return x
}

// simpleExpr parses: term { (+ | -) term }
func (p *Parser) simpleExpr() Expr {
	x := p.term()
	for p.tok == _Add || p.tok == _Sub {
		op := p.operation(x)
		op.Y = p.term()
		x = op
	}
	return x
}

// term parses: factor { (* | /) factor }
func (p *Parser) term() Expr {
	x := p.factor()
	for p.tok == _Mul || p.tok == _Div {
		op := p.operation(x)
		op.Y = p.factor()
		x = op
	}
	return x
}

// operation wraps x as the left operand of a new node for the current
// operator token and consumes the operator.
func (p *Parser) operation(x Expr) *Operation {
	// Binary expression position starts at the left operand.
	op := &Operation{Op: p.tok, X: x}
	op.pos = p.pos
	if x != nil {
		op.pos = x.Pos()
	}
	p.next() // consume operator
	return op
}

// factor parses: number | id | ( exp )
func (p *Parser) factor() Expr {
	switch p.tok {
	case _Number:
		v, err := strconv.ParseInt(p.lit, 10, 64)
		if err != nil {
			p.syntaxError("integer literal " + p.lit + " out of range")
			p.bail()
			return nil
		}
		x := &BasicLit{Value: p.lit, Int: v}
		x.pos = p.pos
		p.next()
		return x

	case _Name:
		x := &Name{Value: p.lit}
		x.pos = p.pos
		p.next()
		return x

	case _Lparen:
		p.next()
		x := p.expr()
		p.want(_Rparen)
		return x

	default:
		p.fatal("expression")
		return nil
	}
}
