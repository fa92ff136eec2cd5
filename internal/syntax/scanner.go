package syntax

import (
	"fmt"
	"io"
	"strings"
)

// scanState is a state of the scanner's finite automaton.
type scanState uint8

const (
	stateStart     scanState = iota
	stateInNumber            // accumulating digits
	stateInIdent             // accumulating letters
	stateInAssign            // saw ':', expecting '='
	stateInComment           // inside { ... }
	stateDone
)

// Scanner performs lexical analysis on Tiny source code.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token  // token type
	lit    string // token literal (identifier name, digits, offending text)
	tokPos Pos    // token start position

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
// Errors are also delivered in-stream as ERROR tokens.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{
		source: *newSource(filename, src, errh),
	}
}

// Next advances to the next token. Once the input is exhausted every
// further call yields EOF.
func (s *Scanner) Next() {
	var commentPos Pos

	state := stateStart
	for state != stateDone {
		switch state {
		case stateStart:
			switch {
			case s.ch < 0:
				s.tokPos = s.pos()
				s.tok = _EOF
				s.lit = ""
				state = stateDone

			case isWhitespace(s.ch):
				s.nextch()

			case s.ch == '{':
				commentPos = s.pos()
				s.nextch()
				state = stateInComment

			case isDigit(s.ch):
				s.tokPos = s.pos()
				s.startLit()
				s.nextch()
				state = stateInNumber

			case isLetter(s.ch):
				s.tokPos = s.pos()
				s.startLit()
				s.nextch()
				state = stateInIdent

			case s.ch == ':':
				s.tokPos = s.pos()
				s.nextch()
				state = stateInAssign

			default:
				s.tokPos = s.pos()
				s.scanOperator()
				state = stateDone
			}

		case stateInComment:
			// The first '}' closes the comment; comments do not nest.
			switch {
			case s.ch == '}':
				s.nextch()
				state = stateStart
			case s.ch < 0:
				s.tokPos = commentPos
				s.tok = _Error
				s.lit = "{"
				s.errorAt(commentPos, "comment not terminated")
				state = stateDone
			default:
				s.nextch()
			}

		case stateInNumber:
			if isDigit(s.ch) {
				s.continueLit()
				s.nextch()
				break
			}
			s.tok = _Number
			s.lit = s.stopLit()
			state = stateDone

		case stateInIdent:
			if isLetter(s.ch) {
				s.continueLit()
				s.nextch()
				break
			}
			s.lit = s.stopLit()
			s.tok = LookupKeyword(s.lit)
			state = stateDone

		case stateInAssign:
			if s.ch == '=' {
				s.nextch()
				s.tok = _Assign
				s.lit = ":="
			} else {
				// Leave the current character for the next call.
				s.tok = _Error
				s.lit = ":"
				s.errorAt(s.tokPos, "expected '=' after ':'")
			}
			state = stateDone
		}
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Line returns the line of the current token.
func (s *Scanner) Line() uint32 {
	return s.tokPos.line
}

// startLit begins accumulating a literal.
func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

// continueLit adds the current character to the literal being accumulated.
func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

// stopLit ends literal accumulation and returns the accumulated string.
func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanOperator scans a single-character operator or delimiter.
// Any other character becomes an ERROR token carrying that character.
func (s *Scanner) scanOperator() {
	ch := s.ch
	s.nextch()

	switch ch {
	case '=':
		s.tok = _Eql
	case '<':
		s.tok = _Lss
	case '+':
		s.tok = _Add
	case '-':
		s.tok = _Sub
	case '*':
		s.tok = _Mul
	case '/':
		s.tok = _Div
	case '(':
		s.tok = _Lparen
	case ')':
		s.tok = _Rparen
	case ';':
		s.tok = _Semi
	default:
		s.tok = _Error
		s.lit = string(ch)
		s.errorAt(s.tokPos, fmt.Sprintf("unexpected character %q", ch))
		return
	}
	s.lit = s.tok.String()
}
