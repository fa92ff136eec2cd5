package syntax

import (
	"io"
	"unicode/utf8"
)

// source feeds the scanner one character at a time. The whole input is
// read up front; ch is the single character of lookahead and line/col
// always give its position.
type source struct {
	filename string
	buf      []byte
	next     int // offset of the byte after ch

	ch        rune // current character; -1 at end of input
	line, col uint32
	done      bool // input exhausted, position frozen

	errh func(line, col uint32, msg string)
}

func newSource(filename string, src io.Reader, errh func(line, col uint32, msg string)) *source {
	s := &source{filename: filename, ch: -1, line: 1, errh: errh}
	buf, err := io.ReadAll(src)
	if err != nil {
		s.error("read error: " + err.Error())
	}
	s.buf = buf
	s.nextch()
	return s
}

// nextch moves to the next character. Columns count characters, not
// bytes; a newline starts the next line at column 1. At end of input ch
// stays -1 and the position no longer moves.
func (s *source) nextch() {
	if s.done {
		return
	}
	if s.ch == '\n' {
		s.line, s.col = s.line+1, 1
	} else {
		s.col++
	}

	if s.next == len(s.buf) {
		s.ch, s.done = -1, true
		return
	}
	r, n := rune(s.buf[s.next]), 1
	if r >= utf8.RuneSelf {
		r, n = utf8.DecodeRune(s.buf[s.next:])
		if r == utf8.RuneError && n == 1 {
			s.error("invalid UTF-8 encoding")
		}
	}
	s.ch = r
	s.next += n
}

func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

func (s *source) error(msg string) {
	s.errorAt(s.pos(), msg)
}

func (s *source) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos.line, pos.col, msg)
	}
}

// isLetter reports whether r may appear in an identifier. Only ASCII
// letters do; digits and '_' end the name.
func isLetter(r rune) bool {
	r |= 0x20 // fold to lower case
	return 'a' <= r && r <= 'z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r separates tokens.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
