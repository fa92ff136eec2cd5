package driver

import (
	"bytes"
	"fmt"
	"io"

	"github.com/you-not-fish/tiny/internal/syntax"
)

// TokenInfo is one scanned token as shown by the token listing.
type TokenInfo struct {
	Line uint32 `json:"line" yaml:"line"`
	Col  uint32 `json:"col" yaml:"col"`
	Kind string `json:"kind" yaml:"kind"`
	Lit  string `json:"lit,omitempty" yaml:"lit,omitempty"`
	Text string `json:"text" yaml:"text"`
}

// Scan tokenizes src and returns every token up to and including EOF.
// Lexical errors appear in the token stream as ERROR tokens and are also
// returned as *syntax.LexError values.
func Scan(filename string, src []byte) ([]TokenInfo, []error) {
	var errs []error
	errh := func(line, col uint32, msg string) {
		errs = append(errs, &syntax.LexError{Pos: syntax.NewPos(filename, line, col), Msg: msg})
	}
	s := syntax.NewScanner(filename, bytes.NewReader(src), errh)
	var toks []TokenInfo
	for {
		s.Next()
		tok := s.Token()
		toks = append(toks, TokenInfo{
			Line: s.Pos().Line(),
			Col:  s.Pos().Col(),
			Kind: tok.String(),
			Lit:  s.Literal(),
			Text: tok.Describe(s.Literal()),
		})
		if tok.IsEOF() {
			return toks, errs
		}
	}
}

// FprintTokens writes the classic token trace to w:
//
//	   5: reserved word: read
//	   5: ID, name= x
func FprintTokens(w io.Writer, toks []TokenInfo) {
	for _, t := range toks {
		fmt.Fprintf(w, "%4d: %s\n", t.Line, t.Text)
	}
}
