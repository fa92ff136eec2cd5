package syntax

// ErrorHandler is called for each diagnostic reported while parsing.
// The error is a *LexError or a *SyntaxError.
type ErrorHandler func(err error)

// LexError reports an invalid character or a malformed := in the source.
// The scanner delivers the offending text as an ERROR token and keeps going.
type LexError struct {
	Pos Pos
	Msg string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
	Got Token  // token found at Pos
	Lit string // its literal, if any
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}
