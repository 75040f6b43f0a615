package fieldpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is wrapped by every Deserialize failure, so callers can
// match with errors.Is.
var ErrMalformed = errors.New("malformed path string")

// ParseError reports where Deserialize stopped and why. It never
// carries a partial result.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fieldpath: %s at offset %d in %q", e.Msg, e.Offset, e.Input)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

// Deserialize scan states.
const (
	scanTokenStart = iota
	scanBare
	scanParen
	scanQuote
	scanQuoteEnd
)

// Deserialize inverts Serialize: a single left-to-right byte scan that
// splits on unquoted dots and undoes the quote doubling. A token whose
// first byte is '(' keeps its dots until the first ')', matching the
// bare parenthesized form the encoder emits. For any path p,
// Deserialize(p.Serialize()) succeeds and equals p.
//
// Malformed input (an unterminated quote, a quote in the middle of an
// unquoted token, or bytes trailing a closing quote) returns a
// *ParseError wrapping ErrMalformed.
func Deserialize(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	steps := make([]string, 0, strings.Count(s, ".")+1)
	var buf []byte
	state := scanTokenStart
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case scanTokenStart:
			switch c {
			case '\'':
				state = scanQuote
			case '.':
				steps = append(steps, "")
			case '(':
				buf = append(buf, c)
				state = scanParen
			default:
				buf = append(buf, c)
				state = scanBare
			}
		case scanBare:
			switch c {
			case '.':
				steps = append(steps, string(buf))
				buf = buf[:0]
				state = scanTokenStart
			case '\'':
				return Path{}, &ParseError{Input: s, Offset: i, Msg: "quote inside unquoted step"}
			default:
				buf = append(buf, c)
			}
		case scanParen:
			buf = append(buf, c)
			if c == ')' {
				state = scanBare
			}
		case scanQuote:
			if c != '\'' {
				buf = append(buf, c)
				continue
			}
			if i+1 < len(s) && s[i+1] == '\'' {
				// doubled quote, one literal
				buf = append(buf, '\'')
				i++
				continue
			}
			state = scanQuoteEnd
		case scanQuoteEnd:
			if c != '.' {
				return Path{}, &ParseError{Input: s, Offset: i, Msg: "trailing data after closing quote"}
			}
			steps = append(steps, string(buf))
			buf = buf[:0]
			state = scanTokenStart
		}
	}
	if state == scanQuote {
		return Path{}, &ParseError{Input: s, Offset: len(s), Msg: "unterminated quoted step"}
	}
	steps = append(steps, string(buf))
	return Path{steps: steps}, nil
}
