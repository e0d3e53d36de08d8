// Package jsonc removes comments from JSON documents.
//
// Line comments start with "//" or "#", block comments are delimited by
// "/*" and "*/". Comment bytes are overwritten with spaces (newlines are kept)
// so that byte offsets and line numbers reported by a JSON decoder still
// point into the original document.
package jsonc

import "errors"

// ErrUnterminatedComment is returned when a block comment is not closed.
var ErrUnterminatedComment = errors.New("jsonc: unterminated block comment")

type state int

const (
	stTop state = iota
	stString
	stEscape
	stLineComment
	stBlockComment
)

// Strip returns a copy of data with all comments blanked out. Comment markers
// inside string literals are left alone.
func Strip(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)

	st := stTop
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch st {
		case stTop:
			switch {
			case c == '"':
				st = stString
			case c == '#':
				out[i] = ' '
				st = stLineComment
			case c == '/' && i+1 < len(out) && out[i+1] == '/':
				out[i], out[i+1] = ' ', ' '
				i++
				st = stLineComment
			case c == '/' && i+1 < len(out) && out[i+1] == '*':
				out[i], out[i+1] = ' ', ' '
				i++
				st = stBlockComment
			}
		case stString:
			switch c {
			case '\\':
				st = stEscape
			case '"':
				st = stTop
			}
		case stEscape:
			st = stString
		case stLineComment:
			if c == '\n' {
				st = stTop
				continue
			}
			out[i] = ' '
		case stBlockComment:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				st = stTop
				continue
			}
			if c != '\n' && c != '\r' {
				out[i] = ' '
			}
		}
	}
	if st == stBlockComment {
		return nil, ErrUnterminatedComment
	}
	return out, nil
}
