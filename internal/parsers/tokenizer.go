package parsers

import "strings"

type tokenizerState int

const (
	stateBetween tokenizerState = iota // skipping whitespace between tokens
	stateBare                          // inside an unquoted run
	stateQuoted                        // inside a double-quoted run
)

// Tokenize splits a log line on whitespace, keeping double-quoted runs together as one token
// with the surrounding quotes removed. Inside quotes, \" and "" both stand for a literal quote.
// A quoted empty string ("") yields an empty token; an unterminated quote runs to end of line.
func Tokenize(line string) []string {
	tokens := make([]string, 0, minFields+12)

	var (
		current strings.Builder
		state   = stateBetween
		quoted  bool // the current token contained quotes, so keep it even if empty
	)

	flush := func() {
		if current.Len() > 0 || quoted {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		quoted = false
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch state {
		case stateBetween, stateBare:
			switch {
			case isSpace(c):
				if state == stateBare {
					flush()
				}
				state = stateBetween
			case c == '"':
				state = stateQuoted
				quoted = true
			default:
				current.WriteByte(c)
				state = stateBare
			}

		case stateQuoted:
			switch {
			case c == '\\' && i+1 < len(line) && line[i+1] == '"':
				current.WriteByte('"')
				i++
			case c == '"' && i+1 < len(line) && line[i+1] == '"' && current.Len() > 0:
				current.WriteByte('"')
				i++
			case c == '"':
				state = stateBare
			default:
				current.WriteByte(c)
			}
		}
	}
	if state != stateBetween {
		flush()
	}

	return tokens
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
