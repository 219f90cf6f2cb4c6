package template

import (
	"fmt"
	"regexp"
	"strings"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// SyntaxError reports a malformed format-style template.
type SyntaxError struct {
	Template string
	Pos      int
	Msg      string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template syntax error at %d in %q: %s", e.Pos, e.Template, e.Msg)
}

// expandFormat scans s once, substituting {name} placeholders. Substituted
// values are written verbatim and never scanned again.
func (e *Expander) expandFormat(s string, vars map[string]any, missing *[]string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				return "", &SyntaxError{Template: s, Pos: i, Msg: "unclosed '{'"}
			}
			name := s[i+1 : i+1+end]
			if !identPattern.MatchString(name) {
				return "", &SyntaxError{Template: s, Pos: i, Msg: fmt.Sprintf("invalid placeholder %q", name)}
			}
			b.WriteString(e.lookup(s[i:i+end+2], name, vars, missing))
			i += end + 1
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", &SyntaxError{Template: s, Pos: i, Msg: "single '}' encountered"}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
