package shorthand

import "strings"

// DefaultTag is used when the shorthand has no leading tag name.
const DefaultTag = "div"

// Trailing identifies a construct left open at the end of the shorthand.
type Trailing int

const (
	TrailingNone Trailing = iota
	TrailingDot
	TrailingHash
	TrailingBracket
)

func (t Trailing) String() string {
	switch t {
	case TrailingDot:
		return "dot"
	case TrailingHash:
		return "hash"
	case TrailingBracket:
		return "bracket"
	}
	return "none"
}

// Expr is a parsed shorthand such as `section.hero#top[data-x]`.
type Expr struct {
	Tag     string
	Classes []string
	ID      string
	Attrs   []string

	// Trailing is set from the last byte of the raw shorthand. It is
	// informational; compiling only looks at HasDot, HasHash and Attrs.
	Trailing Trailing

	// ExplicitTag is false when Tag fell back to DefaultTag
	ExplicitTag bool
	// HasDot and HasHash report a '.' or '#' anywhere in the raw shorthand,
	// inside brackets too
	HasDot  bool
	HasHash bool
	// OpenBracket is true when the last attribute has no closing ']'
	OpenBracket bool
}

// HasID reports whether an id value was captured.
func (e Expr) HasID() bool {
	return e.ID != ""
}

func trailingOf(raw string) Trailing {
	if raw == "" {
		return TrailingNone
	}
	switch raw[len(raw)-1] {
	case '.':
		return TrailingDot
	case '#':
		return TrailingHash
	case '[':
		return TrailingBracket
	}
	return TrailingNone
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// scanName returns the end of the run of name bytes starting at i.
func scanName(raw string, i int) int {
	for i < len(raw) && isNameByte(raw[i]) {
		i++
	}
	return i
}

// matchBracket returns the index of the ']' that balances the '[' at open,
// or -1 when the brackets never balance.
func matchBracket(raw string, open int) int {
	depth := 0
	for i := open; i < len(raw); i++ {
		switch raw[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Parse turns a sanitized shorthand into an Expr. It never fails: bytes it
// does not understand are skipped one at a time.
func Parse(raw string) Expr {
	expr := Expr{
		Tag:      DefaultTag,
		Trailing: trailingOf(raw),
		HasDot:   strings.ContainsRune(raw, '.'),
		HasHash:  strings.ContainsRune(raw, '#'),
	}

	i := 0
	if i < len(raw) && isLetter(raw[i]) {
		end := scanName(raw, i+1)
		expr.Tag = raw[i:end]
		expr.ExplicitTag = true
		i = end
	}

	for i < len(raw) {
		switch raw[i] {
		case '.':
			end := scanName(raw, i+1)
			if name := raw[i+1 : end]; name != "" {
				expr.Classes = append(expr.Classes, name)
			}
			i = end
		case '#':
			end := scanName(raw, i+1)
			if name := raw[i+1 : end]; name != "" {
				expr.ID = name
			}
			i = end
		case '[':
			closing := matchBracket(raw, i)
			if closing < 0 {
				expr.Attrs = append(expr.Attrs, raw[i+1:])
				expr.OpenBracket = true
				i = len(raw)
				break
			}
			if content := raw[i+1 : closing]; content != "" {
				expr.Attrs = append(expr.Attrs, content)
			}
			i = closing + 1
		default:
			i++
		}
	}

	return expr
}
