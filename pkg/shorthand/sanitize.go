package shorthand

// Token is the well-formed shorthand recovered from a cursor window.
type Token struct {
	// Text is the canonical shorthand
	Text string
	// Start is the index of Text inside the window (Before + After)
	Start int
	// ConsumedAfterLength is how many leading bytes of the window's After
	// are covered by Text. It never exceeds len(After).
	ConsumedAfterLength int
}

// State is the position of the sanitizer's left-to-right traversal.
type State int

const (
	// Scanning accepts shorthand bytes outside any bracket
	Scanning State = iota
	// InBracket accepts anything until the brackets balance again
	InBracket
	// Terminated means a byte at or after the cursor was rejected
	Terminated
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "Scanning"
	case InBracket:
		return "InBracket"
	case Terminated:
		return "Terminated"
	}
	return "Unknown"
}

func isNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

func isShorthandByte(c byte) bool {
	return isNameByte(c) || c == '.' || c == '#' || c == '['
}

// sanitizer carries the recovery state across the window. start is -1 until
// an accepted byte marks where the recoverable token begins.
type sanitizer struct {
	state  State
	depth  int
	start  int
	end    int
	cursor int
}

func newSanitizer(cursor int) *sanitizer {
	return &sanitizer{state: Scanning, start: -1, cursor: cursor}
}

func (me *sanitizer) mark(i int) {
	if me.start < 0 {
		me.start = i
	}
}

func (me *sanitizer) step(i int, c byte) {
	switch me.state {
	case InBracket:
		switch c {
		case '[':
			me.depth++
		case ']':
			me.depth--
			if me.depth == 0 {
				me.state = Scanning
			}
		}
		me.end = i + 1
	case Scanning:
		switch {
		case c == '[':
			me.mark(i)
			me.depth = 1
			me.state = InBracket
			me.end = i + 1
		case isShorthandByte(c):
			me.mark(i)
			me.end = i + 1
		default:
			// an orphan ']' or a byte outside the alphabet
			me.reject(i)
		}
	}
}

// reject discards everything up to and including i when i is before the
// cursor, and stops the scan otherwise.
func (me *sanitizer) reject(i int) {
	if i < me.cursor {
		me.start = -1
		me.end = i + 1
		return
	}
	me.state = Terminated
}

func (me *sanitizer) run(window string) {
	for i := 0; i < len(window) && me.state != Terminated; i++ {
		me.step(i, window[i])
	}
}

// Sanitize extracts the longest well-formed shorthand from before+after.
// Junk before the cursor is skipped, junk at or after the cursor ends the
// token. It reports false when nothing recoverable remains.
func Sanitize(before, after string) (Token, bool) {
	window := before + after

	s := newSanitizer(len(before))
	s.run(window)

	if s.start < 0 || s.end <= s.start {
		return Token{}, false
	}

	tok := Token{
		Text:  window[s.start:s.end],
		Start: s.start,
	}
	tok.ConsumedAfterLength = ValidPostLength(before, after, tok)

	return tok, true
}

// ValidPostLength counts how many leading bytes of after reappear at the
// matching position of the token, stopping at the first mismatch.
func ValidPostLength(before, after string, tok Token) int {
	offset := len(before) - tok.Start
	if offset < 0 {
		return 0
	}

	n := 0
	for n < len(after) && offset+n < len(tok.Text) && tok.Text[offset+n] == after[n] {
		n++
	}
	return n
}
