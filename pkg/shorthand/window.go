package shorthand

// Window is the raw text around the cursor, bounded on both sides by the
// nearest separator (whitespace, '<' or '>') or the ends of the line.
type Window struct {
	// Before is the text between the window start and the cursor
	Before string
	// After is the text between the cursor and the window end
	After string
	// Start is the byte offset of the window inside the line
	Start int
}

// Text returns the concatenated window.
func (w Window) Text() string {
	return w.Before + w.After
}

// End returns the byte offset just past the window inside the line.
func (w Window) End() int {
	return w.Start + len(w.Before) + len(w.After)
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', '<', '>':
		return true
	}
	return false
}

// Scan walks backward and forward from offset over non-separator bytes and
// returns the window it covers. An offset outside the line is clamped.
func Scan(line string, offset int) Window {
	if offset < 0 {
		offset = 0
	}
	if offset > len(line) {
		offset = len(line)
	}

	start := offset
	for start > 0 && !isSeparator(line[start-1]) {
		start--
	}

	end := offset
	for end < len(line) && !isSeparator(line[end]) {
		end++
	}

	return Window{
		Before: line[start:offset],
		After:  line[offset:end],
		Start:  start,
	}
}
