package position

import (
	"github.com/apparentlymart/go-textseg/v13/textseg"
)

// graphemeEnds returns the byte offset just past each grapheme cluster in s.
func graphemeEnds(s string) []int {
	data := []byte(s)
	var ends []int
	offset := 0
	for offset < len(data) {
		advance, _, err := textseg.ScanGraphemeClusters(data[offset:], true)
		if err != nil || advance <= 0 {
			// never stall on input the segmenter rejects
			advance = 1
		}
		offset += advance
		ends = append(ends, offset)
	}
	return ends
}

// CharacterToOffset converts a zero-based count of user-perceived characters
// into a byte offset within lineText. Counts past the end clamp to len(lineText).
func CharacterToOffset(lineText string, character int) int {
	if character <= 0 {
		return 0
	}
	ends := graphemeEnds(lineText)
	if character > len(ends) {
		return len(lineText)
	}
	return ends[character-1]
}

// OffsetToCharacter is the inverse of CharacterToOffset. A byte offset inside a
// cluster counts that cluster as not yet reached.
func OffsetToCharacter(lineText string, offset int) int {
	if offset <= 0 {
		return 0
	}
	n := 0
	for _, end := range graphemeEnds(lineText) {
		if end > offset {
			break
		}
		n++
	}
	return n
}
