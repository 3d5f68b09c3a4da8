package position

import (
	"fmt"
	"strings"
)

// Place is a zero-based line and character in a document.
type Place struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

type Range struct {
	Start Place `json:"start"`
	End   Place `json:"end"`
}

// RawPosition represents a position in the source text
type RawPosition struct {
	// Offset is the byte offset in the source text
	Offset int
	// Text is the actual text at this position
	Text string
}

// ID returns a unique identifier for this position based on offset and text
func (p RawPosition) ID() string {
	return fmt.Sprintf("%s@%d", p.Text, p.Offset)
}

// Length returns the length of the text at this position
func (p RawPosition) Length() int {
	return len(p.Text)
}

func NewBasicPosition(text string, offset int) RawPosition {
	return RawPosition{Text: text, Offset: offset}
}

// LineStart returns the byte offset where the zero-based line begins, or false
// when the document has fewer lines.
func LineStart(fileText string, line int) (int, bool) {
	if line < 0 {
		return 0, false
	}
	offset := 0
	for i := 0; i < line; i++ {
		next := strings.IndexByte(fileText[offset:], '\n')
		if next < 0 {
			return 0, false
		}
		offset += next + 1
	}
	return offset, true
}

// LineAt returns the zero-based line of fileText without its line ending.
func LineAt(fileText string, line int) (string, bool) {
	start, ok := LineStart(fileText, line)
	if !ok {
		return "", false
	}
	rest := fileText[start:]
	if end := strings.IndexByte(rest, '\n'); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSuffix(rest, "\r"), true
}

// NewRawPositionFromLineAndColumn places text at a zero-based line and
// character, where character counts user-perceived characters.
func NewRawPositionFromLineAndColumn(line, col int, text, fileText string) RawPosition {
	start, ok := LineStart(fileText, line)
	if !ok {
		return RawPosition{Text: text, Offset: len(fileText)}
	}
	lineText, _ := LineAt(fileText, line)
	return RawPosition{Text: text, Offset: start + CharacterToOffset(lineText, col)}
}

// GetLineAndColumn calculates the line and column number for a given position in the text
// Returns zero-based line and column numbers, the column in user-perceived characters
func (p RawPosition) GetLineAndColumn(text string) (line, col int) {
	offset := p.Offset
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}

	lastNewline := strings.LastIndexByte(text[:offset], '\n')
	line = strings.Count(text[:offset], "\n")

	return line, OffsetToCharacter(text[lastNewline+1:offset], offset-lastNewline-1)
}

func (p RawPosition) GetEndPosition() RawPosition {
	return RawPosition{
		Text:   "",
		Offset: p.Offset + p.Length(),
	}
}

// GetRange calculates the line/column range covered by the position
func (p RawPosition) GetRange(fileText string) Range {
	startLine, startCol := p.GetLineAndColumn(fileText)
	endLine, endCol := p.GetEndPosition().GetLineAndColumn(fileText)
	return Range{
		Start: Place{Line: startLine, Character: startCol},
		End:   Place{Line: endLine, Character: endCol},
	}
}

func (p RawPosition) String() string {
	return p.ID()
}
