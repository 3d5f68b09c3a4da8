package completion

import (
	"strings"

	"github.com/walteh/tagexpand/pkg/position"
)

// CompletionContext holds information about the completion request context.
// Line and Character are zero-based; Character counts user-perceived
// characters the way editors report columns.
type CompletionContext struct {
	Content   string
	Line      int
	Character int

	// LineText is the line under the cursor, empty when Line is out of range
	LineText string
	// Offset is the cursor as a byte offset into LineText
	Offset int
	// Valid is false when Line does not exist in Content
	Valid bool
}

// NewCompletionContext creates a new completion context
func NewCompletionContext(content string, line, character int) *CompletionContext {
	ctx := &CompletionContext{
		Content:   content,
		Line:      line,
		Character: character,
	}

	lineText, ok := position.LineAt(content, line)
	if !ok {
		return ctx
	}

	ctx.Valid = true
	ctx.LineText = lineText
	ctx.Offset = position.CharacterToOffset(lineText, character)

	return ctx
}

// PrevChar returns the byte right before the cursor, or 0 at line start.
func (c *CompletionContext) PrevChar() byte {
	if c.Offset == 0 || c.Offset > len(c.LineText) {
		return 0
	}
	return c.LineText[c.Offset-1]
}

// IsAfterTrigger reports whether the byte before the cursor is one of triggers.
func (c *CompletionContext) IsAfterTrigger(triggers []string) bool {
	prev := c.PrevChar()
	if prev == 0 {
		return false
	}
	for _, t := range triggers {
		if len(t) == 1 && t[0] == prev {
			return true
		}
	}
	return false
}

// IsInsideTag checks if the cursor is between a '<' and its '>' on the
// current line, where a shorthand would be an attribute name instead.
func (c *CompletionContext) IsInsideTag() bool {
	if !c.Valid {
		return false
	}
	before := c.LineText[:c.Offset]

	lastOpen := strings.LastIndexByte(before, '<')
	if lastOpen == -1 {
		return false
	}

	// a closing '>' after the last '<' means the tag is already finished
	return !strings.Contains(before[lastOpen:], ">")
}

// LineRange converts byte offsets on the cursor line into an editor range.
func (c *CompletionContext) LineRange(start, end int) position.Range {
	return position.Range{
		Start: position.Place{Line: c.Line, Character: position.OffsetToCharacter(c.LineText, start)},
		End:   position.Place{Line: c.Line, Character: position.OffsetToCharacter(c.LineText, end)},
	}
}
