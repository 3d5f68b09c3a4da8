package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/tagexpand/pkg/position"
)

func TestGetLineAndColumn(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{
			name:     "empty text",
			text:     "",
			offset:   0,
			wantLine: 0,
			wantCol:  0,
		},
		{
			name:     "single line, middle position",
			text:     "Hello, World!",
			offset:   7,
			wantLine: 0,
			wantCol:  7,
		},
		{
			name:     "multiple lines, second line",
			text:     "Hello\nWorld\nTest zzz",
			offset:   8,
			wantLine: 1,
			wantCol:  2,
		},
		{
			name:     "right after a newline",
			text:     "ab\ncd",
			offset:   3,
			wantLine: 1,
			wantCol:  0,
		},
		{
			name:     "wide characters count once",
			text:     "<p>héllo</p>\n  👍🏽div.x",
			offset:   len("<p>héllo</p>\n  👍🏽"),
			wantLine: 1,
			wantCol:  3,
		},
		{
			name:     "offset past end",
			text:     "abc",
			offset:   10,
			wantLine: 0,
			wantCol:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLine, gotCol := position.NewBasicPosition("", tt.offset).GetLineAndColumn(tt.text)
			assert.Equal(t, tt.wantLine, gotLine, "line")
			assert.Equal(t, tt.wantCol, gotCol, "column")
		})
	}
}

func TestLineAt(t *testing.T) {
	text := "first\r\nsecond\n\nlast"

	got, ok := position.LineAt(text, 0)
	assert.True(t, ok)
	assert.Equal(t, "first", got)

	got, ok = position.LineAt(text, 1)
	assert.True(t, ok)
	assert.Equal(t, "second", got)

	got, ok = position.LineAt(text, 2)
	assert.True(t, ok)
	assert.Equal(t, "", got)

	got, ok = position.LineAt(text, 3)
	assert.True(t, ok)
	assert.Equal(t, "last", got)

	_, ok = position.LineAt(text, 4)
	assert.False(t, ok)

	_, ok = position.LineAt(text, -1)
	assert.False(t, ok)
}

func TestCharacterOffsets(t *testing.T) {
	line := "é👍🏽a"

	assert.Equal(t, 0, position.CharacterToOffset(line, 0))
	assert.Equal(t, len("é"), position.CharacterToOffset(line, 1))
	assert.Equal(t, len("é👍🏽"), position.CharacterToOffset(line, 2))
	assert.Equal(t, len(line), position.CharacterToOffset(line, 3))
	assert.Equal(t, len(line), position.CharacterToOffset(line, 99))

	assert.Equal(t, 2, position.OffsetToCharacter(line, len("é👍🏽")))
	assert.Equal(t, 1, position.OffsetToCharacter(line, len("é")+1), "offset inside a cluster")
	assert.Equal(t, 0, position.OffsetToCharacter(line, -1))
}

func TestNewRawPositionFromLineAndColumn(t *testing.T) {
	text := "<ul>\n  li.item\n</ul>"

	pos := position.NewRawPositionFromLineAndColumn(1, 9, "", text)
	assert.Equal(t, len("<ul>\n  li.item"), pos.Offset)

	rng := position.NewBasicPosition("li.item", len("<ul>\n  ")).GetRange(text)
	assert.Equal(t, position.Range{
		Start: position.Place{Line: 1, Character: 2},
		End:   position.Place{Line: 1, Character: 9},
	}, rng)

	missing := position.NewRawPositionFromLineAndColumn(7, 0, "", text)
	assert.Equal(t, len(text), missing.Offset)
}
