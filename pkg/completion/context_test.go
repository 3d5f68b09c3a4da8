package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/tagexpand/pkg/position"
)

func TestNewCompletionContext(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		line       int
		character  int
		wantValid  bool
		wantLine   string
		wantOffset int
	}{
		{
			name:      "empty content",
			content:   "",
			line:      0,
			character: 0,
			wantValid: true,
		},
		{
			name:       "second line",
			content:    "<ul>\n  li.item\n</ul>",
			line:       1,
			character:  9,
			wantValid:  true,
			wantLine:   "  li.item",
			wantOffset: 9,
		},
		{
			name:       "crlf line endings",
			content:    "a\r\nspan.x\r\n",
			line:       1,
			character:  6,
			wantValid:  true,
			wantLine:   "span.x",
			wantOffset: 6,
		},
		{
			name:       "character past end is clamped",
			content:    "p",
			line:       0,
			character:  40,
			wantValid:  true,
			wantLine:   "p",
			wantOffset: 1,
		},
		{
			name:       "grapheme columns",
			content:    "👍🏽 p",
			line:       0,
			character:  3,
			wantValid:  true,
			wantLine:   "👍🏽 p",
			wantOffset: 10,
		},
		{
			name:      "line out of range",
			content:   "p",
			line:      3,
			character: 0,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewCompletionContext(tt.content, tt.line, tt.character)
			assert.Equal(t, tt.wantValid, ctx.Valid)
			assert.Equal(t, tt.wantLine, ctx.LineText)
			assert.Equal(t, tt.wantOffset, ctx.Offset)
		})
	}
}

func TestCompletionContext_IsAfterTrigger(t *testing.T) {
	triggers := []string{".", "]"}

	tests := []struct {
		content   string
		character int
		want      bool
	}{
		{content: "div.", character: 4, want: true},
		{content: "a[href]", character: 7, want: true},
		{content: "div.", character: 3, want: false},
		{content: "div#", character: 4, want: false},
		{content: ".", character: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			ctx := NewCompletionContext(tt.content, 0, tt.character)
			assert.Equal(t, tt.want, ctx.IsAfterTrigger(triggers))
		})
	}
}

func TestCompletionContext_IsInsideTag(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		character int
		want      bool
	}{
		{name: "plain text", content: "div.x", character: 5, want: false},
		{name: "attribute position", content: `<div cla`, character: 8, want: true},
		{name: "after closed tag", content: "<li>span", character: 8, want: false},
		{name: "second tag still open", content: `<a></a><img s`, character: 13, want: true},
		{name: "cursor before the open bracket", content: "p <div", character: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewCompletionContext(tt.content, 0, tt.character)
			assert.Equal(t, tt.want, ctx.IsInsideTag())
		})
	}
}

func TestCompletionContext_LineRange(t *testing.T) {
	ctx := NewCompletionContext("x\n👍🏽 p.x", 1, 5)

	got := ctx.LineRange(9, 12)
	assert.Equal(t, position.Range{
		Start: position.Place{Line: 1, Character: 2},
		End:   position.Place{Line: 1, Character: 5},
	}, got)
}
