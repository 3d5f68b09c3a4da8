package resolver_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tagexpand/pkg/resolver"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		offset      int
		wantOK      bool
		wantSpan    string
		wantMarkup  string
		wantPreview string
		wantVoid    bool
	}{
		{
			name:        "tag with class at end of line",
			line:        "  section.hero",
			offset:      14,
			wantOK:      true,
			wantSpan:    "section.hero",
			wantMarkup:  `<section class="hero">$0</section>`,
			wantPreview: `<section class="hero"></section>`,
		},
		{
			name:        "cursor inside the shorthand before a closing bracket",
			line:        "<li>div.foo>rest",
			offset:      6,
			wantOK:      true,
			wantSpan:    "div.foo",
			wantMarkup:  `<div class="foo">$0</div>`,
			wantPreview: `<div class="foo"></div>`,
		},
		{
			name:        "byte outside the alphabet after the cursor ends the token",
			line:        "<li>di|v.foo>rest",
			offset:      6,
			wantOK:      true,
			wantSpan:    "di",
			wantMarkup:  `<di>$0</di>`,
			wantPreview: `<di></di>`,
		},
		{
			name:        "cursor splits a valid shorthand",
			line:        "x div.foo y",
			offset:      4,
			wantOK:      true,
			wantSpan:    "div.foo",
			wantMarkup:  `<div class="foo">$0</div>`,
			wantPreview: `<div class="foo"></div>`,
		},
		{
			name:        "orphan bracket is replaced with the token",
			line:        "]div.card",
			offset:      9,
			wantOK:      true,
			wantSpan:    "]div.card",
			wantMarkup:  `<div class="card">$0</div>`,
			wantPreview: `<div class="card"></div>`,
		},
		{
			name:        "image",
			line:        "img",
			offset:      3,
			wantOK:      true,
			wantSpan:    "img",
			wantMarkup:  `<img alt="${1}" />`,
			wantPreview: `<img alt="" />`,
			wantVoid:    true,
		},
		{
			name:        "trailing dot",
			line:        "div.",
			offset:      4,
			wantOK:      true,
			wantSpan:    "div.",
			wantMarkup:  `<div class="${1}">$0</div>`,
			wantPreview: `<div class=""></div>`,
		},
		{
			name:        "unterminated attribute",
			line:        "div[data-x",
			offset:      10,
			wantOK:      true,
			wantSpan:    "div[data-x",
			wantMarkup:  `<div data-x>$0</div>`,
			wantPreview: `<div data-x></div>`,
		},
		{
			name:        "hash inside brackets offers an id",
			line:        "a[href=#top]",
			offset:      12,
			wantOK:      true,
			wantSpan:    "a[href=#top]",
			wantMarkup:  `<a id="${1}" href=#top>$0</a>`,
			wantPreview: `<a id="" href=#top></a>`,
		},
		{
			name:        "nested brackets keep their text",
			line:        "div[a[b]c]",
			offset:      10,
			wantOK:      true,
			wantSpan:    "div[a[b]c]",
			wantMarkup:  `<div a[b]c>$0</div>`,
			wantPreview: `<div a[b]c></div>`,
		},
		{
			name:        "class only",
			line:        "return .foo",
			offset:      11,
			wantOK:      true,
			wantSpan:    ".foo",
			wantMarkup:  `<div class="foo">$0</div>`,
			wantPreview: `<div class="foo"></div>`,
		},
		{
			name:   "whitespace before cursor",
			line:   "div ",
			offset: 4,
			wantOK: false,
		},
		{
			name:   "punctuation before cursor",
			line:   "foo()",
			offset: 5,
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   "",
			offset: 0,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolver.Resolve(tt.line, tt.offset)
			require.Equal(t, tt.wantOK, ok, "Resolve ok should match")
			if !ok {
				return
			}
			assert.Equal(t, tt.wantSpan, got.Span(tt.line), "replacement span")
			assert.Equal(t, tt.wantMarkup, got.MarkupText, "markup")
			assert.Equal(t, tt.wantPreview, got.PreviewText, "preview")
			assert.Equal(t, tt.wantVoid, got.IsVoidElement, "void")
		})
	}
}

func TestResolve_ConsumedLengthBoundary(t *testing.T) {
	// '>' is both a window separator and outside the shorthand alphabet
	line := "di" + "v.foo>rest"
	got, ok := resolver.Resolve(line, 2)
	require.True(t, ok)

	assert.Equal(t, 0, got.ReplacementStart)
	assert.Equal(t, 2+5, got.ReplacementEnd)
	assert.Equal(t, "div.foo", got.Token)
	assert.Equal(t, `<div class="foo"></div>>rest`, got.Apply(line))
}

func TestResolve_NonNoneAfterShorthandByte(t *testing.T) {
	prefixes := []string{"", " ", "<p>", "x)", "]", "a[", "foo(", "\t.", "#a#"}
	suffixes := []string{"", " tail", ">", "]", ")", ".b", "[x"}
	lastBytes := "azAZ09.#["

	for _, pre := range prefixes {
		for _, suf := range suffixes {
			for i := 0; i < len(lastBytes); i++ {
				line := pre + string(lastBytes[i]) + suf
				offset := len(pre) + 1

				got, ok := resolver.Resolve(line, offset)
				if assert.True(t, ok, "Resolve(%q, %d) should find a shorthand", line, offset) {
					assert.LessOrEqual(t, got.ReplacementStart, offset-1, "span should cover the byte before the cursor in %q", line)
					assert.GreaterOrEqual(t, got.ReplacementEnd, offset)
					assert.LessOrEqual(t, got.ReplacementEnd, len(line))
				}
			}
		}
	}
}

func TestTokenRangeAt(t *testing.T) {
	rng, ok := resolver.TokenRangeAt("<b>(p.x)</b>", 7)
	require.True(t, ok)
	assert.Equal(t, "p.x", rng.Token.Text)
	assert.Equal(t, 1, rng.Token.Start)
	assert.Equal(t, 3, rng.Start, "range starts at the window, before the dropped '('")
	assert.Equal(t, 7, rng.End)
}

func TestResolve_ReplacesDiscardedJunk(t *testing.T) {
	line := "x ]div.card y"
	got, ok := resolver.Resolve(line, 11)
	require.True(t, ok)

	assert.Equal(t, 2, got.ReplacementStart)
	assert.Equal(t, 11, got.ReplacementEnd)
	assert.Equal(t, "div.card", got.Token)
	assert.Equal(t, `x <div class="card"></div> y`, got.Apply(line))
}

func TestResolveAll(t *testing.T) {
	t.Run("known tag has no variant", func(t *testing.T) {
		got := resolver.ResolveAll("ul.nav", 6)
		require.Len(t, got, 1)
		assert.Equal(t, `<ul class="nav">$0</ul>`, got[0].MarkupText)
	})

	t.Run("unknown tag adds a div variant", func(t *testing.T) {
		got := resolver.ResolveAll("card.big#main", 13)
		require.Len(t, got, 2)
		assert.Equal(t, `<card class="big" id="main">$0</card>`, got[0].MarkupText)
		assert.Equal(t, `<div class="card big" id="main">$0</div>`, got[1].MarkupText)
		assert.Equal(t, got[0].ReplacementStart, got[1].ReplacementStart)
		assert.Equal(t, got[0].ReplacementEnd, got[1].ReplacementEnd)
		assert.Equal(t, []string{"big"}, got[0].Expr.Classes, "variant must not alias the primary classes")
	})

	t.Run("no tag has no variant", func(t *testing.T) {
		got := resolver.ResolveAll(".x", 2)
		require.Len(t, got, 1)
	})

	t.Run("nothing to resolve", func(t *testing.T) {
		assert.Nil(t, resolver.ResolveAll("  ", 1))
	})
}

func TestResolve_Concurrent(t *testing.T) {
	lines := []string{"  section.hero", "]div.card", "img", "ul>li.item#x[data-y"}

	want := make([]resolver.Expansion, len(lines))
	for i, l := range lines {
		want[i], _ = resolver.Resolve(l, len(l))
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, l := range lines {
				got, _ := resolver.Resolve(l, len(l))
				assert.Equal(t, want[i], got)
			}
		}()
	}
	wg.Wait()
}
