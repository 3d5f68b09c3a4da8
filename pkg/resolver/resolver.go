// Package resolver turns the text around a cursor into a ready-to-insert
// markup snippet and the span of the line it replaces.
package resolver

import (
	"github.com/walteh/tagexpand/pkg/markup"
	"github.com/walteh/tagexpand/pkg/shorthand"
)

// Expansion is one resolved shorthand.
type Expansion struct {
	// ReplacementStart and ReplacementEnd are byte offsets into the line
	ReplacementStart int `json:"replacement_start"`
	ReplacementEnd   int `json:"replacement_end"`

	MarkupText    string `json:"markup_text"`
	PreviewText   string `json:"preview_text"`
	IsVoidElement bool   `json:"is_void_element"`

	// Token is the sanitized shorthand the expansion was built from
	Token string         `json:"token"`
	Expr  shorthand.Expr `json:"-"`
}

// Span returns the text of line the expansion replaces.
func (e Expansion) Span(line string) string {
	return line[e.ReplacementStart:e.ReplacementEnd]
}

// Apply returns line with the span replaced by the preview text.
func (e Expansion) Apply(line string) string {
	return line[:e.ReplacementStart] + e.PreviewText + line[e.ReplacementEnd:]
}

// TokenRange is the sanitized token at a cursor and the span it covers.
type TokenRange struct {
	Token shorthand.Token
	Start int
	End   int
}

// TokenRangeAt scans and sanitizes the text around offset. The range covers
// the whole window before the cursor, so leading junk the sanitizer dropped is
// replaced along with the token.
func TokenRangeAt(line string, offset int) (TokenRange, bool) {
	w := shorthand.Scan(line, offset)

	tok, ok := shorthand.Sanitize(w.Before, w.After)
	if !ok {
		return TokenRange{}, false
	}

	cursor := w.Start + len(w.Before)

	return TokenRange{
		Token: tok,
		Start: w.Start,
		End:   cursor + tok.ConsumedAfterLength,
	}, true
}

func build(rng TokenRange, expr shorthand.Expr) Expansion {
	res := markup.Compile(expr)
	return Expansion{
		ReplacementStart: rng.Start,
		ReplacementEnd:   rng.End,
		MarkupText:       res.Markup,
		PreviewText:      res.Preview,
		IsVoidElement:    res.IsVoid,
		Token:            rng.Token.Text,
		Expr:             expr,
	}
}

// Resolve expands the shorthand at offset in line. It reports false when no
// shorthand can be recovered there.
func Resolve(line string, offset int) (Expansion, bool) {
	rng, ok := TokenRangeAt(line, offset)
	if !ok {
		return Expansion{}, false
	}
	return build(rng, shorthand.Parse(rng.Token.Text)), true
}

// ResolveAll returns the primary expansion followed by a div variant when
// the typed tag is not a known element, in which case the unknown name is
// moved to the variant's first class: `card.big` also offers
// `<div class="card big">`.
func ResolveAll(line string, offset int) []Expansion {
	rng, ok := TokenRangeAt(line, offset)
	if !ok {
		return nil
	}

	expr := shorthand.Parse(rng.Token.Text)
	out := []Expansion{build(rng, expr)}

	if expr.ExplicitTag && !markup.IsKnown(expr.Tag) {
		out = append(out, build(rng, defaultTagVariant(expr)))
	}

	return out
}

func defaultTagVariant(expr shorthand.Expr) shorthand.Expr {
	variant := expr
	variant.Tag = shorthand.DefaultTag
	variant.ExplicitTag = false
	variant.Classes = append([]string{expr.Tag}, expr.Classes...)
	variant.Attrs = append([]string(nil), expr.Attrs...)
	return variant
}
