// Package hover provides functionality for generating hover information.
package hover

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/tagexpand/pkg/position"
	"github.com/walteh/tagexpand/pkg/resolver"
	"github.com/walteh/tagexpand/pkg/shorthand"
	"gitlab.com/tozd/go/errors"
)

// HoverInfo represents the information to be displayed in a hover tooltip
type HoverInfo struct {
	// Content is the markdown content to display
	Content []string `json:"content"`
	// Range is the range in the document that this hover applies to
	Range position.Range `json:"range"`
}

// FormatHoverResponse describes what the shorthand in exp expands to.
func FormatHoverResponse(ctx context.Context, exp resolver.Expansion) *HoverInfo {
	var sb strings.Builder

	expr := exp.Expr

	fmt.Fprintf(&sb, "**tag** `%s`", expr.Tag)
	if !expr.ExplicitTag {
		sb.WriteString(" (default)")
	}
	if len(expr.Classes) > 0 {
		fmt.Fprintf(&sb, "\n\n**class** `%s`", strings.Join(expr.Classes, " "))
	}
	if expr.HasID() {
		fmt.Fprintf(&sb, "\n\n**id** `%s`", expr.ID)
	}
	for _, attr := range expr.Attrs {
		if attr == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n\n**attribute** `%s`", attr)
	}
	switch expr.Trailing {
	case shorthand.TrailingDot:
		sb.WriteString("\n\nclass name still to type")
	case shorthand.TrailingHash:
		sb.WriteString("\n\nid still to type")
	case shorthand.TrailingBracket:
		sb.WriteString("\n\nattribute still to type")
	}
	if exp.IsVoidElement {
		sb.WriteString("\n\nvoid element, no closing tag")
	}

	zerolog.Ctx(ctx).Debug().Str("token", exp.Token).Msg("formatted hover")

	return &HoverInfo{
		Content: []string{
			"```html\n" + exp.PreviewText + "\n```",
			sb.String(),
		},
	}
}

// BuildHoverResponse returns the hover for the shorthand under the zero-based
// line and character, or nil when there is none.
func BuildHoverResponse(ctx context.Context, content string, line, character int) (*HoverInfo, error) {
	lineText, ok := position.LineAt(content, line)
	if !ok {
		return nil, errors.Errorf("line %d out of range", line)
	}

	offset := position.CharacterToOffset(lineText, character)

	exp, ok := resolver.Resolve(lineText, offset)
	if !ok {
		zerolog.Ctx(ctx).Debug().Int("offset", offset).Msg("no shorthand under cursor")
		return nil, nil
	}

	info := FormatHoverResponse(ctx, exp)
	info.Range = position.Range{
		Start: position.Place{Line: line, Character: position.OffsetToCharacter(lineText, exp.ReplacementStart)},
		End:   position.Place{Line: line, Character: position.OffsetToCharacter(lineText, exp.ReplacementEnd)},
	}

	return info, nil
}
