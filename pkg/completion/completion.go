package completion

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/tagexpand/pkg/config"
	"github.com/walteh/tagexpand/pkg/position"
	"github.com/walteh/tagexpand/pkg/resolver"
	"github.com/walteh/tagexpand/pkg/snippets"
	"gitlab.com/tozd/go/errors"
)

const (
	KindSnippet = "snippet"

	// InsertTextFormatSnippet marks InsertText as tab-stop snippet syntax
	InsertTextFormatSnippet = "snippet"
)

// Item represents a single completion suggestion
type Item struct {
	Label            string         `json:"label"`
	Kind             string         `json:"kind"`
	Detail           string         `json:"detail,omitempty"`
	Documentation    string         `json:"documentation,omitempty"`
	InsertText       string         `json:"insertText"`
	InsertTextFormat string         `json:"insertTextFormat"`
	FilterText       string         `json:"filterText,omitempty"`
	SortText         string         `json:"sortText,omitempty"`
	Range            position.Range `json:"range"`
}

// Provider answers completion requests with tag expansions and keyword snippets.
type Provider struct {
	cfg     *config.Config
	catalog *snippets.Catalog
	fs      afero.Fs
}

// NewProvider creates a provider; fs is used to read .editorconfig files for
// the component scaffold.
func NewProvider(cfg *config.Config, fs afero.Fs) *Provider {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Provider{
		cfg:     cfg,
		catalog: cfg.Catalog(),
		fs:      fs,
	}
}

// TriggerCharacters are the characters that should re-run completion.
func (p *Provider) TriggerCharacters() []string {
	return p.cfg.TriggerCharacters()
}

// GetTriggeredCompletions answers a request sent because the user typed a
// character. Nothing is offered unless that character, the byte before the
// cursor, is one of TriggerCharacters.
func (p *Provider) GetTriggeredCompletions(ctx context.Context, filePath, content string, line, character int) ([]Item, error) {
	cc := NewCompletionContext(content, line, character)
	if cc.Valid && !cc.IsAfterTrigger(p.TriggerCharacters()) {
		zerolog.Ctx(ctx).Debug().Str("prev", string(cc.PrevChar())).Msg("not a trigger character, skipping")
		return nil, nil
	}
	return p.GetCompletions(ctx, filePath, content, line, character)
}

// GetCompletions returns the suggestions for the zero-based line and
// character in content. An empty result is not an error.
func (p *Provider) GetCompletions(ctx context.Context, filePath, content string, line, character int) ([]Item, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", filePath).Int("line", line).Int("character", character).Logger()

	if !p.cfg.Matches(filePath) {
		logger.Debug().Msg("file not matched by config, skipping")
		return nil, nil
	}

	cc := NewCompletionContext(content, line, character)
	if !cc.Valid {
		return nil, errors.Errorf("line %d out of range", line)
	}

	if cc.IsInsideTag() {
		logger.Debug().Msg("cursor inside an open tag, skipping")
		return nil, nil
	}

	var items []Item

	for i, exp := range resolver.ResolveAll(cc.LineText, cc.Offset) {
		items = append(items, Item{
			Label:            exp.PreviewText,
			Kind:             KindSnippet,
			Detail:           exp.Token,
			Documentation:    "```html\n" + exp.PreviewText + "\n```",
			InsertText:       exp.MarkupText,
			InsertTextFormat: InsertTextFormatSnippet,
			FilterText:       cc.LineText[exp.ReplacementStart:exp.ReplacementEnd],
			SortText:         "0" + strconv.Itoa(i),
			Range:            cc.LineRange(exp.ReplacementStart, exp.ReplacementEnd),
		})
	}

	items = append(items, p.keywordItems(ctx, cc, filePath)...)

	logger.Debug().Int("count", len(items)).Int("catalog", p.catalog.Len()).Msg("completions resolved")

	return items, nil
}

// keywordItems offers catalog snippets whose keyword starts with the plain
// word at the cursor.
func (p *Provider) keywordItems(ctx context.Context, cc *CompletionContext, filePath string) []Item {
	rng, ok := resolver.TokenRangeAt(cc.LineText, cc.Offset)
	if !ok {
		return nil
	}
	word := rng.Token.Text
	if strings.ContainsAny(word, ".#[]") {
		return nil
	}

	var items []Item
	for _, snip := range p.catalog.Match(word) {
		body := snip.Body
		if snip.Keyword == snippets.ScaffoldKeyword {
			scaffold, err := p.scaffold(ctx, filePath)
			if err != nil {
				zerolog.Ctx(ctx).Debug().Err(err).Msg("no scaffold for file")
				continue
			}
			body = scaffold
		}

		items = append(items, Item{
			Label:            snip.Keyword,
			Kind:             KindSnippet,
			Detail:           snip.Description,
			InsertText:       body,
			InsertTextFormat: InsertTextFormatSnippet,
			FilterText:       word,
			SortText:         "1" + snip.Keyword,
			Range:            cc.LineRange(rng.Start, rng.End),
		})
	}
	return items
}

func (p *Provider) scaffold(ctx context.Context, filePath string) (string, error) {
	if filePath == "" {
		return "", errors.New("document has no file name")
	}

	style, err := snippets.StyleFor(p.fs, filePath)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("reading editorconfig, using default indentation")
		style = snippets.DefaultStyle
	}

	return snippets.Scaffold(filepath.Base(filePath), style)
}
