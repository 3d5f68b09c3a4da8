// Package snippets holds the literal-keyword snippets offered next to tag
// expansions and the component scaffold derived from a file name.
package snippets

import (
	"sort"
	"strings"
)

// Snippet is a fixed expansion for a literal keyword.
type Snippet struct {
	Keyword     string `json:"keyword" yaml:"keyword" hcl:"keyword,label"`
	Body        string `json:"body" yaml:"body" hcl:"body,attr"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" hcl:"description,optional"`
}

// ScaffoldKeyword expands into a component named after the current file
// instead of a fixed body.
const ScaffoldKeyword = "comp"

var builtin = []Snippet{
	{
		Keyword:     "afn",
		Body:        "(${1}) => {\n\t$0\n}",
		Description: "arrow function",
	},
	{
		Keyword:     "cafn",
		Body:        "const ${1:name} = (${2}) => {\n\t$0\n};",
		Description: "arrow function assigned to a constant",
	},
	{
		Keyword:     "frag",
		Body:        "<>\n\t$0\n</>",
		Description: "fragment",
	},
	{
		Keyword:     "cmt",
		Body:        "<!-- $0 -->",
		Description: "comment",
	},
	{
		Keyword:     "html5",
		Body:        "<!DOCTYPE html>\n<html lang=\"${1:en}\">\n<head>\n\t<meta charset=\"UTF-8\" />\n\t<title>${2}</title>\n</head>\n<body>\n\t$0\n</body>\n</html>",
		Description: "HTML document",
	},
	{
		Keyword:     ScaffoldKeyword,
		Description: "component named after the file",
	},
}

// Catalog is an immutable keyword table.
type Catalog struct {
	entries map[string]Snippet
}

// DefaultCatalog returns the built-in snippets.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtin...)
}

// NewCatalog builds a catalog; later snippets replace earlier ones with the
// same keyword.
func NewCatalog(snips ...Snippet) *Catalog {
	c := &Catalog{entries: make(map[string]Snippet, len(snips))}
	for _, s := range snips {
		c.entries[s.Keyword] = s
	}
	return c
}

// With returns a copy of the catalog with snips added over the existing entries.
func (me *Catalog) With(snips ...Snippet) *Catalog {
	all := make([]Snippet, 0, len(me.entries)+len(snips))
	for _, s := range me.entries {
		all = append(all, s)
	}
	return NewCatalog(append(all, snips...)...)
}

// Match returns the snippets whose keyword starts with prefix, sorted by keyword.
func (me *Catalog) Match(prefix string) []Snippet {
	if prefix == "" {
		return nil
	}
	var out []Snippet
	for k, s := range me.entries {
		if strings.HasPrefix(k, prefix) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Keyword < out[j].Keyword
	})
	return out
}

// Len is the number of distinct keywords.
func (me *Catalog) Len() int {
	return len(me.entries)
}
