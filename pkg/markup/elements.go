package markup

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// voidElements are the HTML elements that never have children or a closing tag.
var voidElements = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// IsVoid reports whether tag names a void element, ignoring case.
func IsVoid(tag string) bool {
	_, ok := voidElements[strings.ToLower(tag)]
	return ok
}

// IsKnown reports whether tag is a name the HTML tokenizer recognizes.
// The atom table also holds attribute names, so `href` counts as known.
func IsKnown(tag string) bool {
	if tag == "" {
		return false
	}
	return atom.Lookup([]byte(strings.ToLower(tag))) != 0
}
