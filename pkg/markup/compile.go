package markup

import (
	"strconv"
	"strings"

	"github.com/walteh/tagexpand/pkg/shorthand"
)

// FinalStop is the snippet marker for where the cursor rests after the last
// numbered stop.
const FinalStop = "$0"

// Result is a compiled shorthand.
type Result struct {
	// Markup is snippet text with numbered stops (${1}, ${2}, ...) and, for
	// elements with content, a final $0
	Markup string
	// Preview is the same element with every stop left empty
	Preview string
	// IsVoid is true for self-closing elements
	IsVoid bool
	// Stops is the highest numbered stop in Markup, 0 when there are none
	Stops int
}

var snippetEscaper = strings.NewReplacer(`\`, `\\`, `$`, `\$`, `}`, `\}`)

// builder writes the snippet and its preview side by side.
type builder struct {
	markup  strings.Builder
	preview strings.Builder
	stops   int
}

func (me *builder) literal(s string) {
	me.markup.WriteString(snippetEscaper.Replace(s))
	me.preview.WriteString(s)
}

func (me *builder) stop() {
	me.stops++
	me.markup.WriteString("${" + strconv.Itoa(me.stops) + "}")
}

func (me *builder) attr(name, value string) {
	me.literal(" " + name + `="` + value + `"`)
}

func (me *builder) attrStop(name string) {
	me.literal(" " + name + `="`)
	me.stop()
	me.literal(`"`)
}

func hasAltFragment(attrs []string) bool {
	for _, a := range attrs {
		if a == "alt" {
			return true
		}
	}
	return false
}

// Compile renders expr as markup with editable stops. Stops are numbered in
// emission order: class, id, open attribute, alt.
func Compile(expr shorthand.Expr) Result {
	b := &builder{}
	void := IsVoid(expr.Tag)

	b.literal("<" + expr.Tag)

	if len(expr.Classes) > 0 {
		b.attr("class", strings.Join(expr.Classes, " "))
	} else if expr.HasDot {
		b.attrStop("class")
	}

	if expr.HasID() {
		b.attr("id", expr.ID)
	} else if expr.HasHash {
		b.attrStop("id")
	}

	for _, a := range expr.Attrs {
		if a == "" {
			// only an unterminated '[' leaves an empty fragment
			b.markup.WriteString(" ")
			b.stop()
			continue
		}
		b.literal(" " + a)
	}

	if void {
		if !hasAltFragment(expr.Attrs) {
			b.attrStop("alt")
		}
		b.literal(" />")
	} else {
		b.literal(">")
		b.markup.WriteString(FinalStop)
		b.literal("</" + expr.Tag + ">")
	}

	return Result{
		Markup:  b.markup.String(),
		Preview: b.preview.String(),
		IsVoid:  void,
		Stops:   b.stops,
	}
}
