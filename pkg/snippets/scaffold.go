package snippets

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/editorconfig/editorconfig-core-go/v2"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// Style controls how scaffolds are indented.
type Style struct {
	Indent string
}

// DefaultStyle indents with a tab.
var DefaultStyle = Style{Indent: "\t"}

var componentTemplate = template.Must(template.New("component").Parse(`export default function {{.Component}}(${1:props}) {
{{.I}}return (
{{.I}}{{.I}}<div className="{{.Class}}">
{{.I}}{{.I}}{{.I}}$0
{{.I}}{{.I}}</div>
{{.I}});
}
`))

// Words splits a file or identifier name on separators and case changes:
// `user-card.tsx`, `user_card` and `UserCard` all give [user card].
func Words(name string) []string {
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}

	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(base)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
			continue
		case unicode.IsUpper(r) && len(cur) > 0:
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// "userCard" and the "C" in "HTMLCard" both start a new word
			if prevLower || nextLower {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return words
}

// ComponentName is the PascalCase form of name.
func ComponentName(name string) string {
	var sb strings.Builder
	for _, w := range Words(name) {
		r := []rune(w)
		sb.WriteString(strings.ToUpper(string(r[0])) + string(r[1:]))
	}
	return sb.String()
}

// ClassName is the kebab-case form of name.
func ClassName(name string) string {
	return strings.Join(Words(name), "-")
}

// Scaffold renders a component snippet named after fileName.
func Scaffold(fileName string, style Style) (string, error) {
	component := ComponentName(fileName)
	if component == "" {
		return "", errors.Errorf("cannot derive a component name from %q", fileName)
	}
	if style.Indent == "" {
		style = DefaultStyle
	}

	var buf bytes.Buffer
	err := componentTemplate.Execute(&buf, map[string]string{
		"Component": component,
		"Class":     ClassName(fileName),
		"I":         style.Indent,
	})
	if err != nil {
		return "", errors.Errorf("rendering scaffold: %w", err)
	}

	return buf.String(), nil
}

type editorconfigFile struct {
	dir    string
	config *editorconfig.Editorconfig
}

func loadEditorconfig(fs afero.Fs, path string) (*editorconfig.Editorconfig, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ec, err := editorconfig.Parse(f)
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", path, err)
	}
	return ec, nil
}

// StyleFor reads the .editorconfig files that apply to path, from the nearest
// one marked root down to the file's own directory, and returns the resulting
// indentation. Without any it returns DefaultStyle.
func StyleFor(fs afero.Fs, path string) (Style, error) {
	file := filepath.Clean(path)

	// innermost first
	var found []editorconfigFile
	for dir := filepath.Dir(file); ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, ".editorconfig")
		ok, err := afero.Exists(fs, candidate)
		if err != nil {
			return Style{}, errors.Errorf("checking %s: %w", candidate, err)
		}
		if ok {
			ec, err := loadEditorconfig(fs, candidate)
			if err != nil {
				return Style{}, err
			}
			found = append(found, editorconfigFile{dir: dir, config: ec})
			if ec.Root {
				break
			}
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}

	indentStyle, indentSize, tabWidth := "", "", 0

	for i := len(found) - 1; i >= 0; i-- {
		rel, err := filepath.Rel(found[i].dir, file)
		if err != nil {
			return Style{}, errors.Errorf("relating %s to %s: %w", file, found[i].dir, err)
		}
		def, err := found[i].config.GetDefinitionForFilename("/" + filepath.ToSlash(rel))
		if err != nil {
			return Style{}, errors.Errorf("matching %s: %w", rel, err)
		}
		if def.IndentStyle != "" {
			indentStyle = def.IndentStyle
		}
		if def.IndentSize != "" {
			indentSize = def.IndentSize
		}
		if def.TabWidth > 0 {
			tabWidth = def.TabWidth
		}
	}

	switch indentStyle {
	case editorconfig.IndentStyleSpaces:
		n, err := strconv.Atoi(indentSize)
		if err != nil || n <= 0 {
			n = tabWidth
		}
		if n <= 0 {
			n = 4
		}
		return Style{Indent: strings.Repeat(" ", n)}, nil
	case editorconfig.IndentStyleTab:
		return Style{Indent: "\t"}, nil
	}

	return DefaultStyle, nil
}
