// Package config loads the optional .tagexpand.hcl / .tagexpand.yaml file.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/walteh/tagexpand/pkg/snippets"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// FileNames are looked up, in order, in each directory from the document up.
var FileNames = []string{".tagexpand.hcl", ".tagexpand.yaml", ".tagexpand.yml"}

// Snippet is a keyword expansion declared in the config file.
type Snippet = snippets.Snippet

// Config is the user configuration.
//
// HCL strings treat ${...} as interpolation, so numbered stops in snippet
// bodies are written $${1} there. The environment is available as env.NAME.
type Config struct {
	// LegacyTriggers also re-triggers completion on '#' and '['
	LegacyTriggers bool `json:"legacy_triggers,omitempty" yaml:"legacy_triggers,omitempty" hcl:"legacy_triggers,optional"`
	// Files are doublestar globs of documents to offer expansions in; empty means all
	Files []string `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"`
	// Snippets are added over the built-in keyword catalog
	Snippets []Snippet `json:"snippets,omitempty" yaml:"snippets,omitempty" hcl:"snippet,block"`

	// Path is where the config was loaded from, empty for the default
	Path string `json:"-" yaml:"-"`
}

// Default is the configuration used when no file is found.
func Default() *Config {
	return &Config{}
}

// Loader reads configuration through an afero filesystem.
type Loader struct {
	fs  afero.Fs
	env func() []string
}

func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs, env: os.Environ}
}

// WithEnv replaces the environment exposed to HCL files.
func (me *Loader) WithEnv(env []string) *Loader {
	return &Loader{fs: me.fs, env: func() []string { return env }}
}

// Find returns the first config file in dir or its parents.
func (me *Loader) Find(dir string) (string, bool, error) {
	dir = filepath.Clean(dir)
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			ok, err := afero.Exists(me.fs, candidate)
			if err != nil {
				return "", false, errors.Errorf("checking %s: %w", candidate, err)
			}
			if ok {
				return candidate, true, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Discover loads the config that applies to dir, or Default when there is none.
func (me *Loader) Discover(dir string) (*Config, error) {
	path, ok, err := me.Find(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return me.Load(path)
}

// Load reads and validates the config at path. YAML is chosen by extension,
// everything else is parsed as HCL.
func (me *Loader) Load(path string) (*Config, error) {
	data, err := afero.ReadFile(me.fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		cfg, err = decodeYAML(data)
	} else {
		cfg, err = me.decodeHCL(data, path)
	}
	if err != nil {
		return nil, err
	}

	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func decodeYAML(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

func (me *Loader) evalContext() *hcl.EvalContext {
	vars := map[string]cty.Value{}
	for _, kv := range me.env() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vars[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

func (me *Loader) decodeHCL(data []byte, path string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %w", diagnosticsError(diags))
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, me.evalContext(), &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %w", diagnosticsError(diags))
	}

	return &cfg, nil
}

// diagnosticsError keeps one error per HCL diagnostic so callers see them all.
func diagnosticsError(diags hcl.Diagnostics) error {
	var result *multierror.Error
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		result = multierror.Append(result, errors.New(d.Error()))
	}
	return result.ErrorOrNil()
}

func validKeyword(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-') {
			return false
		}
	}
	return true
}

// Validate reports every problem in the config at once.
func (me *Config) Validate() error {
	var err error

	seen := map[string]bool{}
	for i, s := range me.Snippets {
		if !validKeyword(s.Keyword) {
			err = multierr.Append(err, errors.Errorf("snippet %d: keyword %q must be letters, digits, '_' or '-'", i, s.Keyword))
		}
		if s.Keyword == snippets.ScaffoldKeyword {
			err = multierr.Append(err, errors.Errorf("snippet %d: keyword %q is reserved for the component scaffold", i, s.Keyword))
		}
		if s.Body == "" {
			err = multierr.Append(err, errors.Errorf("snippet %d (%s): body is empty", i, s.Keyword))
		}
		if seen[s.Keyword] {
			err = multierr.Append(err, errors.Errorf("snippet %d: duplicate keyword %q", i, s.Keyword))
		}
		seen[s.Keyword] = true
	}

	for _, pattern := range me.Files {
		if !doublestar.ValidatePattern(pattern) {
			err = multierr.Append(err, errors.Errorf("files: invalid glob %q", pattern))
		}
	}

	return err
}

// Catalog returns the built-in snippets with the configured ones on top.
func (me *Config) Catalog() *snippets.Catalog {
	return snippets.DefaultCatalog().With(me.Snippets...)
}

// TriggerCharacters are the characters that should re-run completion.
func (me *Config) TriggerCharacters() []string {
	if me.LegacyTriggers {
		return []string{".", "]", "#", "["}
	}
	return []string{".", "]"}
}

// Matches reports whether expansions are offered in the document at path.
// Paths under the config file's directory are matched relative to it, others
// as the slash-separated path without a leading '/'.
func (me *Config) Matches(path string) bool {
	if len(me.Files) == 0 {
		return true
	}
	if me.Path != "" && filepath.IsAbs(path) {
		if rel, err := filepath.Rel(filepath.Dir(me.Path), path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}
	name := strings.TrimPrefix(filepath.ToSlash(path), "/")
	for _, pattern := range me.Files {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
