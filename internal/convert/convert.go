// Package convert projects a parsed environment file into other formats:
// deployment manifests, CI secret lists, shell exports. Converters register
// themselves by name; the CLI looks them up through the registry.
package convert

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

// KeyTransform rewrites variable names on the way out.
type KeyTransform string

const (
	TransformNone  KeyTransform = ""
	TransformUpper KeyTransform = "upper"
	TransformLower KeyTransform = "lower"
	TransformCamel KeyTransform = "camel"
	TransformSnake KeyTransform = "snake"
)

// Options controls filtering and rewriting during conversion. The zero value
// passes every variable through untouched.
type Options struct {
	// Include keeps only variables whose name matches this glob
	// (doublestar syntax, e.g. "AWS_*" or "{DB,REDIS}_*").
	Include string

	// Exclude drops variables whose name matches this glob. Exclude wins
	// over Include.
	Exclude string

	// Prefix is prepended to every name before Transform runs.
	Prefix string

	Transform KeyTransform

	// Base64 encodes every value. Kubernetes Secret output switches from
	// stringData to data when set.
	Base64 bool
}

// Entries returns the model's variables in definition order after
// include/exclude filtering.
func (o Options) Entries(m *dotenv.Model) ([]*dotenv.Entry, error) {
	var out []*dotenv.Entry
	for _, e := range m.Entries() {
		if o.Exclude != "" {
			ok, err := doublestar.Match(o.Exclude, e.Name)
			if err != nil {
				return nil, fmt.Errorf("bad exclude pattern %q: %w", o.Exclude, err)
			}
			if ok {
				continue
			}
		}
		if o.Include != "" {
			ok, err := doublestar.Match(o.Include, e.Name)
			if err != nil {
				return nil, fmt.Errorf("bad include pattern %q: %w", o.Include, err)
			}
			if !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// Key applies prefix and transform to a variable name.
func (o Options) Key(name string) string {
	name = o.Prefix + name
	switch o.Transform {
	case TransformUpper:
		return strings.ToUpper(name)
	case TransformLower:
		return strings.ToLower(name)
	case TransformCamel:
		return toCamel(name)
	case TransformSnake:
		return toSnake(name)
	}
	return name
}

// Value applies base64 encoding when enabled.
func (o Options) Value(v string) string {
	if o.Base64 {
		return base64.StdEncoding.EncodeToString([]byte(v))
	}
	return v
}

// Converter turns an environment model into text in one output format.
type Converter interface {
	Convert(m *dotenv.Model, opts Options) (string, error)
	Name() string
	Description() string
}

var registry = map[string]Converter{}

func register(c Converter) {
	registry[c.Name()] = c
}

// Get returns the converter registered under name.
func Get(name string) (Converter, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names lists registered format names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// All returns every registered converter in Names order.
func All() []Converter {
	out := make([]Converter, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}

// toCamel turns SNAKE_OR-kebab names into camelCase.
func toCamel(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	if len(parts) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(parts[0]))
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(strings.ToLower(p[1:]))
	}
	return b.String()
}

func toSnake(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "-", "_"))
}
