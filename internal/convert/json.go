package convert

import (
	"encoding/json"
	"strings"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func init() { register(jsonConverter{}) }

type jsonConverter struct{}

func (jsonConverter) Name() string        { return "json" }
func (jsonConverter) Description() string { return "generic JSON key-value object" }

// Convert emits a JSON object with keys in definition order. Built by hand
// because encoding/json sorts map keys.
func (jsonConverter) Convert(m *dotenv.Model, opts Options) (string, error) {
	entries, err := opts.Entries(m)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, e := range entries {
		k, _ := json.Marshal(opts.Key(e.Name))
		v, _ := json.Marshal(opts.Value(e.Value))
		b.WriteString("  ")
		b.Write(k)
		b.WriteString(": ")
		b.Write(v)
		if i < len(entries)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String(), nil
}
