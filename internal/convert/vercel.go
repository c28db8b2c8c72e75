package convert

import (
	"encoding/json"
	"strings"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func init() { register(vercelConverter{}) }

type vercelConverter struct{}

func (vercelConverter) Name() string        { return "vercel" }
func (vercelConverter) Description() string { return "Vercel environment variables JSON" }

type vercelVar struct {
	Type   string   `json:"type"`
	Value  string   `json:"value"`
	Target []string `json:"target"`
}

func (vercelConverter) Convert(m *dotenv.Model, opts Options) (string, error) {
	entries, err := opts.Entries(m)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, e := range entries {
		k, _ := json.Marshal(opts.Key(e.Name))
		v, _ := json.MarshalIndent(vercelVar{
			Type:   "plain",
			Value:  opts.Value(e.Value),
			Target: []string{"production", "preview", "development"},
		}, "  ", "  ")
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
