package convert

import (
	"strings"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func init() { register(shellConverter{}) }

type shellConverter struct{}

func (shellConverter) Name() string        { return "shell" }
func (shellConverter) Description() string { return "POSIX shell export statements" }

func (shellConverter) Convert(m *dotenv.Model, opts Options) (string, error) {
	entries, err := opts.Entries(m)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("export ")
		b.WriteString(opts.Key(e.Name))
		b.WriteByte('=')
		b.WriteString(shellQuote(opts.Value(e.Value)))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// shellQuote single-quotes a value, escaping embedded single quotes the
// standard '\'' way.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
