package dotenv

import "strings"

// Serialize regenerates env-file text from a model, preserving entry order,
// quoting style and trailing comments. For the supported subset the law
// Parse(Serialize(Parse(t))) == Parse(t) holds; full-line comments and blank
// lines from the original source are not reproduced.
func Serialize(m *Model) string {
	var b strings.Builder
	for _, e := range m.Entries() {
		b.WriteString(e.Name)
		b.WriteByte('=')
		switch e.Quote {
		case QuoteDouble:
			b.WriteByte('"')
			b.WriteString(e.RawValue)
			b.WriteByte('"')
		case QuoteSingle:
			b.WriteByte('\'')
			b.WriteString(e.RawValue)
			b.WriteByte('\'')
		case QuoteBacktick:
			b.WriteByte('`')
			b.WriteString(e.RawValue)
			b.WriteByte('`')
		default:
			b.WriteString(e.RawValue)
		}
		if e.Comment != "" {
			b.WriteString(" # ")
			b.WriteString(e.Comment)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
