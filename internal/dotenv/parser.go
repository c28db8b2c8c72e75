package dotenv

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Config controls parser behaviour.
type Config struct {
	// AllowExpansion enables ${VAR} and $VAR substitution against variables
	// defined earlier in the same source.
	AllowExpansion bool

	// Strict turns recoverable problems (bad identifiers, undefined
	// references) into parse errors instead of warnings.
	Strict bool

	// MaxExpansionDepth bounds reference chains (A=${B}, B=${C}, ...).
	MaxExpansionDepth int

	// AllowInlineComments strips '# ...' from unquoted values. When false
	// the '#' and everything after it stays part of the value.
	AllowInlineComments bool

	// TrimValues trims surrounding whitespace from unquoted values after all
	// other processing. Quoted values always keep their whitespace.
	TrimValues bool
}

// DefaultConfig matches the behaviour most .env tooling expects.
func DefaultConfig() Config {
	return Config{
		AllowExpansion:      true,
		Strict:              false,
		MaxExpansionDepth:   10,
		AllowInlineComments: true,
		TrimValues:          true,
	}
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Parse lexes text into a Model. It is a pure function of its inputs: no
// filesystem access, no process environment.
func Parse(text string, cfg Config) (*Model, error) {
	if !utf8.ValidString(text) {
		return nil, &EncodingError{}
	}
	if cfg.MaxExpansionDepth <= 0 {
		cfg.MaxExpansionDepth = DefaultConfig().MaxExpansionDepth
	}

	p := &parser{cfg: cfg, model: newModel(), depths: map[string]int{}}

	for i, raw := range strings.Split(text, "\n") {
		lineNum := i + 1
		line := strings.TrimSuffix(raw, "\r")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if err := p.parseLine(trimmed, lineNum); err != nil {
			return nil, err
		}
	}
	return p.model, nil
}

type parser struct {
	cfg   Config
	model *Model

	// depths tracks the reference-chain depth of each resolved entry so a
	// later reference to it can be charged against MaxExpansionDepth.
	depths map[string]int
}

func (p *parser) parseLine(line string, lineNum int) error {
	// optional `export ` prefix, as written by shells and direnv
	if rest, ok := strings.CutPrefix(line, "export"); ok && rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
		line = strings.TrimLeft(rest, " \t")
	}

	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return &MissingDelimiterError{Line: lineNum}
	}

	name := strings.TrimSpace(line[:eq])
	if !identRe.MatchString(name) {
		if p.cfg.Strict {
			return &InvalidIdentifierError{Line: lineNum, Name: name}
		}
		p.model.Warnings = append(p.model.Warnings,
			fmt.Sprintf("line %d: skipping invalid variable name %q", lineNum, name))
		return nil
	}

	raw := strings.TrimLeft(line[eq+1:], " \t")
	entry := &Entry{Name: name, Line: lineNum}

	if err := p.parseValue(entry, raw, lineNum); err != nil {
		return err
	}
	p.model.put(entry)
	return nil
}

func (p *parser) parseValue(e *Entry, raw string, lineNum int) error {
	if raw == "" {
		e.Quote = QuoteNone
		return p.resolve(e, lineNum)
	}

	switch raw[0] {
	case '"':
		inner, rest, err := cutQuoted(raw, '"', true, lineNum)
		if err != nil {
			return err
		}
		e.Quote = QuoteDouble
		e.RawValue = inner
		e.Comment = trailingComment(rest, lineNum)
		e.Value = unescapeDouble(inner)
		return p.resolve(e, lineNum)

	case '\'', '`':
		q := raw[0]
		inner, rest, err := cutQuoted(raw, q, false, lineNum)
		if err != nil {
			return err
		}
		if q == '\'' {
			e.Quote = QuoteSingle
		} else {
			e.Quote = QuoteBacktick
		}
		e.RawValue = inner
		e.Comment = trailingComment(rest, lineNum)
		// literal: no unescaping, no expansion
		e.Value = inner
		return nil

	default:
		e.Quote = QuoteNone
		val := raw
		if p.cfg.AllowInlineComments {
			val, e.Comment = splitUnquotedComment(raw)
		}
		val = strings.TrimRight(val, " \t")
		if p.cfg.TrimValues {
			val = strings.TrimSpace(val)
		}
		e.RawValue = val
		e.Value = strings.ReplaceAll(val, `\#`, "#")
		return p.resolve(e, lineNum)
	}
}

// resolve applies variable expansion to e.Value when enabled. Single-quoted
// and backtick values never reach here.
func (p *parser) resolve(e *Entry, lineNum int) error {
	if !p.cfg.AllowExpansion {
		return nil
	}
	val, depth, err := p.expand(e.Value, lineNum)
	if err != nil {
		return err
	}
	e.Value = val
	p.depths[e.Name] = depth
	return nil
}

// cutQuoted splits raw (which starts with the quote q) into the inner text
// and whatever follows the closing quote. For double quotes a backslash
// escapes the quote; single quotes and backticks have no escapes. A quote
// not closed on the same line is an error: multiline values are unsupported.
func cutQuoted(raw string, q byte, escapes bool, lineNum int) (inner, rest string, err error) {
	for i := 1; i < len(raw); i++ {
		c := raw[i]
		if escapes && c == '\\' {
			i++
			continue
		}
		if c == q {
			return raw[1:i], raw[i+1:], nil
		}
	}
	return "", "", &UnterminatedQuoteError{Line: lineNum}
}

// trailingComment accepts the text after a closing quote: optional whitespace
// and an optional '# comment'. Anything else is tolerated as-is but ignored;
// grammar here is forgiving because real .env files are messy.
func trailingComment(rest string, _ int) string {
	rest = strings.TrimLeft(rest, " \t")
	if c, ok := strings.CutPrefix(rest, "#"); ok {
		return strings.TrimSpace(c)
	}
	return ""
}

// splitUnquotedComment cuts an unquoted value at the first unescaped '#'.
func splitUnquotedComment(raw string) (val, comment string) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' {
			i++
			continue
		}
		if raw[i] == '#' {
			return raw[:i], strings.TrimSpace(raw[i+1:])
		}
	}
	return raw, ""
}

// unescapeDouble processes backslash sequences inside a double-quoted value.
// Unknown sequences keep the backslash.
func unescapeDouble(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
