package dotenv

// Quote records how a value was written in the source file.
type Quote int

const (
	QuoteNone Quote = iota
	QuoteSingle
	QuoteDouble
	QuoteBacktick
)

// Entry is a single variable with everything the source told us about it.
type Entry struct {
	Name     string
	RawValue string // value as written, without surrounding quotes
	Value    string // after unescaping and expansion
	Line     int
	Quote    Quote
	Comment  string // trailing comment on the same line, without the '#'
}

// Model is the parsed form of one env source: an ordered set of entries with
// unique names. When a name appears twice the last occurrence wins but the
// entry keeps its original position. A Model is built once per parse and not
// mutated afterwards.
type Model struct {
	entries []*Entry
	index   map[string]int

	// Warnings collects non-fatal parse diagnostics (skipped lines,
	// unresolved references in non-strict mode).
	Warnings []string
}

func newModel() *Model {
	return &Model{index: map[string]int{}}
}

func (m *Model) put(e *Entry) {
	if i, ok := m.index[e.Name]; ok {
		// last occurrence wins; position of the first occurrence is kept
		m.entries[i] = e
		return
	}
	m.index[e.Name] = len(m.entries)
	m.entries = append(m.entries, e)
}

// Get returns the entry for name, if defined.
func (m *Model) Get(name string) (*Entry, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.entries[i], true
}

// Lookup returns the resolved value for name.
func (m *Model) Lookup(name string) (string, bool) {
	e, ok := m.Get(name)
	if !ok {
		return "", false
	}
	return e.Value, true
}

// Has reports whether name is defined.
func (m *Model) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Keys returns variable names in insertion order.
func (m *Model) Keys() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Name
	}
	return out
}

// Entries returns entries in insertion order. Callers must not mutate them.
func (m *Model) Entries() []*Entry {
	return m.entries
}

// Len returns the number of variables.
func (m *Model) Len() int {
	return len(m.entries)
}

// Map flattens the model into a plain name→value map, losing order.
func (m *Model) Map() map[string]string {
	out := make(map[string]string, len(m.entries))
	for _, e := range m.entries {
		out[e.Name] = e.Value
	}
	return out
}
