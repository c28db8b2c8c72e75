// Package diff compares two parsed environment files and reports which
// variables are missing, extra, or changed between them.
package diff

import "github.com/dotsentry/dotsentry/internal/dotenv"

// Change records a variable present in both files with different values.
type Change struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Entry is a variable that exists on only one side of the comparison.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Line  int    `json:"line"`
}

// Result is the outcome of comparing a target file against a reference.
type Result struct {
	// Missing lists variables the reference defines but the target lacks,
	// in the reference's definition order.
	Missing []Entry `json:"missing"`

	// Extra lists variables the target defines but the reference lacks,
	// in the target's definition order.
	Extra []Entry `json:"extra"`

	// Changed lists variables defined on both sides with different resolved
	// values, in the target's definition order.
	Changed []Change `json:"changed"`
}

// Empty reports whether the two files agreed on every variable.
func (r *Result) Empty() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0 && len(r.Changed) == 0
}

// Compare diffs target against reference. With reverse set the operands swap
// roles, so Compare(a, b, true) equals Compare(b, a, false) exactly.
func Compare(target, reference *dotenv.Model, reverse bool) *Result {
	if reverse {
		target, reference = reference, target
	}

	res := &Result{}

	for _, e := range reference.Entries() {
		if !target.Has(e.Name) {
			res.Missing = append(res.Missing, Entry{Name: e.Name, Value: e.Value, Line: e.Line})
		}
	}

	for _, e := range target.Entries() {
		refVal, ok := reference.Lookup(e.Name)
		if !ok {
			res.Extra = append(res.Extra, Entry{Name: e.Name, Value: e.Value, Line: e.Line})
			continue
		}
		if refVal != e.Value {
			res.Changed = append(res.Changed, Change{Name: e.Name, From: refVal, To: e.Value})
		}
	}

	return res
}
