package diff

import (
	"reflect"
	"testing"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func parse(t *testing.T, text string) *dotenv.Model {
	t.Helper()
	m, err := dotenv.Parse(text, dotenv.DefaultConfig())
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return m
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestCompare_Identical(t *testing.T) {
	a := parse(t, "A=1\nB=2")
	b := parse(t, "A=1\nB=2")
	res := Compare(a, b, false)
	if !res.Empty() {
		t.Fatalf("identical files should produce an empty result, got %+v", res)
	}
}

func TestCompare_MissingExtraChanged(t *testing.T) {
	target := parse(t, "A=1\nB=2")
	ref := parse(t, "A=1\nC=3")

	res := Compare(target, ref, false)
	if got := names(res.Missing); !reflect.DeepEqual(got, []string{"C"}) {
		t.Fatalf("Missing = %v, want [C]", got)
	}
	if got := names(res.Extra); !reflect.DeepEqual(got, []string{"B"}) {
		t.Fatalf("Extra = %v, want [B]", got)
	}
	if len(res.Changed) != 0 {
		t.Fatalf("Changed = %v, want none", res.Changed)
	}
}

func TestCompare_ChangedValues(t *testing.T) {
	target := parse(t, "HOST=prod.example.com\nPORT=8080")
	ref := parse(t, "HOST=localhost\nPORT=8080")

	res := Compare(target, ref, false)
	want := []Change{{Name: "HOST", From: "localhost", To: "prod.example.com"}}
	if !reflect.DeepEqual(res.Changed, want) {
		t.Fatalf("Changed = %+v, want %+v", res.Changed, want)
	}
}

func TestCompare_ComparesResolvedValues(t *testing.T) {
	// expansions resolve before comparison, so these agree
	target := parse(t, "BASE=api\nURL=${BASE}.example.com")
	ref := parse(t, "BASE=api\nURL=api.example.com")

	res := Compare(target, ref, false)
	if len(res.Changed) != 0 {
		t.Fatalf("expanded values should compare equal, got %+v", res.Changed)
	}
}

func TestCompare_ReverseSwapsOperands(t *testing.T) {
	a := parse(t, "A=1\nB=2\nD=old")
	b := parse(t, "A=1\nC=3\nD=new")

	got := Compare(a, b, true)
	want := Compare(b, a, false)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compare(a, b, true) = %+v, want Compare(b, a, false) = %+v", got, want)
	}
}

func TestCompare_OrderFollowsSource(t *testing.T) {
	target := parse(t, "Z=1\nM=1\nA=1")
	ref := parse(t, "Q=1\nB=1\nK=1")

	res := Compare(target, ref, false)
	if got := names(res.Missing); !reflect.DeepEqual(got, []string{"Q", "B", "K"}) {
		t.Fatalf("Missing order = %v, want reference order [Q B K]", got)
	}
	if got := names(res.Extra); !reflect.DeepEqual(got, []string{"Z", "M", "A"}) {
		t.Fatalf("Extra order = %v, want target order [Z M A]", got)
	}
}

func TestCompare_EmptySides(t *testing.T) {
	empty := parse(t, "")
	full := parse(t, "A=1\nB=2")

	res := Compare(empty, full, false)
	if len(res.Missing) != 2 || len(res.Extra) != 0 {
		t.Fatalf("empty target: Missing=%d Extra=%d, want 2/0", len(res.Missing), len(res.Extra))
	}

	res = Compare(full, empty, false)
	if len(res.Missing) != 0 || len(res.Extra) != 2 {
		t.Fatalf("empty reference: Missing=%d Extra=%d, want 0/2", len(res.Missing), len(res.Extra))
	}
}
