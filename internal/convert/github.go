package convert

import (
	"fmt"
	"strings"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func init() { register(githubActionsConverter{}) }

type githubActionsConverter struct{}

func (githubActionsConverter) Name() string { return "github-actions" }
func (githubActionsConverter) Description() string {
	return "GitHub Actions secrets, ready to paste"
}

func (githubActionsConverter) Convert(m *dotenv.Model, opts Options) (string, error) {
	entries, err := opts.Entries(m)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("Paste these into Settings > Secrets and variables > Actions:\n\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "Name: %s\n", opts.Key(e.Name))
		fmt.Fprintf(&b, "Value: %s\n", opts.Value(e.Value))
		if i < len(entries)-1 {
			b.WriteString("---\n")
		}
	}
	fmt.Fprintf(&b, "\n(%d secrets total, paste each one individually)\n", len(entries))
	return b.String(), nil
}
