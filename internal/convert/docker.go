package convert

import (
	"fmt"
	"strings"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func init() { register(dockerComposeConverter{}) }

type dockerComposeConverter struct{}

func (dockerComposeConverter) Name() string { return "docker-compose" }
func (dockerComposeConverter) Description() string {
	return "docker-compose service environment section"
}

func (dockerComposeConverter) Convert(m *dotenv.Model, opts Options) (string, error) {
	entries, err := opts.Entries(m)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("environment:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  - %s=%s\n", opts.Key(e.Name), opts.Value(e.Value))
	}
	return b.String(), nil
}
