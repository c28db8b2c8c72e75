package convert

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func init() { register(terraformConverter{}) }

type terraformConverter struct{}

func (terraformConverter) Name() string        { return "terraform" }
func (terraformConverter) Description() string { return "Terraform tfvars assignments" }

// Convert emits one tfvars assignment per variable, names lowercased the way
// Terraform expects unless a transform is requested.
func (terraformConverter) Convert(m *dotenv.Model, opts Options) (string, error) {
	entries, err := opts.Entries(m)
	if err != nil {
		return "", err
	}
	if opts.Transform == TransformNone {
		opts.Transform = TransformLower
	}
	var b strings.Builder
	for _, e := range entries {
		v, _ := json.Marshal(opts.Value(e.Value)) // tfvars strings use JSON escaping
		fmt.Fprintf(&b, "%s = %s\n", opts.Key(e.Name), v)
	}
	return b.String(), nil
}
