package convert

import (
	"gopkg.in/yaml.v3"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func init() { register(yamlConverter{}) }

type yamlConverter struct{}

func (yamlConverter) Name() string        { return "yaml" }
func (yamlConverter) Description() string { return "flat YAML mapping" }

// Convert builds a yaml.Node mapping directly so keys keep definition order;
// marshalling a Go map would sort them.
func (yamlConverter) Convert(m *dotenv.Model, opts Options) (string, error) {
	entries, err := opts.Entries(m)
	if err != nil {
		return "", err
	}
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: opts.Key(e.Name)},
			&yaml.Node{Kind: yaml.ScalarNode, Value: opts.Value(e.Value)},
		)
	}
	out, err := yaml.Marshal(root)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
