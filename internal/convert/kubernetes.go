package convert

import (
	"gopkg.in/yaml.v3"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func init() { register(kubernetesConverter{}) }

type kubernetesConverter struct{}

func (kubernetesConverter) Name() string        { return "kubernetes" }
func (kubernetesConverter) Description() string { return "Kubernetes Secret manifest" }

// Convert emits an Opaque Secret named app-secrets. Values go under
// stringData unless Base64 is set, in which case they land pre-encoded
// under data.
func (kubernetesConverter) Convert(m *dotenv.Model, opts Options) (string, error) {
	entries, err := opts.Entries(m)
	if err != nil {
		return "", err
	}

	vars := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		vars.Content = append(vars.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: opts.Key(e.Name)},
			&yaml.Node{Kind: yaml.ScalarNode, Value: opts.Value(e.Value)},
		)
	}

	dataKey := "stringData"
	if opts.Base64 {
		dataKey = "data"
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		scalar("apiVersion"), scalar("v1"),
		scalar("kind"), scalar("Secret"),
		scalar("metadata"), mapping(scalar("name"), scalar("app-secrets")),
		scalar("type"), scalar("Opaque"),
		scalar(dataKey), vars,
	)

	out, err := yaml.Marshal(root)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

func mapping(kv ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: kv}
}
