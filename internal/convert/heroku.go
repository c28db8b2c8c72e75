package convert

import (
	"fmt"
	"strings"

	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func init() { register(herokuConverter{}) }

type herokuConverter struct{}

func (herokuConverter) Name() string        { return "heroku" }
func (herokuConverter) Description() string { return "heroku config:set script" }

func (herokuConverter) Convert(m *dotenv.Model, opts Options) (string, error) {
	entries, err := opts.Entries(m)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("#!/bin/bash\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "heroku config:set %s=%s\n",
			opts.Key(e.Name), shellQuote(opts.Value(e.Value)))
	}
	return b.String(), nil
}
