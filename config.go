package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAMLLoader resolves flags from a YAML document. Keys match flag names,
// with dashes or underscores, either at the top level or nested under the
// command name:
//
//	log-level: debug
//	serve:
//	  listen: ":8080"
//	  fetch_timeout: 5s
func YAMLLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not parse YAML configuration: %w", err)
	}

	var resolver kong.ResolverFunc = func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if nested, ok := lookup(values, parent.Command.Name).(map[string]any); ok {
				if v := lookup(nested, flag.Name); v != nil {
					return v, nil
				}
			}
		}
		return lookup(values, flag.Name), nil
	}
	return resolver, nil
}

func lookup(values map[string]any, name string) any {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		if v, ok := values[key]; ok {
			return v
		}
	}
	return nil
}
