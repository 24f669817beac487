package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source is an environment-like key/value lookup used to seed settings.
// Keys are the uppercased setting names.
type Source interface {
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(key string) (string, bool)

// Lookup implements Source.
func (f SourceFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// EnvSource reads from the process environment.
func EnvSource() Source {
	return SourceFunc(os.LookupEnv)
}

// MapSource is an in-memory Source.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// ChainSource consults each source in order and returns the first hit.
func ChainSource(sources ...Source) Source {
	return SourceFunc(func(key string) (string, bool) {
		for _, s := range sources {
			if s == nil {
				continue
			}
			if v, ok := s.Lookup(key); ok {
				return v, true
			}
		}
		return "", false
	})
}

// LoadYAMLSource reads a flat YAML mapping into a MapSource.
// Keys are uppercased to match environment conventions and scalar values are
// kept in their textual form. A missing file yields an empty source.
func LoadYAMLSource(path string) (MapSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return MapSource{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	src := make(MapSource, len(doc))
	for key, node := range doc {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("config key %q: expected a scalar value", key)
		}
		src[strings.ToUpper(key)] = node.Value
	}
	return src, nil
}
