package config

import (
	"fmt"
	"iter"
	"strings"

	"github.com/aretw0/smol/pkg/coerce"
	"github.com/aretw0/smol/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Setting describes one declared configuration key.
type Setting struct {
	Key         string
	Default     any
	Kind        coerce.Kind
	Description string
}

// Entry is one element of the enumeration returned by Store.All.
type Entry struct {
	Key     string
	Value   any
	Setting Setting
}

// Store holds declared settings and their lazily resolved values.
// It is not safe for concurrent use.
type Store struct {
	source   Source
	settings map[string]Setting
	order    []string
	values   map[string]any
}

// Option configures a Store.
type Option func(*Store)

// WithSource sets the lookup used on first read. Defaults to EnvSource.
func WithSource(src Source) Option {
	return func(s *Store) {
		s.source = src
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		source:   EnvSource(),
		settings: make(map[string]Setting),
		values:   make(map[string]any),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Declare registers a setting. Declaring an existing key replaces its spec
// but keeps its position and any cached value.
func (s *Store) Declare(key string, def any, kind coerce.Kind, description string) {
	if _, exists := s.settings[key]; !exists {
		s.order = append(s.order, key)
	}
	if kind == "" {
		kind = coerce.String
	}
	s.settings[key] = Setting{Key: key, Default: def, Kind: kind, Description: description}
}

// Has reports whether key was declared.
func (s *Store) Has(key string) bool {
	_, ok := s.settings[key]
	return ok
}

// Setting returns the spec for key.
func (s *Store) Setting(key string) (Setting, bool) {
	st, ok := s.settings[key]
	return st, ok
}

// Settings returns the declared specs in declaration order.
func (s *Store) Settings() []Setting {
	out := make([]Setting, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.settings[key])
	}
	return out
}

// Get returns the resolved value of key. The first read consults the source
// under the uppercased key, falls back to the default and caches the coerced
// result; later reads never consult the source again.
func (s *Store) Get(key string) (any, error) {
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	st, ok := s.settings[key]
	if !ok {
		return nil, unknown(key)
	}

	raw, found := "", false
	if s.source != nil {
		raw, found = s.source.Lookup(strings.ToUpper(key))
	}
	if !found {
		raw = coerce.Stringify(st.Default)
	}

	v := coerce.Coerce(raw, st.Kind)
	s.values[key] = v
	return v, nil
}

// MustGet is Get for keys the caller declared itself. It panics on unknown keys.
func (s *Store) MustGet(key string) any {
	v, err := s.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the value of key as a string.
func (s *Store) String(key string) (string, error) {
	v, err := s.Get(key)
	if err != nil {
		return "", err
	}
	return coerce.Stringify(v), nil
}

// Int returns the value of key as an int. Non-integer values yield 0.
func (s *Store) Int(key string) (int, error) {
	v, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	if n, ok := v.(int); ok {
		return n, nil
	}
	return coerce.ParseInt(coerce.Stringify(v)), nil
}

// Bool returns the value of key as a bool.
func (s *Store) Bool(key string) (bool, error) {
	v, err := s.Get(key)
	if err != nil {
		return false, err
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return coerce.Coerce(coerce.Stringify(v), coerce.Boolean).(bool), nil
}

// Set coerces raw by the declared kind and overwrites the cached value.
func (s *Store) Set(key, raw string) error {
	st, ok := s.settings[key]
	if !ok {
		return unknown(key)
	}
	s.values[key] = coerce.Coerce(raw, st.Kind)
	return nil
}

// All enumerates (key, value, setting) in declaration order. Values are
// resolved as the sequence is consumed; the sequence can be ranged over again.
func (s *Store) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, key := range s.order {
			v, err := s.Get(key)
			if err != nil {
				continue
			}
			if !yield(Entry{Key: key, Value: v, Setting: s.settings[key]}) {
				return
			}
		}
	}
}

// Map resolves every setting into a plain map.
func (s *Store) Map() map[string]any {
	out := make(map[string]any, len(s.order))
	for e := range s.All() {
		out[e.Key] = e.Value
	}
	return out
}

// Decode copies the resolved settings into target, a pointer to a struct
// whose fields carry `mapstructure` tags named after the setting keys.
func (s *Store) Decode(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := dec.Decode(s.Map()); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

func unknown(key string) error {
	return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
}
