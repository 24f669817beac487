package command

import (
	"github.com/aretw0/smol/pkg/coerce"
)

// Values holds parsed option values keyed by option name.
type Values map[string]any

// Get returns the raw value for name.
func (v Values) Get(name string) (any, bool) {
	val, ok := v[name]
	return val, ok
}

// String returns the value as a string; non-string values are stringified.
func (v Values) String(name string) string {
	switch val := v[name].(type) {
	case string:
		return val
	default:
		return coerce.Stringify(val)
	}
}

// Int returns the value as an int. Strings are parsed leniently.
func (v Values) Int(name string) int {
	switch val := v[name].(type) {
	case int:
		return val
	case int64:
		return int(val)
	case string:
		return coerce.ParseInt(val)
	default:
		return 0
	}
}

// Bool returns the value as a bool. Strings use boolean coercion.
func (v Values) Bool(name string) bool {
	switch val := v[name].(type) {
	case bool:
		return val
	case string:
		return coerce.Coerce(val, coerce.Boolean).(bool)
	default:
		return false
	}
}
