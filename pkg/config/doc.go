/*
Package config implements the typed settings store shared by an application's
commands, checks and shells.

Settings are declared with a default, a coercion kind and a description.
Values are resolved lazily: the first read looks the uppercased key up in a
Source (the process environment by default), falls back to the default and
caches the coerced result. Set overrides the cache directly and never touches
the source.

# Usage

	cfg := config.New(config.WithSource(config.ChainSource(
		config.EnvSource(),
		fileSource,
	)))
	cfg.Declare("database", "app_dev", coerce.String, "database name")
	cfg.Declare("retries", 3, coerce.Integer, "retry budget")

	db, err := cfg.Get("database")
*/
package config
