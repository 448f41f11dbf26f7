// Package config resolves chdig's runtime configuration from raw
// command-line values: it normalizes the connection URL, merges credentials
// from the environment, derives a redacted display form, injects transport
// timeout defaults, and resolves paired --x/--no-x flags to final booleans.
package config

import (
	"os"
	"time"
)

// EnvLookup reads a variable from the process environment. It is injected
// so credential merging can be tested without touching the real environment.
type EnvLookup func(key string) (string, bool)

// RawOptions is an immutable snapshot of what the user typed, as parsed by
// the CLI layer.
type RawOptions struct {
	URL          string
	Cluster      string
	Delay        time.Duration
	GroupBy      bool
	NoGroupBy    bool
	NoSubqueries bool
	Mouse        bool
	NoMouse      bool
}

// ResolvedConfig is the finalized runtime configuration handed to the rest
// of the application. Immutable after construction.
type ResolvedConfig struct {
	// URL is the operational connection URL with credentials merged in and
	// timeout defaults injected. It may contain a password; never log it.
	URL string
	// URLSafe is the display form of URL with the password removed.
	URLSafe string
	Cluster string
	Delay   time.Duration

	GroupBy      bool
	NoSubqueries bool
	Mouse        bool
}

// Resolve normalizes raw options into the final configuration. The only
// failure mode is an unparseable connection URL, reported as
// *InvalidURLError. A nil env falls back to the process environment.
func Resolve(raw RawOptions, env EnvLookup) (*ResolvedConfig, error) {
	if env == nil {
		env = os.LookupEnv
	}

	u, err := parseURL(raw.URL)
	if err != nil {
		return nil, err
	}
	mergeCredentials(u, env)

	// The snapshot must be taken before defaults are written, so the
	// presence check sees only what the user (or the environment) supplied.
	snapshot := redactURL(u)
	injectDefaults(u, snapshot)

	cfg := &ResolvedConfig{
		URL:          u.String(),
		URLSafe:      redactURL(u).String(),
		Cluster:      raw.Cluster,
		Delay:        raw.Delay,
		NoSubqueries: raw.NoSubqueries,
	}

	// -g and -m can only switch their flags on, so a raw true means the
	// user asked for it; group-by additionally defaults on in cluster mode.
	cfg.GroupBy = raw.GroupBy || raw.Cluster != ""
	cfg.Mouse = raw.Mouse

	// The no-* overrides win unconditionally, regardless of how the value
	// above was computed. Applied as a second pass: folding them into the
	// defaults would let a data-dependent default beat an explicit flag.
	overrides := []struct {
		set    bool
		target *bool
	}{
		{raw.NoGroupBy, &cfg.GroupBy},
		{raw.NoMouse, &cfg.Mouse},
	}
	for _, o := range overrides {
		if o.set {
			*o.target = false
		}
	}

	return cfg, nil
}
