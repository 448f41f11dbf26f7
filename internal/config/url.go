package config

import (
	"net/url"
	"strings"
)

const defaultScheme = "tcp"

// Environment variables consulted when the URL carries no credentials.
const (
	envUser     = "CLICKHOUSE_USER"
	envPassword = "CLICKHOUSE_PASSWORD"
)

// Transport timeouts injected when the user did not choose their own.
// ClickHouse's built-in connection timeout of 500ms is too aggressive for
// anything but localhost, and analyzing slow queries can itself be slow.
const (
	defaultConnectionTimeout = "5s"
	defaultQueryTimeout      = "600s"
)

// parseURL parses a connection string, defaulting the scheme to tcp.
// The substring check is deliberate: for "user:pass@127.1" url.Parse would
// report "user" as the scheme.
func parseURL(raw string) (*url.URL, error) {
	s := raw
	if !strings.Contains(s, "://") {
		s = defaultScheme + "://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, &InvalidURLError{URL: raw, Err: err}
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u, nil
}

// mergeCredentials fills missing URL credentials from the environment.
// An empty username is eligible for override; a password that is present
// but empty is not (presence is tracked separately from emptiness).
func mergeCredentials(u *url.URL, env EnvLookup) {
	user := u.User.Username()
	if user == "" {
		if v, ok := env(envUser); ok {
			user = v
		}
	}
	pass, hasPass := u.User.Password()
	if !hasPass {
		if v, ok := env(envPassword); ok {
			pass, hasPass = v, true
		}
	}
	switch {
	case hasPass:
		u.User = url.UserPassword(user, pass)
	case user != "":
		u.User = url.User(user)
	default:
		u.User = nil
	}
}

// redactURL returns a value copy with the password field removed entirely,
// not blanked. Safe to log and display.
func redactURL(u *url.URL) *url.URL {
	safe := *u
	if _, has := safe.User.Password(); has {
		if name := safe.User.Username(); name != "" {
			safe.User = url.User(name)
		} else {
			safe.User = nil
		}
	}
	return &safe
}

// injectDefaults appends a transport timeout default for every key the user
// did not supply. Presence is checked against the pre-injection snapshot so
// the check never sees this function's own additions. Values are appended to
// the raw query as-is; a duplicate key reaching the operational URL through
// an encoding variant is accepted, not deduplicated.
func injectDefaults(u *url.URL, snapshot *url.URL) {
	present := snapshot.Query()
	appendPair := func(key, value string) {
		if u.RawQuery != "" {
			u.RawQuery += "&"
		}
		u.RawQuery += key + "=" + value
	}
	if !present.Has("connection_timeout") {
		appendPair("connection_timeout", defaultConnectionTimeout)
	}
	if !present.Has("query_timeout") {
		appendPair("query_timeout", defaultQueryTimeout)
	}
}
