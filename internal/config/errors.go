package config

import "fmt"

// InvalidURLError reports a connection string that could not be parsed.
// There is no recovery path: the caller should surface it to the operator
// and exit non-zero.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid connection URL %q: %v", e.URL, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }
