package completion

import "sync"

var (
	defaultMu     sync.Mutex
	defaultClient *Client
)

// Default returns the shared process-wide client, constructing it from the
// environment on first use. Construction is only memoized on success, so a
// request served before the credential is configured does not poison later
// ones.
func Default() (Completer, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultClient != nil {
		return defaultClient, nil
	}
	c, err := NewClientFromEnv(Options{})
	if err != nil {
		return nil, err
	}
	defaultClient = c
	return c, nil
}

// Lazy returns an accessor that builds a client from the environment with the
// given options on first use. Like Default, it memoizes only on success.
func Lazy(opts Options) func() (Completer, error) {
	var (
		mu     sync.Mutex
		client *Client
	)
	return func() (Completer, error) {
		mu.Lock()
		defer mu.Unlock()
		if client != nil {
			return client, nil
		}
		c, err := NewClientFromEnv(opts)
		if err != nil {
			return nil, err
		}
		client = c
		return c, nil
	}
}
