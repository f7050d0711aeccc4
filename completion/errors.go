package completion

import "errors"

var (
	// ErrMissingAPIKey means the credential was absent at client construction.
	// Nothing is sent to the completion service when this is returned.
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY environment variable is not set")

	// ErrUpstream wraps any transport, auth, or quota failure of the
	// completion call itself. Calls are never retried.
	ErrUpstream = errors.New("completion request failed")

	// ErrEmptyResponse means the call succeeded but carried no content.
	ErrEmptyResponse = errors.New("completion service returned no content")
)
