package api

import "errors"

var (
	// ErrSchemaViolation means the model's JSON parsed but lacks the field the
	// operation's contract requires. The result is unusable for this request,
	// so it is surfaced as a client-class failure.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrBadRequest means the caller's input was malformed or incomplete.
	ErrBadRequest = errors.New("bad request")
)
